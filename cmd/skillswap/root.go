package main

import (
	"fmt"

	"skillswap/internal/config"
	"skillswap/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type runtime struct {
	cfgFile string
	debug   bool
	json    bool

	cfg config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "skillswap",
		Short: "Skill matching and self-assessment service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&rt.cfgFile, "config", "", "config file (yaml, json or toml); env vars take precedence")
	root.PersistentFlags().BoolVarP(&rt.debug, "debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolVarP(&rt.json, "json", "j", false, "json format for logging")

	root.AddCommand(
		newServeCmd(rt),
		newMigrateCmd(rt),
		newSeedCmd(rt),
		newAssessCmd(rt),
		newMatchCmd(rt),
		newTokenCmd(rt),
	)

	return root
}

func (rt *runtime) init(cmd *cobra.Command) error {
	cfg, err := config.Load(rt.cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = rt.debug
	}
	if cmd.Flags().Changed("json") {
		cfg.Log.JSON = rt.json
	}

	l, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	rt.cfg = cfg
	rt.log = l
	return nil
}
