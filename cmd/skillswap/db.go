package main

import (
	"fmt"

	"skillswap/internal/database"
	"skillswap/internal/database/migration"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/database/seeder"
	"skillswap/migrations"

	"github.com/spf13/cobra"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, rt, func(db database.DB) error {
				r := migration.Runner{FS: migrations.FS, Logger: rt.log.Named("migration")}
				if dryRun {
					todo, err := r.Pending(cmd.Context(), db)
					if err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					for _, m := range todo {
						fmt.Fprintln(cmd.OutOrStdout(), m.Filename)
					}
					return nil
				}
				if err := r.Run(cmd.Context(), db); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				rt.log.Info("migrations up to date")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list pending migrations without applying them")
	return cmd
}

func newSeedCmd(rt *runtime) *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, skills and needs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, rt, func(db database.DB) error {
				r := seeder.Runner{Seeders: seeder.Defaults(), Only: only, Logger: rt.log.Named("seeder")}
				if err := r.Run(cmd.Context(), db); err != nil {
					return err
				}
				rt.log.Info("seed complete")
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "run only the named seeders")
	return cmd
}

func withDB(cmd *cobra.Command, rt *runtime, fn func(db database.DB) error) error {
	if err := rt.cfg.ValidateDatabase(); err != nil {
		return err
	}
	db, err := dbpostgres.Connect(cmd.Context(), rt.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()
	return fn(db)
}
