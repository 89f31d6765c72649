package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"skillswap/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newTokenCmd mints an access token for local testing against a dev server.
func newTokenCmd(rt *runtime) *cobra.Command {
	var (
		userID string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Sign a development access token with JWT_ACCESS_SECRET",
		Example: `  skillswap token --user-id 2b0c1d5e-4a57-4c1b-9f0e-0f5b6d1a2c3d --ttl 2h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := strings.TrimSpace(rt.cfg.JWT.AccessSecret)
			if secret == "" {
				return errors.New("JWT_ACCESS_SECRET is not set")
			}
			id, err := uuid.Parse(strings.TrimSpace(userID))
			if err != nil {
				return fmt.Errorf("invalid --user-id: %w", err)
			}
			tok, err := jwt.NewHMACService(secret).GenerateAccessToken(id, strings.TrimSpace(email), ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "subject user id (uuid)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
