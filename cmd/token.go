package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mesa-billing/internal/adapter/auth"
)

var (
	tokenEmail  string
	tokenUserID string
)

// tokenCmd prints a bearer token for a user, looked up by email unless the
// id is given directly.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an API bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenEmail == "" && tokenUserID == "" {
			return errors.New("one of --email or --user-id is required")
		}

		userID, email := tokenUserID, tokenEmail
		if userID == "" {
			ctx, cancel := commandContext(cmd.Context())
			defer cancel()

			st, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer st.close()

			user, err := st.users.GetUserByEmail(ctx, tokenEmail)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("no user with email %q", tokenEmail)
			}
			userID = user.ID
		}

		token, err := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Issue(userID, email)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email of an existing user")
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "user id to embed as the subject")
	tokenCmd.MarkFlagsMutuallyExclusive("email", "user-id")
}
