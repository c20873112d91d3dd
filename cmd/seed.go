package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"mesa-billing/internal/db"
)

var seedOpts = db.DefaultSeedOptions

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo advertiser with campaigns, ad groups and ads",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd.Context())
		defer cancel()

		st, err := openStores(ctx)
		if err != nil {
			return err
		}
		defer st.close()

		user, err := db.Seed(ctx, st.catalog, st.users, seedOpts)
		if err != nil {
			return err
		}
		logger.Info("demo data seeded",
			slog.String("user_id", user.ID),
			slog.String("email", user.Email),
			slog.Int("campaigns", seedOpts.Campaigns),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Campaigns, "campaigns", seedOpts.Campaigns, "number of campaigns")
	seedCmd.Flags().IntVar(&seedOpts.GroupsPer, "groups", seedOpts.GroupsPer, "ad groups per campaign")
	seedCmd.Flags().IntVar(&seedOpts.AdsPerGroup, "ads", seedOpts.AdsPerGroup, "ads per ad group")
	seedCmd.Flags().BoolVar(&seedOpts.Reset, "reset", false, "delete existing campaigns first")
}
