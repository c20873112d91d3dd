package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var revokeInvoicing bool

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Operator actions on billing accounts",
}

// grantInvoicingCmd flips the invoicing eligibility of one account. Revoking
// it from an account in invoicing mode moves the account to automatic.
var grantInvoicingCmd = &cobra.Command{
	Use:   "grant-invoicing <userId>",
	Short: "Grant or revoke monthly invoicing for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd.Context())
		defer cancel()

		st, err := openStores(ctx)
		if err != nil {
			return err
		}
		defer st.close()

		locker, closeLocker, err := openLocker(ctx)
		if err != nil {
			return err
		}
		defer closeLocker()

		acct, err := newBillingUseCase(st.billing, locker).SetInvoicingEligibility(ctx, args[0], !revokeInvoicing)
		if err != nil {
			return err
		}
		logger.Info("invoicing eligibility updated",
			slog.String("user_id", acct.UserID),
			slog.Bool("eligible", acct.InvoicingEligible),
			slog.String("mode", string(acct.PaymentMode)),
			lockAttr(),
		)
		return nil
	},
}

func init() {
	grantInvoicingCmd.Flags().BoolVar(&revokeInvoicing, "revoke", false, "revoke instead of grant")
}
