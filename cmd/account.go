package cmd

import (
	"os"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type accountFlags struct {
	Interactive bool
}

func NewAccountCmd(a *app.App) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "account <account-id>",
		Short: "Show one account with its kind specific view",
		Long: `Show the details of an account together with the user's other
accounts. With --interactive the operations of the account's kind
(deposit, loan payment, certificate withdrawal, ...) can be run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			acc, err := fetch(ctx, a.Gateway.GetAccountDetails(ctx, accID), "account details")
			if err != nil {
				return err
			}

			router := views.NewAccountView(a.Gateway)
			router.ShowDetails(acc)

			source := a.Gateway.GetAccountsByUser(ctx, acc.UserID)
			variant, err := router.Select(ctx, acc, source)
			if err != nil {
				return err
			}
			if err := router.Render(ctx, os.Stdout); err != nil {
				return err
			}

			if !flags.Interactive {
				return nil
			}
			return runActions(ctx, variant)
		},
	}

	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Choose an operation to run on the account")

	return cmd
}
