package cd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

func NewWithdrawCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <cd-id> <amount>",
		Short: "Withdraw from a matured certificate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cdID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			amount, err := validation.ParseAmount(args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.WithdrawCD(ctx, cdID, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Certificate withdrawal", out)
		},
	}
}

func NewTransferCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <cd-id> <to-account-id> <amount>",
		Short: "Transfer from a matured certificate to another account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cdID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			to, err := validation.ParseID(args[1])
			if err != nil {
				return err
			}
			amount, err := validation.ParseAmount(args[2])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.TransferCD(ctx, cdID, to, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Certificate transfer", out)
		},
	}
}
