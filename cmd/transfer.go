package cmd

import (
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

func NewDepositCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit money into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, amount, err := parseAccountAmount(args[0], args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.Deposit(ctx, accID, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Deposit", out)
		},
	}
}

func NewWithdrawCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw money from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, amount, err := parseAccountAmount(args[0], args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.Withdraw(ctx, accID, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Withdraw", out)
		},
	}
}

func NewTransferCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from-account-id> <to-account-id> <amount>",
		Short: "Transfer money between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, amount, err := parseAccountAmount(args[0], args[2])
			if err != nil {
				return err
			}
			to, err := validation.ParseID(args[1])
			if err != nil {
				return err
			}
			if from == to {
				return fmt.Errorf("cannot transfer to the same account")
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.Transfer(ctx, from, to, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Transfer", out)
		},
	}
}

func parseAccountAmount(rawID, rawAmount string) (int64, float64, error) {
	accID, err := validation.ParseID(rawID)
	if err != nil {
		return 0, 0, err
	}
	amount, err := validation.ParseAmount(rawAmount)
	if err != nil {
		return 0, 0, err
	}
	return accID, amount, nil
}
