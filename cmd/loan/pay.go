package loan

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

func NewPayCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <loan-id> <amount>",
		Short: "Make a loan payment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			amount, err := validation.ParseAmount(args[1])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			out, err := views.AwaitBody(ctx, a.Gateway.ProcessLoanPayment(ctx, loanID, amount))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Loan payment", out)
		},
	}
}
