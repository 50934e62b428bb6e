package loan

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type openFlags struct {
	TypeID  int64
	Balance string
	Rate    float64
}

func NewOpenCmd(a *app.App) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a loan for the current user",
		Long: `Open a loan. --balance is the principal owed. Without --type the
"Loan" account type is looked up by name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := a.Config.User.ID
			if userID <= 0 {
				return errors.New("no user id configured, run `teller init` or pass --user")
			}

			principal, err := validation.ParseAmount(flags.Balance)
			if err != nil {
				return fmt.Errorf("principal: %w", err)
			}

			ctx := cmd.Context()
			typeID := flags.TypeID
			if typeID == 0 {
				r, err := a.Gateway.GetAccountTypeByName(ctx, constants.TypeLoan).Await(ctx)
				if err != nil {
					return fmt.Errorf("failed to look up loan type: %w", err)
				}
				if !r.OK {
					return fmt.Errorf("failed to look up loan type: status %d", r.Status)
				}
				typeID = r.Body.ID
			}

			out, err := views.AwaitBody(ctx, a.Gateway.OpenLoan(ctx, model.Account{
				UserID:        userID,
				AccountTypeID: typeID,
				Balance:       principal,
				InterestRate:  flags.Rate,
			}))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Open loan", out)
		},
	}

	cmd.Flags().Int64VarP(&flags.TypeID, "type", "t", 0, "Loan account type id")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Principal")
	cmd.Flags().Float64VarP(&flags.Rate, "rate", "r", 0, "Yearly interest rate in percent")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}
