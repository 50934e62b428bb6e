package cd

import (
	"errors"
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type openFlags struct {
	TypeID   int64
	Balance  string
	Rate     float64
	Maturity string
}

func NewOpenCmd(a *app.App) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a term certificate of deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := a.Config.User.ID
			if userID <= 0 {
				return errors.New("no user id configured, run `teller init` or pass --user")
			}

			deposit, err := validation.ParseAmount(flags.Balance)
			if err != nil {
				return fmt.Errorf("deposit: %w", err)
			}

			maturity := flags.Maturity
			if maturity == "" {
				maturity, err = prompts.PromptInput("Maturity date (YYYY-MM-DD):", "", validation.ValidateDate)
				if err != nil {
					return err
				}
			} else if err := validation.ValidateDate(maturity); err != nil {
				return err
			}

			ctx := cmd.Context()
			typeID := flags.TypeID
			if typeID == 0 {
				r, err := a.Gateway.GetAccountTypeByName(ctx, constants.TypeTermCD).Await(ctx)
				if err != nil {
					return fmt.Errorf("failed to look up term CD type: %w", err)
				}
				if !r.OK {
					return fmt.Errorf("failed to look up term CD type: status %d", r.Status)
				}
				typeID = r.Body.ID
			}

			out, err := views.AwaitBody(ctx, a.Gateway.OpenCD(ctx, model.Account{
				UserID:        userID,
				AccountTypeID: typeID,
				Balance:       deposit,
				InterestRate:  flags.Rate,
				MaturityDate:  maturity,
			}))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Open term CD", out)
		},
	}

	cmd.Flags().Int64VarP(&flags.TypeID, "type", "t", 0, "Term CD account type id")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Deposit")
	cmd.Flags().Float64VarP(&flags.Rate, "rate", "r", 0, "Yearly interest rate in percent")
	cmd.Flags().StringVarP(&flags.Maturity, "maturity", "m", "", "Maturity date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}
