package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type openFlags struct {
	TypeID  int64
	Balance string
}

func NewOpenCmd(a *app.App) *cobra.Command {
	flags := &openFlags{}

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a transferable account",
		Long: `Open a transferable (checking style) account for the current user.
Without --type the account type is chosen from the API's list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireUser(a)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			typeID := flags.TypeID
			if typeID == 0 {
				types, err := fetch(ctx, a.Gateway.GetAccountTypes(ctx), "account types")
				if err != nil {
					return err
				}
				t, err := prompts.PromptAccountType(types)
				if err != nil {
					return err
				}
				typeID = t.ID
			}

			var balance float64
			if flags.Balance != "" {
				balance, err = validation.ParseAmount(flags.Balance)
				if err != nil {
					return err
				}
			}

			out, err := views.AwaitBody(ctx, a.Gateway.OpenAccount(ctx, model.Account{
				UserID:        userID,
				AccountTypeID: typeID,
				Balance:       balance,
			}))
			if err != nil {
				return err
			}

			return views.RenderOutcome("Open account", out)
		},
	}

	cmd.Flags().Int64VarP(&flags.TypeID, "type", "t", 0, "Account type id")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance")

	return cmd
}
