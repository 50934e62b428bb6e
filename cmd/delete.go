package cmd

import (
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(a *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Delete a transferable account",
		Long:  `Delete a transferable account. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if !yes {
				acc, err := fetch(ctx, a.Gateway.GetAccountDetails(ctx, accID), "account details")
				if err != nil {
					return err
				}

				pterm.Warning.Printf("About to delete account #%d:\n", acc.ID)
				info := pterm.TableData{
					{"Owner", fmt.Sprint(acc.UserID)},
					{"Type", fmt.Sprint(acc.AccountTypeID)},
					{"Balance", utils.FormatAmount(acc.Balance)},
				}
				if err := pterm.DefaultTable.WithData(info).Render(); err != nil {
					return err
				}
				pterm.Warning.Println("This action cannot be undone!")

				confirmed, err := ui.Confirm("Do you want to delete this account?")
				if err != nil {
					return err
				}
				if !confirmed {
					pterm.Info.Println("Deletion cancelled")
					return nil
				}
			}

			out, err := views.AwaitFlag(ctx, a.Gateway.Delete(ctx, accID))
			if err != nil {
				return err
			}

			return views.RenderOutcome(fmt.Sprintf("Delete account #%d", accID), out)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
