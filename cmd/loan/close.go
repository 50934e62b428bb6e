package loan

import (
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewCloseCmd(a *app.App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "close <loan-id>",
		Short: "Close a paid off loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loanID, err := validation.ParseID(args[0])
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := ui.Confirm(fmt.Sprintf("Close loan #%d?", loanID))
				if err != nil {
					return err
				}
				if !confirmed {
					pterm.Info.Println("Cancelled")
					return nil
				}
			}

			ctx := cmd.Context()
			out, err := views.AwaitFlag(ctx, a.Gateway.CloseLoan(ctx, loanID))
			if err != nil {
				return err
			}

			return views.RenderOutcome(fmt.Sprintf("Close loan #%d", loanID), out)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
