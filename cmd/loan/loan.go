package loan

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewLoanCmd(a *app.App) *cobra.Command {
	loanCmd := &cobra.Command{
		Use:   "loan",
		Short: "Open, pay and close loan accounts",
	}

	loanCmd.AddCommand(NewOpenCmd(a))
	loanCmd.AddCommand(NewPayCmd(a))
	loanCmd.AddCommand(NewCloseCmd(a))

	return loanCmd
}
