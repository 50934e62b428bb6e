package cd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/spf13/cobra"
)

func NewCDCmd(a *app.App) *cobra.Command {
	cdCmd := &cobra.Command{
		Use:   "cd",
		Short: "Open term certificates and move matured funds",
	}

	cdCmd.AddCommand(NewOpenCmd(a))
	cdCmd.AddCommand(NewWithdrawCmd(a))
	cdCmd.AddCommand(NewTransferCmd(a))

	return cdCmd
}
