package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type accountsFlags struct {
	TypeID int64
}

type AccountsCommandRunner struct {
	app   *app.App
	flags *accountsFlags
}

func NewAccountsCmd(a *app.App) *cobra.Command {
	flags := &accountsFlags{}

	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"ls"},
		Short:   "List the user's accounts (alias: ls)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &AccountsCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().Int64VarP(&flags.TypeID, "type", "t", 0, "Only list accounts of this account type id")

	return cmd
}

func (r *AccountsCommandRunner) Run(cmd *cobra.Command) error {
	userID, err := requireUser(r.app)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var f *reply.Future[reply.Reply[[]model.Account]]
	if r.flags.TypeID > 0 {
		f = r.app.Gateway.GetAccountsByUserAndType(ctx, userID, r.flags.TypeID)
	} else {
		f = r.app.Gateway.GetAccountsByUser(ctx, userID)
	}

	accounts, err := fetch(ctx, f, "accounts")
	if err != nil {
		return err
	}

	return views.NewAccountListView().Render(userID, accounts)
}
