package cmd

import (
	"fmt"

	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/validation"
	"github.com/spf13/cobra"
)

type txFlags struct {
	Limit int
	From  string
	To    string
}

type TxCommandRunner struct {
	app   *app.App
	flags *txFlags
}

func NewTransactionsCmd(a *app.App) *cobra.Command {
	flags := &txFlags{}

	cmd := &cobra.Command{
		Use:     "transactions <account-id>",
		Aliases: []string{"tx"},
		Short:   "List the transactions of an account (alias: tx)",
		Long: `List the transactions of an account, newest first.

--limit caps the number of rows. --from and --to (YYYY-MM-DD) restrict the
list to a date range and must be given together.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &TxCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run(cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultTransactionLimit, "Maximum number of transactions to display (0 for all)")
	cmd.Flags().StringVar(&flags.From, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "End date (YYYY-MM-DD)")
	cmd.MarkFlagsRequiredTogether("from", "to")

	return cmd
}

func (r *TxCommandRunner) Run(cmd *cobra.Command, rawID string) error {
	accID, err := validation.ParseID(rawID)
	if err != nil {
		return err
	}
	if r.flags.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	ranged := r.flags.From != ""
	if ranged {
		if err := validation.ValidateDateRange(r.flags.From, r.flags.To); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	gw := r.app.Gateway

	var f *reply.Future[reply.Reply[[]model.Transaction]]
	heading := "all"
	switch {
	case ranged && r.flags.Limit > 0:
		f = gw.GetTransactionsByAccountWithDateRangeAndLimit(ctx, accID, r.flags.From, r.flags.To, r.flags.Limit)
		heading = fmt.Sprintf("%s to %s, limit %d", r.flags.From, r.flags.To, r.flags.Limit)
	case ranged:
		f = gw.GetTransactionsByAccountWithDateRange(ctx, accID, r.flags.From, r.flags.To)
		heading = fmt.Sprintf("%s to %s", r.flags.From, r.flags.To)
	case r.flags.Limit > 0:
		f = gw.GetTransactionsByAccountWithLimit(ctx, accID, r.flags.Limit)
		heading = fmt.Sprintf("limit %d", r.flags.Limit)
	default:
		f = gw.GetTransactionsByAccount(ctx, accID)
	}

	txs, err := fetch(ctx, f, "transactions")
	if err != nil {
		return err
	}

	return views.NewTransactionListView().Render(accID, heading, txs)
}
