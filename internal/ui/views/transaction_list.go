package views

import (
	"fmt"
	"time"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// Render prints the transactions of one account. heading describes the
// query, e.g. the limit or date range.
func (v *TransactionListView) Render(accountID int64, heading string, txs []model.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Account %d transactions (%s)", accountID, heading)

	tableData := pterm.TableData{
		{"ID", "Date", "Description", "Amount"},
	}

	var total float64
	for _, tx := range txs {
		amount := utils.FormatAmount(tx.Amount)
		if tx.Amount < 0 {
			amount = pterm.Red(amount)
		} else {
			amount = pterm.Green(amount)
		}
		total += tx.Amount

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", tx.ID),
			displayTime(tx.Timestamp),
			tx.Description,
			amount,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions, net %s\n", len(txs), utils.FormatAmount(total))

	return nil
}

func displayTime(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04")
}
