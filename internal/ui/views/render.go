package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

func renderTable(w io.Writer, data pterm.TableData, header bool) error {
	table := pterm.DefaultTable.WithData(data)
	if header {
		table = table.WithHasHeader()
	}
	out, err := table.Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func typeName(acc model.Account) string {
	if acc.AccountType != nil && acc.AccountType.Name != "" {
		return acc.AccountType.Name
	}
	return "#" + strconv.FormatInt(acc.AccountTypeID, 10)
}

func detailRows(acc model.Account, balanceLabel string) pterm.TableData {
	return pterm.TableData{
		{"Account", strconv.FormatInt(acc.ID, 10)},
		{"Owner", strconv.FormatInt(acc.UserID, 10)},
		{"Type", typeName(acc)},
		{balanceLabel, utils.FormatAmount(acc.Balance)},
	}
}

// renderAccount writes the details table followed by the owner's other
// accounts, which are the possible transfer targets.
func renderAccount(ctx context.Context, w io.Writer, title string, rows pterm.TableData, acc model.Account, accounts AccountsSource) error {
	if _, err := fmt.Fprintln(w, ui.L1Title("%s %d", title, acc.ID)); err != nil {
		return err
	}
	if err := renderTable(w, rows, false); err != nil {
		return err
	}
	if accounts == nil {
		return nil
	}

	list, err := accounts.Await(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	fmt.Fprintln(w, ui.L2Title("Other accounts"))
	if !list.OK {
		fmt.Fprintln(w, pterm.Yellow(fmt.Sprintf("accounts unavailable (status %d)", list.Status)))
		return nil
	}

	others := Others(acc.ID, list.Body)
	if len(others) == 0 {
		fmt.Fprintln(w, pterm.Gray("none"))
		return nil
	}
	return renderTable(w, accountRows(others), true)
}

// Others returns every account except the one with the given id.
func Others(id int64, accounts []model.Account) []model.Account {
	out := make([]model.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

func accountRows(accounts []model.Account) pterm.TableData {
	data := pterm.TableData{{"ID", "Type", "Balance"}}
	for _, a := range accounts {
		balance := utils.FormatAmount(a.Balance)
		kind, err := model.KindOf(model.AccountType{Name: typeName(a)})
		switch {
		case err != nil:
		case kind == model.KindLoan:
			balance = pterm.Red(balance)
		default:
			balance = pterm.Green(balance)
		}
		data = append(data, []string{strconv.FormatInt(a.ID, 10), typeName(a), balance})
	}
	return data
}
