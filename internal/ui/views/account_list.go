package views

import (
	"github.com/hance08/teller/internal/model"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(userID int64, accounts []model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Printf("No accounts found for user %d\n", userID)
		return nil
	}

	pterm.DefaultSection.Printf("Accounts of user %d", userID)
	if err := pterm.DefaultTable.WithHasHeader().WithData(accountRows(accounts)).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

func RenderAccountTypes(types []model.AccountType) error {
	tableData := pterm.TableData{{"ID", "Name", "Kind"}}
	for _, t := range types {
		kind := pterm.Gray("unsupported")
		if k, err := model.KindOf(t); err == nil {
			kind = k.String()
		}
		tableData = append(tableData, []string{pterm.Sprint(t.ID), t.Name, kind})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
