package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
)

func accountLabel(acc model.Account) string {
	name := fmt.Sprintf("Type %d", acc.AccountTypeID)
	if acc.AccountType != nil && acc.AccountType.Name != "" {
		name = acc.AccountType.Name
	}
	return fmt.Sprintf("#%d  %s  %s", acc.ID, name, utils.FormatAmount(acc.Balance))
}

// PromptAccount lets the user pick one of accounts.
func PromptAccount(message string, accounts []model.Account) (model.Account, error) {
	if len(accounts) == 0 {
		return model.Account{}, fmt.Errorf("no accounts to choose from")
	}

	options := make([]huh.Option[int], 0, len(accounts))
	for i, acc := range accounts {
		options = append(options, huh.NewOption(accountLabel(acc), i))
	}

	var selected int
	err := huh.NewSelect[int]().
		Title(message).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return model.Account{}, fmt.Errorf("input cancelled: %w", err)
	}

	return accounts[selected], nil
}

// PromptAccountType prompts for one of the account types the API offers
func PromptAccountType(types []model.AccountType) (model.AccountType, error) {
	options := make([]huh.Option[int], 0, len(types))
	for i, t := range types {
		options = append(options, huh.NewOption(t.Name, i))
	}

	var selected int
	err := huh.NewSelect[int]().
		Title("Account Types:").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return model.AccountType{}, fmt.Errorf("input cancelled: %w", err)
	}

	return types[selected], nil
}

// PromptAction asks which of the variant's actions to run. A nil action
// means the user chose to leave.
func PromptAction(actions []views.Action) (*views.Action, error) {
	const leave = -1

	options := make([]huh.Option[int], 0, len(actions)+1)
	for i, a := range actions {
		options = append(options, huh.NewOption(a.Label, i))
	}
	options = append(options, huh.NewOption("Back", leave))

	selected := leave
	err := huh.NewSelect[int]().
		Title("What would you like to do?").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, err
	}

	if selected == leave {
		return nil, nil
	}
	return &actions[selected], nil
}

// PromptActionInput collects what action needs. Targets are picked from
// the user's other accounts.
func PromptActionInput(action views.Action, targets []model.Account) (views.ActionInput, error) {
	var in views.ActionInput

	if action.NeedsTarget {
		target, err := PromptAccount("Transfer to:", targets)
		if err != nil {
			return in, err
		}
		in.Target = target.ID
	}

	if action.NeedsAmount {
		amount, err := PromptAmount(action.Label+" amount:", "Up to two decimal places")
		if err != nil {
			return in, err
		}
		in.Amount = amount
	}

	return in, nil
}
