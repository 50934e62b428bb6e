package views

import (
	"context"
	"io"

	"github.com/hance08/teller/internal/model"
	"github.com/pterm/pterm"
)

type LoanView struct {
	accountUnit
	api LoanAPI
}

func NewLoanView(api LoanAPI) *LoanView {
	return &LoanView{api: api}
}

func (v *LoanView) Kind() model.Kind {
	return model.KindLoan
}

func (v *LoanView) Pay(ctx context.Context, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.ProcessLoanPayment(ctx, v.account.ID, amount))
}

// Close succeeds only once the loan is paid off.
func (v *LoanView) Close(ctx context.Context) (Outcome, error) {
	return AwaitFlag(ctx, v.api.CloseLoan(ctx, v.account.ID))
}

func (v *LoanView) Actions() []Action {
	return []Action{
		{
			Label:       "Make payment",
			NeedsAmount: true,
			Run: func(ctx context.Context, in ActionInput) (Outcome, error) {
				return v.Pay(ctx, in.Amount)
			},
		},
		{
			Label:       "Close loan",
			Destructive: true,
			Run: func(ctx context.Context, _ ActionInput) (Outcome, error) {
				return v.Close(ctx)
			},
		},
	}
}

func (v *LoanView) Render(ctx context.Context, w io.Writer) error {
	rows := detailRows(v.account, "Outstanding")
	if v.account.InterestRate != 0 {
		rows = append(rows, []string{"Interest rate", pterm.Sprintf("%.2f%%", v.account.InterestRate)})
	}
	if v.account.Balance <= 0 {
		rows = append(rows, []string{"Status", pterm.Green("Paid off")})
	}
	return renderAccount(ctx, w, "Loan", rows, v.account, v.accounts)
}
