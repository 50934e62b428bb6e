package views

import (
	"context"
	"io"
	"time"

	"github.com/hance08/teller/internal/model"
	"github.com/pterm/pterm"
)

// TermCDView shows a term certificate of deposit. Withdrawals and transfers
// are accepted by the API only after maturity.
type TermCDView struct {
	accountUnit
	api TermCDAPI
	now func() time.Time
}

func NewTermCDView(api TermCDAPI) *TermCDView {
	return &TermCDView{api: api, now: time.Now}
}

func (v *TermCDView) Kind() model.Kind {
	return model.KindTermCD
}

func (v *TermCDView) Withdraw(ctx context.Context, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.WithdrawCD(ctx, v.account.ID, amount))
}

func (v *TermCDView) Transfer(ctx context.Context, to int64, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.TransferCD(ctx, v.account.ID, to, amount))
}

func (v *TermCDView) Actions() []Action {
	return []Action{
		{
			Label:       "Withdraw",
			NeedsAmount: true,
			Run: func(ctx context.Context, in ActionInput) (Outcome, error) {
				return v.Withdraw(ctx, in.Amount)
			},
		},
		{
			Label:       "Transfer",
			NeedsAmount: true,
			NeedsTarget: true,
			Run: func(ctx context.Context, in ActionInput) (Outcome, error) {
				return v.Transfer(ctx, in.Target, in.Amount)
			},
		},
	}
}

// Matured reports whether the maturity date has passed. Unparseable or
// missing dates count as not matured.
func (v *TermCDView) Matured() bool {
	t, ok := maturity(v.account.MaturityDate)
	return ok && !v.now().Before(t)
}

func maturity(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (v *TermCDView) Render(ctx context.Context, w io.Writer) error {
	rows := detailRows(v.account, "Balance")
	if v.account.InterestRate != 0 {
		rows = append(rows, []string{"Interest rate", pterm.Sprintf("%.2f%%", v.account.InterestRate)})
	}
	if v.account.MaturityDate != "" {
		status := pterm.Yellow("Locked")
		if v.Matured() {
			status = pterm.Green("Matured")
		}
		rows = append(rows,
			[]string{"Maturity", v.account.MaturityDate},
			[]string{"Status", status},
		)
	}
	return renderAccount(ctx, w, "Term CD", rows, v.account, v.accounts)
}
