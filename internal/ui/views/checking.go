package views

import (
	"context"
	"io"

	"github.com/hance08/teller/internal/model"
)

// CheckingView shows a checking account and offers the transferable
// operations on it.
type CheckingView struct {
	accountUnit
	api TransferablesAPI
}

func NewCheckingView(api TransferablesAPI) *CheckingView {
	return &CheckingView{api: api}
}

func (v *CheckingView) Kind() model.Kind {
	return model.KindChecking
}

func (v *CheckingView) Deposit(ctx context.Context, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.Deposit(ctx, v.account.ID, amount))
}

func (v *CheckingView) Withdraw(ctx context.Context, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.Withdraw(ctx, v.account.ID, amount))
}

func (v *CheckingView) Transfer(ctx context.Context, to int64, amount float64) (Outcome, error) {
	return AwaitBody(ctx, v.api.Transfer(ctx, v.account.ID, to, amount))
}

func (v *CheckingView) Delete(ctx context.Context) (Outcome, error) {
	return AwaitFlag(ctx, v.api.Delete(ctx, v.account.ID))
}

func (v *CheckingView) Actions() []Action {
	return []Action{
		{
			Label:       "Deposit",
			NeedsAmount: true,
			Run: func(ctx context.Context, in ActionInput) (Outcome, error) {
				return v.Deposit(ctx, in.Amount)
			},
		},
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
		{
			Label:       "Delete account",
			Destructive: true,
			Run: func(ctx context.Context, _ ActionInput) (Outcome, error) {
				return v.Delete(ctx)
			},
		},
	}
}

func (v *CheckingView) Render(ctx context.Context, w io.Writer) error {
	return renderAccount(ctx, w, "Checking", detailRows(v.account, "Balance"), v.account, v.accounts)
}
