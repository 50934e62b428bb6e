package views

import (
	"context"
	"encoding/json"
	"io"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
)

// AccountsSource is the user's account list as it arrives from the API.
type AccountsSource interface {
	Await(ctx context.Context) (reply.Reply[[]model.Account], error)
}

// AccountVariant is the contract every account-kind view unit implements.
// A unit is driven only through its two inputs: the account it shows and
// the source of the owner's full account list.
type AccountVariant interface {
	Kind() model.Kind
	Bind(account model.Account, accounts AccountsSource)
	Account() model.Account
	Accounts() AccountsSource
	Actions() []Action
	Render(ctx context.Context, w io.Writer) error
}

// Action is one operation a variant offers on its bound account.
type Action struct {
	Label       string
	NeedsAmount bool
	NeedsTarget bool
	Destructive bool
	Run         func(ctx context.Context, in ActionInput) (Outcome, error)
}

type ActionInput struct {
	Amount float64
	Target int64
}

// Outcome is the evaluated result of an action. Raw is the response body,
// empty for delete style calls.
type Outcome struct {
	OK     bool
	Status int
	Raw    []byte
}

// Gateway calls used by the variants.

type TransferablesAPI interface {
	Deposit(ctx context.Context, accID int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
	Withdraw(ctx context.Context, accID int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
	Transfer(ctx context.Context, fromAcc, toAcc int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
	Delete(ctx context.Context, accID int64) *reply.Future[bool]
}

type LoanAPI interface {
	ProcessLoanPayment(ctx context.Context, accID int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
	CloseLoan(ctx context.Context, accID int64) *reply.Future[bool]
}

type TermCDAPI interface {
	WithdrawCD(ctx context.Context, accID int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
	TransferCD(ctx context.Context, fromAcc, toAcc int64, amount float64) *reply.Future[reply.Reply[json.RawMessage]]
}

type DirectoryAPI interface {
	GetAccountsByUser(ctx context.Context, userID int64) *reply.Future[reply.Reply[[]model.Account]]
	GetAccountTypes(ctx context.Context) *reply.Future[reply.Reply[[]model.AccountType]]
}

type BankAPI interface {
	DirectoryAPI
	TransferablesAPI
	LoanAPI
	TermCDAPI
}

// accountUnit holds the two inputs shared by every variant.
type accountUnit struct {
	account  model.Account
	accounts AccountsSource
}

func (u *accountUnit) Bind(account model.Account, accounts AccountsSource) {
	u.account = account
	u.accounts = accounts
}

func (u *accountUnit) Account() model.Account {
	return u.account
}

func (u *accountUnit) Accounts() AccountsSource {
	return u.accounts
}

func AwaitBody(ctx context.Context, f *reply.Future[reply.Reply[json.RawMessage]]) (Outcome, error) {
	r, err := f.Await(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: r.OK, Status: r.Status, Raw: r.Raw}, nil
}

func AwaitFlag(ctx context.Context, f *reply.Future[bool]) (Outcome, error) {
	ok, err := f.Await(ctx)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{OK: ok}, nil
}
