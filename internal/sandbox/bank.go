// Package sandbox is a local stand-in for the remote banking API. It serves
// the same routes the gateway calls, backed by the sqlite store.
package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/utils"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWrongKind         = errors.New("operation not supported for this account kind")
	ErrAccountOpen       = errors.New("loan still has an outstanding balance")
	ErrNotMatured        = errors.New("certificate has not matured")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrInvalidDate       = errors.New("invalid date")
)

// Bank applies the business rules of the remote service on top of a
// repository. Amounts are in cents.
type Bank struct {
	repo store.Repository
	now  func() time.Time
}

func NewBank(repo store.Repository) *Bank {
	return &Bank{repo: repo, now: time.Now}
}

// Open creates an account of the given kind. A zero AccountTypeID picks the
// first type of that kind.
func (b *Bank) Open(kind model.Kind, in model.Account) (*store.Account, error) {
	balance := int64(0)
	if in.Balance < 0 {
		return nil, ErrInvalidAmount
	}
	if in.Balance > 0 {
		balance = utils.ToCents(in.Balance)
	}
	if kind == model.KindTermCD && balance == 0 {
		return nil, fmt.Errorf("a certificate needs an opening balance: %w", ErrInvalidAmount)
	}
	if in.MaturityDate != "" {
		if _, err := time.Parse(constants.DateFormat, in.MaturityDate); err != nil {
			return nil, fmt.Errorf("maturity date %q: %w", in.MaturityDate, ErrInvalidDate)
		}
	}

	var created *store.Account
	err := b.repo.ExecTx(func(r store.Repository) error {
		typeID, err := resolveType(r, kind, in.AccountTypeID)
		if err != nil {
			return err
		}

		now := b.now()
		acc := store.Account{
			UserID:       in.UserID,
			TypeID:       typeID,
			Balance:      balance,
			InterestRate: in.InterestRate,
			MaturityDate: in.MaturityDate,
			CreatedAt:    now.Unix(),
		}
		acc.ID, err = r.CreateAccount(acc)
		if err != nil {
			return err
		}
		if balance != 0 {
			if err := b.record(r, acc.ID, balance, "Opening balance"); err != nil {
				return err
			}
		}
		created = &acc
		return nil
	})
	return created, err
}

func (b *Bank) Deposit(id, cents int64) (*store.Account, error) {
	return b.single(id, model.KindChecking, cents, "Deposit")
}

func (b *Bank) Withdraw(id, cents int64) (*store.Account, error) {
	return b.single(id, model.KindChecking, -cents, "Withdrawal")
}

// PayLoan lowers the outstanding balance of a loan.
func (b *Bank) PayLoan(id, cents int64) (*store.Account, error) {
	return b.single(id, model.KindLoan, -cents, "Loan payment")
}

func (b *Bank) WithdrawCD(id, cents int64) (*store.Account, error) {
	return b.single(id, model.KindTermCD, -cents, "Certificate withdrawal")
}

func (b *Bank) Transfer(from, to, cents int64) (*store.Account, error) {
	return b.transfer(from, to, model.KindChecking, cents)
}

func (b *Bank) TransferCD(from, to, cents int64) (*store.Account, error) {
	return b.transfer(from, to, model.KindTermCD, cents)
}

// CloseLoan removes a fully paid loan.
func (b *Bank) CloseLoan(id int64) error {
	return b.repo.ExecTx(func(r store.Repository) error {
		acc, err := load(r, id, model.KindLoan)
		if err != nil {
			return err
		}
		if acc.Balance > 0 {
			return ErrAccountOpen
		}
		return r.DeleteAccount(id)
	})
}

func (b *Bank) Delete(id int64) error {
	return b.repo.ExecTx(func(r store.Repository) error {
		if _, err := load(r, id, model.KindChecking); err != nil {
			return err
		}
		return r.DeleteAccount(id)
	})
}

func (b *Bank) single(id int64, kind model.Kind, delta int64, memo string) (*store.Account, error) {
	if delta == 0 {
		return nil, ErrInvalidAmount
	}

	var acc *store.Account
	err := b.repo.ExecTx(func(r store.Repository) error {
		var err error
		acc, err = load(r, id, kind)
		if err != nil {
			return err
		}
		if kind == model.KindTermCD {
			if err := b.matured(acc); err != nil {
				return err
			}
		}
		return b.apply(r, acc, delta, memo)
	})
	return acc, err
}

func (b *Bank) transfer(from, to int64, kind model.Kind, cents int64) (*store.Account, error) {
	if cents <= 0 {
		return nil, ErrInvalidAmount
	}
	if from == to {
		return nil, ErrSameAccount
	}

	var src *store.Account
	err := b.repo.ExecTx(func(r store.Repository) error {
		var err error
		src, err = load(r, from, kind)
		if err != nil {
			return err
		}
		if kind == model.KindTermCD {
			if err := b.matured(src); err != nil {
				return err
			}
		}

		dst, err := r.GetAccountByID(to)
		if err != nil {
			return err
		}
		dstKind, err := kindOf(r, dst)
		if err != nil {
			return err
		}
		if dstKind == model.KindLoan {
			return fmt.Errorf("transfer into a loan: %w", ErrWrongKind)
		}

		if err := b.apply(r, src, -cents, fmt.Sprintf("Transfer to %d", to)); err != nil {
			return err
		}
		return b.apply(r, dst, cents, fmt.Sprintf("Transfer from %d", from))
	})
	return src, err
}

// apply moves acc's balance by delta and records it. Balances never go
// negative and never wrap.
func (b *Bank) apply(r store.Repository, acc *store.Account, delta int64, memo string) error {
	next := acc.Balance + delta
	if delta > 0 && next < acc.Balance {
		return fmt.Errorf("balance would overflow: %w", ErrInvalidAmount)
	}
	if next < 0 {
		return fmt.Errorf("%w (available %s)", ErrInsufficientFunds, utils.FormatFromCents(acc.Balance))
	}
	if err := r.UpdateBalance(acc.ID, next); err != nil {
		return err
	}
	acc.Balance = next
	return b.record(r, acc.ID, delta, memo)
}

func (b *Bank) record(r store.Repository, accountID, amount int64, memo string) error {
	_, err := r.CreateTransaction(store.Transaction{
		AccountID:   accountID,
		Amount:      amount,
		Timestamp:   b.now().Unix(),
		Description: memo,
	})
	return err
}

func (b *Bank) matured(acc *store.Account) error {
	if acc.MaturityDate == "" {
		return nil
	}
	due, err := time.Parse(constants.DateFormat, acc.MaturityDate)
	if err != nil {
		return fmt.Errorf("account %d has a corrupt maturity date: %w", acc.ID, err)
	}
	if b.now().Before(due) {
		return fmt.Errorf("%w (matures %s)", ErrNotMatured, acc.MaturityDate)
	}
	return nil
}

func load(r store.Repository, id int64, want model.Kind) (*store.Account, error) {
	acc, err := r.GetAccountByID(id)
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(r, acc)
	if err != nil {
		return nil, err
	}
	if kind != want {
		return nil, fmt.Errorf("account %d is a %s account, not %s: %w", id, kind, want, ErrWrongKind)
	}
	return acc, nil
}

func kindOf(r store.Repository, acc *store.Account) (model.Kind, error) {
	t, err := r.GetAccountTypeByID(acc.TypeID)
	if err != nil {
		return 0, err
	}
	return model.KindOf(model.AccountType{ID: t.ID, Name: t.Name})
}

func resolveType(r store.Repository, kind model.Kind, typeID int64) (int64, error) {
	if typeID != 0 {
		t, err := r.GetAccountTypeByID(typeID)
		if err != nil {
			return 0, err
		}
		got, err := model.KindOf(model.AccountType{ID: t.ID, Name: t.Name})
		if err != nil || got != kind {
			return 0, fmt.Errorf("type %q can not be opened here: %w", t.Name, ErrWrongKind)
		}
		return t.ID, nil
	}

	types, err := r.GetAccountTypes()
	if err != nil {
		return 0, err
	}
	for _, t := range types {
		if got, err := model.KindOf(model.AccountType{ID: t.ID, Name: t.Name}); err == nil && got == kind {
			return t.ID, nil
		}
	}
	return 0, fmt.Errorf("no %s account type: %w", kind, store.ErrRecordNotFound)
}
