package views

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoActiveVariant = errors.New("no account is selected")
	ErrUnknownType     = errors.New("unknown account type")
)

// AccountView picks the variant that matches an account's kind and keeps it
// active until the next selection. It is owned by a single caller.
type AccountView struct {
	api    BankAPI
	types  map[int64]model.AccountType
	active AccountVariant
	detail *model.Account
}

// NewAccountView returns a router over api. types seeds the lookup table
// used for accounts that arrive without an embedded type.
func NewAccountView(api BankAPI, types ...model.AccountType) *AccountView {
	v := &AccountView{api: api}
	v.SetTypes(types)
	return v
}

func (v *AccountView) SetTypes(types []model.AccountType) {
	v.types = make(map[int64]model.AccountType, len(types))
	for _, t := range types {
		v.types[t.ID] = t
	}
}

// LoadTypes replaces the lookup table with the API's account types.
func (v *AccountView) LoadTypes(ctx context.Context) error {
	r, err := v.api.GetAccountTypes(ctx).Await(ctx)
	if err != nil {
		return fmt.Errorf("failed to load account types: %w", err)
	}
	if !r.OK {
		return fmt.Errorf("failed to load account types: status %d", r.Status)
	}
	v.SetTypes(r.Body)
	return nil
}

// Load fetches the user's accounts and the account types at the same time.
// The returned source is the settled account future so it can be handed to
// variants without issuing another request.
func (v *AccountView) Load(ctx context.Context, userID int64) (AccountsSource, []model.Account, error) {
	accounts := v.api.GetAccountsByUser(ctx, userID)

	var list reply.Reply[[]model.Account]
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = accounts.Await(gctx)
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		if !list.OK {
			return fmt.Errorf("failed to load accounts: status %d", list.Status)
		}
		return nil
	})
	g.Go(func() error {
		return v.LoadTypes(gctx)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return accounts, list.Body, nil
}

// Select activates the variant for account's kind, bound to account and
// accounts exactly as given.
func (v *AccountView) Select(ctx context.Context, account model.Account, accounts AccountsSource) (AccountVariant, error) {
	t, err := v.resolveType(ctx, account)
	if err != nil {
		return nil, err
	}
	kind, err := model.KindOf(t)
	if err != nil {
		return nil, err
	}

	var variant AccountVariant
	switch kind {
	case model.KindChecking:
		variant = NewCheckingView(v.api)
	case model.KindLoan:
		variant = NewLoanView(v.api)
	case model.KindTermCD:
		variant = NewTermCDView(v.api)
	default:
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownKind, kind)
	}

	variant.Bind(account, accounts)
	v.active = variant
	return variant, nil
}

func (v *AccountView) resolveType(ctx context.Context, account model.Account) (model.AccountType, error) {
	if account.AccountType != nil && account.AccountType.Name != "" {
		return *account.AccountType, nil
	}
	if t, ok := v.types[account.AccountTypeID]; ok {
		return t, nil
	}
	if len(v.types) == 0 {
		if err := v.LoadTypes(ctx); err != nil {
			return model.AccountType{}, err
		}
		if t, ok := v.types[account.AccountTypeID]; ok {
			return t, nil
		}
	}
	return model.AccountType{}, fmt.Errorf("%w: id %d", ErrUnknownType, account.AccountTypeID)
}

func (v *AccountView) Active() AccountVariant {
	return v.active
}

// ShowDetails records the account whose details are on screen. No
// validation is done.
func (v *AccountView) ShowDetails(account model.Account) {
	v.detail = &account
}

func (v *AccountView) Detail() (model.Account, bool) {
	if v.detail == nil {
		return model.Account{}, false
	}
	return *v.detail, true
}

func (v *AccountView) Render(ctx context.Context, w io.Writer) error {
	if v.active == nil {
		return ErrNoActiveVariant
	}
	return v.active.Render(ctx, w)
}
