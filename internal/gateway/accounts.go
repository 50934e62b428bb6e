package gateway

import (
	"context"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
)

const (
	accountsPath     = "/api/Accounts/"
	accountTypesPath = "/api/AccountTypesApi"
)

func (g *Gateway) GetAccountsByUser(ctx context.Context, userID int64) *reply.Future[reply.Reply[[]model.Account]] {
	return doGet[[]model.Account](ctx, g, accountsPath+id(userID))
}

func (g *Gateway) GetAccountsByUserAndType(ctx context.Context, userID, typeID int64) *reply.Future[reply.Reply[[]model.Account]] {
	return doGet[[]model.Account](ctx, g, accountsPath+id(userID)+"/"+id(typeID))
}

func (g *Gateway) GetAccountDetails(ctx context.Context, accountID int64) *reply.Future[reply.Reply[model.Account]] {
	return doGet[model.Account](ctx, g, accountsPath+"details/"+id(accountID))
}

func (g *Gateway) GetTransactionsByAccount(ctx context.Context, accountID int64) *reply.Future[reply.Reply[[]model.Transaction]] {
	return doGet[[]model.Transaction](ctx, g, accountsPath+"transactions/"+id(accountID))
}

// GetTransactionsByAccountWithDateRange expects start and end as ISO dates
// (2006-01-02); they are not validated.
func (g *Gateway) GetTransactionsByAccountWithDateRange(ctx context.Context, accountID int64, start, end string) *reply.Future[reply.Reply[[]model.Transaction]] {
	return doGet[[]model.Transaction](ctx, g, accountsPath+"transactions/"+id(accountID)+"/"+start+"/"+end)
}

func (g *Gateway) GetTransactionsByAccountWithLimit(ctx context.Context, accountID int64, limit int) *reply.Future[reply.Reply[[]model.Transaction]] {
	return doGet[[]model.Transaction](ctx, g, accountsPath+"transactions/"+id(accountID)+"/"+id(int64(limit)))
}

// GetTransactionsByAccountWithDateRangeAndLimit puts the limit before the
// date range.
func (g *Gateway) GetTransactionsByAccountWithDateRangeAndLimit(ctx context.Context, accountID int64, start, end string, limit int) *reply.Future[reply.Reply[[]model.Transaction]] {
	return doGet[[]model.Transaction](ctx, g, accountsPath+"transactions/"+id(accountID)+"/"+id(int64(limit))+"/"+start+"/"+end)
}

func (g *Gateway) GetAccountTypes(ctx context.Context) *reply.Future[reply.Reply[[]model.AccountType]] {
	return doGet[[]model.AccountType](ctx, g, accountTypesPath)
}

func (g *Gateway) GetAccountTypeByID(ctx context.Context, typeID int64) *reply.Future[reply.Reply[model.AccountType]] {
	return doGet[model.AccountType](ctx, g, accountTypesPath+"/"+id(typeID))
}

// GetAccountTypeByName does not escape name.
func (g *Gateway) GetAccountTypeByName(ctx context.Context, name string) *reply.Future[reply.Reply[model.AccountType]] {
	return doGet[model.AccountType](ctx, g, accountTypesPath+"/byName/"+name)
}
