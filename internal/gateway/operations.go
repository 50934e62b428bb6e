package gateway

import (
	"context"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
)

const (
	loanPath          = "/api/LoanAccount/"
	termCDPath        = "/api/TermCD/"
	transferablesPath = "/api/Transferables"
)

// LoanAccount

func (g *Gateway) OpenLoan(ctx context.Context, account model.Account) *reply.Future[reply.Reply[Opaque]] {
	return doPost(ctx, g, loanPath+"open/", account)
}

func (g *Gateway) ProcessLoanPayment(ctx context.Context, accID int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, loanPath+"payLoan/"+id(accID)+"/"+amount(amt))
}

func (g *Gateway) CloseLoan(ctx context.Context, accID int64) *reply.Future[bool] {
	return doDelete(ctx, g, loanPath+"close/"+id(accID))
}

// TermCD

func (g *Gateway) WithdrawCD(ctx context.Context, accID int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, termCDPath+"withdraw/"+id(accID)+"/"+amount(amt))
}

func (g *Gateway) TransferCD(ctx context.Context, fromAcc, toAcc int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, termCDPath+"transfer/"+id(fromAcc)+"/"+id(toAcc)+"/"+amount(amt))
}

func (g *Gateway) OpenCD(ctx context.Context, account model.Account) *reply.Future[reply.Reply[Opaque]] {
	return doPost(ctx, g, termCDPath+"open", account)
}

// Transferables

func (g *Gateway) OpenAccount(ctx context.Context, account model.Account) *reply.Future[reply.Reply[Opaque]] {
	return doPost(ctx, g, transferablesPath, account)
}

func (g *Gateway) Deposit(ctx context.Context, accID int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, transferablesPath+"/deposit/"+id(accID)+"/"+amount(amt))
}

func (g *Gateway) Withdraw(ctx context.Context, accID int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, transferablesPath+"/withdraw/"+id(accID)+"/"+amount(amt))
}

func (g *Gateway) Transfer(ctx context.Context, fromAcc, toAcc int64, amt float64) *reply.Future[reply.Reply[Opaque]] {
	return doPut(ctx, g, transferablesPath+"/transfer/"+id(fromAcc)+"/"+id(toAcc)+"/"+amount(amt))
}

func (g *Gateway) Delete(ctx context.Context, accID int64) *reply.Future[bool] {
	return doDelete(ctx, g, transferablesPath+"/delete/"+id(accID))
}
