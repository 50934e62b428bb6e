package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/reply"
	"github.com/pterm/pterm"
)

type recorded struct {
	method      string
	uri         string
	body        string
	contentType string
}

// recorder is a fake remote API that answers every request with status and
// body and remembers what it received.
type recorder struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	body     string
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, recorded{
		method:      r.Method,
		uri:         r.RequestURI,
		body:        string(b),
		contentType: r.Header.Get("Content-Type"),
	})
	status, body := rec.status, rec.body
	rec.mu.Unlock()

	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (rec *recorder) last(t *testing.T) recorded {
	t.Helper()
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.requests) == 0 {
		t.Fatal("no request reached the server")
	}
	return rec.requests[len(rec.requests)-1]
}

func mockGateway(t *testing.T, status int, body string) (*Gateway, *recorder) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	logger := pterm.DefaultLogger.WithWriter(io.Discard)
	return New(Config{BaseURL: srv.URL}, NewHTTPTransport(srv.Client()), logger), rec
}

func await[T any](t *testing.T, f *reply.Future[T]) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := f.Await(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func TestRequestShapes(t *testing.T) {
	ctx := context.Background()
	g, rec := mockGateway(t, http.StatusOK, "")

	tt := []struct {
		name   string
		call   func()
		method string
		uri    string
	}{
		{"accounts by user", func() { await(t, g.GetAccountsByUser(ctx, 12)) }, http.MethodGet, "/api/Accounts/12"},
		{"accounts by user and type", func() { await(t, g.GetAccountsByUserAndType(ctx, 12, 3)) }, http.MethodGet, "/api/Accounts/12/3"},
		{"account details", func() { await(t, g.GetAccountDetails(ctx, 44)) }, http.MethodGet, "/api/Accounts/details/44"},
		{"transactions", func() { await(t, g.GetTransactionsByAccount(ctx, 7)) }, http.MethodGet, "/api/Accounts/transactions/7"},
		{"transactions range", func() {
			await(t, g.GetTransactionsByAccountWithDateRange(ctx, 7, "2023-01-01", "2023-02-01"))
		}, http.MethodGet, "/api/Accounts/transactions/7/2023-01-01/2023-02-01"},
		{"transactions limit", func() { await(t, g.GetTransactionsByAccountWithLimit(ctx, 7, 5)) }, http.MethodGet, "/api/Accounts/transactions/7/5"},
		{"transactions range and limit", func() {
			await(t, g.GetTransactionsByAccountWithDateRangeAndLimit(ctx, 7, "2023-01-01", "2023-02-01", 5))
		}, http.MethodGet, "/api/Accounts/transactions/7/5/2023-01-01/2023-02-01"},
		{"account types", func() { await(t, g.GetAccountTypes(ctx)) }, http.MethodGet, "/api/AccountTypesApi"},
		{"account type by id", func() { await(t, g.GetAccountTypeByID(ctx, 2)) }, http.MethodGet, "/api/AccountTypesApi/2"},
		{"account type by name", func() { await(t, g.GetAccountTypeByName(ctx, "Loan")) }, http.MethodGet, "/api/AccountTypesApi/byName/Loan"},
		{"pay loan", func() { await(t, g.ProcessLoanPayment(ctx, 9, 250.5)) }, http.MethodPut, "/api/LoanAccount/payLoan/9/250.5"},
		{"close loan", func() { await(t, g.CloseLoan(ctx, 9)) }, http.MethodDelete, "/api/LoanAccount/close/9"},
		{"withdraw cd", func() { await(t, g.WithdrawCD(ctx, 5, 10)) }, http.MethodPut, "/api/TermCD/withdraw/5/10"},
		{"transfer cd", func() { await(t, g.TransferCD(ctx, 5, 6, 0.01)) }, http.MethodPut, "/api/TermCD/transfer/5/6/0.01"},
		{"deposit", func() { await(t, g.Deposit(ctx, 3, 100)) }, http.MethodPut, "/api/Transferables/deposit/3/100"},
		{"withdraw", func() { await(t, g.Withdraw(ctx, 3, 20)) }, http.MethodPut, "/api/Transferables/withdraw/3/20"},
		{"transfer", func() { await(t, g.Transfer(ctx, 3, 4, 12.25)) }, http.MethodPut, "/api/Transferables/transfer/3/4/12.25"},
		{"delete", func() { await(t, g.Delete(ctx, 3)) }, http.MethodDelete, "/api/Transferables/delete/3"},
	}

	for _, tc := range tt {
		tc.call()
		got := rec.last(t)
		if got.method != tc.method || got.uri != tc.uri {
			t.Fatalf("[%s] want: %s %s, got: %s %s", tc.name, tc.method, tc.uri, got.method, got.uri)
		}
		if got.body != "" {
			t.Fatalf("[%s] want empty body, got %q", tc.name, got.body)
		}
	}
}

func TestOpenPostsAccount(t *testing.T) {
	ctx := context.Background()
	g, rec := mockGateway(t, http.StatusCreated, `{"Id":31}`)
	acc := model.Account{UserID: 12, AccountTypeID: 2, Balance: 5000}

	tt := []struct {
		name string
		call func() *reply.Future[reply.Reply[Opaque]]
		uri  string
	}{
		{"open loan", func() *reply.Future[reply.Reply[Opaque]] { return g.OpenLoan(ctx, acc) }, "/api/LoanAccount/open/"},
		{"open cd", func() *reply.Future[reply.Reply[Opaque]] { return g.OpenCD(ctx, acc) }, "/api/TermCD/open"},
		{"open account", func() *reply.Future[reply.Reply[Opaque]] { return g.OpenAccount(ctx, acc) }, "/api/Transferables"},
	}

	for _, tc := range tt {
		r := await(t, tc.call())
		if !r.OK || string(r.Body) != `{"Id":31}` {
			t.Fatalf("[%s] want ok with created body, got %+v", tc.name, r)
		}

		got := rec.last(t)
		if got.method != http.MethodPost || got.uri != tc.uri {
			t.Fatalf("[%s] want: POST %s, got: %s %s", tc.name, tc.uri, got.method, got.uri)
		}
		if got.contentType != "application/json" {
			t.Fatalf("[%s] want json content type, got %q", tc.name, got.contentType)
		}
		if got.body != `{"Id":0,"UserId":12,"AccountTypeId":2,"Balance":5000}` {
			t.Fatalf("[%s] unexpected payload %s", tc.name, got.body)
		}
	}
}

func TestDepositResolvesToBody(t *testing.T) {
	g, rec := mockGateway(t, http.StatusOK, `{"Id":3,"Balance":150}`)

	r := await(t, g.Deposit(context.Background(), 3, 100))
	if !r.OK || r.Status != http.StatusOK {
		t.Fatalf("want ok 200, got %v %d", r.OK, r.Status)
	}
	if string(r.Body) != `{"Id":3,"Balance":150}` {
		t.Fatalf("unexpected body %s", r.Body)
	}

	got := rec.last(t)
	if got.method != http.MethodPut || got.uri != "/api/Transferables/deposit/3/100" || got.body != "" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestCloseLoanFlag(t *testing.T) {
	tt := []struct {
		status int
		want   bool
	}{
		{http.StatusOK, true},
		{http.StatusNoContent, true},
		{http.StatusConflict, false},
		{http.StatusNotFound, false},
	}

	for _, tc := range tt {
		g, rec := mockGateway(t, tc.status, "")
		if got := await(t, g.CloseLoan(context.Background(), 9)); got != tc.want {
			t.Fatalf("[%d] want: %v, got: %v", tc.status, tc.want, got)
		}
		if got := rec.last(t); got.method != http.MethodDelete || got.uri != "/api/LoanAccount/close/9" {
			t.Fatalf("[%d] unexpected request %+v", tc.status, got)
		}
	}
}

func TestFailureStatusResolves(t *testing.T) {
	g, _ := mockGateway(t, http.StatusConflict, "insufficient funds")

	r := await(t, g.Withdraw(context.Background(), 3, 1e6))
	if r.OK || r.Status != http.StatusConflict {
		t.Fatalf("want failed 409 reply, got %+v", r)
	}
	if string(r.Raw) != "insufficient funds" {
		t.Fatalf("raw body lost: %q", r.Raw)
	}
}

func TestDecodedBodies(t *testing.T) {
	g, _ := mockGateway(t, http.StatusOK, `[{"Id":1,"Name":"Checking"},{"Id":2,"Name":"Loan"}]`)

	r := await(t, g.GetAccountTypes(context.Background()))
	if len(r.Body) != 2 || r.Body[1].Name != "Loan" {
		t.Fatalf("unexpected types %+v", r.Body)
	}
}

func TestNoCaching(t *testing.T) {
	g, rec := mockGateway(t, http.StatusOK, `[]`)
	ctx := context.Background()

	first := g.GetAccountTypes(ctx)
	second := g.GetAccountTypes(ctx)
	if first == second {
		t.Fatal("calls share a future")
	}
	await(t, first)
	await(t, second)

	rec.mu.Lock()
	n := len(rec.requests)
	rec.mu.Unlock()
	if n != 2 {
		t.Fatalf("want 2 requests, got %d", n)
	}
}

func TestTransportFaultRejects(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	g := New(Config{BaseURL: base}, nil, pterm.DefaultLogger.WithWriter(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := g.GetAccountsByUser(ctx, 1).Await(ctx)
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want transport error, got %v", err)
	}

	_, err = g.CloseLoan(ctx, 1).Await(ctx)
	if err == nil || errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want transport error, got %v", err)
	}
}

func TestMalformedBaseURLRejects(t *testing.T) {
	g := New(Config{BaseURL: "http://[::1"}, nil, pterm.DefaultLogger.WithWriter(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := g.Deposit(ctx, 1, 1).Await(ctx); err == nil {
		t.Fatal("want error for malformed url")
	}
}
