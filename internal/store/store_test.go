package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "sandbox.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("could not open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSeededAccountTypes(t *testing.T) {
	s := newTestStore(t)

	types, err := s.GetAccountTypes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("want 3 seeded types, got %d", len(types))
	}

	loan, err := s.GetAccountTypeByName("loan")
	if err != nil || loan.ID != 2 {
		t.Fatalf("want loan type 2, got %+v %v", loan, err)
	}

	if _, err := s.GetAccountTypeByID(99); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestAccountLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateAccount(Account{UserID: 7, TypeID: 1, Balance: 1000, CreatedAt: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.CreateAccount(Account{UserID: 7, TypeID: 3, Balance: 500, CreatedAt: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := s.GetAccountsByUser(7)
	if err != nil || len(all) != 2 {
		t.Fatalf("want 2 accounts, got %d %v", len(all), err)
	}
	cds, err := s.GetAccountsByUserAndType(7, 3)
	if err != nil || len(cds) != 1 {
		t.Fatalf("want 1 cd, got %d %v", len(cds), err)
	}

	if err := s.UpdateBalance(id, 2500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	acc, err := s.GetAccountByID(id)
	if err != nil || acc.Balance != 2500 {
		t.Fatalf("want balance 2500, got %+v %v", acc, err)
	}

	if err := s.DeleteAccount(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.GetAccountByID(id); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if err := s.DeleteAccount(id); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound on second delete, got %v", err)
	}
}

func TestUnknownTypeViolatesConstraint(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateAccount(Account{UserID: 1, TypeID: 42}); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("want ErrConstraintViolation, got %v", err)
	}
}

func TestTransactionFilter(t *testing.T) {
	s := newTestStore(t)
	id, err := s.CreateAccount(Account{UserID: 1, TypeID: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i := int64(1); i <= 5; i++ {
		if _, err := s.CreateTransaction(Transaction{AccountID: id, Amount: i * 100, Timestamp: i * 10}); err != nil {
			t.Fatal(err)
		}
	}

	tt := []struct {
		name   string
		filter TransactionFilter
		want   []int64
	}{
		{"all", TransactionFilter{}, []int64{500, 400, 300, 200, 100}},
		{"limit", TransactionFilter{Limit: 2}, []int64{500, 400}},
		{"range", TransactionFilter{Start: 20, End: 40}, []int64{300, 200}},
		{"range and limit", TransactionFilter{Start: 20, End: 60, Limit: 1}, []int64{500}},
	}

	for _, tc := range tt {
		txs, err := s.GetTransactionsByAccount(id, tc.filter)
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", tc.name, err)
		}
		if len(txs) != len(tc.want) {
			t.Fatalf("[%s] want %d transactions, got %d", tc.name, len(tc.want), len(txs))
		}
		for i, tx := range txs {
			if tx.Amount != tc.want[i] {
				t.Fatalf("[%s] want amount %d at %d, got %d", tc.name, tc.want[i], i, tx.Amount)
			}
		}
	}
}

func TestExecTxRollsBack(t *testing.T) {
	s := newTestStore(t)
	id, err := s.CreateAccount(Account{UserID: 1, TypeID: 1, Balance: 100})
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err = s.ExecTx(func(r Repository) error {
		if err := r.UpdateBalance(id, 0); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	acc, err := s.GetAccountByID(id)
	if err != nil || acc.Balance != 100 {
		t.Fatalf("rollback did not restore balance: %+v %v", acc, err)
	}
}
