package sandbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/utils"
)

var errBadParam = errors.New("bad path parameter")

func pathID(r *http.Request, name string) (int64, error) {
	v := mux.Vars(r)[name]
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s %q: %w", name, v, errBadParam)
	}
	return id, nil
}

func pathCents(r *http.Request) (int64, error) {
	v := mux.Vars(r)["amount"]
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil || amount > constants.MaxSafeAmount {
		return 0, fmt.Errorf("amount %q: %w", v, errBadParam)
	}
	cents := utils.ToCents(amount)
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// typeNames maps type ids to names for embedding in account payloads.
func (s *Server) typeNames() (map[int64]string, error) {
	types, err := s.repo.GetAccountTypes()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}
	return names, nil
}

func toAccount(acc *store.Account, names map[int64]string) model.Account {
	out := model.Account{
		ID:            acc.ID,
		UserID:        acc.UserID,
		AccountTypeID: acc.TypeID,
		Balance:       utils.FromCents(acc.Balance),
		InterestRate:  acc.InterestRate,
		MaturityDate:  acc.MaturityDate,
		DateCreated:   time.Unix(acc.CreatedAt, 0).UTC().Format(constants.DateFormat),
	}
	if name, ok := names[acc.TypeID]; ok {
		out.AccountType = &model.AccountType{ID: acc.TypeID, Name: name}
	}
	return out
}

func (s *Server) writeAccount(w http.ResponseWriter, code int, acc *store.Account) {
	names, err := s.typeNames()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, code, toAccount(acc, names))
}

func (s *Server) accountsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeErr(w, err)
		return
	}

	var accounts []*store.Account
	if _, filtered := mux.Vars(r)["typeId"]; filtered {
		var typeID int64
		typeID, err = pathID(r, "typeId")
		if err != nil {
			writeErr(w, err)
			return
		}
		accounts, err = s.repo.GetAccountsByUserAndType(userID, typeID)
	} else {
		accounts, err = s.repo.GetAccountsByUser(userID)
	}
	if err != nil {
		writeErr(w, err)
		return
	}

	names, err := s.typeNames()
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]model.Account, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, toAccount(acc, names))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) accountDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		writeErr(w, err)
		return
	}
	acc, err := s.repo.GetAccountByID(id)
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeAccount(w, http.StatusOK, acc)
}

// transactions serves every history variant. The date range covers whole
// days: end is inclusive.
func (s *Server) transactions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "accountId")
	if err != nil {
		writeErr(w, err)
		return
	}

	vars := mux.Vars(r)
	var filter store.TransactionFilter

	if v, ok := vars["limit"]; ok {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			writeErr(w, fmt.Errorf("limit %q: %w", v, errBadParam))
			return
		}
		filter.Limit = limit
	}
	if _, ok := vars["start"]; ok {
		start, err := time.Parse(constants.DateFormat, vars["start"])
		if err != nil {
			writeErr(w, fmt.Errorf("start %q: %w", vars["start"], ErrInvalidDate))
			return
		}
		end, err := time.Parse(constants.DateFormat, vars["end"])
		if err != nil {
			writeErr(w, fmt.Errorf("end %q: %w", vars["end"], ErrInvalidDate))
			return
		}
		filter.Start = start.Unix()
		filter.End = end.AddDate(0, 0, 1).Unix()
	}

	if _, err := s.repo.GetAccountByID(id); err != nil {
		writeErr(w, err)
		return
	}
	txs, err := s.repo.GetTransactionsByAccount(id, filter)
	if err != nil {
		writeErr(w, err)
		return
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, model.Transaction{
			ID:          tx.ID,
			AccountID:   tx.AccountID,
			Amount:      utils.FromCents(tx.Amount),
			Timestamp:   time.Unix(tx.Timestamp, 0).UTC().Format(constants.TimestampFormat),
			Description: tx.Description,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) accountTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.repo.GetAccountTypes()
	if err != nil {
		writeErr(w, err)
		return
	}
	out := make([]model.AccountType, 0, len(types))
	for _, t := range types {
		out = append(out, model.AccountType{ID: t.ID, Name: t.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) accountTypeByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "typeId")
	if err != nil {
		writeErr(w, err)
		return
	}
	s.writeType(w)(s.repo.GetAccountTypeByID(id))
}

func (s *Server) accountTypeByName(w http.ResponseWriter, r *http.Request) {
	s.writeType(w)(s.repo.GetAccountTypeByName(mux.Vars(r)["name"]))
}

func (s *Server) writeType(w http.ResponseWriter) func(*store.AccountType, error) {
	return func(t *store.AccountType, err error) {
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, model.AccountType{ID: t.ID, Name: t.Name})
	}
}

func (s *Server) open(kind model.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in model.Account
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, "could not decode request body", http.StatusBadRequest)
			return
		}
		if in.UserID <= 0 {
			http.Error(w, "UserId is required", http.StatusBadRequest)
			return
		}

		acc, err := s.bank.Open(kind, in)
		if err != nil {
			writeErr(w, err)
			return
		}
		s.writeAccount(w, http.StatusCreated, acc)
	}
}

func (s *Server) openLoan(w http.ResponseWriter, r *http.Request) {
	s.open(model.KindLoan)(w, r)
}

func (s *Server) openCD(w http.ResponseWriter, r *http.Request) {
	s.open(model.KindTermCD)(w, r)
}

func (s *Server) openAccount(w http.ResponseWriter, r *http.Request) {
	s.open(model.KindChecking)(w, r)
}

// single handles PUT {accId}/{amount} routes.
func (s *Server) single(op func(id, cents int64) (*store.Account, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "accId")
		if err != nil {
			writeErr(w, err)
			return
		}
		cents, err := pathCents(r)
		if err != nil {
			writeErr(w, err)
			return
		}
		acc, err := op(id, cents)
		if err != nil {
			writeErr(w, err)
			return
		}
		s.writeAccount(w, http.StatusOK, acc)
	}
}

// pair handles PUT {fromAcc}/{toAcc}/{amount} routes.
func (s *Server) pair(op func(from, to, cents int64) (*store.Account, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := pathID(r, "fromAcc")
		if err != nil {
			writeErr(w, err)
			return
		}
		to, err := pathID(r, "toAcc")
		if err != nil {
			writeErr(w, err)
			return
		}
		cents, err := pathCents(r)
		if err != nil {
			writeErr(w, err)
			return
		}
		acc, err := op(from, to, cents)
		if err != nil {
			writeErr(w, err)
			return
		}
		s.writeAccount(w, http.StatusOK, acc)
	}
}

func (s *Server) remove(op func(id int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "accId")
		if err != nil {
			writeErr(w, err)
			return
		}
		if err := op(id); err != nil {
			writeErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) payLoan(w http.ResponseWriter, r *http.Request) {
	s.single(s.bank.PayLoan)(w, r)
}

func (s *Server) withdrawCD(w http.ResponseWriter, r *http.Request) {
	s.single(s.bank.WithdrawCD)(w, r)
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	s.single(s.bank.Deposit)(w, r)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	s.single(s.bank.Withdraw)(w, r)
}

func (s *Server) transferCD(w http.ResponseWriter, r *http.Request) {
	s.pair(s.bank.TransferCD)(w, r)
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	s.pair(s.bank.Transfer)(w, r)
}

func (s *Server) closeLoan(w http.ResponseWriter, r *http.Request) {
	s.remove(s.bank.CloseLoan)(w, r)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	s.remove(s.bank.Delete)(w, r)
}
