package sandbox

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/hance08/teller/internal/store"
	"github.com/pterm/pterm"
)

type Server struct {
	repo   store.Repository
	bank   *Bank
	router *mux.Router
	logger *pterm.Logger
}

func NewServer(repo store.Repository, logger *pterm.Logger) *Server {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}

	s := &Server{
		repo:   repo,
		bank:   NewBank(repo),
		router: mux.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// routes registers the API. Fixed segments are registered before the
// parameterised routes they would otherwise collide with.
func (s *Server) routes() {
	r := s.router
	r.Use(s.logRequests)

	// AccountsController
	r.HandleFunc("/api/Accounts/details/{accountId}", s.accountDetails).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/transactions/{accountId}", s.transactions).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/transactions/{accountId}/{limit}", s.transactions).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/transactions/{accountId}/{start}/{end}", s.transactions).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/transactions/{accountId}/{limit}/{start}/{end}", s.transactions).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/{userId}", s.accountsByUser).Methods(http.MethodGet)
	r.HandleFunc("/api/Accounts/{userId}/{typeId}", s.accountsByUser).Methods(http.MethodGet)

	// AccountTypesApiController
	r.HandleFunc("/api/AccountTypesApi", s.accountTypes).Methods(http.MethodGet)
	r.HandleFunc("/api/AccountTypesApi/byName/{name}", s.accountTypeByName).Methods(http.MethodGet)
	r.HandleFunc("/api/AccountTypesApi/{typeId}", s.accountTypeByID).Methods(http.MethodGet)

	// LoanAccountController
	r.HandleFunc("/api/LoanAccount/open", s.openLoan).Methods(http.MethodPost)
	r.HandleFunc("/api/LoanAccount/open/", s.openLoan).Methods(http.MethodPost)
	r.HandleFunc("/api/LoanAccount/payLoan/{accId}/{amount}", s.payLoan).Methods(http.MethodPut)
	r.HandleFunc("/api/LoanAccount/close/{accId}", s.closeLoan).Methods(http.MethodDelete)

	// TermCDController
	r.HandleFunc("/api/TermCD/open", s.openCD).Methods(http.MethodPost)
	r.HandleFunc("/api/TermCD/withdraw/{accId}/{amount}", s.withdrawCD).Methods(http.MethodPut)
	r.HandleFunc("/api/TermCD/transfer/{fromAcc}/{toAcc}/{amount}", s.transferCD).Methods(http.MethodPut)

	// TransferablesController
	r.HandleFunc("/api/Transferables", s.openAccount).Methods(http.MethodPost)
	r.HandleFunc("/api/Transferables/deposit/{accId}/{amount}", s.deposit).Methods(http.MethodPut)
	r.HandleFunc("/api/Transferables/withdraw/{accId}/{amount}", s.withdraw).Methods(http.MethodPut)
	r.HandleFunc("/api/Transferables/transfer/{fromAcc}/{toAcc}/{amount}", s.transfer).Methods(http.MethodPut)
	r.HandleFunc("/api/Transferables/delete/{accId}", s.deleteAccount).Methods(http.MethodDelete)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("sandbox listening", s.logger.Args("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("sandbox shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.logger.Debug("sandbox request", s.logger.Args(
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		))
	})
}
