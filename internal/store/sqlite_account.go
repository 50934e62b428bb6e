package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "github.com/mattn/go-sqlite3"
)

const accountColumns = "id, user_id, type_id, balance, interest_rate, maturity_date, created_at"

func (s *Store) CreateAccount(acc Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (user_id, type_id, balance, interest_rate, maturity_date, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(acc.UserID, acc.TypeID, acc.Balance, acc.InterestRate, acc.MaturityDate, acc.CreatedAt).Scan(&newID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return 0, fmt.Errorf("failed to create account for user %d: %w", acc.UserID, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAccountByID(id int64) (*Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}
	return acc, nil
}

func (s *Store) GetAccountsByUser(userID int64) ([]*Account, error) {
	rows, err := s.db.Query("SELECT "+accountColumns+" FROM accounts WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanAccounts(rows)
}

func (s *Store) GetAccountsByUserAndType(userID, typeID int64) ([]*Account, error) {
	rows, err := s.db.Query("SELECT "+accountColumns+" FROM accounts WHERE user_id = ? AND type_id = ? ORDER BY id", userID, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by type: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanAccounts(rows)
}

func (s *Store) UpdateBalance(id int64, balance int64) error {
	res, err := s.db.Exec("UPDATE accounts SET balance = ? WHERE id = ?", balance, id)
	if err != nil {
		return fmt.Errorf("failed to update balance of account %d: %w", id, err)
	}
	return expectOneRow(res, id)
}

func (s *Store) DeleteAccount(id int64) error {
	res, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}
	return expectOneRow(res, id)
}

func expectOneRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("account with ID %d: %w", id, ErrRecordNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	acc := &Account{}
	err := row.Scan(
		&acc.ID, &acc.UserID, &acc.TypeID,
		&acc.Balance, &acc.InterestRate, &acc.MaturityDate,
		&acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}
