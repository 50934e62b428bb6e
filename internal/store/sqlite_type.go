package store

import (
	"database/sql"
	"errors"
	"fmt"
)

func (s *Store) GetAccountTypes() ([]*AccountType, error) {
	rows, err := s.db.Query("SELECT id, name FROM account_types ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var types []*AccountType
	for rows.Next() {
		t := &AccountType{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *Store) GetAccountTypeByID(id int64) (*AccountType, error) {
	return s.getAccountType("id = ?", id)
}

// GetAccountTypeByName matches case-insensitively.
func (s *Store) GetAccountTypeByName(name string) (*AccountType, error) {
	return s.getAccountType("name = ?", name)
}

func (s *Store) getAccountType(where string, arg any) (*AccountType, error) {
	t := &AccountType{}
	err := s.db.QueryRow("SELECT id, name FROM account_types WHERE "+where, arg).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account type '%v': %w", arg, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account type '%v': %w", arg, err)
	}
	return t, nil
}
