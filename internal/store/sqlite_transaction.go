package store

import (
	"fmt"
	"strings"
)

func (s *Store) CreateTransaction(tx Transaction) (int64, error) {
	var newID int64
	err := s.db.QueryRow(`
        INSERT INTO transactions (account_id, amount, timestamp, description)
        VALUES (?, ?, ?, ?)
        RETURNING id;
    `, tx.AccountID, tx.Amount, tx.Timestamp, tx.Description).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction for account %d: %w", tx.AccountID, err)
	}
	return newID, nil
}

// GetTransactionsByAccount returns the newest transactions first.
func (s *Store) GetTransactionsByAccount(accountID int64, filter TransactionFilter) ([]*Transaction, error) {
	var sb strings.Builder
	args := []any{accountID}

	sb.WriteString(`
        SELECT id, account_id, amount, timestamp, description
        FROM transactions
        WHERE account_id = ?`)

	if filter.Start > 0 {
		sb.WriteString(" AND timestamp >= ?")
		args = append(args, filter.Start)
	}
	if filter.End > 0 {
		sb.WriteString(" AND timestamp < ?")
		args = append(args, filter.End)
	}

	sb.WriteString(" ORDER BY timestamp DESC, id DESC")

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var txs []*Transaction
	for rows.Next() {
		tx := &Transaction{}
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Amount, &tx.Timestamp, &tx.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txs, nil
}
