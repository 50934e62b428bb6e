package store

type Repository interface {
	// Account Operations
	CreateAccount(acc Account) (int64, error)
	GetAccountByID(id int64) (*Account, error)
	GetAccountsByUser(userID int64) ([]*Account, error)
	GetAccountsByUserAndType(userID, typeID int64) ([]*Account, error)
	UpdateBalance(id int64, balance int64) error
	DeleteAccount(id int64) error

	// Account Type Operations
	GetAccountTypes() ([]*AccountType, error)
	GetAccountTypeByID(id int64) (*AccountType, error)
	GetAccountTypeByName(name string) (*AccountType, error)

	// Transaction Operations
	CreateTransaction(tx Transaction) (int64, error)
	GetTransactionsByAccount(accountID int64, filter TransactionFilter) ([]*Transaction, error)

	ExecTx(fn func(Repository) error) error
	Close() error
}

var _ Repository = (*Store)(nil)
