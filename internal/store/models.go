package store

// Account balances are stored in cents.
type Account struct {
	ID           int64
	UserID       int64
	TypeID       int64
	Balance      int64
	InterestRate float64
	MaturityDate string
	CreatedAt    int64
}

type AccountType struct {
	ID   int64
	Name string
}

type Transaction struct {
	ID          int64
	AccountID   int64
	Amount      int64
	Timestamp   int64
	Description string
}

// TransactionFilter narrows a history query. Zero values mean unbounded.
type TransactionFilter struct {
	Limit int
	Start int64
	End   int64
}
