package model

// Account is the client's copy of a remote account. Kind specific fields are
// carried through untouched.
type Account struct {
	ID            int64        `json:"Id"`
	UserID        int64        `json:"UserId"`
	AccountTypeID int64        `json:"AccountTypeId"`
	AccountType   *AccountType `json:"AccountType,omitempty"`
	Balance       float64      `json:"Balance"`
	InterestRate  float64      `json:"InterestRate,omitempty"`
	MaturityDate  string       `json:"MaturityDate,omitempty"`
	DateCreated   string       `json:"DateCreated,omitempty"`
}

type AccountType struct {
	ID   int64  `json:"Id"`
	Name string `json:"Name"`
}

// Transaction is an immutable history record of one account.
type Transaction struct {
	ID          int64   `json:"Id"`
	AccountID   int64   `json:"AccountId"`
	Amount      float64 `json:"Amount"`
	Timestamp   string  `json:"Timestamp"`
	Description string  `json:"Description,omitempty"`
}
