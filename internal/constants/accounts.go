package constants

const (
	CentsPerUnit = 100

	// MaxSafeAmount keeps cent conversions inside int64.
	MaxSafeAmount = 9223372036854775.0
)

// Account type names seeded by the sandbox.
const (
	TypeChecking = "Checking"
	TypeLoan     = "Loan"
	TypeTermCD   = "Term CD"
)
