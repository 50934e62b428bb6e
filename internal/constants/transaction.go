package constants

const (
	// DateFormat is the ISO date layout used in transaction range paths.
	DateFormat = "2006-01-02"

	// TimestampFormat is how the sandbox renders transaction timestamps.
	TimestampFormat = "2006-01-02T15:04:05Z07:00"

	DefaultTransactionLimit = 20
)
