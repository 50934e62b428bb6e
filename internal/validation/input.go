package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hance08/teller/internal/constants"
)

// ParseID parses a positive account, user or type id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// ParseAmount parses a positive amount with at most two decimals.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount can't be empty")
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount: %s", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	if amount > constants.MaxSafeAmount {
		return 0, fmt.Errorf("amount too large")
	}
	// cent precision, whatever notation was used
	cents, _ := strconv.ParseFloat(strconv.FormatFloat(amount, 'f', 2, 64), 64)
	if cents != amount {
		return 0, fmt.Errorf("amount can have at most 2 decimal places")
	}

	return amount, nil
}

// ValidateAmount is ParseAmount shaped for prompt validators.
func ValidateAmount(s string) error {
	_, err := ParseAmount(s)
	return err
}

// ValidateDate checks an ISO date (YYYY-MM-DD).
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateDateRange requires both ends or neither, with start not after end.
func ValidateDateRange(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if start == "" || end == "" {
		return fmt.Errorf("both --from and --to are required for a date range")
	}
	if err := ValidateDate(start); err != nil {
		return err
	}
	if err := ValidateDate(end); err != nil {
		return err
	}
	if start > end {
		return fmt.Errorf("start date %s is after end date %s", start, end)
	}
	return nil
}
