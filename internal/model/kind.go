package model

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the closed set of account variants the client knows how to drive.
type Kind int

const (
	KindChecking Kind = iota + 1
	KindLoan
	KindTermCD
)

var ErrUnknownKind = errors.New("unknown account kind")

func (k Kind) String() string {
	switch k {
	case KindChecking:
		return "Checking"
	case KindLoan:
		return "Loan"
	case KindTermCD:
		return "Term CD"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf classifies an account type by its name. Case, spaces, '-' and '_'
// are ignored.
func KindOf(t AccountType) (Kind, error) {
	name := strings.ToLower(t.Name)
	name = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(name)

	switch {
	case strings.Contains(name, "checking"):
		return KindChecking, nil
	case strings.HasSuffix(name, "loan"):
		return KindLoan, nil
	case name == "cd", name == "termcd", name == "tdc",
		name == "termcertificate", name == "certificateofdeposit":
		return KindTermCD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, t.Name)
	}
}
