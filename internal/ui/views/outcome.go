package views

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

// ErrRejected marks an operation the API answered with a non-success status.
var ErrRejected = errors.New("rejected by the API")

// Err is nil for a successful outcome and an ErrRejected error carrying the
// status and body otherwise.
func (o Outcome) Err(label string) error {
	if o.OK {
		return nil
	}
	msg := label
	if o.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, o.Status)
	}
	if raw := strings.TrimSpace(string(o.Raw)); raw != "" {
		msg = fmt.Sprintf("%s: %s", msg, raw)
	}
	return fmt.Errorf("%s %w", msg, ErrRejected)
}

// RenderOutcome reports the result of an operation. A successful reply that
// carries an account prints its new balance; a failed one is returned as an
// error for the caller to surface.
func RenderOutcome(label string, out Outcome) error {
	if err := out.Err(label); err != nil {
		return err
	}

	var acc model.Account
	if len(out.Raw) > 0 && json.Unmarshal(out.Raw, &acc) == nil && acc.ID != 0 {
		pterm.Success.Printf("%s completed. Account %d balance: %s\n", label, acc.ID, utils.FormatAmount(acc.Balance))
		return nil
	}
	pterm.Success.Printf("%s completed\n", label)
	return nil
}
