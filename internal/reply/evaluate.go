package reply

import (
	"strconv"

	"github.com/pterm/pterm"
)

// Success reports whether status is a success code: its decimal form starts
// with '2'.
func Success(status int) bool {
	s := strconv.Itoa(status)
	return s[0] == '2'
}

// Evaluator classifies envelopes and logs the outcome.
type Evaluator struct {
	logger  *pterm.Logger
	verbose bool
}

func NewEvaluator(logger *pterm.Logger, verbose bool) *Evaluator {
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &Evaluator{logger: logger, verbose: verbose}
}

// Evaluate never fails; fields are extra key/value pairs added to the log line.
func (e *Evaluator) Evaluate(env Envelope, fields ...any) bool {
	ok := Success(env.Status)

	args := append([]any{"status", env.Status}, fields...)
	if ok {
		e.logger.Info("api call succeeded", e.logger.Args(args...))
	} else {
		args = append(args, "body", string(env.Body))
		e.logger.Warn("api call failed", e.logger.Args(args...))
	}

	if e.verbose {
		body := append([]any{"status", env.Status, "body", string(env.Body)}, fields...)
		e.logger.Info("api response", e.logger.Args(body...))
	}

	return ok
}
