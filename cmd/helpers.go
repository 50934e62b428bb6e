package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/reply"
)

// fetch waits for a query. A failed reply becomes an error carrying the
// status and body.
func fetch[T any](ctx context.Context, f *reply.Future[reply.Reply[T]], what string) (T, error) {
	r, err := f.Await(ctx)
	if err != nil {
		return r.Body, fmt.Errorf("failed to get %s: %w", what, err)
	}
	if !r.OK {
		msg := fmt.Sprintf("failed to get %s (status %d)", what, r.Status)
		if raw := strings.TrimSpace(string(r.Raw)); raw != "" {
			msg += ": " + raw
		}
		return r.Body, fmt.Errorf("%s", msg)
	}
	return r.Body, nil
}
