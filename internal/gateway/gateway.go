// Package gateway maps banking operations onto the remote HTTP API.
//
// Every call returns a future that settles exactly once. Business failures
// (insufficient funds, unknown account, ...) arrive as replies whose OK flag
// is false; only transport faults reject the future.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/hance08/teller/internal/reply"
	"github.com/pterm/pterm"
)

// Config is fixed for the lifetime of a Gateway.
type Config struct {
	// BaseURL is prepended verbatim to every request path.
	BaseURL string
	// VerboseLogging logs every response body.
	VerboseLogging bool
}

// Opaque is the undecoded result of a mutating call.
type Opaque = json.RawMessage

type Gateway struct {
	base      string
	transport Transport
	eval      *reply.Evaluator
	logger    *pterm.Logger
}

// New builds a gateway. A nil transport uses http.DefaultClient and a nil
// logger uses pterm.DefaultLogger.
func New(cfg Config, transport Transport, logger *pterm.Logger) *Gateway {
	if transport == nil {
		transport = NewHTTPTransport(nil)
	}
	if logger == nil {
		logger = &pterm.DefaultLogger
	}
	return &Gateway{
		base:      cfg.BaseURL,
		transport: transport,
		eval:      reply.NewEvaluator(logger, cfg.VerboseLogging),
		logger:    logger,
	}
}

func (g *Gateway) BaseURL() string {
	return g.base
}

// exchange sends one request. The request keeps ctx values but is not
// cancelled with it: once issued a call runs to completion.
func (g *Gateway) exchange(ctx context.Context, method, path string, payload any) (reply.Stream, []any) {
	fields := []any{"call", uuid.NewString(), "method", method, "path", path}
	g.logger.Debug("api call issued", g.logger.Args(fields...))

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return faulted(fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)), fields
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, g.base+path, body)
	if err != nil {
		return faulted(fmt.Errorf("failed to build %s %s: %w", method, path, err)), fields
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return g.transport.Exchange(req), fields
}

func doGet[T any](ctx context.Context, g *Gateway, path string) *reply.Future[reply.Reply[T]] {
	stream, fields := g.exchange(ctx, http.MethodGet, path, nil)
	return reply.First[T](stream, g.eval, fields...)
}

func doPost(ctx context.Context, g *Gateway, path string, payload any) *reply.Future[reply.Reply[Opaque]] {
	stream, fields := g.exchange(ctx, http.MethodPost, path, payload)
	return reply.First[Opaque](stream, g.eval, fields...)
}

// doPut sends no body; every argument travels in the path.
func doPut(ctx context.Context, g *Gateway, path string) *reply.Future[reply.Reply[Opaque]] {
	stream, fields := g.exchange(ctx, http.MethodPut, path, nil)
	return reply.First[Opaque](stream, g.eval, fields...)
}

func doDelete(ctx context.Context, g *Gateway, path string) *reply.Future[bool] {
	stream, fields := g.exchange(ctx, http.MethodDelete, path, nil)
	return reply.FirstOK(stream, g.eval, fields...)
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// amount renders the shortest decimal form: 100, 12.5, 0.01.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
