package gateway

import (
	"fmt"
	"io"
	"net/http"

	"github.com/hance08/teller/internal/reply"
)

// Transport turns a request into a stream of response events.
type Transport interface {
	Exchange(req *http.Request) reply.Stream
}

// HTTPTransport performs each exchange on its own goroutine and emits exactly
// one event before closing the stream.
type HTTPTransport struct {
	Client *http.Client
}

func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{Client: client}
}

func (t *HTTPTransport) Exchange(req *http.Request) reply.Stream {
	out := make(chan reply.Event, 1)

	go func() {
		defer close(out)

		resp, err := t.Client.Do(req)
		if err != nil {
			out <- reply.Event{Err: err}
			return
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			out <- reply.Event{Err: fmt.Errorf("failed to read response body: %w", err)}
			return
		}

		out <- reply.Event{Envelope: reply.Envelope{Status: resp.StatusCode, Body: body}}
	}()

	return out
}

// faulted is a stream carrying a fault raised before anything was sent.
func faulted(err error) reply.Stream {
	out := make(chan reply.Event, 1)
	out <- reply.Event{Err: err}
	close(out)
	return out
}

var _ Transport = (*HTTPTransport)(nil)
