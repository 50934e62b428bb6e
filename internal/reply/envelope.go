// Package reply folds HTTP exchanges into single evaluated results.
package reply

import "errors"

// ErrDecode marks a successful response whose body could not be decoded.
var ErrDecode = errors.New("failed to decode response body")

// Envelope is the outcome of one HTTP exchange.
type Envelope struct {
	Status int
	Body   []byte
}

// Event is one emission of a Stream. Err is set for transport faults.
type Event struct {
	Envelope Envelope
	Err      error
}

// Stream is a source of response events.
type Stream <-chan Event

// Reply is what a single-result extraction resolves to. Body is decoded only
// for successful, non-empty responses; Raw always holds the received bytes.
type Reply[T any] struct {
	Status int
	OK     bool
	Body   T
	Raw    []byte
}
