package reply

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// First takes the first event of stream, evaluates it and resolves to its
// decoded body. A non-success status still resolves, with OK set to false. A
// transport fault or an undecodable success body rejects. If stream never
// emits the future never settles.
func First[T any](stream Stream, eval *Evaluator, fields ...any) *Future[Reply[T]] {
	f := NewFuture[Reply[T]]()

	go func() {
		ev, ok := <-stream
		if !ok {
			return
		}
		if ev.Err != nil {
			f.Reject(ev.Err)
			return
		}

		r := Reply[T]{
			Status: ev.Envelope.Status,
			Raw:    ev.Envelope.Body,
		}
		r.OK = eval.Evaluate(ev.Envelope, fields...)

		if r.OK && len(bytes.TrimSpace(r.Raw)) > 0 {
			if err := json.Unmarshal(r.Raw, &r.Body); err != nil {
				f.Reject(fmt.Errorf("%w: %w", ErrDecode, err))
				return
			}
		}

		f.Resolve(r)
	}()

	return f
}

// FirstOK is First for calls where only the status matters. It resolves to
// the evaluated success flag.
func FirstOK(stream Stream, eval *Evaluator, fields ...any) *Future[bool] {
	f := NewFuture[bool]()

	go func() {
		ev, ok := <-stream
		if !ok {
			return
		}
		if ev.Err != nil {
			f.Reject(ev.Err)
			return
		}
		f.Resolve(eval.Evaluate(ev.Envelope, fields...))
	}()

	return f
}
