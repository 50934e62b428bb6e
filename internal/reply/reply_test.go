package reply

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
)

func quietEvaluator() *Evaluator {
	return NewEvaluator(pterm.DefaultLogger.WithWriter(io.Discard), false)
}

func emit(events ...Event) Stream {
	ch := make(chan Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return ch
}

func await[T any](t *testing.T, f *Future[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return f.Await(ctx)
}

func TestSuccess(t *testing.T) {
	tt := []struct {
		status int
		want   bool
	}{
		{200, true},
		{201, true},
		{204, true},
		{299, true},
		{2000, true},
		{301, false},
		{404, false},
		{500, false},
		{100, false},
		{0, false},
	}

	for _, tc := range tt {
		if got := Success(tc.status); got != tc.want {
			t.Fatalf("[%d] want: %v, got: %v", tc.status, tc.want, got)
		}
	}
}

func TestEvaluateLogs(t *testing.T) {
	var buf bytes.Buffer
	eval := NewEvaluator(pterm.DefaultLogger.WithWriter(&buf), false)

	if eval.Evaluate(Envelope{Status: 409, Body: []byte("insufficient funds")}) {
		t.Fatal("409 classified as success")
	}
	out := buf.String()
	if !strings.Contains(out, "api call failed") || !strings.Contains(out, "insufficient funds") {
		t.Fatalf("failure log missing status or body: %q", out)
	}

	buf.Reset()
	if !eval.Evaluate(Envelope{Status: 200, Body: []byte(`{"secret":1}`)}) {
		t.Fatal("200 classified as failure")
	}
	if strings.Contains(buf.String(), "secret") {
		t.Fatalf("body logged without verbose flag: %q", buf.String())
	}
}

func TestEvaluateVerbose(t *testing.T) {
	var buf bytes.Buffer
	eval := NewEvaluator(pterm.DefaultLogger.WithWriter(&buf), true)

	eval.Evaluate(Envelope{Status: 200, Body: []byte(`{"Id":4}`)})
	if !strings.Contains(buf.String(), `{"Id":4}`) {
		t.Fatalf("verbose evaluator did not log body: %q", buf.String())
	}
}

func TestFutureSettlesOnce(t *testing.T) {
	f := NewFuture[int]()
	if f.Settled() {
		t.Fatal("new future already settled")
	}
	if !f.Resolve(1) {
		t.Fatal("first resolve rejected")
	}
	if f.Resolve(2) || f.Reject(errors.New("late")) {
		t.Fatal("future settled twice")
	}

	got, err := await(t, f)
	if err != nil || got != 1 {
		t.Fatalf("want 1, <nil>; got %d, %v", got, err)
	}
}

func TestFirstTakesOnlyFirstEmission(t *testing.T) {
	stream := emit(
		Event{Envelope: Envelope{Status: 200, Body: []byte(`[{"Id":1}]`)}},
		Event{Envelope: Envelope{Status: 200, Body: []byte(`[{"Id":2}]`)}},
		Event{Envelope: Envelope{Status: 500}},
	)

	type item struct{ Id int }
	r, err := await(t, First[[]item](stream, quietEvaluator()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.OK || r.Status != 200 {
		t.Fatalf("want ok 200, got %v %d", r.OK, r.Status)
	}
	if len(r.Body) != 1 || r.Body[0].Id != 1 {
		t.Fatalf("want first body, got %+v", r.Body)
	}
}

func TestFirstFoldsFailureStatus(t *testing.T) {
	stream := emit(Event{Envelope: Envelope{Status: 404, Body: []byte("account not found")}})

	r, err := await(t, First[map[string]any](stream, quietEvaluator()))
	if err != nil {
		t.Fatalf("non-2xx must resolve, got error: %v", err)
	}
	if r.OK {
		t.Fatal("404 resolved as ok")
	}
	if r.Body != nil {
		t.Fatalf("failure body decoded: %+v", r.Body)
	}
	if string(r.Raw) != "account not found" {
		t.Fatalf("raw body lost: %q", r.Raw)
	}
}

func TestFirstEmptyBody(t *testing.T) {
	r, err := await(t, First[*struct{ Id int }](emit(Event{Envelope: Envelope{Status: 204}}), quietEvaluator()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.OK || r.Body != nil {
		t.Fatalf("empty body must pass through as zero value, got %+v", r)
	}
}

func TestFirstRejects(t *testing.T) {
	fault := errors.New("connection refused")

	_, err := await(t, First[int](emit(Event{Err: fault}), quietEvaluator()))
	if !errors.Is(err, fault) {
		t.Fatalf("want transport fault, got %v", err)
	}

	_, err = await(t, First[int](emit(Event{Envelope: Envelope{Status: 200, Body: []byte("{")}}), quietEvaluator()))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("want ErrDecode, got %v", err)
	}
}

func TestFirstNeverResolvesOnSilentStream(t *testing.T) {
	f := First[int](emit(), quietEvaluator())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := f.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
	if f.Settled() {
		t.Fatal("future settled without an emission")
	}
}

func TestFirstOK(t *testing.T) {
	tt := []struct {
		status int
		want   bool
	}{
		{200, true},
		{204, true},
		{409, false},
		{500, false},
	}

	for _, tc := range tt {
		got, err := await(t, FirstOK(emit(Event{Envelope: Envelope{Status: tc.status}}), quietEvaluator()))
		if err != nil {
			t.Fatalf("[%d] unexpected error: %v", tc.status, err)
		}
		if got != tc.want {
			t.Fatalf("[%d] want: %v, got: %v", tc.status, tc.want, got)
		}
	}
}
