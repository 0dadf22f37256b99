package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestTerminal_AcknowledgeWritesAndPauses(t *testing.T) {
	var out bytes.Buffer
	paused := 0
	n := NewTerminal(
		WithOutput(&out),
		WithPause(func(context.Context) error {
			paused++
			return nil
		}),
	)

	if err := n.Acknowledge(context.Background(), "Registration submitted successfully!"); err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	if !strings.Contains(out.String(), "Registration submitted successfully!") {
		t.Fatalf("acknowledgment not written: %q", out.String())
	}
	if paused != 1 {
		t.Fatalf("expected one pause, got %d", paused)
	}
}

func TestTerminal_PauseErrorIsWrapped(t *testing.T) {
	boom := errors.New("interrupted")
	n := NewTerminal(WithOutput(&bytes.Buffer{}), WithPause(func(context.Context) error { return boom }))
	if err := n.Acknowledge(context.Background(), "done"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped pause error, got %v", err)
	}
}

func TestTerminal_RecordLogsDiagnostic(t *testing.T) {
	var logs bytes.Buffer
	n := NewTerminal(WithLogger(zerolog.New(&logs)))

	if err := n.Record(context.Background(), `Form Data Submitted: {"name":"Jane Doe"}`); err != nil {
		t.Fatalf("record: %v", err)
	}
	got := logs.String()
	if !strings.Contains(got, `"channel":"diagnostic"`) || !strings.Contains(got, "Form Data Submitted") {
		t.Fatalf("unexpected log line: %s", got)
	}
}

func TestTerminal_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := NewTerminal(WithOutput(&bytes.Buffer{}))
	if err := n.Acknowledge(ctx, "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
