package audithook

import (
	"context"
	"errors"
	"testing"

	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/types"
)

type captureRecorder struct {
	events []*AuditEvent
	err    error
}

func (r *captureRecorder) Record(_ context.Context, ev *AuditEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func TestExtensionRecords(t *testing.T) {
	rec := &captureRecorder{}
	e := New(rec)
	ctx := context.Background()

	if e.Name() != "audit-hook" {
		t.Errorf("Name: got %q", e.Name())
	}

	err := e.OnSnippetTipped(ctx, &event.SnippetTipped{
		SnippetID: 7,
		Tipper:    "bob",
		Amount:    types.NewAmount(1000),
		Fee:       types.NewAmount(2),
		ToAuthor:  types.NewAmount(998),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	got := rec.events[0]
	if got.Action != ActionSnippetTipped {
		t.Errorf("Action: got %q", got.Action)
	}
	if got.ResourceID != "7" {
		t.Errorf("ResourceID: got %q", got.ResourceID)
	}
	if got.Metadata["amount"] != "1000" || got.Metadata["fee"] != "2" {
		t.Errorf("Metadata: got %v", got.Metadata)
	}
	if got.Outcome != OutcomeSuccess || got.Severity != SeverityInfo {
		t.Errorf("Outcome/Severity: got %q/%q", got.Outcome, got.Severity)
	}
}

func TestEnabledActionsFilter(t *testing.T) {
	rec := &captureRecorder{}
	e := New(rec, WithEnabledActions(ActionSnippetDeleted))
	ctx := context.Background()

	if err := e.OnSnippetSubmitted(ctx, &event.SnippetSubmitted{SnippetID: 1}); err != nil {
		t.Fatal(err)
	}
	if err := e.OnSnippetDeleted(ctx, &event.SnippetDeleted{SnippetID: 1}); err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	if rec.events[0].Action != ActionSnippetDeleted {
		t.Errorf("Action: got %q", rec.events[0].Action)
	}
}

func TestDisabledActionsFilter(t *testing.T) {
	rec := &captureRecorder{}
	e := New(rec, WithDisabledActions(ActionUpvote))
	ctx := context.Background()

	if err := e.OnReputationUpvote(ctx, &event.ReputationUpvote{}); err != nil {
		t.Fatal(err)
	}
	if err := e.OnReputationDownvote(ctx, &event.ReputationDownvote{}); err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	if rec.events[0].Action != ActionDownvote {
		t.Errorf("Action: got %q", rec.events[0].Action)
	}
}

func TestRecorderFailureIsSwallowed(t *testing.T) {
	rec := &captureRecorder{err: errors.New("backend down")}
	e := New(rec)

	// Audit failures must never surface to the mutation path.
	if err := e.OnPauseToggled(context.Background(), &event.PauseToggled{Paused: true}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestRecorderFunc(t *testing.T) {
	called := false
	f := RecorderFunc(func(context.Context, *AuditEvent) error {
		called = true
		return nil
	})
	if err := f.Record(context.Background(), &AuditEvent{}); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Error("adapter did not invoke the function")
	}
}
