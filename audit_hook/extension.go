// Package audithook bridges Ledger lifecycle events to an audit trail backend.
//
// It defines a local Recorder interface so the package does not depend on
// any particular audit system. Callers inject a RecorderFunc adapter that
// bridges to their backend at wiring time.
package audithook

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/plugin"
)

// Compile-time interface checks.
var (
	_ plugin.Plugin               = (*Extension)(nil)
	_ plugin.OnSnippetSubmitted   = (*Extension)(nil)
	_ plugin.OnSnippetUpdated     = (*Extension)(nil)
	_ plugin.OnSnippetDeleted     = (*Extension)(nil)
	_ plugin.OnSnippetTipped      = (*Extension)(nil)
	_ plugin.OnTipsWithdrawn      = (*Extension)(nil)
	_ plugin.OnTreasuryWithdrawn  = (*Extension)(nil)
	_ plugin.OnHintRequested      = (*Extension)(nil)
	_ plugin.OnHintFulfilled      = (*Extension)(nil)
	_ plugin.OnReputationUpvote   = (*Extension)(nil)
	_ plugin.OnReputationDownvote = (*Extension)(nil)
	_ plugin.OnLanguageRegistered = (*Extension)(nil)
	_ plugin.OnPauseToggled       = (*Extension)(nil)
	_ plugin.OnBadgeAwarded       = (*Extension)(nil)
	_ plugin.OnTagAdded           = (*Extension)(nil)
)

// Recorder is the interface that audit backends must implement. It is
// defined locally so this package stays backend-agnostic.
type Recorder interface {
	Record(ctx context.Context, event *AuditEvent) error
}

// AuditEvent is a local representation of an audit event.
type AuditEvent struct {
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	Category   string         `json:"category"`
	ResourceID string         `json:"resource_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outcome    string         `json:"outcome"`
	Severity   string         `json:"severity"`
	Reason     string         `json:"reason,omitempty"`
}

// RecorderFunc is an adapter to use a plain function as a Recorder.
type RecorderFunc func(ctx context.Context, event *AuditEvent) error

// Record implements Recorder.
func (f RecorderFunc) Record(ctx context.Context, event *AuditEvent) error {
	return f(ctx, event)
}

// Extension bridges Ledger lifecycle events to an audit trail backend.
type Extension struct {
	recorder Recorder
	enabled  map[string]bool // nil = all enabled
	logger   *slog.Logger
}

// New creates an Extension that emits audit events through the provided Recorder.
func New(r Recorder, opts ...Option) *Extension {
	e := &Extension{
		recorder: r,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements plugin.Plugin.
func (e *Extension) Name() string { return "audit-hook" }

func snippetID(id uint64) string { return strconv.FormatUint(id, 10) }

// ──────────────────────────────────────────────────
// Snippet lifecycle hooks
// ──────────────────────────────────────────────────

// OnSnippetSubmitted implements plugin.OnSnippetSubmitted.
func (e *Extension) OnSnippetSubmitted(ctx context.Context, ev *event.SnippetSubmitted) error {
	return e.record(ctx, ActionSnippetSubmitted, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryContent, nil,
		"author", ev.Author,
		"content_hash", string(ev.ContentHash),
		"language_id", string(ev.LanguageID),
	)
}

// OnSnippetUpdated implements plugin.OnSnippetUpdated.
func (e *Extension) OnSnippetUpdated(ctx context.Context, ev *event.SnippetUpdated) error {
	return e.record(ctx, ActionSnippetUpdated, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryContent, nil,
		"author", ev.Author,
		"content_hash", string(ev.ContentHash),
	)
}

// OnSnippetDeleted implements plugin.OnSnippetDeleted.
func (e *Extension) OnSnippetDeleted(ctx context.Context, ev *event.SnippetDeleted) error {
	return e.record(ctx, ActionSnippetDeleted, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryContent, nil,
		"author", ev.Author,
	)
}

// OnTagAdded implements plugin.OnTagAdded.
func (e *Extension) OnTagAdded(ctx context.Context, ev *event.TagAdded) error {
	return e.record(ctx, ActionTagAdded, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryContent, nil,
		"tag", string(ev.Tag),
	)
}

// ──────────────────────────────────────────────────
// Tip lifecycle hooks
// ──────────────────────────────────────────────────

// OnSnippetTipped implements plugin.OnSnippetTipped.
func (e *Extension) OnSnippetTipped(ctx context.Context, ev *event.SnippetTipped) error {
	return e.record(ctx, ActionSnippetTipped, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryPayment, nil,
		"tipper", ev.Tipper,
		"amount", ev.Amount.String(),
		"fee", ev.Fee.String(),
		"to_author", ev.ToAuthor.String(),
	)
}

// OnTipsWithdrawn implements plugin.OnTipsWithdrawn.
func (e *Extension) OnTipsWithdrawn(ctx context.Context, ev *event.TipsWithdrawn) error {
	return e.record(ctx, ActionTipsWithdrawn, SeverityInfo, OutcomeSuccess,
		ResourceAccount, ev.Author, CategoryPayment, nil,
		"amount", ev.Amount.String(),
	)
}

// OnTreasuryWithdrawn implements plugin.OnTreasuryWithdrawn.
func (e *Extension) OnTreasuryWithdrawn(ctx context.Context, ev *event.TreasuryWithdrawn) error {
	return e.record(ctx, ActionTreasuryWithdrawn, SeverityWarning, OutcomeSuccess,
		ResourceTreasury, ev.Treasury, CategoryPayment, nil,
		"amount", ev.Amount.String(),
	)
}

// ──────────────────────────────────────────────────
// Hint lifecycle hooks
// ──────────────────────────────────────────────────

// OnHintRequested implements plugin.OnHintRequested.
func (e *Extension) OnHintRequested(ctx context.Context, ev *event.HintRequested) error {
	return e.record(ctx, ActionHintRequested, SeverityInfo, OutcomeSuccess,
		ResourceHint, snippetID(ev.HintID), CategoryContent, nil,
		"requester", ev.Requester,
		"topic_hash", string(ev.TopicHash),
		"snippet_id", ev.SnippetID,
	)
}

// OnHintFulfilled implements plugin.OnHintFulfilled.
func (e *Extension) OnHintFulfilled(ctx context.Context, ev *event.HintFulfilled) error {
	return e.record(ctx, ActionHintFulfilled, SeverityInfo, OutcomeSuccess,
		ResourceHint, snippetID(ev.HintID), CategoryContent, nil,
		"fulfiller", ev.Fulfiller,
	)
}

// ──────────────────────────────────────────────────
// Reputation lifecycle hooks
// ──────────────────────────────────────────────────

// OnReputationUpvote implements plugin.OnReputationUpvote.
func (e *Extension) OnReputationUpvote(ctx context.Context, ev *event.ReputationUpvote) error {
	return e.record(ctx, ActionUpvote, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryReputation, nil,
		"voter", ev.Voter,
		"new_score", ev.NewScore,
	)
}

// OnReputationDownvote implements plugin.OnReputationDownvote.
func (e *Extension) OnReputationDownvote(ctx context.Context, ev *event.ReputationDownvote) error {
	return e.record(ctx, ActionDownvote, SeverityInfo, OutcomeSuccess,
		ResourceSnippet, snippetID(ev.SnippetID), CategoryReputation, nil,
		"voter", ev.Voter,
		"new_score", ev.NewScore,
	)
}

// ──────────────────────────────────────────────────
// Admin lifecycle hooks
// ──────────────────────────────────────────────────

// OnLanguageRegistered implements plugin.OnLanguageRegistered.
func (e *Extension) OnLanguageRegistered(ctx context.Context, ev *event.LanguageRegistered) error {
	return e.record(ctx, ActionLanguageRegistered, SeverityInfo, OutcomeSuccess,
		ResourceLanguage, string(ev.LanguageID), CategoryAdmin, nil,
	)
}

// OnPauseToggled implements plugin.OnPauseToggled.
func (e *Extension) OnPauseToggled(ctx context.Context, ev *event.PauseToggled) error {
	severity := SeverityWarning
	if !ev.Paused {
		severity = SeverityInfo
	}
	return e.record(ctx, ActionPauseToggled, severity, OutcomeSuccess,
		ResourceLedger, "", CategoryAdmin, nil,
		"paused", ev.Paused,
	)
}

// OnBadgeAwarded implements plugin.OnBadgeAwarded.
func (e *Extension) OnBadgeAwarded(ctx context.Context, ev *event.BadgeAwarded) error {
	return e.record(ctx, ActionBadgeAwarded, SeverityInfo, OutcomeSuccess,
		ResourceAccount, ev.Account, CategoryAdmin, nil,
		"slot", ev.Slot,
	)
}

// ──────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────

// record builds and sends an audit event if the action is enabled.
func (e *Extension) record(
	ctx context.Context,
	action, severity, outcome string,
	resource, resourceID, category string,
	err error,
	kvPairs ...any,
) error {
	if e.enabled != nil && !e.enabled[action] {
		return nil
	}

	meta := make(map[string]any, len(kvPairs)/2+1)
	for i := 0; i+1 < len(kvPairs); i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvPairs[i])
		}
		meta[key] = kvPairs[i+1]
	}

	var reason string
	if err != nil {
		reason = err.Error()
		meta["error"] = err.Error()
	}

	evt := &AuditEvent{
		Action:     action,
		Resource:   resource,
		Category:   category,
		ResourceID: resourceID,
		Metadata:   meta,
		Outcome:    outcome,
		Severity:   severity,
		Reason:     reason,
	}

	if recErr := e.recorder.Record(ctx, evt); recErr != nil {
		e.logger.Warn("audit_hook: failed to record audit event",
			"action", action,
			"resource_id", resourceID,
			"error", recErr,
		)
	}
	return nil
}
