// Package observability provides a metrics extension for Ledger that records
// lifecycle event counts through a pluggable MetricFactory.
package observability

import (
	"context"

	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/plugin"
)

// Ensure MetricsExtension implements required interfaces.
var (
	_ plugin.Plugin               = (*MetricsExtension)(nil)
	_ plugin.OnInit               = (*MetricsExtension)(nil)
	_ plugin.OnSnippetSubmitted   = (*MetricsExtension)(nil)
	_ plugin.OnSnippetUpdated     = (*MetricsExtension)(nil)
	_ plugin.OnSnippetDeleted     = (*MetricsExtension)(nil)
	_ plugin.OnSnippetTipped      = (*MetricsExtension)(nil)
	_ plugin.OnTipsWithdrawn      = (*MetricsExtension)(nil)
	_ plugin.OnTreasuryWithdrawn  = (*MetricsExtension)(nil)
	_ plugin.OnHintRequested      = (*MetricsExtension)(nil)
	_ plugin.OnHintFulfilled      = (*MetricsExtension)(nil)
	_ plugin.OnReputationUpvote   = (*MetricsExtension)(nil)
	_ plugin.OnReputationDownvote = (*MetricsExtension)(nil)
	_ plugin.OnLanguageRegistered = (*MetricsExtension)(nil)
	_ plugin.OnPauseToggled       = (*MetricsExtension)(nil)
	_ plugin.OnBadgeAwarded       = (*MetricsExtension)(nil)
	_ plugin.OnTagAdded           = (*MetricsExtension)(nil)
)

// Counter interface for metric counters.
type Counter interface {
	Inc()
	Add(float64)
}

// Histogram interface for metric histograms.
type Histogram interface {
	Observe(float64)
}

// MetricFactory creates metrics.
type MetricFactory interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// MetricsExtension records system-wide lifecycle metrics.
// Register it as a Ledger plugin to automatically track snippet activity.
type MetricsExtension struct {
	factory MetricFactory

	// Snippet metrics
	SnippetSubmitted Counter
	SnippetUpdated   Counter
	SnippetDeleted   Counter
	TagAdded         Counter

	// Tip metrics
	SnippetTipped     Counter
	TipAmount         Histogram
	TipsWithdrawn     Counter
	TreasuryWithdrawn Counter

	// Hint metrics
	HintRequested Counter
	HintFulfilled Counter

	// Reputation metrics
	Upvotes   Counter
	Downvotes Counter

	// Admin metrics
	LanguageRegistered Counter
	PauseToggled       Counter
	BadgeAwarded       Counter
}

// NewMetricsExtension creates a MetricsExtension with the provided MetricFactory.
func NewMetricsExtension(factory MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		factory: factory,

		// Snippet metrics
		SnippetSubmitted: factory.Counter("ledger.snippet.submitted"),
		SnippetUpdated:   factory.Counter("ledger.snippet.updated"),
		SnippetDeleted:   factory.Counter("ledger.snippet.deleted"),
		TagAdded:         factory.Counter("ledger.snippet.tag.added"),

		// Tip metrics
		SnippetTipped:     factory.Counter("ledger.tip.received"),
		TipAmount:         factory.Histogram("ledger.tip.amount"),
		TipsWithdrawn:     factory.Counter("ledger.tip.withdrawn"),
		TreasuryWithdrawn: factory.Counter("ledger.treasury.withdrawn"),

		// Hint metrics
		HintRequested: factory.Counter("ledger.hint.requested"),
		HintFulfilled: factory.Counter("ledger.hint.fulfilled"),

		// Reputation metrics
		Upvotes:   factory.Counter("ledger.reputation.upvotes"),
		Downvotes: factory.Counter("ledger.reputation.downvotes"),

		// Admin metrics
		LanguageRegistered: factory.Counter("ledger.language.registered"),
		PauseToggled:       factory.Counter("ledger.pause.toggled"),
		BadgeAwarded:       factory.Counter("ledger.badge.awarded"),
	}
}

// Name implements plugin.Plugin.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnInit implements plugin.OnInit.
func (m *MetricsExtension) OnInit(_ context.Context, _ interface{}) error {
	// No initialization needed
	return nil
}

// ──────────────────────────────────────────────────
// Snippet lifecycle hooks
// ──────────────────────────────────────────────────

// OnSnippetSubmitted implements plugin.OnSnippetSubmitted.
func (m *MetricsExtension) OnSnippetSubmitted(_ context.Context, _ *event.SnippetSubmitted) error {
	m.SnippetSubmitted.Inc()
	return nil
}

// OnSnippetUpdated implements plugin.OnSnippetUpdated.
func (m *MetricsExtension) OnSnippetUpdated(_ context.Context, _ *event.SnippetUpdated) error {
	m.SnippetUpdated.Inc()
	return nil
}

// OnSnippetDeleted implements plugin.OnSnippetDeleted.
func (m *MetricsExtension) OnSnippetDeleted(_ context.Context, _ *event.SnippetDeleted) error {
	m.SnippetDeleted.Inc()
	return nil
}

// OnTagAdded implements plugin.OnTagAdded.
func (m *MetricsExtension) OnTagAdded(_ context.Context, _ *event.TagAdded) error {
	m.TagAdded.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Tip lifecycle hooks
// ──────────────────────────────────────────────────

// OnSnippetTipped implements plugin.OnSnippetTipped.
func (m *MetricsExtension) OnSnippetTipped(_ context.Context, ev *event.SnippetTipped) error {
	m.SnippetTipped.Inc()
	if v, ok := ev.Amount.Int64(); ok {
		m.TipAmount.Observe(float64(v))
	}
	return nil
}

// OnTipsWithdrawn implements plugin.OnTipsWithdrawn.
func (m *MetricsExtension) OnTipsWithdrawn(_ context.Context, _ *event.TipsWithdrawn) error {
	m.TipsWithdrawn.Inc()
	return nil
}

// OnTreasuryWithdrawn implements plugin.OnTreasuryWithdrawn.
func (m *MetricsExtension) OnTreasuryWithdrawn(_ context.Context, _ *event.TreasuryWithdrawn) error {
	m.TreasuryWithdrawn.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Hint lifecycle hooks
// ──────────────────────────────────────────────────

// OnHintRequested implements plugin.OnHintRequested.
func (m *MetricsExtension) OnHintRequested(_ context.Context, _ *event.HintRequested) error {
	m.HintRequested.Inc()
	return nil
}

// OnHintFulfilled implements plugin.OnHintFulfilled.
func (m *MetricsExtension) OnHintFulfilled(_ context.Context, _ *event.HintFulfilled) error {
	m.HintFulfilled.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Reputation lifecycle hooks
// ──────────────────────────────────────────────────

// OnReputationUpvote implements plugin.OnReputationUpvote.
func (m *MetricsExtension) OnReputationUpvote(_ context.Context, _ *event.ReputationUpvote) error {
	m.Upvotes.Inc()
	return nil
}

// OnReputationDownvote implements plugin.OnReputationDownvote.
func (m *MetricsExtension) OnReputationDownvote(_ context.Context, _ *event.ReputationDownvote) error {
	m.Downvotes.Inc()
	return nil
}

// ──────────────────────────────────────────────────
// Admin lifecycle hooks
// ──────────────────────────────────────────────────

// OnLanguageRegistered implements plugin.OnLanguageRegistered.
func (m *MetricsExtension) OnLanguageRegistered(_ context.Context, _ *event.LanguageRegistered) error {
	m.LanguageRegistered.Inc()
	return nil
}

// OnPauseToggled implements plugin.OnPauseToggled.
func (m *MetricsExtension) OnPauseToggled(_ context.Context, _ *event.PauseToggled) error {
	m.PauseToggled.Inc()
	return nil
}

// OnBadgeAwarded implements plugin.OnBadgeAwarded.
func (m *MetricsExtension) OnBadgeAwarded(_ context.Context, _ *event.BadgeAwarded) error {
	m.BadgeAwarded.Inc()
	return nil
}
