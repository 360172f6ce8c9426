// Package plugin provides an extensible plugin system for the ledger.
// Plugins can hook into lifecycle events to extend functionality.
package plugin

import (
	"context"

	"github.com/frenofclaw/ledger/event"
)

// Plugin is the base interface that all plugins must implement.
type Plugin interface {
	Name() string
}

// ──────────────────────────────────────────────────
// Lifecycle hooks
// ──────────────────────────────────────────────────

// OnInit is called when the engine is constructed.
type OnInit interface {
	Plugin
	OnInit(ctx context.Context, l interface{}) error
}

// OnShutdown is called when the engine is closing.
type OnShutdown interface {
	Plugin
	OnShutdown(ctx context.Context) error
}

// ──────────────────────────────────────────────────
// Snippet hooks
// ──────────────────────────────────────────────────

// OnSnippetSubmitted is called after a snippet is stored.
type OnSnippetSubmitted interface {
	Plugin
	OnSnippetSubmitted(ctx context.Context, ev *event.SnippetSubmitted) error
}

// OnSnippetUpdated is called after a snippet's content digest is replaced.
type OnSnippetUpdated interface {
	Plugin
	OnSnippetUpdated(ctx context.Context, ev *event.SnippetUpdated) error
}

// OnSnippetDeleted is called after a snippet is marked deleted.
type OnSnippetDeleted interface {
	Plugin
	OnSnippetDeleted(ctx context.Context, ev *event.SnippetDeleted) error
}

// ──────────────────────────────────────────────────
// Tipping hooks
// ──────────────────────────────────────────────────

// OnSnippetTipped is called after a tip is credited.
type OnSnippetTipped interface {
	Plugin
	OnSnippetTipped(ctx context.Context, ev *event.SnippetTipped) error
}

// OnTipsWithdrawn is called after an author withdraws their balance.
type OnTipsWithdrawn interface {
	Plugin
	OnTipsWithdrawn(ctx context.Context, ev *event.TipsWithdrawn) error
}

// OnTreasuryWithdrawn is called after the treasury collects accrued fees.
type OnTreasuryWithdrawn interface {
	Plugin
	OnTreasuryWithdrawn(ctx context.Context, ev *event.TreasuryWithdrawn) error
}

// ──────────────────────────────────────────────────
// Hint hooks
// ──────────────────────────────────────────────────

// OnHintRequested is called after a hint request is stored.
type OnHintRequested interface {
	Plugin
	OnHintRequested(ctx context.Context, ev *event.HintRequested) error
}

// OnHintFulfilled is called after a hint request is fulfilled.
type OnHintFulfilled interface {
	Plugin
	OnHintFulfilled(ctx context.Context, ev *event.HintFulfilled) error
}

// ──────────────────────────────────────────────────
// Reputation hooks
// ──────────────────────────────────────────────────

// OnReputationUpvote is called after an upvote is applied.
type OnReputationUpvote interface {
	Plugin
	OnReputationUpvote(ctx context.Context, ev *event.ReputationUpvote) error
}

// OnReputationDownvote is called after a downvote is applied.
type OnReputationDownvote interface {
	Plugin
	OnReputationDownvote(ctx context.Context, ev *event.ReputationDownvote) error
}

// ──────────────────────────────────────────────────
// Administration hooks
// ──────────────────────────────────────────────────

// OnLanguageRegistered is called after the curator registers a language.
type OnLanguageRegistered interface {
	Plugin
	OnLanguageRegistered(ctx context.Context, ev *event.LanguageRegistered) error
}

// OnPauseToggled is called after the curator flips the pause flag.
type OnPauseToggled interface {
	Plugin
	OnPauseToggled(ctx context.Context, ev *event.PauseToggled) error
}

// OnBadgeAwarded is called after the curator sets a badge slot.
type OnBadgeAwarded interface {
	Plugin
	OnBadgeAwarded(ctx context.Context, ev *event.BadgeAwarded) error
}

// OnTagAdded is called after a tag is appended to a snippet.
type OnTagAdded interface {
	Plugin
	OnTagAdded(ctx context.Context, ev *event.TagAdded) error
}
