package ledger

import (
	"context"

	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/hint"
	"github.com/frenofclaw/ledger/snippet"
	"github.com/frenofclaw/ledger/types"
)

// Read-side surface. Reads never fail with domain errors: missing records
// report a false ok flag or a zero value.

// GetSnippet returns a copy of the snippet, including deleted ones.
func (l *Ledger) GetSnippet(ctx context.Context, id uint64) (*snippet.Snippet, bool) {
	return l.store.GetSnippet(ctx, id)
}

// GetHint returns a copy of the hint request.
func (l *Ledger) GetHint(ctx context.Context, id uint64) (*hint.Request, bool) {
	return l.store.GetHint(ctx, id)
}

// SnippetsByAuthor returns the author's active snippet ids in submission
// order. Deleted snippets are excluded but stay addressable by id.
func (l *Ledger) SnippetsByAuthor(ctx context.Context, author string) []uint64 {
	return l.store.SnippetsByAuthor(ctx, author)
}

// BalanceOf returns the author's withdrawable tip balance.
func (l *Ledger) BalanceOf(ctx context.Context, author string) types.Amount {
	return l.store.BalanceOf(ctx, author)
}

// ReputationOf returns the author's aggregate reputation: the sum of the
// scores of their active snippets as of the last vote.
func (l *Ledger) ReputationOf(ctx context.Context, author string) uint64 {
	return l.store.ReputationOf(ctx, author)
}

// BadgesOf returns the account's badge bitset.
func (l *Ledger) BadgesOf(ctx context.Context, account string) uint8 {
	return l.store.BadgesOf(ctx, account)
}

// HasBadge reports whether the account holds badge bit slot.
func (l *Ledger) HasBadge(ctx context.Context, account string, slot uint8) bool {
	if slot >= l.cfg.BadgeSlots {
		return false
	}
	return l.store.BadgesOf(ctx, account)&(1<<slot) != 0
}

// SnippetCountByLanguage returns the number of active snippets in the
// language, and whether the language is registered at all.
func (l *Ledger) SnippetCountByLanguage(ctx context.Context, lang types.Digest) (uint64, bool) {
	return l.store.LanguageCount(ctx, lang)
}

// Languages returns the registered language digests.
func (l *Ledger) Languages(ctx context.Context) []types.Digest {
	return l.store.Languages(ctx)
}

// RecentSnippets returns the newest-first bounded queue of recently
// submitted snippet ids. Deleted snippets are not evicted from it.
func (l *Ledger) RecentSnippets(ctx context.Context) []uint64 {
	return l.store.RecentSnippets(ctx)
}

// OpenHints returns the requester's open hint request ids.
func (l *Ledger) OpenHints(ctx context.Context, requester string) []uint64 {
	return l.store.OpenHints(ctx, requester)
}

// FindByContentHash resolves a content digest to the snippet that most
// recently claimed it.
func (l *Ledger) FindByContentHash(ctx context.Context, hash types.Digest) (uint64, bool) {
	return l.store.FindByContentHash(ctx, hash)
}

// HasVoted reports whether voter holds an up or down vote on the snippet.
func (l *Ledger) HasVoted(ctx context.Context, id uint64, voter string) (up, down bool) {
	return l.store.HasVoted(ctx, id, voter)
}

// HashContent runs the configured content-addressing oracle. Useful for
// pre-computing language or tag digests.
func (l *Ledger) HashContent(content []byte) types.Digest {
	return l.hash(content)
}

// Paused reports the global pause flag.
func (l *Ledger) Paused() bool { return l.paused.Load() }

// Config returns the active configuration.
func (l *Ledger) Config() Config { return l.cfg }

// Stats returns the global counters.
func (l *Ledger) Stats(ctx context.Context) types.Stats {
	return l.store.Stats(ctx)
}

// Events returns a copy of the full event log in append order.
func (l *Ledger) Events() []event.Record { return l.events.All() }

// EventsByKind returns the log records of a single kind, in append order.
func (l *Ledger) EventsByKind(kind event.Kind) []event.Record {
	return l.events.ByKind(kind)
}

// Ping checks store health.
func (l *Ledger) Ping(ctx context.Context) error { return l.store.Ping(ctx) }
