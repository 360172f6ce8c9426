// Package store defines the storage interface for the ledger engine.
//
// Implementations own all keyed entity state and must make every compound
// read-modify-write (cap check + insert, vote + reputation recompute,
// balance credit/zero) atomic per affected key. Policy limits that gate a
// mutation are passed as arguments so the engine's Config stays the single
// source of truth.
package store

import (
	"context"

	"github.com/frenofclaw/ledger/hint"
	"github.com/frenofclaw/ledger/snippet"
	"github.com/frenofclaw/ledger/types"
)

// Store is the storage backend for the ledger engine.
//
// Mutations return the package-level sentinel errors from the root ledger
// package. Reads never fail on unknown keys; they return zero values and
// ok flags instead.
type Store interface {
	// Snippet mutations

	// InsertSnippet validates that the snippet's language is registered and
	// that the author holds fewer than maxPerAuthor active snippets, then
	// assigns the next dense id, records the snippet, bumps the language
	// counter, and front-pushes the id onto the recent queue bounded by
	// recentKeep. All of this happens atomically.
	InsertSnippet(ctx context.Context, snip *snippet.Snippet, maxPerAuthor, recentKeep int) (uint64, error)

	// UpdateSnippetContent replaces the stored content digest and update
	// timestamp, re-pointing the content-hash index.
	UpdateSnippetContent(ctx context.Context, id uint64, author string, hash types.Digest, updatedAt int64) error

	// DeleteSnippet marks the snippet deleted and decrements its language's
	// active counter. Deletion is terminal.
	DeleteSnippet(ctx context.Context, id uint64, author string) error

	// AddTag appends a tag if the snippet holds fewer than maxTags and does
	// not already carry it. Returns whether the tag was actually added;
	// full or duplicate tag sets are silent no-ops.
	AddTag(ctx context.Context, id uint64, tag types.Digest, author string, maxTags int) (bool, error)

	// Tipping

	// TipSnippet credits toAuthor to the snippet's tip balance and the
	// author's withdrawable balance, and accumulates amount and fee into
	// the global tip and treasury totals.
	TipSnippet(ctx context.Context, id uint64, amount, fee, toAuthor types.Amount) error

	// WithdrawTips atomically zeroes the author's withdrawable balance and
	// returns the amount withdrawn.
	WithdrawTips(ctx context.Context, author string) (types.Amount, error)

	// WithdrawTreasuryFees atomically zeroes the accrued treasury fees and
	// returns the amount withdrawn.
	WithdrawTreasuryFees(ctx context.Context) (types.Amount, error)

	// Hints

	// InsertHint validates the requester's open-hint cap and, for a linked
	// request, that the target snippet exists and is active, then assigns
	// the next dense id and records the request.
	InsertHint(ctx context.Context, req *hint.Request, maxOpen int) (uint64, error)

	// FulfillHint marks the request fulfilled. The transition is terminal.
	FulfillHint(ctx context.Context, id uint64, fulfiller string, fulfilledAt int64) error

	// Languages

	// RegisterLanguage adds a language digest with a zero active counter.
	RegisterLanguage(ctx context.Context, lang types.Digest) error

	// Reputation and badges

	// Upvote applies an upvote from voter, first removing any prior
	// downvote by the same voter, then recomputes the author's aggregate
	// reputation. Returns the snippet's new score.
	Upvote(ctx context.Context, id uint64, voter string) (uint64, error)

	// Downvote is the mirror of Upvote. Score decrements clamp at zero.
	Downvote(ctx context.Context, id uint64, voter string) (uint64, error)

	// AwardBadge sets the badge bit for slot on the account. Idempotent.
	AwardBadge(ctx context.Context, account string, slot uint8) error

	// Reads

	GetSnippet(ctx context.Context, id uint64) (*snippet.Snippet, bool)
	GetHint(ctx context.Context, id uint64) (*hint.Request, bool)
	SnippetsByAuthor(ctx context.Context, author string) []uint64
	BalanceOf(ctx context.Context, author string) types.Amount
	ReputationOf(ctx context.Context, author string) uint64
	BadgesOf(ctx context.Context, account string) uint8
	LanguageCount(ctx context.Context, lang types.Digest) (uint64, bool)
	Languages(ctx context.Context) []types.Digest
	RecentSnippets(ctx context.Context) []uint64
	OpenHints(ctx context.Context, requester string) []uint64
	FindByContentHash(ctx context.Context, hash types.Digest) (uint64, bool)
	HasVoted(ctx context.Context, id uint64, voter string) (up, down bool)
	Stats(ctx context.Context) types.Stats

	// Management

	Ping(ctx context.Context) error
	Close() error
}
