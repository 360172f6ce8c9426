package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenofclaw/ledger"
	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/store/memory"
	"github.com/frenofclaw/ledger/types"
)

const (
	curator   = "curator-1"
	treasury  = "treasury-1"
	fulfiller = "fulfiller-1"
)

func newTestLedger(t *testing.T, opts ...ledger.Option) *ledger.Ledger {
	t.Helper()
	base := []ledger.Option{
		ledger.WithRoles(curator, treasury, fulfiller),
		ledger.WithClock(func() int64 { return 1_700_000_000_000 }),
	}
	l, err := ledger.New(memory.New(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}

func goLang(l *ledger.Ledger) types.Digest { return l.HashContent([]byte("go")) }

func submit(t *testing.T, l *ledger.Ledger, author, content string) uint64 {
	t.Helper()
	id, err := l.SubmitSnippet(context.Background(), author, []byte(content), goLang(l), "t")
	require.NoError(t, err)
	return id
}

func TestNewRegistersBuiltinLanguages(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	for _, name := range []string{"solidity", "javascript", "python", "go"} {
		_, ok := l.SnippetCountByLanguage(ctx, l.HashContent([]byte(name)))
		assert.True(t, ok, "builtin language %q must be registered", name)
	}
	assert.Len(t, l.Languages(ctx), 4)
}

func TestNewRejectsEmptyRole(t *testing.T) {
	_, err := ledger.New(memory.New(), ledger.WithRoles("", treasury, fulfiller))
	assert.ErrorIs(t, err, ledger.ErrZeroAddress)
	_, err = ledger.New(memory.New(), ledger.WithRoles(curator, "", fulfiller))
	assert.ErrorIs(t, err, ledger.ErrZeroAddress)
	_, err = ledger.New(memory.New(), ledger.WithRoles(curator, treasury, ""))
	assert.ErrorIs(t, err, ledger.ErrZeroAddress)
}

func TestNewSharedStore(t *testing.T) {
	// Two engines over one store must not trip over the builtin languages.
	s := memory.New()
	first, err := ledger.New(s, ledger.WithRoles(curator, treasury, fulfiller))
	require.NoError(t, err)
	defer first.Close()

	second, err := ledger.New(s, ledger.WithRoles(curator, treasury, fulfiller))
	require.NoError(t, err)
	defer second.Close()
}

// ──────────────────────────────────────────────────
// Snippets
// ──────────────────────────────────────────────────

func TestSubmitSnippet(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.SubmitSnippet(ctx, "alice", []byte("content"), goLang(l), "title")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	snip, ok := l.GetSnippet(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "alice", snip.Author)
	assert.Equal(t, l.HashContent([]byte("content")), snip.ContentHash)
	assert.Equal(t, int64(1_700_000_000_000), snip.CreatedAt)
	assert.Equal(t, snip.CreatedAt, snip.UpdatedAt)

	// Contents are resolvable by digest.
	found, ok := l.FindByContentHash(ctx, snip.ContentHash)
	require.True(t, ok)
	assert.Equal(t, id, found)
}

func TestSubmitSnippetBounds(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	lang := goLang(l)

	_, err := l.SubmitSnippet(ctx, "alice", make([]byte, 2049), lang, "t")
	assert.ErrorIs(t, err, ledger.ErrSnippetTooLong)

	_, err = l.SubmitSnippet(ctx, "alice", make([]byte, 2048), lang, "t")
	assert.NoError(t, err, "exactly at the byte limit")

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	_, err = l.SubmitSnippet(ctx, "alice", []byte("ok"), lang, string(long))
	assert.ErrorIs(t, err, ledger.ErrTitleTooLong)

	_, err = l.SubmitSnippet(ctx, "alice", []byte("ok"), l.HashContent([]byte("brainfuck")), "t")
	assert.ErrorIs(t, err, ledger.ErrLanguageNotRegistered)
}

func TestSubmitSnippetAuthorCap(t *testing.T) {
	cfg := ledger.DefaultConfig()
	cfg.Curator, cfg.Treasury, cfg.Fulfiller = curator, treasury, fulfiller
	cfg.MaxSnippetsPerAuthor = 2
	l := newTestLedger(t, ledger.WithConfig(cfg))
	ctx := context.Background()

	submit(t, l, "alice", "a")
	victim := submit(t, l, "alice", "b")
	_, err := l.SubmitSnippet(ctx, "alice", []byte("c"), goLang(l), "t")
	assert.ErrorIs(t, err, ledger.ErrAuthorSnippetCap)

	// Other authors are unaffected.
	submit(t, l, "bob", "c")

	// Deleting frees a slot.
	require.NoError(t, l.DeleteSnippet(ctx, victim, "alice"))
	submit(t, l, "alice", "d")
}

func TestUpdateSnippet(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "v1")

	require.NoError(t, l.UpdateSnippet(ctx, id, "alice", []byte("v2")))
	snip, _ := l.GetSnippet(ctx, id)
	assert.Equal(t, l.HashContent([]byte("v2")), snip.ContentHash)

	assert.ErrorIs(t, l.UpdateSnippet(ctx, id, "bob", []byte("v3")), ledger.ErrNotAuthor)
	assert.ErrorIs(t, l.UpdateSnippet(ctx, 99, "alice", []byte("v3")), ledger.ErrInvalidSnippetID)
	assert.ErrorIs(t, l.UpdateSnippet(ctx, id, "alice", make([]byte, 2049)), ledger.ErrSnippetTooLong)
}

func TestDeleteSnippetTerminal(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	require.NoError(t, l.DeleteSnippet(ctx, id, "alice"))

	assert.ErrorIs(t, l.DeleteSnippet(ctx, id, "alice"), ledger.ErrSnippetDeleted)
	assert.ErrorIs(t, l.UpdateSnippet(ctx, id, "alice", []byte("b")), ledger.ErrSnippetDeleted)
	assert.ErrorIs(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(100)), ledger.ErrSnippetDeleted)
	assert.ErrorIs(t, l.UpvoteSnippet(ctx, id, "bob"), ledger.ErrSnippetDeleted)
}

func TestAddSnippetTag(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")
	tag := l.HashContent([]byte("concurrency"))

	require.NoError(t, l.AddSnippetTag(ctx, id, tag, "alice"))
	snip, _ := l.GetSnippet(ctx, id)
	assert.True(t, snip.HasTag(tag))

	// Duplicate is a silent no-op and emits no event.
	before := len(l.EventsByKind(event.KindTagAdded))
	require.NoError(t, l.AddSnippetTag(ctx, id, tag, "alice"))
	assert.Len(t, l.EventsByKind(event.KindTagAdded), before)

	// The tag set is capped; overflow is also silent.
	for i := range 4 {
		require.NoError(t, l.AddSnippetTag(ctx, id, l.HashContent([]byte{byte(i)}), "alice"))
	}
	snip, _ = l.GetSnippet(ctx, id)
	assert.Len(t, snip.Tags, 4)

	assert.ErrorIs(t, l.AddSnippetTag(ctx, id, tag, "bob"), ledger.ErrNotAuthor)
}

// ──────────────────────────────────────────────────
// Tipping
// ──────────────────────────────────────────────────

func TestTipSnippetFeeSplit(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(1000)))

	assert.True(t, l.BalanceOf(ctx, "alice").Equal(ledger.NewAmount(998)))
	stats := l.Stats(ctx)
	assert.True(t, stats.FeesCollected.Equal(ledger.NewAmount(2)))
	assert.True(t, stats.TipsReceived.Equal(ledger.NewAmount(1000)))

	// Below 400 the 25 bps fee truncates to zero.
	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(399)))
	assert.True(t, l.Stats(ctx).FeesCollected.Equal(ledger.NewAmount(2)))
	assert.True(t, l.BalanceOf(ctx, "alice").Equal(ledger.NewAmount(998+399)))
}

func TestTipSnippetMinimum(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	assert.ErrorIs(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(9)), ledger.ErrTipTooSmall)
	assert.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(10)))
	assert.ErrorIs(t, l.TipSnippet(ctx, 99, "bob", ledger.NewAmount(10)), ledger.ErrInvalidSnippetID)
}

func TestSelfTipAllowed(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	require.NoError(t, l.TipSnippet(ctx, id, "alice", ledger.NewAmount(1000)))
	assert.True(t, l.BalanceOf(ctx, "alice").Equal(ledger.NewAmount(998)))
}

func TestWithdrawTips(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")
	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(1000)))

	got, err := l.WithdrawTips(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.Equal(ledger.NewAmount(998)))
	assert.True(t, l.BalanceOf(ctx, "alice").IsZero())

	_, err = l.WithdrawTips(ctx, "alice")
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestWithdrawTreasuryFees(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")
	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(10_000)))

	_, err := l.WithdrawTreasuryFees(ctx, "alice")
	assert.ErrorIs(t, err, ledger.ErrTreasuryOnly)

	got, err := l.WithdrawTreasuryFees(ctx, treasury)
	require.NoError(t, err)
	assert.True(t, got.Equal(ledger.NewAmount(25)))

	_, err = l.WithdrawTreasuryFees(ctx, treasury)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestBalanceConservation(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	for _, v := range []int64{1000, 399, 10, 123457} {
		require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(v)))
	}

	stats := l.Stats(ctx)
	total := l.BalanceOf(ctx, "alice").Add(stats.FeesCollected)
	assert.True(t, total.Equal(stats.TipsReceived), "author balance + fees = tips received")
}

// ──────────────────────────────────────────────────
// Hints
// ──────────────────────────────────────────────────

func TestRequestAndFulfillHint(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	snippetID := submit(t, l, "alice", "a")
	topic := l.HashContent([]byte("generics"))

	hintID, err := l.RequestHint(ctx, "carol", topic, snippetID)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), hintID)
	assert.Equal(t, []uint64{hintID}, l.OpenHints(ctx, "carol"))

	assert.ErrorIs(t, l.FulfillHint(ctx, hintID, "carol"), ledger.ErrFulfillerOnly)

	require.NoError(t, l.FulfillHint(ctx, hintID, fulfiller))
	req, ok := l.GetHint(ctx, hintID)
	require.True(t, ok)
	assert.True(t, req.Fulfilled)
	assert.Equal(t, fulfiller, req.Fulfiller)
	assert.Empty(t, l.OpenHints(ctx, "carol"))

	assert.ErrorIs(t, l.FulfillHint(ctx, hintID, fulfiller), ledger.ErrHintAlreadyFulfilled)
	assert.ErrorIs(t, l.FulfillHint(ctx, 99, fulfiller), ledger.ErrInvalidHintID)
}

func TestRequestHintCap(t *testing.T) {
	cfg := ledger.DefaultConfig()
	cfg.Curator, cfg.Treasury, cfg.Fulfiller = curator, treasury, fulfiller
	cfg.MaxOpenHintsPerUser = 1
	l := newTestLedger(t, ledger.WithConfig(cfg))
	ctx := context.Background()
	topic := l.HashContent([]byte("t"))

	first, err := l.RequestHint(ctx, "carol", topic, 0)
	require.NoError(t, err)
	_, err = l.RequestHint(ctx, "carol", topic, 0)
	assert.ErrorIs(t, err, ledger.ErrHintRequestCap)

	require.NoError(t, l.FulfillHint(ctx, first, fulfiller))
	_, err = l.RequestHint(ctx, "carol", topic, 0)
	assert.NoError(t, err)
}

func TestRequestHintLinkedSnippet(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	topic := l.HashContent([]byte("t"))

	_, err := l.RequestHint(ctx, "carol", topic, 99)
	assert.ErrorIs(t, err, ledger.ErrInvalidSnippetID)

	id := submit(t, l, "alice", "a")
	require.NoError(t, l.DeleteSnippet(ctx, id, "alice"))
	_, err = l.RequestHint(ctx, "carol", topic, id)
	assert.ErrorIs(t, err, ledger.ErrSnippetDeleted)
}

// ──────────────────────────────────────────────────
// Reputation
// ──────────────────────────────────────────────────

func TestVoting(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	require.NoError(t, l.UpvoteSnippet(ctx, id, "bob"))
	snip, _ := l.GetSnippet(ctx, id)
	assert.Equal(t, uint64(1), snip.Score)
	assert.Equal(t, uint64(1), l.ReputationOf(ctx, "alice"))

	assert.ErrorIs(t, l.UpvoteSnippet(ctx, id, "bob"), ledger.ErrAlreadyUpvoted)
	assert.ErrorIs(t, l.UpvoteSnippet(ctx, id, "alice"), ledger.ErrCannotVoteOwn)

	// Case differences are distinct voters, unlike role checks.
	require.NoError(t, l.UpvoteSnippet(ctx, id, "Bob"))
	snip, _ = l.GetSnippet(ctx, id)
	assert.Equal(t, uint64(2), snip.Score)

	require.NoError(t, l.DownvoteSnippet(ctx, id, "bob"))
	snip, _ = l.GetSnippet(ctx, id)
	assert.Equal(t, uint64(0), snip.Score, "switch removes the upvote then downvotes")

	up, down := l.HasVoted(ctx, id, "bob")
	assert.False(t, up)
	assert.True(t, down)
}

func TestScoreNeverNegative(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")

	require.NoError(t, l.DownvoteSnippet(ctx, id, "bob"))
	require.NoError(t, l.DownvoteSnippet(ctx, id, "carol"))
	snip, _ := l.GetSnippet(ctx, id)
	assert.Equal(t, uint64(0), snip.Score)
	assert.Equal(t, uint64(0), l.ReputationOf(ctx, "alice"))
}

func TestReputationStaysAfterDelete(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")
	require.NoError(t, l.UpvoteSnippet(ctx, id, "bob"))

	// Reputation recomputes only on votes, so deletion leaves it as-is.
	require.NoError(t, l.DeleteSnippet(ctx, id, "alice"))
	assert.Equal(t, uint64(1), l.ReputationOf(ctx, "alice"))
}

// ──────────────────────────────────────────────────
// Administration
// ──────────────────────────────────────────────────

func TestRegisterLanguage(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	rust := l.HashContent([]byte("rust"))

	assert.ErrorIs(t, l.RegisterLanguage(ctx, rust, "alice"), ledger.ErrCuratorOnly)

	require.NoError(t, l.RegisterLanguage(ctx, rust, curator))
	assert.ErrorIs(t, l.RegisterLanguage(ctx, rust, curator), ledger.ErrLanguageAlreadyRegistered)

	// Role comparison is case-insensitive.
	zig := l.HashContent([]byte("zig"))
	require.NoError(t, l.RegisterLanguage(ctx, zig, "CURATOR-1"))

	_, err := l.SubmitSnippet(ctx, "alice", []byte("fn main(){}"), rust, "t")
	assert.NoError(t, err)
}

func TestPauseGating(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	lang := goLang(l)
	id := submit(t, l, "alice", "a")
	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(1000)))
	hintID, err := l.RequestHint(ctx, "carol", lang, 0)
	require.NoError(t, err)

	assert.ErrorIs(t, l.SetPaused(ctx, true, "alice"), ledger.ErrCuratorOnly)
	require.NoError(t, l.SetPaused(ctx, true, curator))
	assert.True(t, l.Paused())

	// Blocked while paused.
	_, err = l.SubmitSnippet(ctx, "alice", []byte("b"), lang, "t")
	assert.ErrorIs(t, err, ledger.ErrPaused)
	assert.ErrorIs(t, l.UpdateSnippet(ctx, id, "alice", []byte("b")), ledger.ErrPaused)
	assert.ErrorIs(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(100)), ledger.ErrPaused)
	_, err = l.RequestHint(ctx, "carol", lang, 0)
	assert.ErrorIs(t, err, ledger.ErrPaused)
	assert.ErrorIs(t, l.FulfillHint(ctx, hintID, fulfiller), ledger.ErrPaused)
	assert.ErrorIs(t, l.UpvoteSnippet(ctx, id, "bob"), ledger.ErrPaused)
	assert.ErrorIs(t, l.DownvoteSnippet(ctx, id, "bob"), ledger.ErrPaused)

	// Not blocked while paused.
	_, err = l.WithdrawTips(ctx, "alice")
	assert.NoError(t, err)
	_, err = l.WithdrawTreasuryFees(ctx, treasury)
	assert.NoError(t, err)
	require.NoError(t, l.RegisterLanguage(ctx, l.HashContent([]byte("rust")), curator))
	require.NoError(t, l.DeleteSnippet(ctx, id, "alice"))
	_, ok := l.GetSnippet(ctx, id)
	assert.True(t, ok, "reads stay available")

	// Unpause restores everything.
	require.NoError(t, l.SetPaused(ctx, false, curator))
	assert.False(t, l.Paused())
	_, err = l.SubmitSnippet(ctx, "alice", []byte("b"), lang, "t")
	assert.NoError(t, err)
}

func TestAwardBadge(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	assert.ErrorIs(t, l.AwardBadge(ctx, "alice", 0, "alice"), ledger.ErrCuratorOnly)

	require.NoError(t, l.AwardBadge(ctx, "alice", 0, curator))
	require.NoError(t, l.AwardBadge(ctx, "alice", 5, curator))
	assert.True(t, l.HasBadge(ctx, "alice", 0))
	assert.True(t, l.HasBadge(ctx, "alice", 5))
	assert.False(t, l.HasBadge(ctx, "alice", 1))
	assert.Equal(t, uint8(0b0010_0001), l.BadgesOf(ctx, "alice"))

	// Out-of-range slot is a silent no-op, no event either.
	before := len(l.EventsByKind(event.KindBadgeAwarded))
	require.NoError(t, l.AwardBadge(ctx, "alice", 8, curator))
	assert.Len(t, l.EventsByKind(event.KindBadgeAwarded), before)
	assert.Equal(t, uint8(0b0010_0001), l.BadgesOf(ctx, "alice"))

	// Idempotent.
	require.NoError(t, l.AwardBadge(ctx, "alice", 0, curator))
	assert.Equal(t, uint8(0b0010_0001), l.BadgesOf(ctx, "alice"))
}

// ──────────────────────────────────────────────────
// Batches
// ──────────────────────────────────────────────────

func TestSubmitSnippetBatchStopsAtFirstFailure(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	// The middle entry exceeds the byte limit; the batch stops there and
	// keeps what it created, without surfacing the entry's error.
	ids, err := l.SubmitSnippetBatch(ctx, "alice",
		[][]byte{[]byte("a"), make([]byte, 2049), []byte("c")},
		[]string{"t1", "t2", "t3"},
		goLang(l),
	)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, uint64(1), ids[0])

	_, ok := l.GetSnippet(ctx, ids[0])
	assert.True(t, ok)
	assert.Len(t, l.SnippetsByAuthor(ctx, "alice"), 1)
}

func TestSubmitSnippetBatchShape(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	lang := goLang(l)

	contents := make([][]byte, 13)
	titles := make([]string, 13)
	for i := range contents {
		contents[i] = []byte{byte(i)}
	}
	_, err := l.SubmitSnippetBatch(ctx, "alice", contents, titles, lang)
	assert.ErrorIs(t, err, ledger.ErrBatchTooLarge)

	_, err = l.SubmitSnippetBatch(ctx, "alice", contents[:2], titles[:1], lang)
	assert.ErrorIs(t, err, ledger.ErrBatchLengthMismatch)
}

func TestTipSnippetBatchAbortsOnError(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	first := submit(t, l, "alice", "a")
	second := submit(t, l, "bob", "b")

	// Second entry fails on its minimum check; the first stays applied.
	err := l.TipSnippetBatch(ctx, "carol",
		[]uint64{first, second},
		[]types.Amount{ledger.NewAmount(1000), ledger.NewAmount(5)},
	)
	assert.ErrorIs(t, err, ledger.ErrTipTooSmall)
	assert.True(t, l.BalanceOf(ctx, "alice").Equal(ledger.NewAmount(998)))
	assert.True(t, l.BalanceOf(ctx, "bob").IsZero())
}

func TestTipSnippetBatchShape(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	ids := make([]uint64, 17)
	amounts := make([]types.Amount, 17)
	err := l.TipSnippetBatch(ctx, "carol", ids, amounts)
	assert.ErrorIs(t, err, ledger.ErrBatchTooLarge)

	err = l.TipSnippetBatch(ctx, "carol", ids[:2], amounts[:3])
	assert.ErrorIs(t, err, ledger.ErrBatchLengthMismatch)
}

// ──────────────────────────────────────────────────
// Event log
// ──────────────────────────────────────────────────

func TestEventLog(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	id := submit(t, l, "alice", "a")
	require.NoError(t, l.TipSnippet(ctx, id, "bob", ledger.NewAmount(1000)))
	require.NoError(t, l.UpvoteSnippet(ctx, id, "bob"))

	events := l.Events()
	require.Len(t, events, 3)
	for i, rec := range events {
		assert.Equal(t, uint64(i)+1, rec.Seq)
		assert.False(t, rec.ID.IsNil())
	}

	tipped := l.EventsByKind(event.KindSnippetTipped)
	require.Len(t, tipped, 1)
	payload, ok := tipped[0].Payload.(*event.SnippetTipped)
	require.True(t, ok)
	assert.Equal(t, id, payload.SnippetID)
	assert.True(t, payload.Fee.Equal(ledger.NewAmount(2)))
	assert.True(t, payload.ToAuthor.Equal(ledger.NewAmount(998)))
}

func TestFailedOperationsEmitNoEvents(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.SubmitSnippet(ctx, "alice", []byte("a"), l.HashContent([]byte("nope")), "t")
	require.Error(t, err)
	assert.Empty(t, l.Events())
}

// ──────────────────────────────────────────────────
// Error classification
// ──────────────────────────────────────────────────

func TestErrorHelpers(t *testing.T) {
	assert.True(t, ledger.IsNotFound(ledger.ErrInvalidSnippetID))
	assert.True(t, ledger.IsNotFound(ledger.ErrInvalidHintID))
	assert.False(t, ledger.IsNotFound(ledger.ErrPaused))

	assert.True(t, ledger.IsAuthorization(ledger.ErrCuratorOnly))
	assert.True(t, ledger.IsAuthorization(ledger.ErrNotAuthor))
	assert.False(t, ledger.IsAuthorization(ledger.ErrTipTooSmall))

	assert.True(t, ledger.IsCapacity(ledger.ErrAuthorSnippetCap))
	assert.True(t, ledger.IsCapacity(ledger.ErrHintRequestCap))
	assert.False(t, ledger.IsCapacity(ledger.ErrNotAuthor))
}
