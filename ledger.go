package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/frenofclaw/ledger/event"
	"github.com/frenofclaw/ledger/hint"
	"github.com/frenofclaw/ledger/plugin"
	"github.com/frenofclaw/ledger/snippet"
	"github.com/frenofclaw/ledger/store"
	"github.com/frenofclaw/ledger/types"
)

// Clock returns the current time as milliseconds since epoch. It must be
// monotonically non-decreasing.
type Clock func() int64

// Ledger is the snippet ledger engine. All state lives in the injected
// Store; every successful mutation appends one record to the event log and
// notifies registered plugins. A Ledger is safe for concurrent use.
type Ledger struct {
	store   store.Store
	plugins *plugin.Registry
	logger  *slog.Logger
	events  *event.Log

	cfg    Config
	hash   types.Hasher
	now    Clock
	paused atomic.Bool
}

// New creates a Ledger backed by the given store. Defaults: built-in role
// identities, SHA3-256 content addressing, wall-clock time. Returns
// ErrZeroAddress if any configured role identity is empty. The four
// built-in languages are registered before New returns.
func New(s store.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:   s,
		plugins: plugin.NewRegistry(),
		logger:  slog.Default(),
		events:  event.NewLog(),
		cfg:     DefaultConfig(),
		hash:    types.SHA3Sum,
		now:     func() int64 { return time.Now().UnixMilli() },
	}

	for _, opt := range opts {
		opt(l)
	}
	l.plugins.WithLogger(l.logger)

	if l.cfg.Curator == "" || l.cfg.Treasury == "" || l.cfg.Fulfiller == "" {
		return nil, ErrZeroAddress
	}

	ctx := context.Background()
	for _, name := range builtinLanguages {
		if err := s.RegisterLanguage(ctx, l.hash([]byte(name))); err != nil {
			// A shared store may already hold the built-ins.
			if err != ErrLanguageAlreadyRegistered {
				return nil, err
			}
		}
	}

	l.plugins.EmitInit(ctx, l)
	return l, nil
}

// Option configures a Ledger instance.
type Option func(*Ledger)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithRoles sets the curator, treasury, and fulfiller identities.
func WithRoles(curator, treasury, fulfiller string) Option {
	return func(l *Ledger) {
		l.cfg.Curator = curator
		l.cfg.Treasury = treasury
		l.cfg.Fulfiller = fulfiller
	}
}

// WithConfig replaces the whole configuration surface.
func WithConfig(cfg Config) Option {
	return func(l *Ledger) {
		l.cfg = cfg
	}
}

// WithClock sets the time source.
func WithClock(clock Clock) Option {
	return func(l *Ledger) {
		l.now = clock
	}
}

// WithHasher sets the content-addressing oracle.
func WithHasher(h types.Hasher) Option {
	return func(l *Ledger) {
		l.hash = h
	}
}

// WithPlugin registers a plugin.
func WithPlugin(p plugin.Plugin) Option {
	return func(l *Ledger) {
		_ = l.plugins.Register(p) //nolint:errcheck // best-effort plugin registration during init
	}
}

// Close shuts down the Ledger: plugins get their shutdown hook and the
// store is closed.
func (l *Ledger) Close() error {
	l.plugins.EmitShutdown(context.Background())
	return l.store.Close()
}

// Plugins returns the plugin registry, e.g. for late registration.
func (l *Ledger) Plugins() *plugin.Registry { return l.plugins }

// isRole compares a caller identity against a configured role identity.
// Role checks are case-insensitive; author and voter checks are not.
func isRole(caller, role string) bool {
	return strings.EqualFold(caller, role)
}

// ──────────────────────────────────────────────────
// Snippets
// ──────────────────────────────────────────────────

// SubmitSnippet records a new snippet and returns its id. The content is
// stored only as its digest. languageID must be a registered language
// digest and the author must hold fewer than the configured maximum of
// active snippets.
func (l *Ledger) SubmitSnippet(ctx context.Context, author string, content []byte, languageID types.Digest, title string) (uint64, error) {
	if l.paused.Load() {
		return 0, ErrPaused
	}
	if len(content) > l.cfg.MaxSnippetBytes {
		return 0, ErrSnippetTooLong
	}
	if len(title) > l.cfg.MaxTitleBytes {
		return 0, ErrTitleTooLong
	}

	now := l.now()
	snip := &snippet.Snippet{
		Author:      author,
		ContentHash: l.hash(content),
		LanguageID:  languageID,
		Title:       title,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := l.store.InsertSnippet(ctx, snip, l.cfg.MaxSnippetsPerAuthor, l.cfg.RecentQueueSize)
	if err != nil {
		return 0, err
	}

	ev := &event.SnippetSubmitted{
		SnippetID:   id,
		Author:      author,
		ContentHash: snip.ContentHash,
		LanguageID:  languageID,
		CreatedAt:   now,
	}
	l.events.Append(ev)
	l.plugins.EmitSnippetSubmitted(ctx, ev)

	l.logger.Debug("snippet submitted", "id", id, "author", author, "hash", snip.ContentHash.Short())
	return id, nil
}

// UpdateSnippet replaces a snippet's content digest. Only the author may
// update, and only while the snippet is active.
func (l *Ledger) UpdateSnippet(ctx context.Context, id uint64, author string, newContent []byte) error {
	if l.paused.Load() {
		return ErrPaused
	}
	if len(newContent) > l.cfg.MaxSnippetBytes {
		return ErrSnippetTooLong
	}

	now := l.now()
	hash := l.hash(newContent)
	if err := l.store.UpdateSnippetContent(ctx, id, author, hash, now); err != nil {
		return err
	}

	ev := &event.SnippetUpdated{SnippetID: id, Author: author, ContentHash: hash, UpdatedAt: now}
	l.events.Append(ev)
	l.plugins.EmitSnippetUpdated(ctx, ev)
	return nil
}

// DeleteSnippet marks a snippet deleted. Deletion is not pause-gated and
// is terminal; the record stays addressable by id.
func (l *Ledger) DeleteSnippet(ctx context.Context, id uint64, author string) error {
	if err := l.store.DeleteSnippet(ctx, id, author); err != nil {
		return err
	}

	ev := &event.SnippetDeleted{SnippetID: id, Author: author, DeletedAt: l.now()}
	l.events.Append(ev)
	l.plugins.EmitSnippetDeleted(ctx, ev)
	return nil
}

// AddSnippetTag appends a tag digest to a snippet. A full tag set or a
// duplicate tag is a silent no-op. Not pause-gated.
func (l *Ledger) AddSnippetTag(ctx context.Context, id uint64, tag types.Digest, author string) error {
	added, err := l.store.AddTag(ctx, id, tag, author, l.cfg.MaxTagsPerSnippet)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	ev := &event.TagAdded{SnippetID: id, Tag: tag}
	l.events.Append(ev)
	l.plugins.EmitTagAdded(ctx, ev)
	return nil
}

// ──────────────────────────────────────────────────
// Tipping
// ──────────────────────────────────────────────────

// TipSnippet credits a tip to a snippet's author, splitting off the
// treasury fee. Amounts carry no upper bound; the minimum is configured.
func (l *Ledger) TipSnippet(ctx context.Context, id uint64, tipper string, amount types.Amount) error {
	if l.paused.Load() {
		return ErrPaused
	}
	if amount.LessThan(l.cfg.minTip()) {
		return ErrTipTooSmall
	}

	fee, toAuthor := types.SplitFee(amount, l.cfg.TreasuryFeeBPS)
	if err := l.store.TipSnippet(ctx, id, amount, fee, toAuthor); err != nil {
		return err
	}

	ev := &event.SnippetTipped{SnippetID: id, Tipper: tipper, Amount: amount, Fee: fee, ToAuthor: toAuthor}
	l.events.Append(ev)
	l.plugins.EmitSnippetTipped(ctx, ev)

	l.logger.Debug("snippet tipped", "id", id, "amount", amount, "fee", fee)
	return nil
}

// WithdrawTips zeroes the author's withdrawable balance and returns the
// amount. Not pause-gated.
func (l *Ledger) WithdrawTips(ctx context.Context, author string) (types.Amount, error) {
	amount, err := l.store.WithdrawTips(ctx, author)
	if err != nil {
		return types.Amount{}, err
	}

	ev := &event.TipsWithdrawn{Author: author, Amount: amount}
	l.events.Append(ev)
	l.plugins.EmitTipsWithdrawn(ctx, ev)
	return amount, nil
}

// WithdrawTreasuryFees zeroes the accrued treasury fees and returns the
// amount. Only the treasury identity may call it. Not pause-gated.
func (l *Ledger) WithdrawTreasuryFees(ctx context.Context, caller string) (types.Amount, error) {
	if !isRole(caller, l.cfg.Treasury) {
		return types.Amount{}, ErrTreasuryOnly
	}

	amount, err := l.store.WithdrawTreasuryFees(ctx)
	if err != nil {
		return types.Amount{}, err
	}

	ev := &event.TreasuryWithdrawn{Treasury: l.cfg.Treasury, Amount: amount}
	l.events.Append(ev)
	l.plugins.EmitTreasuryWithdrawn(ctx, ev)
	return amount, nil
}

// ──────────────────────────────────────────────────
// Hints
// ──────────────────────────────────────────────────

// RequestHint records a hint request on a topic, optionally linked to a
// snippet (snippetID 0 means no link). A requester may hold at most the
// configured number of open requests.
func (l *Ledger) RequestHint(ctx context.Context, requester string, topic types.Digest, snippetID uint64) (uint64, error) {
	if l.paused.Load() {
		return 0, ErrPaused
	}

	now := l.now()
	req := &hint.Request{
		Requester: requester,
		TopicHash: topic,
		SnippetID: snippetID,
		CreatedAt: now,
	}

	id, err := l.store.InsertHint(ctx, req, l.cfg.MaxOpenHintsPerUser)
	if err != nil {
		return 0, err
	}

	ev := &event.HintRequested{HintID: id, Requester: requester, TopicHash: topic, SnippetID: snippetID, CreatedAt: now}
	l.events.Append(ev)
	l.plugins.EmitHintRequested(ctx, ev)
	return id, nil
}

// FulfillHint marks a hint request fulfilled. Only the fulfiller identity
// may call it; the transition is terminal.
func (l *Ledger) FulfillHint(ctx context.Context, id uint64, caller string) error {
	if !isRole(caller, l.cfg.Fulfiller) {
		return ErrFulfillerOnly
	}
	if l.paused.Load() {
		return ErrPaused
	}

	now := l.now()
	if err := l.store.FulfillHint(ctx, id, l.cfg.Fulfiller, now); err != nil {
		return err
	}

	ev := &event.HintFulfilled{HintID: id, Fulfiller: l.cfg.Fulfiller, FulfilledAt: now}
	l.events.Append(ev)
	l.plugins.EmitHintFulfilled(ctx, ev)
	return nil
}

// ──────────────────────────────────────────────────
// Reputation
// ──────────────────────────────────────────────────

// UpvoteSnippet casts an upvote by voter. A prior downvote by the same
// voter is removed first and its score delta restored. Authors cannot
// vote on their own snippets.
func (l *Ledger) UpvoteSnippet(ctx context.Context, id uint64, voter string) error {
	if l.paused.Load() {
		return ErrPaused
	}

	score, err := l.store.Upvote(ctx, id, voter)
	if err != nil {
		return err
	}

	ev := &event.ReputationUpvote{SnippetID: id, Voter: voter, NewScore: score}
	l.events.Append(ev)
	l.plugins.EmitReputationUpvote(ctx, ev)
	return nil
}

// DownvoteSnippet casts a downvote by voter. Score decrements clamp at
// zero, so a snippet's score never goes negative.
func (l *Ledger) DownvoteSnippet(ctx context.Context, id uint64, voter string) error {
	if l.paused.Load() {
		return ErrPaused
	}

	score, err := l.store.Downvote(ctx, id, voter)
	if err != nil {
		return err
	}

	ev := &event.ReputationDownvote{SnippetID: id, Voter: voter, NewScore: score}
	l.events.Append(ev)
	l.plugins.EmitReputationDownvote(ctx, ev)
	return nil
}

// ──────────────────────────────────────────────────
// Administration
// ──────────────────────────────────────────────────

// RegisterLanguage adds a language digest to the registry. Curator only;
// not pause-gated.
func (l *Ledger) RegisterLanguage(ctx context.Context, lang types.Digest, caller string) error {
	if !isRole(caller, l.cfg.Curator) {
		return ErrCuratorOnly
	}

	if err := l.store.RegisterLanguage(ctx, lang); err != nil {
		return err
	}

	ev := &event.LanguageRegistered{LanguageID: lang}
	l.events.Append(ev)
	l.plugins.EmitLanguageRegistered(ctx, ev)
	return nil
}

// SetPaused flips the global pause flag. Curator only. While paused,
// submissions, updates, tips, hint requests, fulfillment, and votes are
// blocked; deletion, withdrawals, language registration, and reads are
// not.
func (l *Ledger) SetPaused(ctx context.Context, flag bool, caller string) error {
	if !isRole(caller, l.cfg.Curator) {
		return ErrCuratorOnly
	}

	l.paused.Store(flag)

	ev := &event.PauseToggled{Paused: flag}
	l.events.Append(ev)
	l.plugins.EmitPauseToggled(ctx, ev)

	l.logger.Info("pause toggled", "paused", flag)
	return nil
}

// AwardBadge sets badge bit slot on the account. Curator only. Slots
// outside the configured range are silent no-ops; re-awarding a held
// badge has no additional effect.
func (l *Ledger) AwardBadge(ctx context.Context, account string, slot uint8, caller string) error {
	if !isRole(caller, l.cfg.Curator) {
		return ErrCuratorOnly
	}
	if slot >= l.cfg.BadgeSlots {
		return nil
	}

	if err := l.store.AwardBadge(ctx, account, slot); err != nil {
		return err
	}

	ev := &event.BadgeAwarded{Account: account, Slot: slot}
	l.events.Append(ev)
	l.plugins.EmitBadgeAwarded(ctx, ev)
	return nil
}
