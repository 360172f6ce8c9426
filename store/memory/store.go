// Package memory provides the in-memory Store implementation.
//
// All state lives behind a single RWMutex. Every mutation validates its
// preconditions under the lock before touching any map, so a failed call
// leaves no partial state behind, and compound transitions (cap check +
// insert, vote + reputation recompute, balance credit/zero) are atomic.
package memory

import (
	"context"
	"sync"

	"github.com/frenofclaw/ledger"
	"github.com/frenofclaw/ledger/hint"
	"github.com/frenofclaw/ledger/snippet"
	"github.com/frenofclaw/ledger/types"
)

type Store struct {
	mu sync.RWMutex

	// Snippet storage. byAuthor keeps every id an author ever created,
	// deleted included; active listings filter on the record.
	snippets      map[uint64]*snippet.Snippet
	nextSnippetID uint64
	byAuthor      map[string][]uint64
	byContentHash map[types.Digest]uint64
	recent        []uint64 // newest first

	// Hint storage
	hints       map[uint64]*hint.Request
	nextHintID  uint64
	byRequester map[string][]uint64

	// Author aggregates
	balances   map[string]types.Amount
	reputation map[string]uint64
	badges     map[string]uint8

	// Voter state: snippet id sets per voter, mutually exclusive per id
	upvotes   map[string]map[uint64]struct{}
	downvotes map[string]map[uint64]struct{}

	// Language registry: digest → active snippet count
	languages map[types.Digest]uint64

	// Global counters
	tipsReceived  types.Amount
	tipsWithdrawn types.Amount
	feesCollected types.Amount
	feesWithdrawn types.Amount
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		snippets:      make(map[uint64]*snippet.Snippet),
		nextSnippetID: 1,
		byAuthor:      make(map[string][]uint64),
		byContentHash: make(map[types.Digest]uint64),
		hints:         make(map[uint64]*hint.Request),
		nextHintID:    1,
		byRequester:   make(map[string][]uint64),
		balances:      make(map[string]types.Amount),
		reputation:    make(map[string]uint64),
		badges:        make(map[string]uint8),
		upvotes:       make(map[string]map[uint64]struct{}),
		downvotes:     make(map[string]map[uint64]struct{}),
		languages:     make(map[types.Digest]uint64),
	}
}

// Snippet mutations

func (s *Store) InsertSnippet(_ context.Context, snip *snippet.Snippet, maxPerAuthor, recentKeep int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.languages[snip.LanguageID]; !ok {
		return 0, ledger.ErrLanguageNotRegistered
	}
	if s.activeCountLocked(snip.Author) >= maxPerAuthor {
		return 0, ledger.ErrAuthorSnippetCap
	}

	id := s.nextSnippetID
	s.nextSnippetID++

	stored := snip.Clone()
	stored.ID = id
	s.snippets[id] = stored
	s.byAuthor[snip.Author] = append(s.byAuthor[snip.Author], id)
	s.byContentHash[snip.ContentHash] = id
	s.languages[snip.LanguageID]++

	// Newest at the front, oldest evicted from the tail.
	s.recent = append([]uint64{id}, s.recent...)
	if len(s.recent) > recentKeep {
		s.recent = s.recent[:recentKeep]
	}

	return id, nil
}

func (s *Store) UpdateSnippetContent(_ context.Context, id uint64, author string, hash types.Digest, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[id]
	if !ok {
		return ledger.ErrInvalidSnippetID
	}
	if snip.Deleted {
		return ledger.ErrSnippetDeleted
	}
	if snip.Author != author {
		return ledger.ErrNotAuthor
	}

	if s.byContentHash[snip.ContentHash] == id {
		delete(s.byContentHash, snip.ContentHash)
	}
	snip.ContentHash = hash
	snip.UpdatedAt = updatedAt
	s.byContentHash[hash] = id
	return nil
}

func (s *Store) DeleteSnippet(_ context.Context, id uint64, author string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[id]
	if !ok {
		return ledger.ErrInvalidSnippetID
	}
	if snip.Deleted {
		return ledger.ErrSnippetDeleted
	}
	if snip.Author != author {
		return ledger.ErrNotAuthor
	}

	snip.Deleted = true
	if s.languages[snip.LanguageID] > 0 {
		s.languages[snip.LanguageID]--
	}
	return nil
}

func (s *Store) AddTag(_ context.Context, id uint64, tag types.Digest, author string, maxTags int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[id]
	if !ok {
		return false, ledger.ErrInvalidSnippetID
	}
	if snip.Deleted {
		return false, ledger.ErrSnippetDeleted
	}
	if snip.Author != author {
		return false, ledger.ErrNotAuthor
	}
	if len(snip.Tags) >= maxTags || snip.HasTag(tag) {
		return false, nil
	}

	snip.Tags = append(snip.Tags, tag)
	return true, nil
}

// Tipping

func (s *Store) TipSnippet(_ context.Context, id uint64, amount, fee, toAuthor types.Amount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, ok := s.snippets[id]
	if !ok {
		return ledger.ErrInvalidSnippetID
	}
	if snip.Deleted {
		return ledger.ErrSnippetDeleted
	}

	snip.TipBalance = snip.TipBalance.Add(toAuthor)
	s.balances[snip.Author] = s.balances[snip.Author].Add(toAuthor)
	s.tipsReceived = s.tipsReceived.Add(amount)
	s.feesCollected = s.feesCollected.Add(fee)
	return nil
}

func (s *Store) WithdrawTips(_ context.Context, author string) (types.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := s.balances[author]
	if !balance.IsPositive() {
		return types.Amount{}, ledger.ErrInsufficientBalance
	}

	s.balances[author] = types.ZeroAmount()
	s.tipsWithdrawn = s.tipsWithdrawn.Add(balance)
	return balance, nil
}

func (s *Store) WithdrawTreasuryFees(_ context.Context) (types.Amount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accrued := s.feesCollected.Sub(s.feesWithdrawn)
	if !accrued.IsPositive() {
		return types.Amount{}, ledger.ErrInsufficientBalance
	}

	s.feesWithdrawn = s.feesWithdrawn.Add(accrued)
	return accrued, nil
}

// Hints

func (s *Store) InsertHint(_ context.Context, req *hint.Request, maxOpen int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.openHintCountLocked(req.Requester) >= maxOpen {
		return 0, ledger.ErrHintRequestCap
	}
	if req.SnippetID != 0 {
		snip, ok := s.snippets[req.SnippetID]
		if !ok {
			return 0, ledger.ErrInvalidSnippetID
		}
		if snip.Deleted {
			return 0, ledger.ErrSnippetDeleted
		}
	}

	id := s.nextHintID
	s.nextHintID++

	stored := req.Clone()
	stored.ID = id
	s.hints[id] = stored
	s.byRequester[req.Requester] = append(s.byRequester[req.Requester], id)
	return id, nil
}

func (s *Store) FulfillHint(_ context.Context, id uint64, fulfiller string, fulfilledAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.hints[id]
	if !ok {
		return ledger.ErrInvalidHintID
	}
	if req.Fulfilled {
		return ledger.ErrHintAlreadyFulfilled
	}

	req.Fulfilled = true
	req.Fulfiller = fulfiller
	req.FulfilledAt = fulfilledAt
	return nil
}

// Languages

func (s *Store) RegisterLanguage(_ context.Context, lang types.Digest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.languages[lang]; ok {
		return ledger.ErrLanguageAlreadyRegistered
	}
	s.languages[lang] = 0
	return nil
}

// Reputation and badges

func (s *Store) Upvote(_ context.Context, id uint64, voter string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, err := s.votableLocked(id, voter)
	if err != nil {
		return 0, err
	}
	if _, ok := s.upvotes[voter][id]; ok {
		return 0, ledger.ErrAlreadyUpvoted
	}

	// Switching direction: undo the prior downvote before applying.
	if _, ok := s.downvotes[voter][id]; ok {
		delete(s.downvotes[voter], id)
		snip.Score++
	}

	if s.upvotes[voter] == nil {
		s.upvotes[voter] = make(map[uint64]struct{})
	}
	s.upvotes[voter][id] = struct{}{}
	snip.Score++

	s.recomputeReputationLocked(snip.Author)
	return snip.Score, nil
}

func (s *Store) Downvote(_ context.Context, id uint64, voter string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snip, err := s.votableLocked(id, voter)
	if err != nil {
		return 0, err
	}
	if _, ok := s.downvotes[voter][id]; ok {
		return 0, ledger.ErrAlreadyDownvoted
	}

	if _, ok := s.upvotes[voter][id]; ok {
		delete(s.upvotes[voter], id)
		if snip.Score > 0 {
			snip.Score--
		}
	}

	if s.downvotes[voter] == nil {
		s.downvotes[voter] = make(map[uint64]struct{})
	}
	s.downvotes[voter][id] = struct{}{}
	if snip.Score > 0 {
		snip.Score--
	}

	s.recomputeReputationLocked(snip.Author)
	return snip.Score, nil
}

func (s *Store) AwardBadge(_ context.Context, account string, slot uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.badges[account] |= 1 << slot
	return nil
}

// votableLocked resolves a snippet for voting. Voter identity is a
// case-sensitive exact match against the author.
func (s *Store) votableLocked(id uint64, voter string) (*snippet.Snippet, error) {
	snip, ok := s.snippets[id]
	if !ok {
		return nil, ledger.ErrInvalidSnippetID
	}
	if snip.Deleted {
		return nil, ledger.ErrSnippetDeleted
	}
	if snip.Author == voter {
		return nil, ledger.ErrCannotVoteOwn
	}
	return snip, nil
}

// recomputeReputationLocked rebuilds the author's aggregate reputation as
// the sum of scores across their non-deleted snippets.
func (s *Store) recomputeReputationLocked(author string) {
	var total uint64
	for _, id := range s.byAuthor[author] {
		if snip := s.snippets[id]; snip != nil && !snip.Deleted {
			total += snip.Score
		}
	}
	s.reputation[author] = total
}

func (s *Store) activeCountLocked(author string) int {
	count := 0
	for _, id := range s.byAuthor[author] {
		if snip := s.snippets[id]; snip != nil && !snip.Deleted {
			count++
		}
	}
	return count
}

func (s *Store) openHintCountLocked(requester string) int {
	count := 0
	for _, id := range s.byRequester[requester] {
		if req := s.hints[id]; req != nil && !req.Fulfilled {
			count++
		}
	}
	return count
}

// Reads

func (s *Store) GetSnippet(_ context.Context, id uint64) (*snippet.Snippet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snip, ok := s.snippets[id]
	if !ok {
		return nil, false
	}
	return snip.Clone(), true
}

func (s *Store) GetHint(_ context.Context, id uint64) (*hint.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.hints[id]
	if !ok {
		return nil, false
	}
	return req.Clone(), true
}

func (s *Store) SnippetsByAuthor(_ context.Context, author string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.byAuthor[author]))
	for _, id := range s.byAuthor[author] {
		if snip := s.snippets[id]; snip != nil && !snip.Deleted {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) BalanceOf(_ context.Context, author string) types.Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[author]
}

func (s *Store) ReputationOf(_ context.Context, author string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reputation[author]
}

func (s *Store) BadgesOf(_ context.Context, account string) uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.badges[account]
}

func (s *Store) LanguageCount(_ context.Context, lang types.Digest) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, ok := s.languages[lang]
	return count, ok
}

func (s *Store) Languages(_ context.Context) []types.Digest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]types.Digest, 0, len(s.languages))
	for lang := range s.languages {
		langs = append(langs, lang)
	}
	return langs
}

func (s *Store) RecentSnippets(_ context.Context) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]uint64, len(s.recent))
	copy(out, s.recent)
	return out
}

func (s *Store) OpenHints(_ context.Context, requester string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []uint64
	for _, id := range s.byRequester[requester] {
		if req := s.hints[id]; req != nil && !req.Fulfilled {
			ids = append(ids, id)
		}
	}
	return ids
}

func (s *Store) FindByContentHash(_ context.Context, hash types.Digest) (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byContentHash[hash]
	return id, ok
}

func (s *Store) HasVoted(_ context.Context, id uint64, voter string) (up, down bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, up = s.upvotes[voter][id]
	_, down = s.downvotes[voter][id]
	return up, down
}

func (s *Store) Stats(_ context.Context) types.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return types.Stats{
		TipsReceived:  s.tipsReceived,
		TipsWithdrawn: s.tipsWithdrawn,
		FeesCollected: s.feesCollected,
		FeesWithdrawn: s.feesWithdrawn,
		SnippetCount:  s.nextSnippetID - 1,
		HintCount:     s.nextHintID - 1,
	}
}

// Management

func (s *Store) Ping(_ context.Context) error {
	return nil // Always available
}

func (s *Store) Close() error {
	return nil // Nothing to close
}
