// Package snippet defines the code snippet entity tracked by the ledger.
package snippet

import (
	"slices"

	"github.com/frenofclaw/ledger/types"
)

// Snippet is a submitted code snippet. The engine stores only the content
// digest, never the content itself. IDs are dense, start at 1, and are
// never reused. Timestamps are milliseconds since epoch.
type Snippet struct {
	ID          uint64         `json:"id"`
	Author      string         `json:"author"`
	ContentHash types.Digest   `json:"content_hash"`
	LanguageID  types.Digest   `json:"language_id"`
	Title       string         `json:"title,omitempty"`
	CreatedAt   int64          `json:"created_at"`
	UpdatedAt   int64          `json:"updated_at"`
	TipBalance  types.Amount   `json:"tip_balance"`
	Score       uint64         `json:"score"`
	Deleted     bool           `json:"deleted"`
	Tags        []types.Digest `json:"tags,omitempty"`
}

// Active reports whether the snippet has not been deleted.
func (s *Snippet) Active() bool { return !s.Deleted }

// HasTag reports whether the snippet already carries the given tag.
func (s *Snippet) HasTag(tag types.Digest) bool {
	return slices.Contains(s.Tags, tag)
}

// Clone returns a deep copy. The store hands out clones so callers can
// never mutate ledger state through a read.
func (s *Snippet) Clone() *Snippet {
	c := *s
	c.Tags = slices.Clone(s.Tags)
	return &c
}
