// Package event defines the ledger's append-only audit log.
//
// Every mutating operation appends exactly one typed record. The log is
// read-only bookkeeping: the engine never consults it to make decisions.
package event

import (
	"github.com/frenofclaw/ledger/id"
	"github.com/frenofclaw/ledger/types"
)

// Kind names an event payload variant.
type Kind string

// Kind constants, one per mutating operation.
const (
	KindSnippetSubmitted   Kind = "snippet.submitted"
	KindSnippetUpdated     Kind = "snippet.updated"
	KindSnippetDeleted     Kind = "snippet.deleted"
	KindSnippetTipped      Kind = "snippet.tipped"
	KindTipsWithdrawn      Kind = "tips.withdrawn"
	KindTreasuryWithdrawn  Kind = "treasury.withdrawn"
	KindHintRequested      Kind = "hint.requested"
	KindHintFulfilled      Kind = "hint.fulfilled"
	KindLanguageRegistered Kind = "language.registered"
	KindReputationUpvote   Kind = "reputation.upvote"
	KindReputationDownvote Kind = "reputation.downvote"
	KindPauseToggled       Kind = "pause.toggled"
	KindBadgeAwarded       Kind = "badge.awarded"
	KindTagAdded           Kind = "tag.added"
)

// Payload is the closed union of event variants. Callers type-switch on
// the concrete payload or filter by Kind.
type Payload interface {
	Kind() Kind
}

// Record is one appended log entry: a globally unique TypeID, a dense
// per-log sequence number starting at 1, and the typed payload.
type Record struct {
	ID      id.ID   `json:"id"`
	Seq     uint64  `json:"seq"`
	Payload Payload `json:"payload"`
}

// SnippetSubmitted records a successful snippet submission.
type SnippetSubmitted struct {
	SnippetID   uint64       `json:"snippet_id"`
	Author      string       `json:"author"`
	ContentHash types.Digest `json:"content_hash"`
	LanguageID  types.Digest `json:"language_id"`
	CreatedAt   int64        `json:"created_at"`
}

func (*SnippetSubmitted) Kind() Kind { return KindSnippetSubmitted }

// SnippetUpdated records a content replacement.
type SnippetUpdated struct {
	SnippetID   uint64       `json:"snippet_id"`
	Author      string       `json:"author"`
	ContentHash types.Digest `json:"content_hash"`
	UpdatedAt   int64        `json:"updated_at"`
}

func (*SnippetUpdated) Kind() Kind { return KindSnippetUpdated }

// SnippetDeleted records a deletion.
type SnippetDeleted struct {
	SnippetID uint64 `json:"snippet_id"`
	Author    string `json:"author"`
	DeletedAt int64  `json:"deleted_at"`
}

func (*SnippetDeleted) Kind() Kind { return KindSnippetDeleted }

// SnippetTipped records a tip, including both fee shares.
type SnippetTipped struct {
	SnippetID uint64       `json:"snippet_id"`
	Tipper    string       `json:"tipper"`
	Amount    types.Amount `json:"amount"`
	Fee       types.Amount `json:"fee"`
	ToAuthor  types.Amount `json:"to_author"`
}

func (*SnippetTipped) Kind() Kind { return KindSnippetTipped }

// TipsWithdrawn records an author zeroing their withdrawable balance.
type TipsWithdrawn struct {
	Author string       `json:"author"`
	Amount types.Amount `json:"amount"`
}

func (*TipsWithdrawn) Kind() Kind { return KindTipsWithdrawn }

// TreasuryWithdrawn records the treasury collecting accrued fees.
type TreasuryWithdrawn struct {
	Treasury string       `json:"treasury"`
	Amount   types.Amount `json:"amount"`
}

func (*TreasuryWithdrawn) Kind() Kind { return KindTreasuryWithdrawn }

// HintRequested records a new hint request.
type HintRequested struct {
	HintID    uint64       `json:"hint_id"`
	Requester string       `json:"requester"`
	TopicHash types.Digest `json:"topic_hash"`
	SnippetID uint64       `json:"snippet_id,omitempty"`
	CreatedAt int64        `json:"created_at"`
}

func (*HintRequested) Kind() Kind { return KindHintRequested }

// HintFulfilled records the terminal fulfillment of a hint request.
type HintFulfilled struct {
	HintID      uint64 `json:"hint_id"`
	Fulfiller   string `json:"fulfiller"`
	FulfilledAt int64  `json:"fulfilled_at"`
}

func (*HintFulfilled) Kind() Kind { return KindHintFulfilled }

// LanguageRegistered records a curator adding a language digest.
type LanguageRegistered struct {
	LanguageID types.Digest `json:"language_id"`
}

func (*LanguageRegistered) Kind() Kind { return KindLanguageRegistered }

// ReputationUpvote records an upvote and the snippet's resulting score.
type ReputationUpvote struct {
	SnippetID uint64 `json:"snippet_id"`
	Voter     string `json:"voter"`
	NewScore  uint64 `json:"new_score"`
}

func (*ReputationUpvote) Kind() Kind { return KindReputationUpvote }

// ReputationDownvote records a downvote and the snippet's resulting score.
type ReputationDownvote struct {
	SnippetID uint64 `json:"snippet_id"`
	Voter     string `json:"voter"`
	NewScore  uint64 `json:"new_score"`
}

func (*ReputationDownvote) Kind() Kind { return KindReputationDownvote }

// PauseToggled records the curator flipping the global pause flag.
type PauseToggled struct {
	Paused bool `json:"paused"`
}

func (*PauseToggled) Kind() Kind { return KindPauseToggled }

// BadgeAwarded records the curator setting a badge slot on an account.
type BadgeAwarded struct {
	Account string `json:"account"`
	Slot    uint8  `json:"slot"`
}

func (*BadgeAwarded) Kind() Kind { return KindBadgeAwarded }

// TagAdded records a tag appended to a snippet.
type TagAdded struct {
	SnippetID uint64       `json:"snippet_id"`
	Tag       types.Digest `json:"tag"`
}

func (*TagAdded) Kind() Kind { return KindTagAdded }
