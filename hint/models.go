// Package hint defines the hint request entity tracked by the ledger.
package hint

import "github.com/frenofclaw/ledger/types"

// Request is a request for a hint on a topic, optionally linked to a
// snippet (SnippetID 0 means no link). Fulfillment is terminal: once
// Fulfilled flips true the record never changes again.
type Request struct {
	ID          uint64       `json:"id"`
	Requester   string       `json:"requester"`
	TopicHash   types.Digest `json:"topic_hash"`
	SnippetID   uint64       `json:"snippet_id,omitempty"`
	CreatedAt   int64        `json:"created_at"`
	Fulfilled   bool         `json:"fulfilled"`
	Fulfiller   string       `json:"fulfiller,omitempty"`
	FulfilledAt int64        `json:"fulfilled_at,omitempty"`
}

// Open reports whether the request has not been fulfilled yet.
func (r *Request) Open() bool { return !r.Fulfilled }

// Clone returns a copy of the request.
func (r *Request) Clone() *Request {
	c := *r
	return &c
}
