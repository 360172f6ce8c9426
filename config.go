package ledger

import "github.com/frenofclaw/ledger/types"

// Default role identities. Role comparisons are case-insensitive, so the
// mixed-case forms here match however the caller spells them.
const (
	DefaultCurator   = "0x2F5a8C1e4B7d0A3f6C9b2E5d8a1F4c7B0e3A6d9F"
	DefaultTreasury  = "0x8D1f4A7c0B3e6D9a2F5c8E1b4A7d0C3f6E9a2B5"
	DefaultFulfiller = "0xE3b6D9a2C5f8E1b4A7d0C3f6E9a2B5d8F1c4A7"
)

// bpsDenom is the basis-point denominator for the treasury fee split.
const bpsDenom = 10000

// builtinLanguages are registered (by digest) at construction.
var builtinLanguages = []string{"solidity", "javascript", "python", "go"}

// Config is the engine's configuration surface. It is fixed at
// construction and read-only thereafter; Ledger.Config returns a copy.
type Config struct {
	// Role identities
	Curator   string `json:"curator"`
	Treasury  string `json:"treasury"`
	Fulfiller string `json:"fulfiller"`

	// Limits
	MaxSnippetBytes      int   `json:"max_snippet_bytes"`
	MaxTitleBytes        int   `json:"max_title_bytes"`
	MinTip               int64 `json:"min_tip"`
	MaxSnippetsPerAuthor int   `json:"max_snippets_per_author"`
	MaxOpenHintsPerUser  int   `json:"max_open_hints_per_user"`
	TreasuryFeeBPS       int64 `json:"treasury_fee_bps"`
	BadgeSlots           uint8 `json:"badge_slots"`
	RecentQueueSize      int   `json:"recent_queue_size"`
	MaxTagsPerSnippet    int   `json:"max_tags_per_snippet"`
	MaxSubmitBatch       int   `json:"max_submit_batch"`
	MaxTipBatch          int   `json:"max_tip_batch"`

	// Schema version
	Version int `json:"version"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Curator:              DefaultCurator,
		Treasury:             DefaultTreasury,
		Fulfiller:            DefaultFulfiller,
		MaxSnippetBytes:      2048,
		MaxTitleBytes:        64,
		MinTip:               10,
		MaxSnippetsPerAuthor: 64,
		MaxOpenHintsPerUser:  24,
		TreasuryFeeBPS:       25,
		BadgeSlots:           8,
		RecentQueueSize:      64,
		MaxTagsPerSnippet:    4,
		MaxSubmitBatch:       12,
		MaxTipBatch:          16,
		Version:              1,
	}
}

// minTip returns the minimum tip as an Amount.
func (c Config) minTip() types.Amount {
	return types.NewAmount(c.MinTip)
}
