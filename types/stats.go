package types

import "fmt"

// Stats is a point-in-time snapshot of the engine's global counters.
// TipsReceived counts gross tip amounts (treasury fee included);
// FeesCollected and FeesWithdrawn track the treasury side. SnippetCount
// and HintCount are monotonic and include deleted/fulfilled records.
type Stats struct {
	TipsReceived  Amount `json:"tips_received"`
	TipsWithdrawn Amount `json:"tips_withdrawn"`
	FeesCollected Amount `json:"fees_collected"`
	FeesWithdrawn Amount `json:"fees_withdrawn"`
	SnippetCount  uint64 `json:"snippet_count"`
	HintCount     uint64 `json:"hint_count"`
}

// TreasuryBalance returns the treasury fees accrued and not yet withdrawn.
func (s Stats) TreasuryBalance() Amount {
	return s.FeesCollected.Sub(s.FeesWithdrawn)
}

// String returns a single-line summary suitable for log output.
func (s Stats) String() string {
	return fmt.Sprintf("snippets=%d hints=%d tips=%s withdrawn=%s fees=%s",
		s.SnippetCount, s.HintCount, s.TipsReceived, s.TipsWithdrawn, s.FeesCollected)
}
