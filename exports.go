package ledger

import "github.com/frenofclaw/ledger/types"

// Re-export common types for convenience so users don't have to import types package.

// Amount is re-exported from types package.
type Amount = types.Amount

// Digest is re-exported from types package.
type Digest = types.Digest

// Stats is re-exported from types package.
type Stats = types.Stats

// Re-export Amount constructors and helpers
var (
	NewAmount        = types.NewAmount
	NewAmountFromBig = types.NewAmountFromBig
	ParseAmount      = types.ParseAmount
	ZeroAmount       = types.ZeroAmount
	SumAmounts       = types.SumAmounts
	SplitFee         = types.SplitFee
)

// Re-export the default content-addressing oracle
var SHA3Sum = types.SHA3Sum
