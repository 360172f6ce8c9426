package audithook

// Action constants for audit events.
const (
	// Snippet actions
	ActionSnippetSubmitted = "snippet.submitted"
	ActionSnippetUpdated   = "snippet.updated"
	ActionSnippetDeleted   = "snippet.deleted"
	ActionTagAdded         = "snippet.tag.added"

	// Tip actions
	ActionSnippetTipped     = "snippet.tipped"
	ActionTipsWithdrawn     = "tips.withdrawn"
	ActionTreasuryWithdrawn = "treasury.withdrawn"

	// Hint actions
	ActionHintRequested = "hint.requested"
	ActionHintFulfilled = "hint.fulfilled"

	// Reputation actions
	ActionUpvote   = "reputation.upvote"
	ActionDownvote = "reputation.downvote"

	// Admin actions
	ActionLanguageRegistered = "language.registered"
	ActionPauseToggled       = "pause.toggled"
	ActionBadgeAwarded       = "badge.awarded"
)

// Resource constants for audit events.
const (
	ResourceSnippet  = "snippet"
	ResourceHint     = "hint"
	ResourceAccount  = "account"
	ResourceTreasury = "treasury"
	ResourceLanguage = "language"
	ResourceLedger   = "ledger"
)

// Category constants for audit events.
const (
	CategoryContent    = "content"
	CategoryPayment    = "payment"
	CategoryReputation = "reputation"
	CategoryAdmin      = "admin"
)

// Severity levels for audit events.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityError    = "error"
	SeverityCritical = "critical"
)

// Outcome values for audit events.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomePartial = "partial"
)
