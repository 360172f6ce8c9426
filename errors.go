package ledger

import "errors"

// Sentinel errors for every domain failure. Each is a distinct kind;
// callers match with errors.Is rather than on message text. All failures
// reflect a violated precondition — none are retryable.
var (
	// Authorization errors
	ErrCuratorOnly   = errors.New("ledger: curator only")
	ErrTreasuryOnly  = errors.New("ledger: treasury only")
	ErrFulfillerOnly = errors.New("ledger: fulfiller only")

	// Lifecycle state errors
	ErrPaused               = errors.New("ledger: paused")
	ErrSnippetDeleted       = errors.New("ledger: snippet deleted")
	ErrHintAlreadyFulfilled = errors.New("ledger: hint already fulfilled")

	// Input bound errors
	ErrSnippetTooLong = errors.New("ledger: snippet too long")
	ErrTitleTooLong   = errors.New("ledger: title too long")
	ErrTipTooSmall    = errors.New("ledger: tip too small")

	// Capacity errors
	ErrAuthorSnippetCap = errors.New("ledger: author snippet cap reached")
	ErrHintRequestCap   = errors.New("ledger: hint request cap reached")

	// Not-found errors
	ErrInvalidSnippetID = errors.New("ledger: invalid snippet id")
	ErrInvalidHintID    = errors.New("ledger: invalid hint id")

	// Identity errors
	ErrNotAuthor        = errors.New("ledger: not author")
	ErrCannotVoteOwn    = errors.New("ledger: cannot vote own snippet")
	ErrAlreadyUpvoted   = errors.New("ledger: already upvoted")
	ErrAlreadyDownvoted = errors.New("ledger: already downvoted")

	// Resource errors
	ErrInsufficientBalance = errors.New("ledger: insufficient balance")

	// Configuration errors
	ErrZeroAddress               = errors.New("ledger: zero address")
	ErrLanguageNotRegistered     = errors.New("ledger: language not registered")
	ErrLanguageAlreadyRegistered = errors.New("ledger: language already registered")

	// Batch shape errors
	ErrBatchTooLarge       = errors.New("ledger: batch too large")
	ErrBatchLengthMismatch = errors.New("ledger: batch length mismatch")
)

// IsNotFound reports whether the error refers to an unknown record id.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidSnippetID) ||
		errors.Is(err, ErrInvalidHintID)
}

// IsAuthorization reports whether the error is a role or identity check
// failure.
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrCuratorOnly) ||
		errors.Is(err, ErrTreasuryOnly) ||
		errors.Is(err, ErrFulfillerOnly) ||
		errors.Is(err, ErrNotAuthor) ||
		errors.Is(err, ErrCannotVoteOwn)
}

// IsCapacity reports whether the error is a cap or size limit violation.
func IsCapacity(err error) bool {
	return errors.Is(err, ErrAuthorSnippetCap) ||
		errors.Is(err, ErrHintRequestCap) ||
		errors.Is(err, ErrSnippetTooLong) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrBatchTooLarge)
}
