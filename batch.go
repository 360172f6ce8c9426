package ledger

import (
	"context"

	"github.com/frenofclaw/ledger/types"
)

// SubmitSnippetBatch submits up to MaxSubmitBatch snippets in one language,
// in order. The batch is not atomic: it stops at the first entry that fails
// its checks and returns the ids created so far with a nil error. The
// contents and titles slices must have equal length.
func (l *Ledger) SubmitSnippetBatch(ctx context.Context, author string, contents [][]byte, titles []string, languageID types.Digest) ([]uint64, error) {
	if l.paused.Load() {
		return nil, ErrPaused
	}
	if len(contents) > l.cfg.MaxSubmitBatch {
		return nil, ErrBatchTooLarge
	}
	if len(titles) != len(contents) {
		return nil, ErrBatchLengthMismatch
	}

	ids := make([]uint64, 0, len(contents))
	for i := range contents {
		id, err := l.SubmitSnippet(ctx, author, contents[i], languageID, titles[i])
		if err != nil {
			l.logger.Debug("submit batch stopped", "index", i, "err", err)
			break
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// TipSnippetBatch tips several snippets in one call. Unlike submission
// batches, tipping is all-or-error: the first failing entry aborts the
// batch and returns its error, leaving earlier entries applied. The
// asymmetry with SubmitSnippetBatch is deliberate.
func (l *Ledger) TipSnippetBatch(ctx context.Context, tipper string, ids []uint64, amounts []types.Amount) error {
	if l.paused.Load() {
		return ErrPaused
	}
	if len(ids) > l.cfg.MaxTipBatch {
		return ErrBatchTooLarge
	}
	if len(amounts) != len(ids) {
		return ErrBatchLengthMismatch
	}

	for i := range ids {
		if err := l.TipSnippet(ctx, ids[i], tipper, amounts[i]); err != nil {
			return err
		}
	}
	return nil
}
