package mode

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/editmode/internal/engine/tracking"
)

// lineTerminator prefixes each replayed insertion when the mode was
// entered with an append-newline count.
const lineTerminator = "\n"

// applyRepeat replays the last recorded change Count-1 extra times.
// Whatever happens during replay, the open transaction is completed
// and cleared; leaving it open would wedge the host's undo stack.
func (e *Engine) applyRepeat() {
	defer e.completeTransaction()

	rep := e.session.Repeat
	if rep == nil || rep.Count <= 1 {
		return
	}
	change, ok := e.changes.LastChange()
	if !ok {
		return
	}

	switch change.Kind {
	case tracking.ChangeInsert:
		payload := change.Text
		if rep.AppendNewLine {
			payload = lineTerminator + payload
		}
		repeated := strings.Repeat(payload, rep.Count-1)
		if repeated == "" {
			return
		}
		e.host.InsertText(repeated)
		e.log.Debug("replayed insertion",
			zap.Int("count", rep.Count),
			zap.Int("chars", len(repeated)))

	case tracking.ChangeDelete:
		extra := change.Count * (rep.Count - 1)
		if remaining := e.host.RemainingLength(); extra > remaining {
			extra = remaining
		}
		if extra <= 0 {
			return
		}
		// Deletion must not visibly move the caret.
		origin := e.host.Caret()
		for i := 0; i < extra; i++ {
			if !e.host.Delete() {
				break
			}
		}
		e.host.MoveCaretTo(origin)
		e.log.Debug("replayed deletion",
			zap.Int("count", rep.Count),
			zap.Int("chars", extra))
	}
}

// completeTransaction closes and clears the session's transaction, if
// any.
func (e *Engine) completeTransaction() {
	tx := e.session.Transaction
	e.session = e.session.withoutTransaction()
	if tx != nil {
		tx.Complete()
	}
}
