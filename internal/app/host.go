package app

import (
	"github.com/dshills/editmode/internal/engine/buffer"
	"github.com/dshills/editmode/internal/engine/history"
	"github.com/dshills/editmode/internal/engine/tracking"
	"github.com/dshills/editmode/internal/input/mode"
)

// editorHost binds the text buffer to the mode engine's host surface
// and records edits into the change tracker so escape can replay them.
type editorHost struct {
	*buffer.Buffer
	changes *tracking.Tracker
}

func newEditorHost(text string) *editorHost {
	return &editorHost{
		Buffer:  buffer.New(text),
		changes: tracking.NewTracker(),
	}
}

func (h *editorHost) InsertText(s string) bool {
	if !h.Buffer.InsertText(s) {
		return false
	}
	h.changes.RecordInsert(s)
	return true
}

// InsertNewLine seals the change run. Repetition replays contiguous
// typing; a line break ends the run it belongs to.
func (h *editorHost) InsertNewLine() bool {
	if !h.Buffer.InsertNewLine() {
		return false
	}
	h.changes.Break()
	return true
}

func (h *editorHost) Backspace() bool {
	if !h.Buffer.Backspace() {
		return false
	}
	h.changes.Break()
	return true
}

func (h *editorHost) Delete() bool {
	if !h.Buffer.Delete() {
		return false
	}
	h.changes.RecordDelete(1)
	return true
}

// Explicit caret motion ends any coalescing run.

func (h *editorHost) MoveCaretUp(n int) {
	h.changes.Break()
	h.Buffer.MoveCaretUp(n)
}

func (h *editorHost) MoveCaretDown(n int) {
	h.changes.Break()
	h.Buffer.MoveCaretDown(n)
}

func (h *editorHost) MoveCaretLeft(n int) {
	h.changes.Break()
	h.Buffer.MoveCaretLeft(n)
}

func (h *editorHost) MoveCaretRight(n int) {
	h.changes.Break()
	h.Buffer.MoveCaretRight(n)
}

// txProvider adapts the history provider to the engine's
// transaction surface.
type txProvider struct {
	provider *history.Provider
}

func (p *txProvider) CreateTransaction() mode.Transaction {
	return p.provider.CreateTransaction()
}
