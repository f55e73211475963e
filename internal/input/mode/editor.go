package mode

import (
	"github.com/dshills/editmode/internal/engine/buffer"
	"github.com/dshills/editmode/internal/engine/tracking"
)

// Host is the text editor surface the engine edits through. Mutating
// operations report success; a false return means the edit was not
// applied and the engine leaves its session untouched.
type Host interface {
	// InsertText inserts s at the caret, honoring overwrite behavior,
	// and leaves the caret just past the inserted text.
	InsertText(s string) bool

	// InsertNewLine inserts a line break at the caret.
	InsertNewLine() bool

	// Backspace deletes the character before the caret.
	Backspace() bool

	// Delete deletes the character at the caret.
	Delete() bool

	// ReplaceSpan replaces length characters at p with s without
	// moving the caret.
	ReplaceSpan(p buffer.Position, length int, s string) bool

	// Caret returns the caret position.
	Caret() buffer.Position

	// MoveCaretTo moves the caret to p.
	MoveCaretTo(p buffer.Position)

	// Caret motion by n lines or columns.
	MoveCaretLeft(n int)
	MoveCaretRight(n int)
	MoveCaretUp(n int)
	MoveCaretDown(n int)

	// CharacterAt returns the character at p, false if none exists
	// there.
	CharacterAt(p buffer.Position) (rune, bool)

	// IsInsideLineBreak reports whether p sits in a line-break region,
	// with no real character to overwrite.
	IsInsideLineBreak(p buffer.Position) bool

	// IsCaretInVirtualSpace reports whether the caret is past the last
	// character of its line.
	IsCaretInVirtualSpace() bool

	// EndOfLinePosition returns the nearest real text position for the
	// caret's line.
	EndOfLinePosition() buffer.Position

	// RemainingLength returns the number of characters from the caret
	// to the end of the document.
	RemainingLength() int

	// SetOverwrite toggles host-level overwrite behavior.
	SetOverwrite(on bool)

	// ShiftLines shifts the current line range by the given number of
	// indent levels.
	ShiftLines(levels int) bool
}

// Transaction is a host-provided undo scope grouping multiple buffer
// mutations into one undo step. Complete must be idempotent.
type Transaction interface {
	ID() string
	Complete()
}

// TransactionProvider opens undo transactions.
type TransactionProvider interface {
	CreateTransaction() Transaction
}

// ChangeTracker exposes the most recent completed change to the
// buffer, used for repeat-count replay on escape.
type ChangeTracker interface {
	LastChange() (tracking.Change, bool)
}

// PopupBroker reports and dismisses completion, signature-help and
// quick-info popups.
type PopupBroker interface {
	IsAnyPopupActive() bool
	DismissAll()
}
