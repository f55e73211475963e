package mode

// EditKind discriminates the tracked per-keystroke edits of a replace
// session.
type EditKind uint8

const (
	// EditInsertChar records a character appended where none existed.
	EditInsertChar EditKind = iota

	// EditReplaceChar records a character overwritten in place; the
	// old character is kept so backspace can restore it.
	EditReplaceChar

	// EditNewLine records an inserted line break. Backspace consumes
	// it without mutating the buffer.
	EditNewLine

	// EditUnknown records an untracked edit, such as a one-command
	// detour into normal mode. It blocks precise backspace-undo of
	// anything beneath it.
	EditUnknown
)

// String returns a human-readable edit kind name.
func (k EditKind) String() string {
	switch k {
	case EditInsertChar:
		return "insert-char"
	case EditReplaceChar:
		return "replace-char"
	case EditNewLine:
		return "new-line"
	case EditUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// TextEditRecord describes one atomic tracked edit.
type TextEditRecord struct {
	Kind EditKind

	// Char is the character typed, for EditInsertChar and
	// EditReplaceChar.
	Char rune

	// Old is the character that was overwritten, for EditReplaceChar.
	Old rune
}

// InsertCharRecord creates a record of a pure character insertion.
func InsertCharRecord(c rune) TextEditRecord {
	return TextEditRecord{Kind: EditInsertChar, Char: c}
}

// ReplaceCharRecord creates a record of a character overwrite.
func ReplaceCharRecord(old, c rune) TextEditRecord {
	return TextEditRecord{Kind: EditReplaceChar, Char: c, Old: old}
}

// NewLineRecord creates a record of an inserted line break.
func NewLineRecord() TextEditRecord {
	return TextEditRecord{Kind: EditNewLine}
}

// UnknownEditRecord creates a record of an untracked edit.
func UnknownEditRecord() TextEditRecord {
	return TextEditRecord{Kind: EditUnknown}
}

// RepeatData is the repeat descriptor set when the mode was entered
// with a count greater than one.
type RepeatData struct {
	Count         int
	AppendNewLine bool
}

// SessionState is the per-activation state of insert or replace mode.
// Transition functions replace it wholesale rather than mutating it
// in place, so a sampled value is always a consistent snapshot.
type SessionState struct {
	// Transaction is the open undo transaction, nil outside an
	// activation that needs one.
	Transaction Transaction

	// Repeat is the repeat descriptor, nil unless the mode was entered
	// with a count greater than one.
	Repeat *RepeatData

	// Edits is the replace-mode edit stack, most recent last. Insert
	// mode never pushes onto it.
	Edits []TextEditRecord
}

// IsEmpty reports whether the session carries no state.
func (s SessionState) IsEmpty() bool {
	return s.Transaction == nil && s.Repeat == nil && len(s.Edits) == 0
}

// push returns a copy of the session with rec on top of the edit
// stack.
func (s SessionState) push(rec TextEditRecord) SessionState {
	edits := make([]TextEditRecord, len(s.Edits)+1)
	copy(edits, s.Edits)
	edits[len(s.Edits)] = rec
	s.Edits = edits
	return s
}

// pop returns the top record and a copy of the session without it.
// ok is false on an empty stack.
func (s SessionState) pop() (rec TextEditRecord, rest SessionState, ok bool) {
	if len(s.Edits) == 0 {
		return TextEditRecord{}, s, false
	}
	rec = s.Edits[len(s.Edits)-1]
	rest = s
	rest.Edits = s.Edits[:len(s.Edits)-1]
	return rec, rest, true
}

// withoutTransaction returns a copy of the session with the
// transaction cleared.
func (s SessionState) withoutTransaction() SessionState {
	s.Transaction = nil
	return s
}
