package buffer

import "strings"

// Buffer is a line-based text buffer with a caret.
//
// The caret column may sit past the end of its line (virtual space);
// editing operations act at the effective column, which is the caret
// column clamped to the line length. Text is stored with LF line
// separators.
type Buffer struct {
	lines     [][]rune
	caret     Position
	overwrite bool
}

// New creates a buffer holding the given text.
func New(text string) *Buffer {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{lines: lines}
}

// Text returns the full buffer contents.
func (b *Buffer) Text() string {
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i, or "" if out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return string(b.lines[i])
}

// Caret returns the current caret position.
func (b *Buffer) Caret() Position {
	return b.caret
}

// SetOverwrite toggles overwrite behavior: when enabled, InsertText
// replaces the character under the caret instead of pushing it right.
func (b *Buffer) SetOverwrite(on bool) {
	b.overwrite = on
}

// Overwrite reports whether overwrite behavior is enabled.
func (b *Buffer) Overwrite() bool {
	return b.overwrite
}

// MoveCaretTo moves the caret. The line is clamped to the buffer; the
// column is clamped to zero but may exceed the line length.
func (b *Buffer) MoveCaretTo(p Position) {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	b.caret = p
}

// MoveCaretLeft moves the caret n columns left, stopping at column 0.
// A caret in virtual space first snaps to the end of the line.
func (b *Buffer) MoveCaretLeft(n int) {
	col := b.effectiveCol() - n
	if col < 0 {
		col = 0
	}
	b.caret.Col = col
}

// MoveCaretRight moves the caret n columns right, into virtual space
// if the line ends first.
func (b *Buffer) MoveCaretRight(n int) {
	b.caret.Col += n
}

// MoveCaretUp moves the caret n lines up, keeping the column.
func (b *Buffer) MoveCaretUp(n int) {
	b.MoveCaretTo(Position{Line: b.caret.Line - n, Col: b.caret.Col})
}

// MoveCaretDown moves the caret n lines down, keeping the column.
func (b *Buffer) MoveCaretDown(n int) {
	b.MoveCaretTo(Position{Line: b.caret.Line + n, Col: b.caret.Col})
}

// effectiveCol is the caret column clamped to the current line.
func (b *Buffer) effectiveCol() int {
	line := b.lines[b.caret.Line]
	if b.caret.Col > len(line) {
		return len(line)
	}
	return b.caret.Col
}

// InsertText inserts s at the caret and moves the caret past the
// inserted text. In overwrite mode each non-newline character replaces
// the character under the caret when one exists. Newlines in s split
// the line.
func (b *Buffer) InsertText(s string) bool {
	line := b.caret.Line
	col := b.effectiveCol()

	for _, r := range s {
		if r == '\n' {
			rest := append([]rune(nil), b.lines[line][col:]...)
			b.lines[line] = b.lines[line][:col]
			b.lines = append(b.lines[:line+1], append([][]rune{rest}, b.lines[line+1:]...)...)
			line++
			col = 0
			continue
		}
		cur := b.lines[line]
		if b.overwrite && col < len(cur) {
			cur[col] = r
		} else {
			cur = append(cur[:col], append([]rune{r}, cur[col:]...)...)
			b.lines[line] = cur
		}
		col++
	}

	b.caret = Position{Line: line, Col: col}
	return true
}

// InsertNewLine inserts a line break at the caret.
func (b *Buffer) InsertNewLine() bool {
	return b.InsertText("\n")
}

// Backspace deletes the character before the caret, joining lines when
// the caret is at column 0. Returns false at the start of the buffer.
func (b *Buffer) Backspace() bool {
	line := b.caret.Line
	col := b.effectiveCol()

	if col > 0 {
		cur := b.lines[line]
		b.lines[line] = append(cur[:col-1], cur[col:]...)
		b.caret = Position{Line: line, Col: col - 1}
		return true
	}
	if line == 0 {
		return false
	}
	prevLen := len(b.lines[line-1])
	b.lines[line-1] = append(b.lines[line-1], b.lines[line]...)
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.caret = Position{Line: line - 1, Col: prevLen}
	return true
}

// Delete deletes the character at the caret, joining the next line
// when the caret sits at the end of a line. Returns false at the end
// of the buffer.
func (b *Buffer) Delete() bool {
	line := b.caret.Line
	col := b.effectiveCol()
	cur := b.lines[line]

	if col < len(cur) {
		b.lines[line] = append(cur[:col], cur[col+1:]...)
		b.caret = Position{Line: line, Col: col}
		return true
	}
	if line == len(b.lines)-1 {
		return false
	}
	b.lines[line] = append(cur, b.lines[line+1]...)
	b.lines = append(b.lines[:line+1], b.lines[line+2:]...)
	b.caret = Position{Line: line, Col: col}
	return true
}

// ReplaceSpan replaces length characters at p with s. The span must
// lie within a single line; s must not contain newlines. The caret is
// not moved.
func (b *Buffer) ReplaceSpan(p Position, length int, s string) bool {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return false
	}
	cur := b.lines[p.Line]
	if p.Col < 0 || length < 0 || p.Col+length > len(cur) {
		return false
	}
	if strings.ContainsRune(s, '\n') {
		return false
	}
	repl := []rune(s)
	next := make([]rune, 0, len(cur)-length+len(repl))
	next = append(next, cur[:p.Col]...)
	next = append(next, repl...)
	next = append(next, cur[p.Col+length:]...)
	b.lines[p.Line] = next
	return true
}

// CharacterAt returns the character at p, or false if p is out of
// range or sits in the line-break region.
func (b *Buffer) CharacterAt(p Position) (rune, bool) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, false
	}
	cur := b.lines[p.Line]
	if p.Col < 0 || p.Col >= len(cur) {
		return 0, false
	}
	return cur[p.Col], true
}

// IsInsideLineBreak reports whether p sits at or past the end of its
// line, where there is no real character to overwrite.
func (b *Buffer) IsInsideLineBreak(p Position) bool {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return false
	}
	return p.Col >= len(b.lines[p.Line])
}

// IsCaretInVirtualSpace reports whether the caret is strictly past the
// last character of its line.
func (b *Buffer) IsCaretInVirtualSpace() bool {
	return b.caret.Col > len(b.lines[b.caret.Line])
}

// EndOfLinePosition returns the position just past the last character
// of the caret's line, the nearest real text position for a caret in
// virtual space.
func (b *Buffer) EndOfLinePosition() Position {
	return Position{Line: b.caret.Line, Col: len(b.lines[b.caret.Line])}
}

// RemainingLength returns the number of characters from the effective
// caret position to the end of the buffer, counting one per line
// break.
func (b *Buffer) RemainingLength() int {
	n := len(b.lines[b.caret.Line]) - b.effectiveCol()
	for i := b.caret.Line + 1; i < len(b.lines); i++ {
		n += 1 + len(b.lines[i])
	}
	return n
}

// ShiftLines shifts the caret's line by the given number of indent
// levels: positive prepends tabs, negative removes leading tabs.
// Returns true if the line changed.
func (b *Buffer) ShiftLines(levels int) bool {
	line := b.caret.Line
	cur := b.lines[line]

	if levels > 0 {
		indent := make([]rune, levels)
		for i := range indent {
			indent[i] = '\t'
		}
		b.lines[line] = append(indent, cur...)
		return true
	}

	removed := 0
	for removed < -levels && len(cur) > 0 && cur[0] == '\t' {
		cur = cur[1:]
		removed++
	}
	if removed == 0 {
		return false
	}
	b.lines[line] = cur
	return true
}
