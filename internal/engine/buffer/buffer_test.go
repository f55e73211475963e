package buffer

import "testing"

func TestNewAndText(t *testing.T) {
	tests := []struct {
		text  string
		lines int
	}{
		{"", 1},
		{"abc", 1},
		{"abc\ndef", 2},
		{"abc\n", 2},
	}

	for _, tt := range tests {
		b := New(tt.text)
		if got := b.LineCount(); got != tt.lines {
			t.Errorf("New(%q).LineCount() = %d, want %d", tt.text, got, tt.lines)
		}
		if got := b.Text(); got != tt.text {
			t.Errorf("New(%q).Text() = %q", tt.text, got)
		}
	}
}

func TestInsertText(t *testing.T) {
	b := New("abc")
	b.MoveCaretTo(Position{Line: 0, Col: 1})
	b.InsertText("XY")

	if got := b.Text(); got != "aXYbc" {
		t.Errorf("Text() = %q, want aXYbc", got)
	}
	if got := b.Caret(); got != (Position{Line: 0, Col: 3}) {
		t.Errorf("Caret() = %v, want 0:3", got)
	}
}

func TestInsertTextOverwrite(t *testing.T) {
	b := New("abcd")
	b.SetOverwrite(true)
	b.MoveCaretTo(Position{Line: 0, Col: 1})
	b.InsertText("XY")

	if got := b.Text(); got != "aXYd" {
		t.Errorf("Text() = %q, want aXYd", got)
	}

	// Past end of line, overwrite appends
	b.MoveCaretTo(Position{Line: 0, Col: 4})
	b.InsertText("Z")
	if got := b.Text(); got != "aXYdZ" {
		t.Errorf("Text() = %q, want aXYdZ", got)
	}
}

func TestInsertTextWithNewlines(t *testing.T) {
	b := New("abcd")
	b.MoveCaretTo(Position{Line: 0, Col: 2})
	b.InsertText("x\ny")

	if got := b.Text(); got != "abx\nycd" {
		t.Errorf("Text() = %q, want abx\\nycd", got)
	}
	if got := b.Caret(); got != (Position{Line: 1, Col: 1}) {
		t.Errorf("Caret() = %v, want 1:1", got)
	}
}

func TestInsertNewLine(t *testing.T) {
	b := New("abcd")
	b.MoveCaretTo(Position{Line: 0, Col: 2})
	if !b.InsertNewLine() {
		t.Fatal("InsertNewLine failed")
	}
	if got := b.Text(); got != "ab\ncd" {
		t.Errorf("Text() = %q", got)
	}
	if got := b.Caret(); got != (Position{Line: 1, Col: 0}) {
		t.Errorf("Caret() = %v, want 1:0", got)
	}
}

func TestBackspace(t *testing.T) {
	b := New("ab\ncd")
	b.MoveCaretTo(Position{Line: 1, Col: 1})
	if !b.Backspace() {
		t.Fatal("Backspace failed")
	}
	if got := b.Text(); got != "ab\nd" {
		t.Errorf("Text() = %q", got)
	}

	// At column 0, backspace joins lines
	if !b.Backspace() {
		t.Fatal("Backspace at col 0 failed")
	}
	if got := b.Text(); got != "abd" {
		t.Errorf("Text() = %q, want abd", got)
	}
	if got := b.Caret(); got != (Position{Line: 0, Col: 2}) {
		t.Errorf("Caret() = %v, want 0:2", got)
	}

	// At start of buffer, backspace fails
	b.MoveCaretTo(Position{Line: 0, Col: 0})
	if b.Backspace() {
		t.Error("Backspace at start of buffer should fail")
	}
}

func TestDelete(t *testing.T) {
	b := New("ab\ncd")
	b.MoveCaretTo(Position{Line: 0, Col: 1})
	if !b.Delete() {
		t.Fatal("Delete failed")
	}
	if got := b.Text(); got != "a\ncd" {
		t.Errorf("Text() = %q", got)
	}

	// At end of line, delete joins with the next line
	b.MoveCaretTo(Position{Line: 0, Col: 1})
	if !b.Delete() {
		t.Fatal("Delete at EOL failed")
	}
	if got := b.Text(); got != "acd" {
		t.Errorf("Text() = %q, want acd", got)
	}

	// At end of buffer, delete fails
	b.MoveCaretTo(Position{Line: 0, Col: 3})
	if b.Delete() {
		t.Error("Delete at end of buffer should fail")
	}
}

func TestReplaceSpan(t *testing.T) {
	b := New("abcd")
	b.MoveCaretTo(Position{Line: 0, Col: 3})

	if !b.ReplaceSpan(Position{Line: 0, Col: 1}, 2, "XY") {
		t.Fatal("ReplaceSpan failed")
	}
	if got := b.Text(); got != "aXYd" {
		t.Errorf("Text() = %q, want aXYd", got)
	}
	if got := b.Caret(); got != (Position{Line: 0, Col: 3}) {
		t.Errorf("ReplaceSpan moved caret to %v", got)
	}

	// Out of range
	if b.ReplaceSpan(Position{Line: 0, Col: 3}, 5, "x") {
		t.Error("out-of-range ReplaceSpan should fail")
	}
	if b.ReplaceSpan(Position{Line: 9, Col: 0}, 1, "x") {
		t.Error("bad line ReplaceSpan should fail")
	}
	if b.ReplaceSpan(Position{Line: 0, Col: 0}, 1, "a\nb") {
		t.Error("newline in ReplaceSpan text should fail")
	}
}

func TestCharacterAtAndLineBreak(t *testing.T) {
	b := New("ab\ncd")

	if r, ok := b.CharacterAt(Position{Line: 0, Col: 1}); !ok || r != 'b' {
		t.Errorf("CharacterAt(0:1) = %q, %v", r, ok)
	}
	if _, ok := b.CharacterAt(Position{Line: 0, Col: 2}); ok {
		t.Error("CharacterAt at EOL should fail")
	}

	if !b.IsInsideLineBreak(Position{Line: 0, Col: 2}) {
		t.Error("col == line length should be inside line break")
	}
	if b.IsInsideLineBreak(Position{Line: 0, Col: 1}) {
		t.Error("col within line should not be inside line break")
	}
}

func TestVirtualSpace(t *testing.T) {
	b := New("ab")
	b.MoveCaretTo(Position{Line: 0, Col: 5})

	if !b.IsCaretInVirtualSpace() {
		t.Error("caret past EOL should be in virtual space")
	}
	if got := b.EndOfLinePosition(); got != (Position{Line: 0, Col: 2}) {
		t.Errorf("EndOfLinePosition() = %v, want 0:2", got)
	}

	// Editing at a virtual-space caret acts at end of line
	b.InsertText("c")
	if got := b.Text(); got != "abc" {
		t.Errorf("Text() = %q, want abc", got)
	}

	b.MoveCaretTo(Position{Line: 0, Col: 3})
	if b.IsCaretInVirtualSpace() {
		t.Error("caret at EOL is not virtual space")
	}
}

func TestMoveCaret(t *testing.T) {
	b := New("abcd\nef")

	b.MoveCaretTo(Position{Line: 5, Col: -2})
	if got := b.Caret(); got != (Position{Line: 1, Col: 0}) {
		t.Errorf("clamped caret = %v, want 1:0", got)
	}

	b.MoveCaretTo(Position{Line: 0, Col: 2})
	b.MoveCaretDown(1)
	if got := b.Caret(); got != (Position{Line: 1, Col: 2}) {
		t.Errorf("after down: %v", got)
	}
	b.MoveCaretUp(3)
	if got := b.Caret(); got != (Position{Line: 0, Col: 2}) {
		t.Errorf("after up: %v", got)
	}
	b.MoveCaretLeft(5)
	if got := b.Caret(); got != (Position{Line: 0, Col: 0}) {
		t.Errorf("after left: %v", got)
	}
	b.MoveCaretRight(2)
	if got := b.Caret(); got != (Position{Line: 0, Col: 2}) {
		t.Errorf("after right: %v", got)
	}
}

func TestRemainingLength(t *testing.T) {
	b := New("abcd\nef")
	b.MoveCaretTo(Position{Line: 0, Col: 2})

	// "cd" + newline + "ef"
	if got := b.RemainingLength(); got != 5 {
		t.Errorf("RemainingLength() = %d, want 5", got)
	}

	b.MoveCaretTo(Position{Line: 1, Col: 2})
	if got := b.RemainingLength(); got != 0 {
		t.Errorf("RemainingLength() at end = %d, want 0", got)
	}
}

func TestShiftLines(t *testing.T) {
	b := New("\tabc")

	if !b.ShiftLines(1) {
		t.Fatal("ShiftLines(1) failed")
	}
	if got := b.Line(0); got != "\t\tabc" {
		t.Errorf("Line(0) = %q", got)
	}

	if !b.ShiftLines(-2) {
		t.Fatal("ShiftLines(-2) failed")
	}
	if got := b.Line(0); got != "abc" {
		t.Errorf("Line(0) = %q, want abc", got)
	}

	// No indentation left to remove
	if b.ShiftLines(-1) {
		t.Error("ShiftLines(-1) on unindented line should report no change")
	}
}
