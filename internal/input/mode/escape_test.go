package mode

import (
	"strings"
	"testing"

	"github.com/dshills/editmode/internal/engine/buffer"
)

func TestEscapeMovesCaretLeft(t *testing.T) {
	e, host, _, _ := newTestEngine("abcd")
	e.OnEnter(KindInsert, nil)
	host.MoveCaretTo(buffer.Position{Line: 0, Col: 2})

	v := e.Process(ev("Esc"))
	if !v.IsSwitch() || v.Target != KindNormal {
		t.Fatalf("escape verdict = %+v", v)
	}
	if got := host.Caret(); got != (buffer.Position{Line: 0, Col: 1}) {
		t.Errorf("caret = %v, want 0:1", got)
	}
}

func TestEscapeFromVirtualSpace(t *testing.T) {
	e, host, _, _ := newTestEngine("ab")
	e.OnEnter(KindInsert, nil)
	host.MoveCaretTo(buffer.Position{Line: 0, Col: 7})

	e.Process(ev("Esc"))
	// Snapped to the real end of text, no extra left shift
	if got := host.Caret(); got != (buffer.Position{Line: 0, Col: 2}) {
		t.Errorf("caret = %v, want 0:2", got)
	}
}

func TestEscapeDismissesPopup(t *testing.T) {
	e, host, _, popups := newTestEngine("abcd")
	e.OnEnter(KindInsert, nil)
	host.MoveCaretTo(buffer.Position{Line: 0, Col: 7})
	popups.active = true

	v := e.Process(ev("Esc"))
	if popups.dismissed != 1 {
		t.Errorf("DismissAll called %d times, want 1", popups.dismissed)
	}
	// The popup branch wins over virtual-space handling: plain left
	// shift from the effective caret.
	if got := host.Caret(); got != (buffer.Position{Line: 0, Col: 3}) {
		t.Errorf("caret = %v, want 0:3", got)
	}
	if !v.IsSwitch() || v.Target != KindNormal {
		t.Errorf("verdict = %+v", v)
	}
}

func TestRepeatInsertReplay(t *testing.T) {
	e, host, _, _ := newTestEngine("")
	e.OnEnter(KindInsert, &EnterArg{Count: 3})

	e.Process(ev("a"))
	e.Process(ev("b"))

	e.applyRepeat()
	if got := host.Text(); got != "ababab" {
		t.Errorf("Text() = %q, want ababab", got)
	}
	// Caret ends immediately after the full repeated text
	if got := host.Caret(); got != (buffer.Position{Line: 0, Col: 6}) {
		t.Errorf("caret = %v, want 0:6", got)
	}
	if e.Session().Transaction != nil {
		t.Error("replay should clear the transaction")
	}
}

func TestRepeatInsertViaEscape(t *testing.T) {
	e, host, provider, _ := newTestEngine("")
	e.OnEnter(KindInsert, &EnterArg{Count: 3})

	e.Process(ev("a"))
	e.Process(ev("b"))
	e.Process(ev("Esc"))
	e.OnLeave()

	if got := host.Text(); got != "ababab" {
		t.Errorf("Text() = %q, want ababab", got)
	}
	if got := provider.created[0].completed; got != 1 {
		t.Errorf("transaction completed %d times, want 1", got)
	}
}

func TestRepeatInsertWithNewline(t *testing.T) {
	e, host, _, _ := newTestEngine("")
	e.OnEnter(KindInsert, &EnterArg{Count: 3, AppendNewLine: true})

	e.Process(ev("x"))
	e.applyRepeat()

	if got := host.Text(); got != "x\nx\nx" {
		t.Errorf("Text() = %q, want one x per line", got)
	}
	if got := host.LineCount(); got != 3 {
		t.Errorf("LineCount() = %d, want 3", got)
	}
}

func TestRepeatDeleteReplay(t *testing.T) {
	e, host, _, _ := newTestEngine("abcdefghij")
	e.OnEnter(KindInsert, &EnterArg{Count: 3})
	host.MoveCaretTo(buffer.Position{Line: 0, Col: 0})

	for i := 0; i < 3; i++ {
		e.Process(ev("Del"))
	}
	if got := host.Text(); got != "defghij" {
		t.Fatalf("Text() = %q", got)
	}

	e.applyRepeat()
	// 3 * (3-1) = 6 extra characters deleted forward
	if got := host.Text(); got != "j" {
		t.Errorf("Text() = %q, want j", got)
	}
	// The caret must not visibly move
	if got := host.Caret(); got != (buffer.Position{Line: 0, Col: 0}) {
		t.Errorf("caret = %v, want 0:0", got)
	}
}

func TestRepeatDeleteClampedToDocumentEnd(t *testing.T) {
	e, host, _, _ := newTestEngine("abcde")
	e.OnEnter(KindInsert, &EnterArg{Count: 5})
	host.MoveCaretTo(buffer.Position{Line: 0, Col: 0})

	e.Process(ev("Del"))
	e.Process(ev("Del"))

	e.applyRepeat()
	if got := host.Text(); got != "" {
		t.Errorf("Text() = %q, want empty after clamped deletion", got)
	}
}

func TestNoRepeatWithoutCount(t *testing.T) {
	e, host, _, _ := newTestEngine("")
	e.OnEnter(KindInsert, nil)

	e.Process(ev("a"))
	e.Process(ev("Esc"))

	if got := host.Text(); got != "a" {
		t.Errorf("Text() = %q, want a (no replay requested)", got)
	}
}

func TestNoRepeatWithoutLastChange(t *testing.T) {
	e, host, provider, _ := newTestEngine("abc")
	e.OnEnter(KindInsert, &EnterArg{Count: 4})

	e.Process(ev("Esc"))

	if got := host.Text(); got != "abc" {
		t.Errorf("Text() = %q, want abc untouched", got)
	}
	if got := provider.created[0].completed; got != 1 {
		t.Errorf("transaction completed %d times, want 1", got)
	}
}

func TestTransactionCompletedEvenIfReplayPanics(t *testing.T) {
	e, host, provider, _ := newTestEngine("")
	e.OnEnter(KindInsert, &EnterArg{Count: 2})
	e.Process(ev("a"))

	host.onInsert = func() {
		if strings.Contains(host.Text(), "a") {
			panic("host rejected the replay")
		}
	}

	func() {
		defer func() { _ = recover() }()
		e.Process(ev("Esc"))
	}()

	if got := provider.created[0].completed; got != 1 {
		t.Errorf("transaction completed %d times, want 1", got)
	}
}
