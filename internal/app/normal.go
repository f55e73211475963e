package app

import (
	"github.com/dshills/editmode/internal/engine/buffer"
	"github.com/dshills/editmode/internal/input/key"
	"github.com/dshills/editmode/internal/input/mode"
)

// handleNormalKey processes one key in normal mode. Digits accumulate
// a count consumed by the next command.
func (app *Application) handleNormalKey(ev key.Event) {
	if ev.IsRune() && ev.Rune >= '0' && ev.Rune <= '9' {
		// A leading zero is not a count prefix.
		if !(ev.Rune == '0' && app.pendingCount == 0) {
			app.pendingCount = app.pendingCount*10 + int(ev.Rune-'0')
			return
		}
	}

	app.runNormalCommand(ev)
}

// runNormalCommand executes one normal-mode command with the pending
// count. It reports whether the key mapped to a command; unmapped
// keys are dropped without consuming the count.
func (app *Application) runNormalCommand(ev key.Event) bool {
	count := app.pendingCount
	if count < 1 {
		count = 1
	}

	var handled bool
	switch {
	case ev.IsRune() && !ev.IsModified():
		handled = app.runNormalRune(ev.Rune, count)
	case ev.Key == key.KeyLeft:
		app.host.MoveCaretLeft(count)
		handled = true
	case ev.Key == key.KeyRight:
		app.host.MoveCaretRight(count)
		handled = true
	case ev.Key == key.KeyUp:
		app.host.MoveCaretUp(count)
		handled = true
	case ev.Key == key.KeyDown:
		app.host.MoveCaretDown(count)
		handled = true
	case ev.IsEscape():
		handled = true
	}

	if handled {
		app.pendingCount = 0
	}
	return handled
}

func (app *Application) runNormalRune(r rune, count int) bool {
	switch r {
	case 'h':
		app.host.MoveCaretLeft(count)
	case 'l':
		app.host.MoveCaretRight(count)
	case 'k':
		app.host.MoveCaretUp(count)
	case 'j':
		app.host.MoveCaretDown(count)
	case '0':
		caret := app.host.Caret()
		app.host.MoveCaretTo(buffer.Position{Line: caret.Line, Col: 0})
	case '$':
		app.host.MoveCaretTo(app.host.EndOfLinePosition())
	case 'x':
		for i := 0; i < count; i++ {
			if !app.host.Delete() {
				break
			}
		}
	case 'i':
		app.enterEditing(mode.KindInsert, &mode.EnterArg{Count: count})
	case 'a':
		if !app.host.IsCaretInVirtualSpace() {
			app.host.MoveCaretRight(1)
		}
		app.enterEditing(mode.KindInsert, &mode.EnterArg{Count: count})
	case 'A':
		app.host.MoveCaretTo(app.host.EndOfLinePosition())
		app.enterEditing(mode.KindInsert, &mode.EnterArg{Count: count})
	case 'o':
		app.host.MoveCaretTo(app.host.EndOfLinePosition())
		app.host.InsertNewLine()
		app.enterEditing(mode.KindInsert, &mode.EnterArg{
			Count:         count,
			AppendNewLine: count > 1,
		})
	case 'R':
		app.enterEditing(mode.KindReplace, &mode.EnterArg{Count: count})
	case 'q':
		app.quit = true
	default:
		return false
	}
	return true
}
