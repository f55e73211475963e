// Package terminal translates tcell keyboard events into the editor's
// key representation.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editmode/internal/input/key"
)

// TranslateKey converts a tcell key event to a key.Event.
// Keys without an editor mapping produce an event with key.KeyNone.
func TranslateKey(ev *tcell.EventKey) key.Event {
	mods := translateModifiers(ev.Modifiers())

	switch tk := ev.Key(); tk {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	default:
		// tcell folds Ctrl chords into dedicated key codes
		if tk >= tcell.KeyCtrlA && tk <= tcell.KeyCtrlZ {
			r := rune('a' + (tk - tcell.KeyCtrlA))
			return key.NewRuneEvent(r, mods.With(key.ModCtrl))
		}
		return key.Event{}
	}
}

func translateModifiers(m tcell.ModMask) key.Modifier {
	mods := key.ModNone
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
