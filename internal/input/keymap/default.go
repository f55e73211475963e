package keymap

// Action names bound by the default insert/replace command table.
// These are the commands the editing engine dispatches on.
const (
	ActionCursorUp      = "cursor.up"
	ActionCursorDown    = "cursor.down"
	ActionCursorLeft    = "cursor.left"
	ActionCursorRight   = "cursor.right"
	ActionToggleReplace = "mode.toggleReplace"
	ActionShiftLeft     = "indent.shiftLeft"
	ActionShiftRight    = "indent.shiftRight"
	ActionOneShotNormal = "mode.oneShotNormal"
	ActionEscape        = "mode.escape"
)

// Default returns the built-in command table for insert and replace
// modes.
func Default() *Keymap {
	k := New("insert-default")
	k.MustBind("Up", ActionCursorUp)
	k.MustBind("Down", ActionCursorDown)
	k.MustBind("Left", ActionCursorLeft)
	k.MustBind("Right", ActionCursorRight)
	k.MustBind("Ins", ActionToggleReplace)
	k.MustBind("<C-d>", ActionShiftLeft)
	k.MustBind("<C-t>", ActionShiftRight)
	k.MustBind("<C-o>", ActionOneShotNormal)
	k.MustBind("Esc", ActionEscape)
	return k
}
