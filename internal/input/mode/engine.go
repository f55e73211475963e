package mode

import (
	"go.uber.org/zap"

	"github.com/dshills/editmode/internal/engine/buffer"
	"github.com/dshills/editmode/internal/input/key"
	"github.com/dshills/editmode/internal/input/keymap"
)

// Engine processes key events while the editor is in insert or
// replace mode. One Engine serves both disciplines; OnEnter selects
// which one is active for the activation.
//
// The engine is single-threaded: all methods must be called from the
// thread delivering key events. Processing one key may reentrantly
// deliver another (the one-shot normal detour); IsProcessingTextInput
// exposes that depth to collaborators.
type Engine struct {
	host         Host
	transactions TransactionProvider
	changes      ChangeTracker
	popups       PopupBroker
	table        *keymap.Keymap
	log          *zap.Logger

	kind      Kind
	session   SessionState
	textDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithKeymap replaces the default command table.
func WithKeymap(table *keymap.Keymap) Option {
	return func(e *Engine) {
		e.table = table
	}
}

// WithPopupBroker sets the popup broker consulted on escape.
func WithPopupBroker(popups PopupBroker) Option {
	return func(e *Engine) {
		e.popups = popups
	}
}

// NewEngine creates an engine bound to its host collaborators.
func NewEngine(host Host, transactions TransactionProvider, changes ChangeTracker, opts ...Option) *Engine {
	e := &Engine{
		host:         host,
		transactions: transactions,
		changes:      changes,
		table:        keymap.Default(),
		log:          zap.NewNop(),
		kind:         KindInsert,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetKeymap replaces the live command table, for keymap reloads.
// The caller must serialize this with Process.
func (e *Engine) SetKeymap(table *keymap.Keymap) {
	if table != nil {
		e.table = table
	}
}

// Kind returns the active discipline, KindInsert or KindReplace.
func (e *Engine) Kind() Kind {
	return e.kind
}

// Session returns a snapshot of the current session state.
func (e *Engine) Session() SessionState {
	return e.session
}

// IsProcessingTextInput reports whether a text-input edit is currently
// being processed, including reentrant delivery.
func (e *Engine) IsProcessingTextInput() bool {
	return e.textDepth > 0
}

// IsTextInput reports whether the event is literal text input. A key
// bound in the command table is never text input; otherwise Enter,
// Backspace and Delete always are, and any other key is iff it
// carries a printable character.
func (e *Engine) IsTextInput(ev key.Event) bool {
	if e.table.Contains(ev) {
		return false
	}
	if ev.IsEnter() || ev.IsBackspace() || ev.IsDelete() {
		return true
	}
	return ev.IsChar() && !ev.IsModified()
}

// CanProcess reports whether Process would consume the event: it is
// either bound in the command table or classified as text input.
func (e *Engine) CanProcess(ev key.Event) bool {
	return e.table.Contains(ev) || e.IsTextInput(ev)
}

// Process routes one key event: command table first, then text input.
// Keys matching neither yield a not-handled verdict for the caller to
// route elsewhere.
func (e *Engine) Process(ev key.Event) Verdict {
	if action, ok := e.table.Lookup(ev); ok {
		return e.runCommand(action)
	}
	if e.IsTextInput(ev) {
		return e.processTextInput(ev)
	}
	return NotHandled()
}

// runCommand executes a command-table action.
func (e *Engine) runCommand(action string) Verdict {
	switch action {
	case keymap.ActionCursorUp:
		e.host.MoveCaretUp(1)
		return Handled()
	case keymap.ActionCursorDown:
		e.host.MoveCaretDown(1)
		return Handled()
	case keymap.ActionCursorLeft:
		e.host.MoveCaretLeft(1)
		return Handled()
	case keymap.ActionCursorRight:
		e.host.MoveCaretRight(1)
		return Handled()
	case keymap.ActionToggleReplace:
		if e.kind == KindReplace {
			return SwitchTo(KindInsert)
		}
		return SwitchTo(KindReplace)
	case keymap.ActionShiftLeft:
		e.host.ShiftLines(-1)
		return Handled()
	case keymap.ActionShiftRight:
		e.host.ShiftLines(1)
		return Handled()
	case keymap.ActionOneShotNormal:
		// The impending command is untracked; in replace mode it must
		// block precise backspace-undo beneath it.
		if e.kind == KindReplace {
			e.session = e.session.push(UnknownEditRecord())
		}
		return SwitchToThenResume(KindNormal, e.kind)
	case keymap.ActionEscape:
		return e.ProcessEscape()
	default:
		e.log.Warn("unknown action in command table", zap.String("action", action))
		return NotHandled()
	}
}

// processTextInput applies the active discipline to a text-input key.
// The reentrancy depth is restored even if the host edit panics.
func (e *Engine) processTextInput(ev key.Event) Verdict {
	e.textDepth++
	defer func() {
		e.textDepth--
	}()

	if e.kind == KindReplace {
		return e.replaceEdit(ev)
	}
	return e.insertEdit(ev)
}

// insertEdit is the insert discipline: edits are forwarded to the
// host, which owns undo for them. No records are tracked.
func (e *Engine) insertEdit(ev key.Event) Verdict {
	var ok bool
	switch {
	case ev.IsEnter():
		ok = e.host.InsertNewLine()
	case ev.IsBackspace():
		ok = e.host.Backspace()
	case ev.IsDelete():
		ok = e.host.Delete()
	default:
		ok = e.host.InsertText(string(ev.Rune))
	}
	if !ok {
		return NotHandled()
	}
	return Handled()
}

// replaceEdit is the replace discipline: every keystroke is tracked
// on the session's edit stack so backspace can undo overwrites
// precisely. The session is only committed when the host edit
// succeeded.
func (e *Engine) replaceEdit(ev key.Event) Verdict {
	switch {
	case ev.IsEnter():
		// Pushed regardless of the host outcome so backspace cannot
		// walk past the break into edits it would undo incorrectly.
		e.host.InsertNewLine()
		e.session = e.session.push(NewLineRecord())
		return Handled()
	case ev.IsBackspace():
		return e.replaceBackspace()
	case ev.IsDelete():
		// Deleting under the caret needs no tracking; backspace never
		// has to restore it.
		if !e.host.Delete() {
			return NotHandled()
		}
		return Handled()
	default:
		return e.replaceChar(ev.Rune)
	}
}

// replaceBackspace undoes the most recent tracked edit.
func (e *Engine) replaceBackspace() Verdict {
	rec, rest, ok := e.session.pop()
	if !ok {
		// Nothing this session touched; a generic backspace would
		// delete a character that was never edited.
		return Handled()
	}

	switch rec.Kind {
	case EditInsertChar:
		if !e.host.Backspace() {
			return NotHandled()
		}
		e.session = rest
		return Handled()

	case EditReplaceChar:
		caret := e.host.Caret()
		if caret.Col == 0 {
			return NotHandled()
		}
		pos := buffer.Position{Line: caret.Line, Col: caret.Col - 1}
		// Restore by direct replacement: the host's native undo would
		// not know about the overwritten character.
		if !e.host.ReplaceSpan(pos, 1, string(rec.Old)) {
			return NotHandled()
		}
		e.host.MoveCaretTo(pos)
		e.session = rest
		return Handled()

	case EditNewLine, EditUnknown:
		// Consume the record only. The underlying edit cannot be
		// safely reversed here; the record exists to block undo past
		// this point.
		e.session = rest
		return Handled()

	default:
		return NotHandled()
	}
}

// replaceChar types one character in replace mode, recording what it
// displaced.
func (e *Engine) replaceChar(c rune) Verdict {
	caret := e.host.Caret()

	var rec TextEditRecord
	if e.host.IsInsideLineBreak(caret) {
		rec = InsertCharRecord(c)
	} else {
		old, ok := e.host.CharacterAt(caret)
		if !ok {
			return NotHandled()
		}
		rec = ReplaceCharRecord(old, c)
	}

	if !e.host.InsertText(string(c)) {
		return NotHandled()
	}
	e.session = e.session.push(rec)
	return Handled()
}

// ProcessEscape leaves for normal mode: replay any repeat count,
// close the transaction, then place the caret.
func (e *Engine) ProcessEscape() Verdict {
	e.applyRepeat()

	switch {
	case e.popups != nil && e.popups.IsAnyPopupActive():
		e.popups.DismissAll()
		e.host.MoveCaretLeft(1)
	case e.host.IsCaretInVirtualSpace():
		// Snap to real text without the extra left shift.
		e.host.MoveCaretTo(e.host.EndOfLinePosition())
	default:
		e.host.MoveCaretLeft(1)
	}

	return SwitchTo(KindNormal)
}

// OnEnter begins an activation of insert or replace mode.
//
// A prior activation that was not cleanly left may still be visible
// here; its state is discarded, matching OnLeave's force-reset.
func (e *Engine) OnEnter(kind Kind, arg *EnterArg) {
	e.kind = kind

	next := SessionState{}
	switch {
	case arg != nil && arg.Transaction != nil:
		next.Transaction = arg.Transaction
	case arg != nil && arg.Count > 1:
		next.Transaction = e.transactions.CreateTransaction()
		next.Repeat = &RepeatData{Count: arg.Count, AppendNewLine: arg.AppendNewLine}
	default:
		// Replace mode needs a transaction boundary even without
		// repetition for its backspace-undo to group correctly.
		if kind == KindReplace {
			next.Transaction = e.transactions.CreateTransaction()
		}
	}
	e.session = next

	if kind == KindReplace {
		e.host.SetOverwrite(true)
	}

	e.log.Debug("mode entered",
		zap.Stringer("kind", kind),
		zap.Bool("transaction", next.Transaction != nil),
		zap.Bool("repeat", next.Repeat != nil))
}

// OnLeave ends the activation. Any open transaction is completed and
// the session is reset to empty even if completion panics; calling
// with no active session is a no-op reset.
func (e *Engine) OnLeave() {
	defer func() {
		if e.kind == KindReplace {
			e.host.SetOverwrite(false)
		}
		e.session = SessionState{}
		e.log.Debug("mode left", zap.Stringer("kind", e.kind))
	}()

	if tx := e.session.Transaction; tx != nil {
		tx.Complete()
	}
}
