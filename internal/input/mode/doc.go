// Package mode implements the insert/replace editing engine of a
// modal editor.
//
// The Engine consumes key events while insert or replace mode is
// active. Keys bound in the command table run fixed actions (caret
// motion, indent shifts, mode toggles, escape); everything classified
// as text input is routed through the active discipline. Insert mode
// forwards edits to the host; replace mode additionally tracks each
// keystroke on a session edit stack so backspace can restore
// overwritten characters by direct replacement.
//
// A mode activation spans one OnEnter/OnLeave pair. Entering with a
// repeat count opens a linked undo transaction and records a repeat
// descriptor; on escape the last recorded change is replayed count-1
// extra times before the transaction is completed. OnLeave always
// resets the session, tolerating abnormal prior exits.
package mode
