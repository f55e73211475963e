// Package keymap holds the command table for insert and replace
// modes: an immutable mapping from key chords to action names,
// a default table, a TOML loader for user overrides, and a file
// watcher that reloads overrides on change.
package keymap
