// Package key provides keyboard event types and key chord notation
// parsing.
//
// An Event is a value describing one key press: a special key (Escape,
// Enter, arrows) or a character with modifiers. Events are comparable
// and can be built from textual chord specifications such as "a",
// "<C-t>", "Ctrl+O" or "Esc" via Parse.
package key
