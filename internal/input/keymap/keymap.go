package keymap

import (
	"fmt"

	"github.com/dshills/editmode/internal/input/key"
)

// Binding maps a key chord to an action name.
type Binding struct {
	// Keys is the chord that triggers the binding.
	// Formats: "Up", "Ins", "<C-t>", "Ctrl+O", "Esc".
	Keys string `toml:"keys"`

	// Action is the name of the action to run, e.g. "cursor.left".
	Action string `toml:"action"`

	// Description documents the binding.
	Description string `toml:"description,omitempty"`
}

// Keymap is an immutable-after-construction mapping from key chords
// to action names. Lookup is pure.
type Keymap struct {
	name     string
	bindings map[key.Event]string
}

// New creates an empty keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		name:     name,
		bindings: make(map[key.Event]string),
	}
}

// Name returns the keymap identifier.
func (k *Keymap) Name() string {
	return k.name
}

// Bind adds a chord-to-action mapping. The chord is parsed eagerly;
// an invalid chord or empty action is an error.
func (k *Keymap) Bind(keys, action string) error {
	if action == "" {
		return fmt.Errorf("binding %q: empty action", keys)
	}
	ev, err := key.Parse(keys)
	if err != nil {
		return fmt.Errorf("binding %q: %w", keys, err)
	}
	k.bindings[normalize(ev)] = action
	return nil
}

// MustBind adds a binding and panics on error. For static tables.
func (k *Keymap) MustBind(keys, action string) *Keymap {
	if err := k.Bind(keys, action); err != nil {
		panic(err)
	}
	return k
}

// Lookup returns the action bound to the event, if any.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	action, ok := k.bindings[normalize(ev)]
	return action, ok
}

// Contains reports whether the event is bound.
func (k *Keymap) Contains(ev key.Event) bool {
	_, ok := k.Lookup(ev)
	return ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// normalize canonicalizes an event for table lookup: Shift is dropped
// from character events because the shifted character already encodes
// it.
func normalize(ev key.Event) key.Event {
	if ev.Key == key.KeyRune {
		ev.Modifiers = ev.Modifiers.Without(key.ModShift)
	}
	return ev
}
