package tracking

import "sync"

// ChangeKind discriminates the kinds of tracked changes.
type ChangeKind uint8

const (
	// ChangeInsert is a run of inserted text.
	ChangeInsert ChangeKind = iota

	// ChangeDelete is a run of forward deletions.
	ChangeDelete
)

// String returns a human-readable kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Change describes the most recent completed change to a buffer:
// either inserted text or a count of deleted characters.
type Change struct {
	Kind  ChangeKind
	Text  string // inserted text, for ChangeInsert
	Count int    // deleted characters, for ChangeDelete
}

// Tracker records the most recent change to a buffer. Consecutive
// changes of the same kind coalesce into one run; a change of the
// other kind, or an explicit Break, starts a new run. All operations
// are thread-safe.
type Tracker struct {
	mu     sync.Mutex
	last   Change
	valid  bool
	sealed bool
}

// NewTracker creates an empty change tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordInsert records inserted text, extending the current insert
// run if one is open.
func (t *Tracker) RecordInsert(text string) {
	if text == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.valid && !t.sealed && t.last.Kind == ChangeInsert {
		t.last.Text += text
		return
	}
	t.last = Change{Kind: ChangeInsert, Text: text}
	t.valid = true
	t.sealed = false
}

// RecordDelete records n deleted characters, extending the current
// delete run if one is open.
func (t *Tracker) RecordDelete(n int) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.valid && !t.sealed && t.last.Kind == ChangeDelete {
		t.last.Count += n
		return
	}
	t.last = Change{Kind: ChangeDelete, Count: n}
	t.valid = true
	t.sealed = false
}

// Break seals the current run: the next record starts a new change.
// Call on caret movement or any untracked edit.
func (t *Tracker) Break() {
	t.mu.Lock()
	t.sealed = true
	t.mu.Unlock()
}

// LastChange returns the most recent change, if any.
func (t *Tracker) LastChange() (Change, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last, t.valid
}

// Reset forgets all recorded changes.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.last = Change{}
	t.valid = false
	t.sealed = false
	t.mu.Unlock()
}
