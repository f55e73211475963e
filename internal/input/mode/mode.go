package mode

// Kind identifies an editor mode.
type Kind uint8

const (
	// KindNormal is the command mode the engine hands back to.
	KindNormal Kind = iota

	// KindInsert is insert mode: typed text pushes existing text right.
	KindInsert

	// KindReplace is replace mode: typed text overwrites in place.
	KindReplace
)

// String returns a human-readable mode name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindInsert:
		return "insert"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// VerdictStatus indicates the outcome of processing a key.
type VerdictStatus uint8

const (
	// StatusNotHandled means the key was not consumed; the caller
	// decides the fallback.
	StatusNotHandled VerdictStatus = iota

	// StatusHandled means the key was consumed with no mode change.
	StatusHandled

	// StatusSwitch means the key was consumed and the driver should
	// switch modes.
	StatusSwitch
)

// String returns a human-readable status name.
func (s VerdictStatus) String() string {
	switch s {
	case StatusNotHandled:
		return "not-handled"
	case StatusHandled:
		return "handled"
	case StatusSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Verdict is the engine's answer to one key event.
type Verdict struct {
	// Status indicates whether and how the key was consumed.
	Status VerdictStatus

	// Target is the mode to switch to when Status is StatusSwitch.
	Target Kind

	// Resume, valid when HasResume is set, asks the driver to return
	// to that mode after exactly one externally processed command.
	Resume Kind

	// HasResume marks the one-shot detour described above.
	HasResume bool

	// Arg is an optional argument for the target mode's entry.
	Arg *EnterArg
}

// IsHandled returns true if the key was consumed.
func (v Verdict) IsHandled() bool {
	return v.Status != StatusNotHandled
}

// IsSwitch returns true if the verdict requests a mode switch.
func (v Verdict) IsSwitch() bool {
	return v.Status == StatusSwitch
}

// NotHandled creates a not-handled verdict.
func NotHandled() Verdict {
	return Verdict{Status: StatusNotHandled}
}

// Handled creates a handled verdict with no mode switch.
func Handled() Verdict {
	return Verdict{Status: StatusHandled}
}

// SwitchTo creates a verdict switching to the given mode.
func SwitchTo(target Kind) Verdict {
	return Verdict{Status: StatusSwitch, Target: target}
}

// SwitchToThenResume creates a verdict switching to target for
// exactly one command, after which the driver re-enters resume.
func SwitchToThenResume(target, resume Kind) Verdict {
	return Verdict{Status: StatusSwitch, Target: target, Resume: resume, HasResume: true}
}

// WithArg returns a copy of the verdict carrying an entry argument.
func (v Verdict) WithArg(arg *EnterArg) Verdict {
	v.Arg = arg
	return v
}

// EnterArg describes how insert or replace mode is being entered.
// The zero value is a plain entry: no repetition, no adopted
// transaction.
type EnterArg struct {
	// Count is the repeat count; the recorded change is replayed
	// Count-1 extra times on escape when Count > 1.
	Count int

	// AppendNewLine prefixes each replayed insertion with a line
	// terminator, so each repetition lands on its own line.
	AppendNewLine bool

	// Transaction, when non-nil, is an already-open undo transaction
	// the session adopts instead of opening its own.
	Transaction Transaction
}
