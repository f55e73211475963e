package buffer

import "fmt"

// Position is a caret location in a buffer.
// Lines and columns are 0-indexed and rune-based.
type Position struct {
	Line int
	Col  int
}

// String returns "line:col" for diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
