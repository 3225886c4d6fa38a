package ribbon

import "fmt"

// GrammarError reports a token in the compact string form (or a kind in
// the structured form) that could not be interpreted.
type GrammarError struct {
	Clause string // "start" or "path"
	Token  string // the offending token, verbatim
	Index  int    // token position within the clause, 0-based
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("ribbon: %s clause, token %d %q: %s", e.Clause, e.Index, e.Token, e.Reason)
}

// ValidationError reports a command sequence that is structurally or
// numerically invalid before any geometry is computed.
type ValidationError struct {
	Index  int // command position in the sequence, 0-based; -1 if not tied to one command
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return "ribbon: invalid command sequence: " + e.Reason
	}
	return fmt.Sprintf("ribbon: invalid command %d: %s", e.Index, e.Reason)
}

// DegenerateArcError reports an arc whose offset boundary collapses: the
// offset radius on one side of the ribbon is zero or negative, so the
// boundary would invert at that corner.
type DegenerateArcError struct {
	Index        int     // command position in the sequence, 0-based
	Radius       float64 // centerline radius of the arc command
	OffsetRadius float64 // resulting boundary radius, <= 0
}

func (e *DegenerateArcError) Error() string {
	return fmt.Sprintf("ribbon: arc command %d: offset radius %g (centerline radius %g) is not positive; ribbon is too wide for this turn",
		e.Index, e.OffsetRadius, e.Radius)
}
