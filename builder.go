package ribbon

// Boundary is one offset side of the ribbon: the ordered segments
// produced by a single pass over the command sequence, plus the turtle
// state after the final command (needed for the end cap).
type Boundary struct {
	Segments []Segment
	Final    Turtle
}

// First returns the starting point of the boundary.
func (b Boundary) First() Point { return b.Segments[0].First() }

// Last returns the end point of the boundary.
func (b Boundary) Last() Point { return b.Segments[len(b.Segments)-1].Last() }

// BuildBoundaries validates the command sequence and runs the turtle
// over it twice, both times forward: once with d = +half_width for the
// outer boundary and once with d = -half_width for the inner one. The
// two passes share nothing but the immutable command slice.
//
// Any DegenerateArcError aborts the build and carries the index of the
// offending command.
func BuildBoundaries(cmds []Command) (outer, inner Boundary, err error) {
	if err := Validate(cmds); err != nil {
		return Boundary{}, Boundary{}, err
	}
	start := cmds[0].(Start)
	hw := start.Width / 2
	outer, err = tracePass(cmds, start, +hw)
	if err != nil {
		return Boundary{}, Boundary{}, err
	}
	inner, err = tracePass(cmds, start, -hw)
	if err != nil {
		return Boundary{}, Boundary{}, err
	}
	return outer, inner, nil
}

// tracePass replays the drawing commands with one fixed offset.
func tracePass(cmds []Command, start Start, d float64) (Boundary, error) {
	t := NewTurtle(start)
	segs := make([]Segment, 0, len(cmds)-1)
	for i, cmd := range cmds[1:] {
		next, seg, err := t.Advance(cmd, d)
		if err != nil {
			if de, ok := err.(*DegenerateArcError); ok {
				de.Index = i + 1
			}
			return Boundary{}, err
		}
		segs = append(segs, seg)
		t = next
	}
	Logger().Debug("traced ribbon boundary", "offset", d, "segments", len(segs))
	return Boundary{Segments: segs, Final: t}, nil
}
