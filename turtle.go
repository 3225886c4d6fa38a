package ribbon

// Turtle tracks the plotting state while a command sequence is replayed:
// the centerline position, the direction of travel and the ribbon
// half-width. A Turtle is a value; Advance returns the next state rather
// than mutating, so independent passes over the same commands can never
// interfere.
type Turtle struct {
	Position  Point
	Direction float64 // degrees
	HalfWidth float64
}

// NewTurtle seeds a turtle from a Start command.
func NewTurtle(s Start) Turtle {
	return Turtle{
		Position:  s.Position,
		Direction: s.Direction,
		HalfWidth: s.Width / 2,
	}
}

// leftNormal returns the unit vector perpendicular to the direction of
// travel, pointing to the turtle's left (direction + 90 degrees).
func (t Turtle) leftNormal() Point {
	return heading(t.Direction + 90)
}

// Offset returns the boundary point displaced from the centerline by d
// along the left normal. Positive d is the turtle's left side, negative
// its right.
func (t Turtle) Offset(d float64) Point {
	return t.Position.Add(t.leftNormal().Mul(d))
}

// Advance consumes one drawing command and returns the updated turtle
// together with the boundary segment offset by the signed perpendicular
// distance d from the centerline.
//
// For a line the boundary is a parallel line displaced by d. For an arc
// turning through a signed sweep, the boundary shares the centerline
// arc's center and sweep but has radius
//
//	radius - sign(sweep)*d
//
// which collapses to a *DegenerateArcError when it is not positive (the
// ribbon is wider than the turn allows). The transition is a pure
// function of (state, command, d).
func (t Turtle) Advance(cmd Command, d float64) (Turtle, Segment, error) {
	switch c := cmd.(type) {
	case Line:
		from := t.Offset(d)
		next := t
		next.Position = t.Position.Add(heading(t.Direction).Mul(c.Length))
		return next, LineSeg{From: from, To: next.Offset(d)}, nil

	case Arc:
		// Turn center sits on the left normal for a CCW sweep, on
		// the right for CW.
		turn := 1.0
		if c.Angle < 0 {
			turn = -1.0
		}
		center := t.Position.Add(t.leftNormal().Mul(turn * c.Radius))
		offsetRadius := c.Radius - turn*d
		if offsetRadius <= 0 {
			return t, nil, &DegenerateArcError{Index: -1, Radius: c.Radius, OffsetRadius: offsetRadius}
		}
		sweep := Radians(c.Angle)
		startAngle := t.Offset(d).Sub(center).Angle()

		next := t
		next.Position = t.Position.RotateAbout(center, sweep)
		next.Direction = t.Direction + c.Angle
		seg := ArcSeg{
			Center:     center,
			Radius:     offsetRadius,
			StartAngle: startAngle,
			EndAngle:   startAngle + sweep,
		}
		return next, seg, nil

	case Start:
		return t, nil, &ValidationError{Index: -1, Reason: "start command may only appear first"}
	}
	return t, nil, &ValidationError{Index: -1, Reason: "unrecognized command"}
}
