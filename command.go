package ribbon

// Command is a single turtle-graphics plotting command.
type Command interface {
	isCommand()
}

// Start fixes the initial position, direction and ribbon width.
// It must be the first command of a sequence and may not repeat.
type Start struct {
	Position  Point
	Direction float64 // degrees, 0 is +X, counter-clockwise
	Width     float64 // full ribbon width, must be positive
}

func (Start) isCommand() {}

// Line advances the turtle along its current direction.
// A negative length backs up without changing direction.
type Line struct {
	Length float64
}

func (Line) isCommand() {}

// Arc turns the turtle through Angle degrees along a circle of the given
// radius. A positive angle turns counter-clockwise, negative clockwise;
// the radius itself is always positive.
type Arc struct {
	Radius float64
	Angle  float64 // degrees
}

func (Arc) isCommand() {}

// Validate checks the structural invariants of a command sequence:
// exactly one Start, first in the sequence, positive width and radii,
// and at least one drawing command. Grammar-level problems are reported
// earlier by the parser; Validate is the gate before any geometry.
func Validate(cmds []Command) error {
	if len(cmds) == 0 {
		return &ValidationError{Index: -1, Reason: "empty command sequence"}
	}
	start, ok := cmds[0].(Start)
	if !ok {
		return &ValidationError{Index: 0, Reason: "first command must be start"}
	}
	if start.Width <= 0 {
		return &ValidationError{Index: 0, Reason: "width must be positive"}
	}
	if len(cmds) < 2 {
		return &ValidationError{Index: -1, Reason: "at least one line or arc command is required"}
	}
	for i, c := range cmds[1:] {
		switch c := c.(type) {
		case Start:
			return &ValidationError{Index: i + 1, Reason: "duplicate start command"}
		case Arc:
			if c.Radius <= 0 {
				return &ValidationError{Index: i + 1, Reason: "arc radius must be positive"}
			}
		}
	}
	return nil
}
