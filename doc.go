// Package ribbon generates closed, constant-width outlines from compact
// turtle-graphics command sequences.
//
// # Overview
//
// A ribbon is the outline traced at a fixed perpendicular width around a
// centerline path of straight lines and circular arcs. The centerline is
// described by plotting commands: a single Start command fixing position,
// direction and width, followed by Line and Arc commands. The package
// offsets the centerline to both sides, joins the two boundaries with end
// caps and returns a single closed loop of line and arc segments ready
// for downstream rendering or extrusion.
//
// # Quick Start
//
//	import "github.com/gogpu/ribbon"
//
//	p, err := ribbon.BuildStrings("(0,0) D0 W1", "L10 A5,90 L4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seg := range p.Segments() {
//	    // LineSeg or ArcSeg in absolute coordinates
//	}
//
// # Command Grammar
//
// The compact string form is whitespace-delimited. Keywords are matched
// case-insensitively by any unambiguous prefix ("L", "li" and "line" are
// equivalent) and may be followed by an optional colon. Multiple values
// are delimited by "," or "/" and may be wrapped in parentheses:
//
//	start: "(10,0) D30 W0.5"     position, direction, width in any order
//	path:  "L:2 A2/145 line3"    ordered line and arc commands
//
// The same sequences can be supplied in structured form as [RawCommand]
// values, or decoded from YAML via [Definition].
//
// # Coordinate System
//
// Uses standard mathematical coordinates:
//   - X increases right, Y increases up
//   - Command angles in degrees, 0 is +X, increasing counter-clockwise
//   - Segment angles ([ArcSeg]) in radians, same orientation
package ribbon

// Version is the current version of the library
const Version = "0.1.0"
