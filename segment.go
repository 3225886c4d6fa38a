package ribbon

import "math"

// Segment is one edge of a ribbon boundary, in absolute coordinates.
type Segment interface {
	isSegment()

	// First returns the point the segment is drawn from.
	First() Point
	// Last returns the point the segment is drawn to.
	Last() Point
	// Reversed returns the same geometry traversed in the opposite
	// direction.
	Reversed() Segment
	// Length returns the arc length of the segment.
	Length() float64
}

// LineSeg is a straight edge.
type LineSeg struct {
	From, To Point
}

func (LineSeg) isSegment() {}

// First returns the starting point of the line.
func (s LineSeg) First() Point { return s.From }

// Last returns the end point of the line.
func (s LineSeg) Last() Point { return s.To }

// Reversed returns the line traversed end to start.
func (s LineSeg) Reversed() Segment { return LineSeg{From: s.To, To: s.From} }

// Length returns the length of the line.
func (s LineSeg) Length() float64 { return s.From.Distance(s.To) }

// ArcSeg is a circular edge swept about Center from StartAngle to
// EndAngle. Angles are in radians; EndAngle greater than StartAngle
// means counter-clockwise traversal.
type ArcSeg struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (ArcSeg) isSegment() {}

// First returns the starting point of the arc.
func (s ArcSeg) First() Point { return s.at(s.StartAngle) }

// Last returns the end point of the arc.
func (s ArcSeg) Last() Point { return s.at(s.EndAngle) }

// Reversed returns the arc swept in the opposite direction.
func (s ArcSeg) Reversed() Segment {
	return ArcSeg{Center: s.Center, Radius: s.Radius, StartAngle: s.EndAngle, EndAngle: s.StartAngle}
}

// Length returns the arc length.
func (s ArcSeg) Length() float64 {
	return math.Abs(s.EndAngle-s.StartAngle) * s.Radius
}

// Sweep returns the signed angular extent of the arc in radians.
func (s ArcSeg) Sweep() float64 {
	return s.EndAngle - s.StartAngle
}

// at returns the point on the circle at the given angle.
func (s ArcSeg) at(angle float64) Point {
	return Point{
		X: s.Center.X + s.Radius*math.Cos(angle),
		Y: s.Center.Y + s.Radius*math.Sin(angle),
	}
}
