package ribbon

import (
	"errors"
	"math"
)

// ErrNonSimilarity is returned by Path.Transform for matrices that do
// not preserve circles.
var ErrNonSimilarity = errors.New("ribbon: transform matrix must be a similarity (translate, rotate, uniform scale)")

// DefaultTolerance is the flattening tolerance used when a non-positive
// tolerance is passed to Flatten.
const DefaultTolerance = 0.1

// Path is a closed loop of boundary segments describing a ribbon
// outline. It is built once by Assemble and read-only afterwards.
type Path struct {
	segments []Segment
}

// Segments returns the ordered segment loop.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Perimeter returns the total length of the loop.
func (p *Path) Perimeter() float64 {
	total := 0.0
	for _, s := range p.segments {
		total += s.Length()
	}
	return total
}

// Flatten discretizes the loop into a closed polyline. Arcs are split so
// that the chord deviation stays within tolerance; lines contribute
// their endpoints unchanged. The first and last points coincide.
func (p *Path) Flatten(tolerance float64) []Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if len(p.segments) == 0 {
		return nil
	}
	pts := []Point{p.segments[0].First()}
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case LineSeg:
			pts = append(pts, s.To)
		case ArcSeg:
			pts = appendArc(pts, s, tolerance)
		}
	}
	return pts
}

// appendArc appends the arc's interior and end points, subdivided to
// keep the sagitta of each chord within tolerance.
func appendArc(pts []Point, s ArcSeg, tolerance float64) []Point {
	step := math.Pi / 2
	if tolerance < s.Radius {
		step = 2 * math.Acos(1-tolerance/s.Radius)
	}
	n := int(math.Ceil(math.Abs(s.Sweep()) / step))
	if n < 1 {
		n = 1
	}
	for k := 1; k <= n; k++ {
		angle := s.StartAngle + s.Sweep()*float64(k)/float64(n)
		pts = append(pts, s.at(angle))
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of the loop, exact for
// both line and arc segments.
func (p *Path) Bounds() (min, max Point) {
	min = Pt(math.Inf(1), math.Inf(1))
	max = Pt(math.Inf(-1), math.Inf(-1))
	grow := func(pt Point) {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	for _, seg := range p.segments {
		grow(seg.First())
		grow(seg.Last())
		if s, ok := seg.(ArcSeg); ok {
			// Cardinal angles inside the sweep are the arc extrema.
			lo := math.Min(s.StartAngle, s.EndAngle)
			hi := math.Max(s.StartAngle, s.EndAngle)
			for k := math.Ceil(lo / (math.Pi / 2)); k*(math.Pi/2) <= hi; k++ {
				grow(s.at(k * (math.Pi / 2)))
			}
		}
	}
	return min, max
}

// Transform returns a copy of the path with every segment mapped through
// m. Only similarity matrices are accepted: arcs stay circular, with the
// center transformed, the radius scaled and both angles shifted by the
// matrix rotation.
func (p *Path) Transform(m Matrix) (*Path, error) {
	if !m.IsSimilarity() {
		return nil, ErrNonSimilarity
	}
	scale := m.scaleFactor()
	rot := m.rotation()
	segs := make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		switch s := seg.(type) {
		case LineSeg:
			segs[i] = LineSeg{From: m.TransformPoint(s.From), To: m.TransformPoint(s.To)}
		case ArcSeg:
			segs[i] = ArcSeg{
				Center:     m.TransformPoint(s.Center),
				Radius:     s.Radius * scale,
				StartAngle: s.StartAngle + rot,
				EndAngle:   s.EndAngle + rot,
			}
		}
	}
	return &Path{segments: segs}, nil
}
