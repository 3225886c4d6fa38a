package ribbon

// Assemble joins the two boundaries into one closed loop: the outer
// boundary in forward order, a straight end cap across the final
// centerline point, the inner boundary reversed (segment order and
// segment direction), and a second cap closing back to the outer
// boundary's first point.
//
// The caps are straight chords because both boundaries end offset by
// ±half_width perpendicular to the same final heading. The loop is
// simple as long as no DegenerateArcError occurred and the width is
// small relative to the path's radii and lengths; that assumption is
// the caller's to uphold.
func Assemble(outer, inner Boundary) *Path {
	segs := make([]Segment, 0, 2*len(outer.Segments)+2)
	segs = append(segs, outer.Segments...)
	segs = append(segs, LineSeg{From: outer.Last(), To: inner.Last()})
	for i := len(inner.Segments) - 1; i >= 0; i-- {
		segs = append(segs, inner.Segments[i].Reversed())
	}
	segs = append(segs, LineSeg{From: inner.First(), To: outer.First()})
	Logger().Debug("assembled ribbon loop", "segments", len(segs))
	return &Path{segments: segs}
}

// Build runs the full pipeline on a typed command sequence: validation,
// both offset passes and loop assembly. It either returns a complete
// closed path or a typed error; no partial result is ever produced.
func Build(cmds []Command) (*Path, error) {
	outer, inner, err := BuildBoundaries(cmds)
	if err != nil {
		return nil, err
	}
	return Assemble(outer, inner), nil
}

// BuildStrings parses the compact string form and builds the loop.
func BuildStrings(start, path string) (*Path, error) {
	cmds, err := Parse(start, path)
	if err != nil {
		return nil, err
	}
	return Build(cmds)
}

// BuildRaw converts the structured form and builds the loop.
func BuildRaw(raw []RawCommand) (*Path, error) {
	cmds, err := FromRaw(raw)
	if err != nil {
		return nil, err
	}
	return Build(cmds)
}
