package ribbon

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Ribbon paths contain circular arc segments, so [Path.Transform] only
// accepts similarity matrices (translation, rotation and uniform scale);
// anything else would turn circles into ellipses.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a uniform scaling matrix.
func Scale(s float64) Matrix {
	return Matrix{
		A: s, B: 0, C: 0,
		D: 0, E: s, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsSimilarity reports whether the matrix preserves circles, i.e. is a
// combination of translation, rotation and uniform positive scale.
func (m Matrix) IsSimilarity() bool {
	const eps = 1e-9
	// Columns must be orthogonal, equal length and right-handed.
	if math.Abs(m.A*m.B+m.D*m.E) > eps {
		return false
	}
	if math.Abs(math.Hypot(m.A, m.D)-math.Hypot(m.B, m.E)) > eps {
		return false
	}
	return m.A*m.E-m.B*m.D > 0
}

// scaleFactor returns the uniform scale of a similarity matrix.
func (m Matrix) scaleFactor() float64 {
	return math.Hypot(m.A, m.D)
}

// rotation returns the rotation angle in radians of a similarity matrix.
func (m Matrix) rotation() float64 {
	return math.Atan2(m.D, m.A)
}
