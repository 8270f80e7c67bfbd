// Package geom provides the scalar geometry used by the split layout
// widget: 2D vectors, rectangles and 2x3 affine transforms in logical
// (float64) coordinates.
package geom

// Vec is a 2D point or size.
type Vec struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether p falls inside r. The test is half-open:
// points on the left/top edges are inside, points on the right/bottom
// edges are not.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp limits v to [lo, hi]. The lower bound is applied first, so when
// lo > hi the result is hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Affine is a row-major 2x3 affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a transform that moves points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, C: tx, E: 1, F: ty}
}

// Scale returns a transform that scales points by (sx, sy).
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Mul composes two transforms. Applying the result is equivalent to
// applying n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Apply transforms p.
func (m Affine) Apply(p Vec) Vec {
	return Vec{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse transform. A singular transform (zero
// determinant) produces non-finite coefficients.
func (m Affine) Invert() Affine {
	det := m.A*m.E - m.B*m.D
	return Affine{
		A: m.E / det,
		B: -m.B / det,
		C: (m.B*m.F - m.C*m.E) / det,
		D: -m.D / det,
		E: m.A / det,
		F: (m.C*m.D - m.A*m.F) / det,
	}
}

// ApplyInverse maps p from the outer coordinate space into the local
// space of the transform.
func (m Affine) ApplyInverse(p Vec) Vec {
	return m.Invert().Apply(p)
}
