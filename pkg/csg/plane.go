package csg

// Epsilon is the tolerance used for every plane classification in the
// package. Inputs whose scale departs significantly from unit magnitude
// should be rescaled by the caller before calling into this package.
const Epsilon float32 = 1e-5

// side classifies a point (or a whole polygon) against a Plane.
type side int

const (
	coplanar side = 0
	front    side = 1
	back     side = 2
	spanning side = 3 // front | back
)

// Plane is an oriented plane with unit normal n and offset w, satisfying
// n . p = w for any point p on the plane. A point p is in front when
// n . p - w > Epsilon, behind when n . p - w < -Epsilon, else coplanar.
type Plane struct {
	Normal Vector
	W      float32
}

// NewPlaneFromPoints builds the plane through a, b, c using the right-hand
// rule on (a, b, c). If the three points are collinear the cross product
// vanishes and the resulting plane is degenerate; this is not detected,
// per the package's tolerance-based, not-exact-predicate design.
func NewPlaneFromPoints(a, b, c Vector) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, W: n.Dot(a)}
}

// Flip returns the plane describing the same geometric plane with the
// opposite front orientation.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Negate(), W: -p.W}
}

// classify returns the side of p that point lies on, within Epsilon.
func (p Plane) classify(point Vector) side {
	d := p.Normal.Dot(point) - p.W
	switch {
	case d > Epsilon:
		return front
	case d < -Epsilon:
		return back
	default:
		return coplanar
	}
}
