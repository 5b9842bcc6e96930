package csg

// Vertex carries a position, normal, and texture coordinate. The normal is
// not renormalized by interpolation; callers needing a unit normal
// renormalize downstream. UV is a Vector whose Z component is unused.
type Vertex struct {
	Pos    Vector
	Normal Vector
	UV     Vector
}

// Flip negates the vertex's normal, reversing which side it faces.
func (v Vertex) Flip() Vertex {
	v.Normal = v.Normal.Negate()
	return v
}

// Lerp linearly interpolates position, normal, and UV by the same t.
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	return Vertex{
		Pos:    v.Pos.Lerp(o.Pos, t),
		Normal: v.Normal.Lerp(o.Normal, t),
		UV:     v.UV.Lerp(o.UV, t),
	}
}
