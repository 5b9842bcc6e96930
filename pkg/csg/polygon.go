package csg

// Polygon is always a triangle at the boundary of the package (on ingest
// and on emit); intermediate fragments produced by Split may carry more
// vertices but are fan-triangulated back down to triangles before being
// appended to any output list. Each polygon caches its supporting Plane so
// BSP traversal never has to recompute it.
type Polygon struct {
	Vertices [3]Vertex
	Plane    Plane
}

// NewPolygon builds a triangle and computes its supporting plane from the
// three vertex positions.
func NewPolygon(v0, v1, v2 Vertex) Polygon {
	return Polygon{
		Vertices: [3]Vertex{v0, v1, v2},
		Plane:    NewPlaneFromPoints(v0.Pos, v1.Pos, v2.Pos),
	}
}

// Flip reverses the polygon's winding (swapping vertex 0 and vertex 2),
// negates every vertex normal, and flips the cached plane. The resulting
// polygon occupies the same geometry with the opposite orientation.
func (p Polygon) Flip() Polygon {
	p.Vertices[0], p.Vertices[2] = p.Vertices[2].Flip(), p.Vertices[0].Flip()
	p.Vertices[1] = p.Vertices[1].Flip()
	p.Plane = p.Plane.Flip()
	return p
}
