package csg

// splitPolygon classifies poly against plane and appends the resulting
// fragments into the four output lists. A COPLANAR polygon goes entirely
// into coplanarFront or coplanarBack depending on whether its own plane
// faces the same way as plane; FRONT and BACK polygons are appended
// unmodified to the matching list; a SPANNING polygon is cut into a front
// and a back piece, each fan-triangulated from vertex 0 before being
// appended.
func splitPolygon(plane Plane, poly Polygon, coplanarFront, coplanarBack, frontOut, backOut *[]Polygon) {
	var types [3]side
	var polyType side

	for i, v := range poly.Vertices {
		t := plane.classify(v.Pos)
		types[i] = t
		polyType |= t
	}

	switch polyType {
	case coplanar:
		if plane.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}

	case front:
		*frontOut = append(*frontOut, poly)

	case back:
		*backOut = append(*backOut, poly)

	case spanning:
		var f, b []Vertex
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			ti, tj := types[i], types[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]

			if ti != back {
				f = append(f, vi)
			}
			if ti != front {
				b = append(b, vi)
			}
			if (ti | tj) == spanning {
				denom := plane.Normal.Dot(vj.Pos.Sub(vi.Pos))
				t := (plane.W - plane.Normal.Dot(vi.Pos)) / denom
				vx := vi.Lerp(vj, t)
				f = append(f, vx)
				b = append(b, vx)
			}
		}
		fanTriangulate(f, frontOut)
		fanTriangulate(b, backOut)
	}
}

// fanTriangulate converts a convex k-gon (k >= 3) into triangles
// (v[0], v[i-1], v[i]) for i = 2..k-1, recomputing each triangle's plane,
// and appends them to out. Fewer than 3 vertices emits nothing (a
// degenerate clip against a shared edge).
func fanTriangulate(v []Vertex, out *[]Polygon) {
	for i := 2; i < len(v); i++ {
		*out = append(*out, NewPolygon(v[0], v[i-1], v[i]))
	}
}
