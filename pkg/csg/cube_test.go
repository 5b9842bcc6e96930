package csg

// cubePolygons returns the 12 triangles of a closed, outward-facing unit
// cube of the given size with its minimum corner at origin. Shared across
// tests as the canonical well-formed solid.
func cubePolygons(origin Vector, size float32) []Polygon {
	c := func(x, y, z float32) Vertex {
		return Vertex{Pos: origin.Add(Vector{x * size, y * size, z * size})}
	}

	corners := [8]Vertex{
		c(0, 0, 0), c(1, 0, 0), c(1, 1, 0), c(0, 1, 0),
		c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1),
	}

	// Each face is a quad (v0,v1,v2,v3) in CCW order viewed from outside.
	faces := [6][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}

	polys := make([]Polygon, 0, 12)
	for _, f := range faces {
		v0, v1, v2, v3 := corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]
		polys = append(polys, NewPolygon(v0, v1, v2))
		polys = append(polys, NewPolygon(v0, v2, v3))
	}
	return polys
}

// bounds returns the axis-aligned min/max corners of polys' vertex positions.
func bounds(polys []Polygon) (min, max Vector) {
	if len(polys) == 0 {
		return
	}
	min = polys[0].Vertices[0].Pos
	max = min
	for _, p := range polys {
		for _, v := range p.Vertices {
			if v.Pos.X < min.X {
				min.X = v.Pos.X
			}
			if v.Pos.Y < min.Y {
				min.Y = v.Pos.Y
			}
			if v.Pos.Z < min.Z {
				min.Z = v.Pos.Z
			}
			if v.Pos.X > max.X {
				max.X = v.Pos.X
			}
			if v.Pos.Y > max.Y {
				max.Y = v.Pos.Y
			}
			if v.Pos.Z > max.Z {
				max.Z = v.Pos.Z
			}
		}
	}
	return min, max
}

// approxEq compares two float32s within an absolute tolerance.
func approxEq(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
