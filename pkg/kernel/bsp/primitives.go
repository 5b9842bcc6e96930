package bsp

import (
	"math"

	"github.com/chazu/carve/pkg/csg"
)

// boxPolygons returns the 12 triangles of a closed, outward-facing box of
// the given dimensions with its minimum corner at the origin.
func boxPolygons(x, y, z float32) []csg.Polygon {
	c := func(i, j, k float32) csg.Vertex {
		return csg.Vertex{Pos: csg.Vector{X: i * x, Y: j * y, Z: k * z}}
	}

	corners := [8]csg.Vertex{
		c(0, 0, 0), c(1, 0, 0), c(1, 1, 0), c(0, 1, 0),
		c(0, 0, 1), c(1, 0, 1), c(1, 1, 1), c(0, 1, 1),
	}

	faces := [6][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}

	polys := make([]csg.Polygon, 0, 12)
	for _, f := range faces {
		v0, v1, v2, v3 := corners[f[0]], corners[f[1]], corners[f[2]], corners[f[3]]
		polys = append(polys, csg.NewPolygon(v0, v1, v2))
		polys = append(polys, csg.NewPolygon(v0, v2, v3))
	}
	return withFlatNormals(polys)
}

// cylinderPolygons returns a closed, outward-facing cylinder of the given
// height and radius along the Z axis, approximated by segments flat sides.
// The bounding box's minimum corner is at the origin, so the axis runs
// through (radius, radius). Side vertices carry a wrap/height uv.
func cylinderPolygons(height, radius float32, segments int) []csg.Polygon {
	if segments < 3 {
		segments = 3
	}

	ring := make([]csg.Vector, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		ring[i] = csg.Vector{
			X: radius + radius*float32(math.Cos(a)),
			Y: radius + radius*float32(math.Sin(a)),
			Z: 0,
		}
	}

	bottomCenter := csg.Vertex{Pos: csg.Vector{X: radius, Y: radius, Z: 0}}
	topCenter := csg.Vertex{Pos: csg.Vector{X: radius, Y: radius, Z: height}}

	side := func(p csg.Vector, i int, v float32) csg.Vertex {
		return csg.Vertex{
			Pos: csg.Vector{X: p.X, Y: p.Y, Z: v * height},
			UV:  csg.Vector{X: float32(i) / float32(segments), Y: v},
		}
	}

	polys := make([]csg.Polygon, 0, segments*4)
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments

		b0 := side(ring[i], i, 0)
		b1 := side(ring[j], i+1, 0)
		t0 := side(ring[i], i, 1)
		t1 := side(ring[j], i+1, 1)

		// Side quad, outward-facing.
		polys = append(polys, csg.NewPolygon(b0, b1, t1))
		polys = append(polys, csg.NewPolygon(b0, t1, t0))

		// Bottom fan (normal -Z), top fan (normal +Z).
		polys = append(polys, csg.NewPolygon(bottomCenter, csg.Vertex{Pos: ring[j]}, csg.Vertex{Pos: ring[i]}))
		polys = append(polys, csg.NewPolygon(topCenter,
			csg.Vertex{Pos: csg.Vector{X: ring[i].X, Y: ring[i].Y, Z: height}},
			csg.Vertex{Pos: csg.Vector{X: ring[j].X, Y: ring[j].Y, Z: height}}))
	}
	return withFlatNormals(polys)
}

// spherePolygons returns a closed, outward-facing sphere of the given
// radius, approximated by a latitude/longitude grid with segments
// meridians and segments/2 latitude bands. The bounding box's minimum
// corner is at the origin, so the center sits at (radius, radius, radius).
// Vertices carry smooth (radial) normals and a longitude/latitude uv.
func spherePolygons(radius float32, segments int) []csg.Polygon {
	if segments < 4 {
		segments = 4
	}
	bands := segments / 2
	if bands < 2 {
		bands = 2
	}

	center := csg.Vector{X: radius, Y: radius, Z: radius}

	at := func(lon, lat int) csg.Vertex {
		u := float64(lon) / float64(segments)
		v := float64(lat) / float64(bands)
		theta := 2 * math.Pi * u
		phi := math.Pi * v

		dir := csg.Vector{
			X: float32(math.Cos(theta) * math.Sin(phi)),
			Y: float32(math.Sin(theta) * math.Sin(phi)),
			Z: float32(math.Cos(phi)),
		}
		return csg.Vertex{
			Pos:    center.Add(dir.MulScalar(radius)),
			Normal: dir,
			UV:     csg.Vector{X: float32(u), Y: float32(v)},
		}
	}

	polys := make([]csg.Polygon, 0, segments*bands*2)
	for lat := 0; lat < bands; lat++ {
		for lon := 0; lon < segments; lon++ {
			v00 := at(lon, lat)
			v10 := at(lon+1, lat)
			v01 := at(lon, lat+1)
			v11 := at(lon+1, lat+1)

			// The top and bottom bands collapse one edge at the pole;
			// skip the degenerate triangle there.
			if lat != 0 {
				polys = append(polys, csg.NewPolygon(v00, v01, v10))
			}
			if lat != bands-1 {
				polys = append(polys, csg.NewPolygon(v10, v01, v11))
			}
		}
	}
	return polys
}

// withFlatNormals assigns each vertex the polygon's own face normal,
// matching a faceted (not smoothed) primitive.
func withFlatNormals(polys []csg.Polygon) []csg.Polygon {
	for i, p := range polys {
		n := p.Plane.Normal
		for j := range p.Vertices {
			polys[i].Vertices[j].Normal = n
		}
	}
	return polys
}
