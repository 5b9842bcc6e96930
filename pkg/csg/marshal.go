package csg

import "fmt"

// floatsPerVertex is px,py,pz, nx,ny,nz, u,v.
const floatsPerVertex = 8

// floatsPerTriangle is floatsPerVertex times 3 vertices.
const floatsPerTriangle = floatsPerVertex * 3

// Ingest parses a flat float32 buffer laid out as count triangles of 3
// vertices x 8 floats (px,py,pz, nx,ny,nz, u,v) into a polygon list. Each
// polygon's plane is computed from its three vertex positions; the uv's Z
// component is always 0. Ingest returns an error only if buf's length is
// not a multiple of 24 — anything else (degenerate triangles, inconsistent
// winding) is accepted silently, per the package's tolerance-based design.
func Ingest(buf []float32) ([]Polygon, error) {
	if len(buf)%floatsPerTriangle != 0 {
		return nil, fmt.Errorf("csg: ingest: buffer length %d is not a multiple of %d", len(buf), floatsPerTriangle)
	}

	count := len(buf) / floatsPerTriangle
	polys := make([]Polygon, count)

	for i := 0; i < count; i++ {
		base := i * floatsPerTriangle
		var verts [3]Vertex
		for j := 0; j < 3; j++ {
			o := base + j*floatsPerVertex
			verts[j] = Vertex{
				Pos:    Vector{buf[o+0], buf[o+1], buf[o+2]},
				Normal: Vector{buf[o+3], buf[o+4], buf[o+5]},
				UV:     Vector{buf[o+6], buf[o+7], 0},
			}
		}
		polys[i] = NewPolygon(verts[0], verts[1], verts[2])
	}

	return polys, nil
}

// Emit writes 8 floats per vertex, 3 vertices per polygon (uv.Z dropped)
// into a freshly allocated flat float32 buffer.
func Emit(polys []Polygon) []float32 {
	buf := make([]float32, 0, len(polys)*floatsPerTriangle)
	for _, p := range polys {
		for _, v := range p.Vertices {
			buf = append(buf,
				v.Pos.X, v.Pos.Y, v.Pos.Z,
				v.Normal.X, v.Normal.Y, v.Normal.Z,
				v.UV.X, v.UV.Y,
			)
		}
	}
	return buf
}
