package bsp

import (
	"github.com/chazu/carve/pkg/csg"
	"github.com/chazu/carve/pkg/kernel"
)

// weldKey identifies vertices that share position, normal, and uv closely
// enough to be merged into one indexed mesh vertex.
type weldKey struct {
	px, py, pz int32
	nx, ny, nz int32
	u, v       int32
}

// weldScale quantizes float32 coordinates to integer grid cells for the
// weld key; two positions within 1/weldScale of each other collapse to the
// same vertex.
const weldScale = 100000

func quantize(f float32) int32 {
	return int32(f * weldScale)
}

func keyOf(v csg.Vertex) weldKey {
	return weldKey{
		px: quantize(v.Pos.X), py: quantize(v.Pos.Y), pz: quantize(v.Pos.Z),
		nx: quantize(v.Normal.X), ny: quantize(v.Normal.Y), nz: quantize(v.Normal.Z),
		u: quantize(v.UV.X), v: quantize(v.UV.Y),
	}
}

// weld flattens a triangle soup into an indexed kernel.Mesh, merging
// vertices that share position, normal, and uv so adjacent faces share
// edges.
func weld(polys []csg.Polygon) *kernel.Mesh {
	seen := make(map[weldKey]uint32)
	mesh := &kernel.Mesh{
		Vertices: make([]float32, 0, len(polys)*3*3),
		Normals:  make([]float32, 0, len(polys)*3*3),
		UVs:      make([]float32, 0, len(polys)*3*2),
		Indices:  make([]uint32, 0, len(polys)*3),
	}

	for _, p := range polys {
		for _, v := range p.Vertices {
			k := keyOf(v)
			idx, ok := seen[k]
			if !ok {
				idx = uint32(mesh.VertexCount())
				seen[k] = idx
				mesh.Vertices = append(mesh.Vertices, v.Pos.X, v.Pos.Y, v.Pos.Z)
				mesh.Normals = append(mesh.Normals, v.Normal.X, v.Normal.Y, v.Normal.Z)
				mesh.UVs = append(mesh.UVs, v.UV.X, v.UV.Y)
			}
			mesh.Indices = append(mesh.Indices, idx)
		}
	}
	return mesh
}
