// Package bsp implements the kernel.Kernel interface on top of the
// BSP-tree CSG engine in pkg/csg. Unlike sdfx (marching-cubes resampling
// of an implicit signed distance field), bsp operates directly on exact
// triangle meshes: boolean results are clipped from the input surfaces
// rather than re-approximated, so flat faces stay flat and shared faces
// stay shared.
package bsp

import (
	"math"

	"github.com/chazu/carve/pkg/csg"
	"github.com/chazu/carve/pkg/kernel"
)

// Compile-time interface checks.
var _ kernel.Kernel = (*BSPKernel)(nil)
var _ kernel.Inverter = (*BSPKernel)(nil)
var _ kernel.Solid = (*bspSolid)(nil)

// bspSolid wraps a flat triangle soup and implements kernel.Solid.
type bspSolid struct {
	polys []csg.Polygon
}

// BoundingBox returns the axis-aligned bounding box of every vertex
// position across the solid's polygons. An empty solid returns a
// degenerate box at the origin.
func (s *bspSolid) BoundingBox() (min, max [3]float64) {
	if len(s.polys) == 0 {
		return min, max
	}
	p0 := s.polys[0].Vertices[0].Pos
	minV, maxV := p0, p0
	for _, poly := range s.polys {
		for _, v := range poly.Vertices {
			minV = vmin(minV, v.Pos)
			maxV = vmax(maxV, v.Pos)
		}
	}
	return [3]float64{float64(minV.X), float64(minV.Y), float64(minV.Z)},
		[3]float64{float64(maxV.X), float64(maxV.Y), float64(maxV.Z)}
}

func vmin(a, b csg.Vector) csg.Vector {
	return csg.Vector{X: minf(a.X, b.X), Y: minf(a.Y, b.Y), Z: minf(a.Z, b.Z)}
}

func vmax(a, b csg.Vector) csg.Vector {
	return csg.Vector{X: maxf(a.X, b.X), Y: maxf(a.Y, b.Y), Z: maxf(a.Z, b.Z)}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// BSPKernel implements kernel.Kernel using the BSP-tree CSG engine.
type BSPKernel struct{}

// New returns a new BSPKernel.
func New() *BSPKernel {
	return &BSPKernel{}
}

func unwrap(s kernel.Solid) []csg.Polygon {
	return s.(*bspSolid).polys
}

func wrap(polys []csg.Polygon) kernel.Solid {
	return &bspSolid{polys: polys}
}

// Box creates a box with the given dimensions, minimum corner at the
// origin.
func (k *BSPKernel) Box(x, y, z float64) kernel.Solid {
	return wrap(boxPolygons(float32(x), float32(y), float32(z)))
}

// Cylinder creates a cylinder along the Z axis with the given height and
// radius, approximated by segments flat sides.
func (k *BSPKernel) Cylinder(height, radius float64, segments int) kernel.Solid {
	return wrap(cylinderPolygons(float32(height), float32(radius), segments))
}

// Sphere creates a sphere with the given radius, approximated by a
// latitude/longitude grid with segments meridians.
func (k *BSPKernel) Sphere(radius float64, segments int) kernel.Solid {
	return wrap(spherePolygons(float32(radius), segments))
}

// Union returns the boolean union of two solids.
func (k *BSPKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Union(unwrap(a), unwrap(b)))
}

// Difference returns the boolean difference a minus b.
func (k *BSPKernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Difference(unwrap(a), unwrap(b)))
}

// Intersection returns the boolean intersection of two solids.
func (k *BSPKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(csg.Intersection(unwrap(a), unwrap(b)))
}

// Inverse returns the complement of a solid: the same surface with every
// winding reversed and every normal negated.
func (k *BSPKernel) Inverse(s kernel.Solid) kernel.Solid {
	return wrap(csg.Inverse(unwrap(s)))
}

// Translate moves a solid by (x, y, z). Normals are unaffected by
// translation.
func (k *BSPKernel) Translate(s kernel.Solid, x, y, z float64) kernel.Solid {
	d := csg.Vector{X: float32(x), Y: float32(y), Z: float32(z)}
	return wrap(mapVertexPositions(unwrap(s), func(p csg.Vector) csg.Vector {
		return p.Add(d)
	}))
}

// Rotate rotates a solid by Euler angles in degrees, applied in Z, Y, X
// order around the origin, matching the sdfx backend's composition order.
func (k *BSPKernel) Rotate(s kernel.Solid, x, y, z float64) kernel.Solid {
	m := rotationZYX(x*math.Pi/180, y*math.Pi/180, z*math.Pi/180)
	return wrap(mapVertices(unwrap(s), func(v csg.Vertex) csg.Vertex {
		v.Pos = m.apply(v.Pos)
		v.Normal = m.applyDirection(v.Normal)
		return v
	}))
}

// ToMesh tessellates a solid's triangle soup into a vertex-welded indexed
// mesh.
func (k *BSPKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	return weld(unwrap(s)), nil
}
