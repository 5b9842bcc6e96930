package bsp

import (
	"math"

	"github.com/chazu/carve/pkg/csg"
)

// matrix3 is a row-major 3x3 rotation matrix.
type matrix3 [3][3]float32

func (m matrix3) apply(v csg.Vector) csg.Vector {
	return csg.Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// applyDirection rotates a direction vector the same way as apply; for a
// pure rotation matrix (orthonormal, determinant 1) this is identical to
// transforming a position, so normals need no separate inverse-transpose.
func (m matrix3) applyDirection(v csg.Vector) csg.Vector {
	return m.apply(v)
}

func (m matrix3) mul(o matrix3) matrix3 {
	var r matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

func rotateX(rad float64) matrix3 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return matrix3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

func rotateY(rad float64) matrix3 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return matrix3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func rotateZ(rad float64) matrix3 {
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// rotationZYX composes Z, then Y, then X rotations, matching the order the
// sdfx backend applies Euler angles in.
func rotationZYX(xRad, yRad, zRad float64) matrix3 {
	return rotateZ(zRad).mul(rotateY(yRad)).mul(rotateX(xRad))
}

// mapVertexPositions rebuilds polys with f applied to every vertex
// position, recomputing each polygon's plane and leaving normals and uvs
// untouched (used for translation, which does not affect orientation).
func mapVertexPositions(polys []csg.Polygon, f func(csg.Vector) csg.Vector) []csg.Polygon {
	out := make([]csg.Polygon, len(polys))
	for i, p := range polys {
		var verts [3]csg.Vertex
		for j, v := range p.Vertices {
			v.Pos = f(v.Pos)
			verts[j] = v
		}
		out[i] = csg.NewPolygon(verts[0], verts[1], verts[2])
	}
	return out
}

// mapVertices rebuilds polys with f applied to every vertex (position and
// normal both), recomputing each polygon's plane from the transformed
// positions.
func mapVertices(polys []csg.Polygon, f func(csg.Vertex) csg.Vertex) []csg.Polygon {
	out := make([]csg.Polygon, len(polys))
	for i, p := range polys {
		var verts [3]csg.Vertex
		for j, v := range p.Vertices {
			verts[j] = f(v)
		}
		out[i] = csg.NewPolygon(verts[0], verts[1], verts[2])
	}
	return out
}
