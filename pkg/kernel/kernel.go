// Package kernel defines the abstract geometry kernel behind the Carve
// scripting front end. Implementations (bsp, sdfx) build primitive solids,
// combine them with boolean operations, apply rigid transforms, and
// tessellate the result into a renderable Mesh.
package kernel

// Solid is an opaque handle to a solid owned by a particular Kernel
// implementation. Solids from different Kernel implementations must never
// be mixed in the same call.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box of the solid.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry engine the scripting builtins evaluate
// against. All primitives share one placement convention: the minimum
// corner of the solid's bounding box sits at the origin, so a translation
// by (x, y, z) puts that corner at (x, y, z).
type Kernel interface {
	// Box creates a box with the given dimensions.
	Box(x, y, z float64) Solid

	// Cylinder creates a cylinder along the Z axis with the given height
	// and radius. segments hints at circular tessellation resolution;
	// kernels that represent curves implicitly may ignore it.
	Cylinder(height, radius float64, segments int) Solid

	// Sphere creates a sphere with the given radius. segments hints at
	// tessellation resolution, as for Cylinder.
	Sphere(radius float64, segments int) Solid

	// Union returns the boolean union of two solids.
	Union(a, b Solid) Solid

	// Difference returns the boolean difference a minus b.
	Difference(a, b Solid) Solid

	// Intersection returns the boolean intersection of two solids.
	Intersection(a, b Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// Rotate rotates a solid by Euler angles in degrees around X, Y, Z.
	Rotate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into a renderable triangle mesh.
	ToMesh(s Solid) (*Mesh, error)
}

// Inverter is implemented by kernels that can take the complement of a
// solid. Mesh-based kernels support it naturally (flip every face); a
// kernel that must tessellate a bounded region cannot mesh an unbounded
// complement and simply doesn't implement this interface.
type Inverter interface {
	// Inverse returns the complement of s: the same surface with the
	// solid side reversed.
	Inverse(s Solid) Solid
}
