package csg

// Union, Difference, Intersection, and Inverse implement the four Boolean
// combinations of closed triangulated polyhedra described by the package.
// Each builds fresh BSP trees from its mesh (polygon list) inputs, runs a
// fixed sequence of ClipTo/Invert/Build operations, and returns the
// enumerated polygons of the first tree. These sequences are the standard
// CSG-on-BSP identities; permuting the operations silently changes the
// result, so they are written out exactly rather than factored into a
// shared helper that might invite reordering.

// Union returns the mesh occupying the space covered by a, b, or both.
func Union(a, b []Polygon) []Polygon {
	ta := NewNode(a)
	tb := NewNode(b)

	ta.ClipTo(tb)
	tb.ClipTo(ta)
	tb.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.Build(tb.AllPolygons())

	return ta.AllPolygons()
}

// Difference returns the mesh of a with the space covered by b removed.
func Difference(a, b []Polygon) []Polygon {
	ta := NewNode(a)
	tb := NewNode(b)

	ta.Invert()
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	tb.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.Build(tb.AllPolygons())
	ta.Invert()

	return ta.AllPolygons()
}

// Intersection returns the mesh occupying the space covered by both a and b.
func Intersection(a, b []Polygon) []Polygon {
	ta := NewNode(a)
	tb := NewNode(b)

	ta.Invert()
	tb.ClipTo(ta)
	tb.Invert()
	ta.ClipTo(tb)
	tb.ClipTo(ta)
	ta.Build(tb.AllPolygons())
	ta.Invert()

	return ta.AllPolygons()
}

// Inverse returns the complement of a: every polygon's winding is reversed
// and its normal negated. Applying Inverse twice restores the original
// polygon set (up to the vertex-0/vertex-2 swap from the winding flip,
// which round-trips to identity).
func Inverse(a []Polygon) []Polygon {
	ta := NewNode(a)
	ta.Invert()
	return ta.AllPolygons()
}
