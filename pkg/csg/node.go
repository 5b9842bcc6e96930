package csg

// Node is one node of a BSP tree: a splitting Plane, the polygons lying on
// that plane (both same- and opposite-facing, merged into one list during
// Build and never deduplicated — this is required for the Boolean
// identities in Union/Difference/Intersection to hold), and two optional
// children. A Node owns its children exclusively.
type Node struct {
	Plane    Plane
	Polygons []Polygon
	Front    *Node
	Back     *Node

	planeSet bool
}

// NewNode builds a fresh BSP tree from polygons. A nil or empty slice
// yields an empty, plane-less node.
func NewNode(polygons []Polygon) *Node {
	n := &Node{}
	n.Build(polygons)
	return n
}

// Build extends the tree with another batch of polygons. If the node has
// no plane yet, the first polygon's plane becomes the splitting plane.
// Every polygon is split against that plane; coplanar fragments (both
// same- and opposite-facing) are appended to the node's own list, and
// strictly front/back fragments recurse into the front/back child,
// creating it on first use. Calling Build repeatedly on the same node
// extends the tree with additional batches.
func (n *Node) Build(polygons []Polygon) {
	if len(polygons) == 0 {
		return
	}
	if !n.planeSet {
		n.Plane = polygons[0].Plane
		n.planeSet = true
	}

	var frontList, backList []Polygon
	for _, p := range polygons {
		splitPolygon(n.Plane, p, &n.Polygons, &n.Polygons, &frontList, &backList)
	}

	if len(frontList) > 0 {
		if n.Front == nil {
			n.Front = &Node{}
		}
		n.Front.Build(frontList)
	}
	if len(backList) > 0 {
		if n.Back == nil {
			n.Back = &Node{}
		}
		n.Back.Build(backList)
	}
}

// AllPolygons returns every polygon in the tree via an in-order traversal:
// this node's own polygons, then the front subtree's, then the back
// subtree's. The order is deterministic for a given construction history.
func (n *Node) AllPolygons() []Polygon {
	if n == nil {
		return nil
	}
	out := make([]Polygon, 0, len(n.Polygons))
	out = append(out, n.Polygons...)
	out = append(out, n.Front.AllPolygons()...)
	out = append(out, n.Back.AllPolygons()...)
	return out
}

// Invert flips the tree into its complement: every polygon in this node's
// list is flipped, the splitting plane is flipped, both children are
// inverted recursively, and finally the front and back pointers are
// swapped. Invert is its own inverse.
func (n *Node) Invert() {
	if n == nil {
		return
	}
	for i := range n.Polygons {
		n.Polygons[i] = n.Polygons[i].Flip()
	}
	n.Plane = n.Plane.Flip()
	n.Front.Invert()
	n.Back.Invert()
	n.Front, n.Back = n.Back, n.Front
}

// ClipPolygons partitions polygons against this node's plane — coplanar
// fragments are routed into the front/back partition matching their own
// facing, the opposite of Build's routing — then recursively clips each
// partition against the matching child. A polygon that falls into the
// back partition of a node with no back child is discarded: it lies
// inside the solid this subtree represents.
func (n *Node) ClipPolygons(polygons []Polygon) []Polygon {
	if n == nil || !n.planeSet {
		return append([]Polygon{}, polygons...)
	}

	var frontList, backList []Polygon
	for _, p := range polygons {
		splitPolygon(n.Plane, p, &frontList, &backList, &frontList, &backList)
	}

	if n.Front != nil {
		frontList = n.Front.ClipPolygons(frontList)
	}
	if n.Back != nil {
		backList = n.Back.ClipPolygons(backList)
	} else {
		backList = nil
	}

	return append(frontList, backList...)
}

// ClipTo replaces this node's own polygons with the result of clipping
// them against other, then recurses into both children with the same
// other tree.
func (n *Node) ClipTo(other *Node) {
	if n == nil {
		return
	}
	n.Polygons = other.ClipPolygons(n.Polygons)
	n.Front.ClipTo(other)
	n.Back.ClipTo(other)
}
