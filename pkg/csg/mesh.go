package csg

// UnionMesh, DifferenceMesh, IntersectionMesh, and InverseMesh are the
// engine's four external entry points: flat float32 buffers in (the
// layout Ingest/Emit describe), flat float32 buffers out. They are thin
// wrappers over the polygon-list Boolean operations for callers that only
// hold the interchange representation; callers already working with
// []Polygon (such as pkg/kernel/bsp) call Union/Difference/Intersection/
// Inverse directly and skip the marshalling round trip.

// UnionMesh returns the union of m1 and m2.
func UnionMesh(m1, m2 []float32) ([]float32, error) {
	a, err := Ingest(m1)
	if err != nil {
		return nil, err
	}
	b, err := Ingest(m2)
	if err != nil {
		return nil, err
	}
	return Emit(Union(a, b)), nil
}

// DifferenceMesh returns m1 with the space covered by m2 removed.
func DifferenceMesh(m1, m2 []float32) ([]float32, error) {
	a, err := Ingest(m1)
	if err != nil {
		return nil, err
	}
	b, err := Ingest(m2)
	if err != nil {
		return nil, err
	}
	return Emit(Difference(a, b)), nil
}

// IntersectionMesh returns the space covered by both m1 and m2.
func IntersectionMesh(m1, m2 []float32) ([]float32, error) {
	a, err := Ingest(m1)
	if err != nil {
		return nil, err
	}
	b, err := Ingest(m2)
	if err != nil {
		return nil, err
	}
	return Emit(Intersection(a, b)), nil
}

// InverseMesh returns the complement of m1.
func InverseMesh(m1 []float32) ([]float32, error) {
	a, err := Ingest(m1)
	if err != nil {
		return nil, err
	}
	return Emit(Inverse(a)), nil
}
