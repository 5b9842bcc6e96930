// Package csg implements Boolean combinations (union, difference,
// intersection, inversion) of closed triangulated polyhedra using a
// Binary Space Partitioning (BSP) tree over polygons.
//
// The package is synchronous and single-threaded: no operation blocks,
// suspends, or yields, and a single Union/Difference/Intersection/Inverse
// call owns the BSP trees it builds for its own duration only. Callers
// wanting concurrency run independent calls (with disjoint inputs and
// outputs) on separate goroutines; callers wanting cancellation run a call
// on a worker goroutine and abandon it, since the algorithms themselves
// carry no cancellation hooks.
//
// The engine is tolerance-based, not exact: all plane classification uses
// the fixed tolerance Epsilon. It does not validate that inputs are closed,
// manifold, or free of self-intersection — see the package-level note in
// each operation's doc comment for what "best effort" means in that case.
package csg
