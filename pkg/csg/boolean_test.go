package csg

import "testing"

func TestUnionDisjointCubes(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{5, 0, 0}, 1)

	result := Union(a, b)

	if len(result) != len(a)+len(b) {
		t.Errorf("union of disjoint cubes = %d triangles, want %d", len(result), len(a)+len(b))
	}
}

func TestDifferenceIdenticalCubes(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{0, 0, 0}, 1)

	result := Difference(a, b)

	if len(result) != 0 {
		t.Errorf("difference of identical cubes = %d triangles, want 0", len(result))
	}
}

func TestDifferenceDisjointCubesIsUnchanged(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{5, 0, 0}, 1)

	result := Difference(a, b)

	if len(result) != len(a) {
		t.Errorf("difference with a disjoint solid = %d triangles, want %d (a untouched)", len(result), len(a))
	}
	min, max := bounds(result)
	if !approxEq(min.X, 0, 1e-4) || !approxEq(max.X, 1, 1e-4) {
		t.Errorf("difference bounds = %v..%v, want 0..1 on X", min, max)
	}
}

func TestIntersectionDisjointCubesIsEmpty(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{5, 0, 0}, 1)

	result := Intersection(a, b)

	if len(result) != 0 {
		t.Errorf("intersection of disjoint cubes = %d triangles, want 0", len(result))
	}
}

func TestIntersectionIdenticalCubes(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{0, 0, 0}, 1)

	result := Intersection(a, b)

	min, max := bounds(result)
	if !approxEq(min.X, 0, 1e-4) || !approxEq(max.X, 1, 1e-4) ||
		!approxEq(min.Y, 0, 1e-4) || !approxEq(max.Y, 1, 1e-4) ||
		!approxEq(min.Z, 0, 1e-4) || !approxEq(max.Z, 1, 1e-4) {
		t.Errorf("intersection of identical cubes bounds = %v..%v, want (0,0,0)..(1,1,1)", min, max)
	}
}

func TestIntersectionOverlappingCubes(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 2)
	b := cubePolygons(Vector{1, 1, 1}, 2)

	result := Intersection(a, b)
	if len(result) == 0 {
		t.Fatal("intersection of overlapping cubes produced no geometry")
	}

	min, max := bounds(result)
	want := Vector{1, 1, 1}
	wantMax := Vector{2, 2, 2}
	if !approxEq(min.X, want.X, 1e-4) || !approxEq(min.Y, want.Y, 1e-4) || !approxEq(min.Z, want.Z, 1e-4) {
		t.Errorf("intersection min = %v, want %v", min, want)
	}
	if !approxEq(max.X, wantMax.X, 1e-4) || !approxEq(max.Y, wantMax.Y, 1e-4) || !approxEq(max.Z, wantMax.Z, 1e-4) {
		t.Errorf("intersection max = %v, want %v", max, wantMax)
	}
}

func TestDifferenceShiftedCube(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 1)
	b := cubePolygons(Vector{0.5, 0, 0}, 1)

	result := Difference(a, b)
	if len(result) == 0 {
		t.Fatal("difference of half-overlapping cubes produced no geometry")
	}

	min, max := bounds(result)
	if !approxEq(min.X, 0, 1e-4) || !approxEq(max.X, 0.5, 1e-4) {
		t.Errorf("difference X bounds = %v..%v, want 0..0.5", min.X, max.X)
	}
	if !approxEq(min.Y, 0, 1e-4) || !approxEq(max.Y, 1, 1e-4) ||
		!approxEq(min.Z, 0, 1e-4) || !approxEq(max.Z, 1, 1e-4) {
		t.Errorf("difference Y/Z bounds = %v..%v, want the full 0..1 slab", min, max)
	}
}

func TestInverseIsOwnInverse(t *testing.T) {
	cube := cubePolygons(Vector{0, 0, 0}, 1)

	once := Inverse(cube)
	twice := Inverse(once)

	if len(twice) != len(cube) {
		t.Errorf("double inverse polygon count = %d, want %d", len(twice), len(cube))
	}
	min, max := bounds(twice)
	wantMin, wantMax := bounds(cube)
	if min != wantMin || max != wantMax {
		t.Errorf("double inverse bounds = %v..%v, want %v..%v", min, max, wantMin, wantMax)
	}
}

func TestUnionIsCommutativeInVolume(t *testing.T) {
	a := cubePolygons(Vector{0, 0, 0}, 2)
	b := cubePolygons(Vector{1, 1, 1}, 2)

	ab := Union(a, b)
	ba := Union(b, a)

	minAB, maxAB := bounds(ab)
	minBA, maxBA := bounds(ba)
	if minAB != minBA || maxAB != maxBA {
		t.Errorf("union bounds not commutative: %v..%v vs %v..%v", minAB, maxAB, minBA, maxBA)
	}
}
