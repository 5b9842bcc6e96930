package csg

import "testing"

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	if got := a.Add(b); got != (Vector{5, 7, 9}) {
		t.Errorf("Add = %v, want (5,7,9)", got)
	}
	if got := b.Sub(a); got != (Vector{3, 3, 3}) {
		t.Errorf("Sub = %v, want (3,3,3)", got)
	}
	if got := a.Negate(); got != (Vector{-1, -2, -3}) {
		t.Errorf("Negate = %v, want (-1,-2,-3)", got)
	}
	if got := a.MulScalar(2); got != (Vector{2, 4, 6}) {
		t.Errorf("MulScalar = %v, want (2,4,6)", got)
	}
	if got := (Vector{2, 4, 6}).DivScalar(2); got != (Vector{1, 2, 3}) {
		t.Errorf("DivScalar = %v, want (1,2,3)", got)
	}
}

func TestVectorDotCross(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}

	if got := x.Dot(y); got != 0 {
		t.Errorf("Dot(x,y) = %v, want 0", got)
	}
	if got := x.Dot(x); got != 1 {
		t.Errorf("Dot(x,x) = %v, want 1", got)
	}
	if got := x.Cross(y); got != (Vector{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v, want (0,0,1)", got)
	}
}

func TestVectorLengthNormalize(t *testing.T) {
	v := Vector{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}

	n := v.Normalize()
	if l := n.Length(); l < 0.999999 || l > 1.000001 {
		t.Errorf("Normalize length = %v, want ~1", l)
	}

	zero := Vector{}
	if got := zero.Normalize(); got != zero {
		t.Errorf("Normalize of zero vector = %v, want zero", got)
	}
}

func TestVectorLerp(t *testing.T) {
	a := Vector{0, 0, 0}
	b := Vector{10, 10, 10}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Vector{5, 5, 5}) {
		t.Errorf("Lerp t=0.5 = %v, want (5,5,5)", got)
	}
}
