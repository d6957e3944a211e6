package core

import (
	"math"
	"testing"
)

func TestVec3_LerpEndpoints(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 5, Y: -2, Z: 7}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("lerp t=0 = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("lerp t=1 = %+v, want %+v", got, b)
	}

	mid := a.Lerp(b, 0.5)
	want := Vec3{X: 3, Y: 0, Z: 5}
	if mid.DistanceTo(want) > 1e-12 {
		t.Errorf("lerp t=0.5 = %+v, want %+v", mid, want)
	}
}

func TestVec3_NormalizedZero(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("zero vector normalized = %+v, want zero", got)
	}
	n := Vec3{X: 3, Y: 4, Z: 0}.Normalized()
	if math.Abs(n.Norm()-1) > 1e-12 {
		t.Errorf("normalized norm = %v, want 1", n.Norm())
	}
}

func TestRotateAboutY_PreservesNormAndHeight(t *testing.T) {
	v := Vec3{X: 3, Y: 2, Z: 1}
	r := rotateAboutY(v, 1.3)
	if math.Abs(r.Norm()-v.Norm()) > 1e-12 {
		t.Errorf("rotation changed norm %v -> %v", v.Norm(), r.Norm())
	}
	if r.Y != v.Y {
		t.Errorf("rotation about Y changed height %v -> %v", v.Y, r.Y)
	}

	// A full turn comes back around.
	full := rotateAboutY(v, 2*math.Pi)
	if full.DistanceTo(v) > 1e-9 {
		t.Errorf("full rotation = %+v, want %+v", full, v)
	}
}

func TestClampNorm(t *testing.T) {
	v := Vec3{X: 10, Y: 0, Z: 0}
	if got := clampNorm(v, 2, 5).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("clamped above = %v, want 5", got)
	}
	if got := clampNorm(Vec3{X: 1}, 2, 5).Norm(); math.Abs(got-2) > 1e-12 {
		t.Errorf("clamped below = %v, want 2", got)
	}
	if got := clampNorm(Vec3{X: 3}, 2, 5); got != (Vec3{X: 3}) {
		t.Errorf("in-range vector changed: %+v", got)
	}
	if got := clampNorm(Vec3{}, 2, 5); got != (Vec3{X: 2}) {
		t.Errorf("zero vector clamp = %+v, want (2,0,0)", got)
	}
}
