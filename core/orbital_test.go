package core

import (
	"math"
	"reflect"
	"testing"

	"github.com/Ajayprakashk7/Solar-system-emulator/model"
)

func testBodies() []*model.CelestialBody {
	return []*model.CelestialBody{
		{
			ID: 0, Name: "Sun", Radius: 5, IsStar: true, Class: model.ClassStar,
		},
		{
			ID: 1, Name: "Earth", Radius: 1, OrbitRadius: 8, OrbitAngularSpeed: 1,
			Class: model.ClassRockyPlanet,
			Moons: []model.MoonSpec{
				{Name: "Moon", Radius: 0.27, OrbitRadius: 2, OrbitAngularSpeed: 5},
			},
		},
		{
			ID: 2, Name: "Neptune", Radius: 1.9, OrbitRadius: 20, OrbitAngularSpeed: 1,
			Class: model.ClassRockyPlanet,
		},
	}
}

func sameMapRef(a, b PositionMap) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

func TestAdvance_KeplerScaledDelta(t *testing.T) {
	m := NewOrbitalModel(testBodies())

	if got := m.Positions()["Earth"]; got != (Vec3{X: 8, Y: 0, Z: 0}) {
		t.Fatalf("initial Earth position = %+v, want (8,0,0)", got)
	}

	progress, positions := m.Advance(1, 1)

	wantDelta := 1.0 * GlobalSpeed * math.Pow(8, -1.5) * 1.0 * 1.0
	if math.Abs(wantDelta-2.2097) > 1e-3 {
		t.Fatalf("angular delta = %v, want ≈ 2.2097", wantDelta)
	}
	if got := progress["Earth"]; math.Abs(got-wantDelta) > 1e-12 {
		t.Fatalf("Earth progress = %v, want %v", got, wantDelta)
	}

	want := Vec3{X: 8 * math.Cos(wantDelta), Y: 0, Z: 8 * math.Sin(wantDelta)}
	got := positions["Earth"]
	if got.DistanceTo(want) > 1e-12 {
		t.Fatalf("Earth position = %+v, want %+v", got, want)
	}
}

func TestAdvance_Deterministic(t *testing.T) {
	steps := []struct{ dt, speed float64 }{
		{0.016, 1}, {0.016, 2.5}, {0.3, 0}, {0.016, 0.1}, {1, 1}, {0.05, 7},
	}

	a := NewOrbitalModel(testBodies())
	b := NewOrbitalModel(testBodies())
	for _, s := range steps {
		a.Advance(s.dt, s.speed)
		b.Advance(s.dt, s.speed)
	}

	for name, pos := range a.Positions() {
		if other := b.Positions()[name]; other != pos {
			t.Fatalf("replay diverged for %s: %+v vs %+v", name, pos, other)
		}
	}
	for name, p := range a.Progress() {
		if other := b.Progress()[name]; other != p {
			t.Fatalf("replay progress diverged for %s: %v vs %v", name, p, other)
		}
	}
}

func TestAdvance_StarPinned(t *testing.T) {
	m := NewOrbitalModel(testBodies())
	for i := 0; i < 100; i++ {
		progress, positions := m.Advance(0.016, float64(i%5))
		if got := positions["Sun"]; got != (Vec3{}) {
			t.Fatalf("star moved to %+v on tick %d", got, i)
		}
		if got := progress["Sun"]; got != 0 {
			t.Fatalf("star progress = %v on tick %d, want 0", got, i)
		}
	}
}

func TestAdvance_CloserBodyOutpaces(t *testing.T) {
	m := NewOrbitalModel(testBodies())
	progress, _ := m.Advance(0.5, 1)

	// Earth (orbit 8) and Neptune (orbit 20) share the same base
	// angular speed, so the closer body must strictly lead.
	if progress["Earth"] <= progress["Neptune"] {
		t.Fatalf("Earth progress %v not ahead of Neptune %v", progress["Earth"], progress["Neptune"])
	}
}

func TestAdvance_ReferentialStability(t *testing.T) {
	m := NewOrbitalModel(testBodies())
	before := m.Positions()

	_, frozen := m.Advance(0.016, 0)
	if !sameMapRef(before, frozen) {
		t.Fatalf("speed 0 should return the identical position map")
	}
	_, frozen = m.Advance(0, 1)
	if !sameMapRef(before, frozen) {
		t.Fatalf("zero delta time should return the identical position map")
	}

	_, moved := m.Advance(0.016, 1)
	if sameMapRef(before, moved) {
		t.Fatalf("a real advance should allocate a fresh position map")
	}
}

func TestAdvance_MoonProgressAccumulates(t *testing.T) {
	m := NewOrbitalModel(testBodies())
	progress, positions := m.Advance(0.1, 1)

	if progress["Moon"] <= 0 {
		t.Fatalf("moon progress = %v, want > 0", progress["Moon"])
	}
	if _, ok := positions["Moon"]; ok {
		t.Fatalf("moons must not get top-level position entries")
	}

	parent := positions["Earth"]
	moon := &m.bodies[1].Moons[0]
	world := MoonWorldPosition(moon, parent, progress["Moon"])
	if got := world.DistanceTo(parent); math.Abs(got-moon.OrbitRadius) > 1e-9 {
		t.Fatalf("moon world position %v from parent, want distance %v", got, moon.OrbitRadius)
	}
}

func TestAdvance_ProgressNeverWrapped(t *testing.T) {
	m := NewOrbitalModel(testBodies())
	var last float64
	for i := 0; i < 50; i++ {
		progress, _ := m.Advance(1, 10)
		if progress["Earth"] < last {
			t.Fatalf("progress decreased: %v -> %v", last, progress["Earth"])
		}
		last = progress["Earth"]
	}
	if last < 2*math.Pi {
		t.Fatalf("expected accumulator beyond one revolution, got %v", last)
	}
}
