package core

import (
	"fmt"
	"testing"

	"github.com/Ajayprakashk7/Solar-system-emulator/timectrl"
)

// countingStore implements PositionStore and counts writes, so tests
// can observe the redundant-work skip at speed zero. A name placed in
// reject is silently dropped on Set, simulating a registry that lost
// an entry mid-transition.
type countingStore struct {
	m      map[string]Vec3
	sets   int
	reject string
}

func newCountingStore() *countingStore {
	return &countingStore{m: make(map[string]Vec3)}
}

func (s *countingStore) Get(name string) (Vec3, error) {
	pos, ok := s.m[name]
	if !ok {
		return Vec3{}, fmt.Errorf("no position for %q", name)
	}
	return pos, nil
}

func (s *countingStore) Set(name string, pos Vec3) {
	if name == s.reject {
		return
	}
	s.m[name] = pos
	s.sets++
}

type capturingSink struct {
	poses []Pose
}

func (c *capturingSink) ApplyPose(pose Pose) { c.poses = append(c.poses, pose) }

func newTestEngine(t *testing.T) (*Engine, *countingStore, *timectrl.SpeedControl, *capturingSink) {
	t.Helper()
	store := newCountingStore()
	speed := timectrl.NewSpeedControl(1)
	sink := &capturingSink{}
	engine := NewEngine(testBodies(), store, speed, sink, nil)
	return engine, store, speed, sink
}

func tickUntil(t *testing.T, engine *Engine, want CameraState) {
	t.Helper()
	for i := 0; i < maxConvergenceTicks; i++ {
		engine.Tick(testDt)
		if engine.Camera().State() == want {
			return
		}
	}
	t.Fatalf("engine camera stuck in %v, wanted %v", engine.Camera().State(), want)
}

func TestEngine_SeedsRegistryBeforeFirstTick(t *testing.T) {
	_, store, _, _ := newTestEngine(t)

	pos, err := store.Get("Earth")
	if err != nil {
		t.Fatalf("Earth not seeded: %v", err)
	}
	if pos != (Vec3{X: 8}) {
		t.Fatalf("seeded Earth position = %+v, want (8,0,0)", pos)
	}
	if _, err := store.Get("Sun"); err != nil {
		t.Fatalf("star not seeded: %v", err)
	}
}

func TestEngine_TickAdvancesPositionsThenPose(t *testing.T) {
	engine, store, _, sink := newTestEngine(t)

	before, _ := store.Get("Earth")
	engine.Tick(testDt)
	after, _ := store.Get("Earth")

	if before == after {
		t.Fatalf("Earth did not move across a tick at speed 1")
	}
	if len(sink.poses) != 1 {
		t.Fatalf("sink received %d poses, want 1 per tick", len(sink.poses))
	}
}

func TestEngine_SpeedZeroSkipsRegistryWrites(t *testing.T) {
	engine, store, _, _ := newTestEngine(t)

	engine.OnSetSpeed(0)
	writes := store.sets
	for i := 0; i < 10; i++ {
		engine.Tick(testDt)
	}
	if store.sets != writes {
		t.Fatalf("registry written %d times at speed 0, want 0", store.sets-writes)
	}
}

func TestEngine_InputIgnoredDuringIntro(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)

	if err := engine.OnBodySelected(1); err != nil {
		t.Fatalf("intro selection returned error: %v", err)
	}
	if engine.Selection().Current().Kind != SelectionNone {
		t.Fatalf("selection mutated during intro")
	}
	if engine.Camera().State() != StateIntro {
		t.Fatalf("state left intro on input")
	}
}

func TestEngine_RejectsUnknownBody(t *testing.T) {
	engine, _, _, _ := newTestEngine(t)
	tickUntil(t, engine, StateFree)

	if err := engine.OnBodySelected(99); err == nil {
		t.Fatalf("expected error for unknown body id")
	}
	if engine.Selection().Current().Kind != SelectionNone {
		t.Fatalf("selection changed by rejected request")
	}
	if engine.Camera().State() != StateFree {
		t.Fatalf("camera state changed by rejected request")
	}
}

// Full selection lifecycle: free -> zoom (slow motion) -> detail view
// (speed restored) -> deselect -> home -> free with selection cleared.
func TestEngine_SelectionLifecycle(t *testing.T) {
	engine, _, speed, _ := newTestEngine(t)
	tickUntil(t, engine, StateFree)

	if err := engine.OnBodySelected(1); err != nil {
		t.Fatalf("select Earth: %v", err)
	}
	if got := engine.Camera().State(); got != StateZoomingIn {
		t.Fatalf("state = %v, want zooming_in", got)
	}
	if got := speed.Current(); got != timectrl.OverrideSpeed {
		t.Fatalf("speed = %v during zoom, want override %v", got, timectrl.OverrideSpeed)
	}

	tickUntil(t, engine, StateDetailView)
	if got := speed.Current(); got != 1 {
		t.Fatalf("speed = %v in detail view, want restored 1", got)
	}

	engine.OnDeselect()
	if got := engine.Camera().State(); got != StateMovingHome {
		t.Fatalf("state = %v, want moving_home", got)
	}
	if got := speed.Current(); got != timectrl.OverrideSpeed {
		t.Fatalf("speed = %v during homecoming, want override", got)
	}

	tickUntil(t, engine, StateFree)
	if engine.Selection().Current().Kind != SelectionNone {
		t.Fatalf("selection not cleared after homecoming")
	}
	if got := engine.Camera().Position().DistanceTo(HomePosition); got >= homeEpsilon {
		t.Fatalf("camera %v from home, want < %v", got, homeEpsilon)
	}
	if got := speed.Current(); got != 1 {
		t.Fatalf("speed = %v after homecoming, want restored 1", got)
	}
}

func TestEngine_MoonSelection(t *testing.T) {
	engine, store, _, _ := newTestEngine(t)
	tickUntil(t, engine, StateFree)

	if err := engine.OnMoonSelected("Phantom", 1); err == nil {
		t.Fatalf("expected error for unknown moon")
	}
	if err := engine.OnMoonSelected("Moon", 99); err == nil {
		t.Fatalf("expected error for unknown parent")
	}

	if err := engine.OnMoonSelected("Moon", 1); err != nil {
		t.Fatalf("select moon: %v", err)
	}
	sel := engine.Selection().Current()
	if sel.Kind != SelectionMoon {
		t.Fatalf("selection kind = %v, want moon", sel.Kind)
	}

	parentPos, _ := store.Get("Earth")
	if got := sel.WorldPosition.DistanceTo(parentPos); got > sel.Moon.OrbitRadius+1e-9 {
		t.Fatalf("frozen moon position %v from parent, want within orbit radius %v", got, sel.Moon.OrbitRadius)
	}
	if got := engine.Camera().State(); got != StateZoomingIn {
		t.Fatalf("state = %v, want zooming_in", got)
	}
}

func TestEngine_RegistryLossTriggersHomecoming(t *testing.T) {
	engine, store, _, _ := newTestEngine(t)
	tickUntil(t, engine, StateFree)

	if err := engine.OnBodySelected(1); err != nil {
		t.Fatalf("select Earth: %v", err)
	}
	engine.Tick(testDt)

	// Drop the entry and block the updater from re-writing it, so the
	// camera's next lookup genuinely misses.
	store.reject = "Earth"
	delete(store.m, "Earth")
	engine.Tick(testDt)

	if got := engine.Camera().State(); got != StateMovingHome {
		t.Fatalf("state = %v, want moving_home after registry loss", got)
	}
}
