package core

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Ajayprakashk7/Solar-system-emulator/internal/logging"
	"github.com/Ajayprakashk7/Solar-system-emulator/model"
	"github.com/Ajayprakashk7/Solar-system-emulator/timectrl"
)

// PositionStore is the write side of the body position registry as the
// engine sees it: reads for camera targeting, writes from the orbital
// updater.
type PositionStore interface {
	PositionSource
	Set(name string, pos Vec3)
}

// RenderSink consumes the camera pose emitted at the end of every
// tick. Renderers place meshes from the position registry separately.
type RenderSink interface {
	ApplyPose(pose Pose)
}

// Engine wires the orbital model, position registry, selection state,
// camera, and speed control into a single Tick entry point, and
// exposes the synchronous input events the UI collaborators call.
//
// Everything runs sequentially within one tick in a fixed order: speed
// is read, orbital progress advances and positions are written to the
// registry, then the camera reads selection plus registry and updates
// its pose.
type Engine struct {
	log logging.Logger

	bodies []*model.CelestialBody
	byID   map[int]*model.CelestialBody

	orbital   *OrbitalModel
	positions PositionStore
	selection *SelectionState
	camera    *Camera
	speed     *timectrl.SpeedControl
	sink      RenderSink

	lastWritten PositionMap
}

// NewEngine builds an engine over a validated catalog. The registry is
// seeded with every body's initial position so camera targeting never
// races the first tick.
func NewEngine(bodies []*model.CelestialBody, store PositionStore, speed *timectrl.SpeedControl, sink RenderSink, log logging.Logger) *Engine {
	if log == nil {
		log = logging.Noop()
	}
	byID := make(map[int]*model.CelestialBody, len(bodies))
	for _, b := range bodies {
		byID[b.ID] = b
	}

	e := &Engine{
		log:       log,
		bodies:    bodies,
		byID:      byID,
		orbital:   NewOrbitalModel(bodies),
		positions: store,
		selection: NewSelectionState(),
		speed:     speed,
		sink:      sink,
	}
	e.camera = NewCamera(e.selection, store)

	for name, pos := range e.orbital.Positions() {
		store.Set(name, pos)
	}
	e.lastWritten = e.orbital.Positions()

	e.camera.OnTransition(func(from, to CameraState) {
		switch to {
		case StateZoomingIn, StateMovingHome:
			e.speed.Override()
		case StateDetailView, StateFree:
			e.speed.Restore()
		}
		e.log.Info(context.Background(), "camera transition",
			logging.String("from", from.String()),
			logging.String("to", to.String()),
		)
	})

	return e
}

// Tick advances the simulation by deltaTime seconds and returns the
// camera pose for this frame.
func (e *Engine) Tick(deltaTime float64) Pose {
	factor := e.speed.Current()

	_, positions := e.orbital.Advance(deltaTime, factor)

	// The orbital model returns the previous map untouched when
	// nothing moved; skip the registry writes in that case.
	if !sameMap(positions, e.lastWritten) {
		for name, pos := range positions {
			e.positions.Set(name, pos)
		}
		e.lastWritten = positions
	}

	pose := e.camera.Update(deltaTime)
	if e.sink != nil {
		e.sink.ApplyPose(pose)
	}
	return pose
}

// OnBodySelected targets the catalog body with the given id and starts
// the zoom toward it. Unknown ids are rejected with the selection left
// unchanged. Input is ignored during the intro animation.
func (e *Engine) OnBodySelected(id int) error {
	if e.camera.State() == StateIntro {
		return nil
	}
	body, ok := e.byID[id]
	if !ok {
		return fmt.Errorf("body id %d not in catalog", id)
	}
	e.selection.Select(body)
	e.camera.Focus()
	return nil
}

// OnMoonSelected targets a moon of the given parent body. The moon's
// world position is resolved once, now, from the parent's registry
// entry plus the moon's current local offset.
func (e *Engine) OnMoonSelected(moonName string, parentID int) error {
	if e.camera.State() == StateIntro {
		return nil
	}
	parent, ok := e.byID[parentID]
	if !ok {
		return fmt.Errorf("body id %d not in catalog", parentID)
	}
	moon := parent.Moon(moonName)
	if moon == nil {
		return fmt.Errorf("body %q has no moon %q", parent.Name, moonName)
	}
	parentPos, err := e.positions.Get(parent.Name)
	if err != nil {
		return fmt.Errorf("resolve %q: %w", parent.Name, err)
	}
	e.selection.SelectMoon(moon, parent, parentPos, e.orbital.Progress()[moon.Name])
	e.camera.Focus()
	return nil
}

// OnDeselect requests a return to the overview. The selection itself
// is cleared once the camera arrives home.
func (e *Engine) OnDeselect() {
	e.camera.RequestHome()
}

// OnSetSpeed updates the user-selected speed factor.
func (e *Engine) OnSetSpeed(v float64) {
	e.speed.SetUserSpeed(v)
}

// Camera exposes the camera controller, e.g. for manual orbit input
// or transition hooks.
func (e *Engine) Camera() *Camera { return e.camera }

// Selection exposes the current selection state.
func (e *Engine) Selection() *SelectionState { return e.selection }

// Bodies returns the catalog the engine runs over.
func (e *Engine) Bodies() []*model.CelestialBody { return e.bodies }

// Body returns the catalog entry with the given id, or nil.
func (e *Engine) Body(id int) *model.CelestialBody { return e.byID[id] }

// sameMap reports whether two position maps are the same map object.
func sameMap(a, b PositionMap) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
