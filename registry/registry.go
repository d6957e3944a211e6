package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Ajayprakashk7/Solar-system-emulator/core"
)

// ErrNotFound reports a lookup for a body the registry has never been
// given a position for. Callers must be able to distinguish "not yet
// positioned" from "at the origin", so Get never returns a default
// position.
var ErrNotFound = errors.New("body position not found")

// Event is emitted to subscribers when a body's position changes.
type Event struct {
	Name     string
	Position core.Vec3
}

// PositionRegistry is a shared map from body name to current world
// position. It has a single writer (the orbital updater) and multiple
// readers (camera targeting, per-body renderers). Access within one
// tick is sequenced, but the lock keeps it safe for front-ends that
// read from another goroutine.
type PositionRegistry struct {
	mu        sync.RWMutex
	positions map[string]core.Vec3
	subs      []func(Event)
}

// New constructs an empty registry.
func New() *PositionRegistry {
	return &PositionRegistry{
		positions: make(map[string]core.Vec3),
	}
}

// Set stores the current position for a body and notifies subscribers.
func (r *PositionRegistry) Set(name string, pos core.Vec3) {
	r.mu.Lock()
	r.positions[name] = pos
	subs := append([]func(Event){}, r.subs...)
	r.mu.Unlock()

	// Notify subscribers outside the lock to avoid deadlocks.
	for _, sub := range subs {
		sub(Event{Name: name, Position: pos})
	}
}

// Get returns the current position for a body, or ErrNotFound when the
// name has never been positioned.
func (r *PositionRegistry) Get(name string) (core.Vec3, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.positions[name]
	if !ok {
		return core.Vec3{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return pos, nil
}

// Delete removes a body's entry. Subsequent Gets return ErrNotFound.
func (r *PositionRegistry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.positions, name)
}

// Snapshot returns a copy of all current positions.
func (r *PositionRegistry) Snapshot() map[string]core.Vec3 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]core.Vec3, len(r.positions))
	for k, v := range r.positions {
		out[k] = v
	}
	return out
}

// Subscribe registers a callback for position updates. It returns an
// unsubscribe function.
func (r *PositionRegistry) Subscribe(fn func(Event)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = append(r.subs, fn)
	idx := len(r.subs) - 1

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if idx < 0 || idx >= len(r.subs) {
			return
		}
		r.subs = append(r.subs[:idx], r.subs[idx+1:]...)
		idx = -1
	}
}
