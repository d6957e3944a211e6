package core

import (
	"math"

	"github.com/Ajayprakashk7/Solar-system-emulator/model"
)

// GlobalSpeed is the scene-wide orbital pacing multiplier. It is tuned
// for visual effect, not physical accuracy.
const GlobalSpeed = 50.0

// keplerExponent approximates that closer bodies orbit faster. Like
// GlobalSpeed, it is a tuning constant rather than calibrated physics.
const keplerExponent = -1.5

// ProgressMap maps body (and moon) name to accumulated angular
// progress in radians. The accumulator is never wrapped; only its
// sine/cosine projection is consumed, so unbounded growth over long
// sessions is an accepted limitation.
type ProgressMap map[string]float64

// PositionMap maps top-level body name to its current world position.
// Moon world positions are derived on demand from the parent's entry
// via MoonWorldPosition.
type PositionMap map[string]Vec3

// KeplerFactor returns the distance-based speed correction for an
// orbit of the given radius.
func KeplerFactor(orbitRadius float64) float64 {
	if orbitRadius <= 0 {
		return 0
	}
	return math.Pow(orbitRadius, keplerExponent)
}

// OrbitPosition projects angular progress onto the y=0 orbit plane.
func OrbitPosition(orbitRadius, progress float64) Vec3 {
	return Vec3{
		X: orbitRadius * math.Cos(progress),
		Y: 0,
		Z: orbitRadius * math.Sin(progress),
	}
}

// MoonWorldPosition derives a moon's world position from its parent's
// current position and the moon's own angular progress.
func MoonWorldPosition(moon *model.MoonSpec, parentPos Vec3, progress float64) Vec3 {
	return parentPos.Add(OrbitPosition(moon.OrbitRadius, progress))
}

// OrbitalModel advances angular progress for every non-star body each
// tick and recomputes top-level world positions. The star is pinned to
// progress 0 at the origin.
type OrbitalModel struct {
	bodies    []*model.CelestialBody
	progress  ProgressMap
	positions PositionMap
}

// NewOrbitalModel seeds progress at zero for every body and moon and
// computes their initial positions.
func NewOrbitalModel(bodies []*model.CelestialBody) *OrbitalModel {
	progress := make(ProgressMap, len(bodies))
	positions := make(PositionMap, len(bodies))
	for _, b := range bodies {
		progress[b.Name] = 0
		if b.IsStar {
			positions[b.Name] = Vec3{}
		} else {
			positions[b.Name] = OrbitPosition(b.OrbitRadius, 0)
		}
		for i := range b.Moons {
			progress[b.Moons[i].Name] = 0
		}
	}
	return &OrbitalModel{
		bodies:    bodies,
		progress:  progress,
		positions: positions,
	}
}

// Advance moves every non-star body by
//
//	orbitAngularSpeed * GlobalSpeed * keplerFactor * speedFactor * deltaTime
//
// radians and recomputes positions. The returned maps are freshly
// allocated only when at least one value actually changed; at
// speedFactor 0 (or zero elapsed time) the previous maps are returned
// as-is, so downstream consumers can skip redundant work by comparing
// references.
func (m *OrbitalModel) Advance(deltaTime, speedFactor float64) (ProgressMap, PositionMap) {
	if deltaTime == 0 || speedFactor == 0 {
		return m.progress, m.positions
	}

	changed := false
	progress := make(ProgressMap, len(m.progress))
	positions := make(PositionMap, len(m.positions))
	for k, v := range m.progress {
		progress[k] = v
	}
	for k, v := range m.positions {
		positions[k] = v
	}

	for _, b := range m.bodies {
		if b.IsStar {
			// Pinned: progress stays 0, position stays at the origin.
			continue
		}
		delta := b.OrbitAngularSpeed * GlobalSpeed * KeplerFactor(b.OrbitRadius) * speedFactor * deltaTime
		if delta != 0 {
			changed = true
			progress[b.Name] += delta
			positions[b.Name] = OrbitPosition(b.OrbitRadius, progress[b.Name])
		}
		for i := range b.Moons {
			moon := &b.Moons[i]
			mdelta := moon.OrbitAngularSpeed * GlobalSpeed * KeplerFactor(moon.OrbitRadius) * speedFactor * deltaTime
			if mdelta != 0 {
				changed = true
				progress[moon.Name] += mdelta
			}
		}
	}

	if !changed {
		return m.progress, m.positions
	}
	m.progress = progress
	m.positions = positions
	return progress, positions
}

// Progress returns the current progress map.
func (m *OrbitalModel) Progress() ProgressMap { return m.progress }

// Positions returns the current top-level position map.
func (m *OrbitalModel) Positions() PositionMap { return m.positions }
