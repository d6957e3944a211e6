package core

import "github.com/Ajayprakashk7/Solar-system-emulator/model"

// SelectionKind discriminates what is currently targeted.
type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionPlanet
	SelectionMoon
)

// Selection describes the currently targeted body, if any.
//
// For a moon, WorldPosition is resolved once at selection time as the
// parent's position plus the moon's local offset at that instant, and
// stays fixed for the remainder of the camera transition. Planets and
// the star are re-resolved live from the position registry instead.
type Selection struct {
	Kind SelectionKind

	// Body is the selected planet/star, or the moon's parent.
	Body *model.CelestialBody

	// Moon fields, set only for SelectionMoon.
	Moon           *model.MoonSpec
	ParentPosition Vec3
	WorldPosition  Vec3
}

// Radius returns the selected target's radius, used to scale
// convergence thresholds and distance clamps.
func (s Selection) Radius() float64 {
	if s.Kind == SelectionMoon && s.Moon != nil {
		return s.Moon.Radius
	}
	if s.Body != nil {
		return s.Body.Radius
	}
	return 0
}

// Class returns the body class driving camera heuristics.
func (s Selection) Class() model.BodyClass {
	if s.Kind == SelectionMoon {
		return model.ClassMoon
	}
	if s.Body != nil {
		return s.Body.Class
	}
	return model.ClassRockyPlanet
}

// SelectionState holds the current selection. It is mutated by input
// handlers and read by the camera each tick.
type SelectionState struct {
	current Selection
}

// NewSelectionState starts with nothing selected.
func NewSelectionState() *SelectionState {
	return &SelectionState{}
}

// Select targets a planet or the star.
func (s *SelectionState) Select(body *model.CelestialBody) {
	s.current = Selection{Kind: SelectionPlanet, Body: body}
}

// SelectMoon targets a moon, freezing its world position at call time
// from the parent's position and the moon's current local offset.
func (s *SelectionState) SelectMoon(moon *model.MoonSpec, parent *model.CelestialBody, parentPos Vec3, moonProgress float64) {
	s.current = Selection{
		Kind:           SelectionMoon,
		Body:           parent,
		Moon:           moon,
		ParentPosition: parentPos,
		WorldPosition:  MoonWorldPosition(moon, parentPos, moonProgress),
	}
}

// Clear resets the selection to none.
func (s *SelectionState) Clear() {
	s.current = Selection{}
}

// Current returns the active selection.
func (s *SelectionState) Current() Selection {
	return s.current
}
