package core

import (
	"math"

	"github.com/Ajayprakashk7/Solar-system-emulator/model"
)

// CameraState identifies the active mode of the camera controller.
// Exactly one state is active at a time.
type CameraState int

const (
	// StateIntro is the initial fly-in toward the home pose. User
	// input is ignored until it converges.
	StateIntro CameraState = iota
	// StateFree allows unconstrained manual orbiting around the
	// current look-at target.
	StateFree
	// StateZoomingIn interpolates toward the selected body. Manual
	// control is disabled.
	StateZoomingIn
	// StateDetailView orbits the selected body with distance clamped
	// to a class-specific range. Auto-rotate is enabled here only.
	StateDetailView
	// StateMovingHome interpolates back to the home pose, then clears
	// the selection.
	StateMovingHome
)

func (s CameraState) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateFree:
		return "free"
	case StateZoomingIn:
		return "zooming_in"
	case StateDetailView:
		return "detail_view"
	case StateMovingHome:
		return "moving_home"
	default:
		return "unknown"
	}
}

// Pose is the camera output consumed by the render surface each tick.
type Pose struct {
	Position        Vec3
	LookAt          Vec3
	ControlsEnabled bool
	MinDistance     float64
	MaxDistance     float64
	AutoRotate      bool
}

// PositionSource is the read side of the body position registry.
type PositionSource interface {
	Get(name string) (Vec3, error)
}

// Interpolation rates and convergence thresholds. Lerp rates are
// per-tick fractions (exponential approach, not constant-time
// arrival); epsilons decide when a transition is complete.
const (
	introLerpRate    = 0.02
	zoomPositionRate = 0.05
	lookAtRate       = 0.1
	homeLerpRate     = 0.05

	// positionEpsilonScale is multiplied by the target body's radius
	// to derive the zoom convergence threshold.
	positionEpsilonScale = 0.3
	// homeEpsilon is the fixed (not radius-scaled) threshold for the
	// intro and return-home transitions.
	homeEpsilon = 0.5

	autoRotateRate = 0.3 // radians per second around the target

	minPitch = -1.45
	maxPitch = 1.45
)

// HomePosition is the fixed overview pose the intro animation and
// return-home transitions converge on.
var (
	HomePosition = Vec3{X: 0, Y: 60, Z: 150}
	HomeLookAt   = Vec3{}

	introStartPosition = Vec3{X: 0, Y: 220, Z: 480}

	// Fixed offset directions, biased up and to one side so the
	// target is never approached edge-on.
	starOffsetDir  = Vec3{X: 0.45, Y: 0.75, Z: 0.5}
	giantOffsetDir = Vec3{X: 0.25, Y: 0.9, Z: 0.35}
	moonOffsetDir  = Vec3{X: 0.5, Y: 0.6, Z: 0.6}
	planetBiasDir  = Vec3{X: 0.3, Y: 0.7, Z: 0.4}
)

// classParams drives the per-body-class distance heuristics.
type classParams struct {
	offsetScale float64 // desired camera distance, in body radii
	minFactor   float64 // detail-view distance clamp, in body radii
	maxFactor   float64
}

func paramsFor(class model.BodyClass) classParams {
	switch class {
	case model.ClassStar:
		return classParams{offsetScale: 3.0, minFactor: 2.0, maxFactor: 8.0}
	case model.ClassGasGiant:
		return classParams{offsetScale: 4.0, minFactor: 1.5, maxFactor: 10.0}
	case model.ClassMoon:
		// Moons are rendered much smaller, so the clamp is tighter.
		return classParams{offsetScale: 3.0, minFactor: 1.5, maxFactor: 6.0}
	default:
		return classParams{offsetScale: 5.0, minFactor: 2.0, maxFactor: 12.0}
	}
}

// Camera owns the authoritative camera pose and the rules for moving
// it between the overview and focused inspection of a selected body.
type Camera struct {
	state     CameraState
	position  Vec3
	lookAt    Vec3
	selection *SelectionState
	positions PositionSource

	// detailOffset keeps the camera's vantage point relative to the
	// body while it keeps orbiting during detail view.
	detailOffset Vec3

	transitionHooks []func(from, to CameraState)
}

// NewCamera constructs a camera in the intro state, reading the given
// selection and position source every tick.
func NewCamera(sel *SelectionState, positions PositionSource) *Camera {
	return &Camera{
		state:     StateIntro,
		position:  introStartPosition,
		lookAt:    HomeLookAt,
		selection: sel,
		positions: positions,
	}
}

// OnTransition registers a hook invoked on every state change.
func (c *Camera) OnTransition(fn func(from, to CameraState)) {
	c.transitionHooks = append(c.transitionHooks, fn)
}

// State returns the active camera state.
func (c *Camera) State() CameraState { return c.state }

// Position returns the live camera position.
func (c *Camera) Position() Vec3 { return c.position }

// LookAt returns the live look-at target.
func (c *Camera) LookAt() Vec3 { return c.lookAt }

func (c *Camera) setState(next CameraState) {
	if next == c.state {
		return
	}
	prev := c.state
	c.state = next
	for _, fn := range c.transitionHooks {
		fn(prev, next)
	}
}

// Focus requests a transition toward the current selection. It is
// ignored during the intro animation and when nothing is selected.
// A new selection made in detail view re-enters the zoom directly,
// without a detour through the home pose.
func (c *Camera) Focus() {
	if c.state == StateIntro {
		return
	}
	if c.selection.Current().Kind == SelectionNone {
		return
	}
	c.setState(StateZoomingIn)
}

// RequestHome asks for a return to the overview. It is ignored during
// the intro animation and is a no-op when already free.
func (c *Camera) RequestHome() {
	if c.state == StateIntro || c.state == StateFree {
		return
	}
	c.setState(StateMovingHome)
}

// controlsEnabled reports whether manual input may move the camera.
func (c *Camera) controlsEnabled() bool {
	return c.state == StateFree || c.state == StateDetailView
}

// Update advances the camera one tick and returns the pose to hand to
// the render surface. deltaTime is in seconds.
func (c *Camera) Update(deltaTime float64) Pose {
	switch c.state {
	case StateIntro:
		c.position = c.position.Lerp(HomePosition, introLerpRate)
		c.lookAt = c.lookAt.Lerp(HomeLookAt, introLerpRate)
		if c.position.DistanceTo(HomePosition) < homeEpsilon {
			c.setState(StateFree)
		}

	case StateFree:
		// Manual control owns the pose; nothing moves on its own.

	case StateZoomingIn:
		c.updateZoom()

	case StateDetailView:
		c.updateDetail(deltaTime)

	case StateMovingHome:
		c.position = c.position.Lerp(HomePosition, homeLerpRate)
		c.lookAt = c.lookAt.Lerp(HomeLookAt, homeLerpRate)
		if c.position.DistanceTo(HomePosition) < homeEpsilon &&
			c.lookAt.DistanceTo(HomeLookAt) < homeEpsilon {
			c.selection.Clear()
			c.setState(StateFree)
		}
	}

	return c.pose()
}

// targetPosition resolves the selected target's world position. Moons
// use the position frozen at selection time; planets and the star are
// re-resolved live so the camera converges onto a moving body rather
// than a stale point.
func (c *Camera) targetPosition(sel Selection) (Vec3, bool) {
	switch sel.Kind {
	case SelectionMoon:
		return sel.WorldPosition, true
	case SelectionPlanet:
		pos, err := c.positions.Get(sel.Body.Name)
		if err != nil {
			return Vec3{}, false
		}
		return pos, true
	default:
		return Vec3{}, false
	}
}

// offsetFor derives the desired camera offset relative to the target
// from the body-class heuristic.
func (c *Camera) offsetFor(sel Selection, target Vec3) Vec3 {
	p := paramsFor(sel.Class())
	dist := sel.Radius() * p.offsetScale

	switch sel.Class() {
	case model.ClassStar:
		return starOffsetDir.Normalized().Scale(dist)
	case model.ClassGasGiant:
		return giantOffsetDir.Normalized().Scale(dist)
	case model.ClassMoon:
		return moonOffsetDir.Normalized().Scale(dist)
	default:
		// Blend the direction away from the origin with a fixed bias
		// so the camera settles outside the body relative to the star.
		outward := target.Normalized()
		if outward.Norm() == 0 {
			outward = planetBiasDir
		}
		dir := outward.Scale(0.6).Add(planetBiasDir.Scale(0.4)).Normalized()
		return dir.Scale(dist)
	}
}

func (c *Camera) updateZoom() {
	sel := c.selection.Current()
	target, ok := c.targetPosition(sel)
	if !ok {
		// Unresolvable target: implicit return home rather than
		// lerping toward an undefined point.
		c.setState(StateMovingHome)
		return
	}

	desired := target.Add(c.offsetFor(sel, target))

	// Independent rates: the gaze settles before the vantage point.
	c.position = c.position.Lerp(desired, zoomPositionRate)
	c.lookAt = c.lookAt.Lerp(target, lookAtRate)

	eps := sel.Radius() * positionEpsilonScale
	if c.position.DistanceTo(desired) < eps && c.lookAt.DistanceTo(target) < eps {
		c.detailOffset = c.position.Sub(target)
		c.setState(StateDetailView)
	}
}

func (c *Camera) updateDetail(deltaTime float64) {
	sel := c.selection.Current()
	target, ok := c.targetPosition(sel)
	if !ok {
		c.setState(StateMovingHome)
		return
	}

	// Slow auto-rotation of the vantage point around the target.
	c.detailOffset = rotateAboutY(c.detailOffset, autoRotateRate*deltaTime)

	p := paramsFor(sel.Class())
	c.detailOffset = clampNorm(c.detailOffset, sel.Radius()*p.minFactor, sel.Radius()*p.maxFactor)

	c.position = target.Add(c.detailOffset)
	c.lookAt = target
}

// Orbit applies a manual yaw/pitch rotation around the current look-at
// target. It is a no-op while manual control is disabled.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	if !c.controlsEnabled() {
		return
	}
	offset := c.position.Sub(c.lookAt)
	radius := offset.Norm()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.Z, offset.X) + dYaw
	pitch := math.Asin(offset.Y/radius) + dPitch
	if pitch < minPitch {
		pitch = minPitch
	} else if pitch > maxPitch {
		pitch = maxPitch
	}

	offset = Vec3{
		X: radius * math.Cos(pitch) * math.Cos(yaw),
		Y: radius * math.Sin(pitch),
		Z: radius * math.Cos(pitch) * math.Sin(yaw),
	}
	c.applyManualOffset(offset)
}

// Dolly scales the camera's distance from the look-at target. Factors
// above 1 move away, below 1 move closer. It is a no-op while manual
// control is disabled.
func (c *Camera) Dolly(factor float64) {
	if !c.controlsEnabled() || factor <= 0 {
		return
	}
	offset := c.position.Sub(c.lookAt).Scale(factor)
	c.applyManualOffset(offset)
}

func (c *Camera) applyManualOffset(offset Vec3) {
	if c.state == StateDetailView {
		sel := c.selection.Current()
		p := paramsFor(sel.Class())
		offset = clampNorm(offset, sel.Radius()*p.minFactor, sel.Radius()*p.maxFactor)
		c.detailOffset = offset
	}
	c.position = c.lookAt.Add(offset)
}

func (c *Camera) pose() Pose {
	pose := Pose{
		Position:        c.position,
		LookAt:          c.lookAt,
		ControlsEnabled: c.controlsEnabled(),
	}
	switch c.state {
	case StateDetailView:
		sel := c.selection.Current()
		p := paramsFor(sel.Class())
		pose.MinDistance = sel.Radius() * p.minFactor
		pose.MaxDistance = sel.Radius() * p.maxFactor
		pose.AutoRotate = true
	case StateFree:
		pose.MaxDistance = math.Inf(1)
	}
	return pose
}

func rotateAboutY(v Vec3, angle float64) Vec3 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

func clampNorm(v Vec3, min, max float64) Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{X: min, Y: 0, Z: 0}
	}
	if n < min {
		return v.Scale(min / n)
	}
	if n > max {
		return v.Scale(max / n)
	}
	return v
}
