package timectrl

import "sync"

// OverrideSpeed is the fixed slow-motion factor applied while the
// camera is transitioning. It has to keep a target's per-tick motion
// small against the radius-scaled convergence threshold, or the zoom
// lerp would chase the body forever.
const OverrideSpeed = 0.02

// SpeedControl holds the scalar multiplier applied to orbital
// advancement. It keeps the user-selected value separate from the
// value actually in effect, so a transition can force slow motion and
// later restore exactly what the user had chosen.
type SpeedControl struct {
	mu         sync.Mutex
	userSpeed  float64
	current    float64
	overridden bool
}

// NewSpeedControl starts at the given user speed.
func NewSpeedControl(userSpeed float64) *SpeedControl {
	if userSpeed < 0 {
		userSpeed = 0
	}
	return &SpeedControl{userSpeed: userSpeed, current: userSpeed}
}

// SetUserSpeed updates the user-selected speed. While an override is
// active only the stored user value changes; the restored value will
// reflect the latest choice.
func (s *SpeedControl) SetUserSpeed(v float64) {
	if v < 0 {
		v = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSpeed = v
	if !s.overridden {
		s.current = v
	}
}

// Override snapshots the user speed and forces the current value to
// OverrideSpeed. Calling it again without an intervening Restore keeps
// the original user value intact.
func (s *SpeedControl) Override() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overridden = true
	s.current = OverrideSpeed
}

// Restore returns the current value to the stored user speed.
func (s *SpeedControl) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overridden = false
	s.current = s.userSpeed
}

// Current returns the speed orbital advancement should use this tick.
func (s *SpeedControl) Current() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// UserSpeed returns the user-selected speed, ignoring any override.
func (s *SpeedControl) UserSpeed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSpeed
}
