package model

// BodyClass is a coarse category assigned once at catalog-load time.
// Camera distance/offset heuristics dispatch on the class tag rather
// than comparing body names at runtime.
type BodyClass int

const (
	ClassRockyPlanet BodyClass = iota
	ClassStar
	ClassGasGiant
	ClassMoon
)

func (c BodyClass) String() string {
	switch c {
	case ClassStar:
		return "star"
	case ClassGasGiant:
		return "gas_giant"
	case ClassRockyPlanet:
		return "rocky_planet"
	case ClassMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// MoonSpec describes a moon orbiting its parent body. OrbitRadius is
// relative to the parent's position.
type MoonSpec struct {
	Name              string  `json:"name"`
	Radius            float64 `json:"radius"`
	OrbitRadius       float64 `json:"orbit_radius"`
	OrbitAngularSpeed float64 `json:"orbit_angular_speed"`
	Color             string  `json:"color"`
}

// CelestialBody is a static catalog entry. Instances are immutable
// after load and referenced by pointer, never copied.
type CelestialBody struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Radius            float64    `json:"radius"`
	OrbitRadius       float64    `json:"orbit_radius"`
	OrbitAngularSpeed float64    `json:"orbit_angular_speed"`
	AxialTilt         float64    `json:"axial_tilt"`
	IsStar            bool       `json:"is_star"`
	Class             BodyClass  `json:"-"`
	Moons             []MoonSpec `json:"moons,omitempty"`
}

// Moon returns the moon spec with the given name, or nil.
func (b *CelestialBody) Moon(name string) *MoonSpec {
	for i := range b.Moons {
		if b.Moons[i].Name == name {
			return &b.Moons[i]
		}
	}
	return nil
}
