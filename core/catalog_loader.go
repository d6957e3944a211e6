package core

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Ajayprakashk7/Solar-system-emulator/model"
)

// internal JSON shapes - kept unexported so the on-disk format can
// evolve without leaking into the model types.
type catalogJSON struct {
	Bodies []bodyJSON `json:"bodies"`
}

type bodyJSON struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Radius            float64    `json:"radius"`
	OrbitRadius       float64    `json:"orbit_radius"`
	OrbitAngularSpeed float64    `json:"orbit_angular_speed"`
	AxialTilt         float64    `json:"axial_tilt"`
	IsStar            bool       `json:"is_star"`
	Class             string     `json:"class"` // "gas_giant" | "rocky_planet"; optional
	Moons             []moonJSON `json:"moons"`
}

type moonJSON struct {
	Name              string  `json:"name"`
	Radius            float64 `json:"radius"`
	OrbitRadius       float64 `json:"orbit_radius"`
	OrbitAngularSpeed float64 `json:"orbit_angular_speed"`
	Color             string  `json:"color"`
}

// LoadCatalog reads a JSON body catalog from r, assigns class tags,
// and validates the result. The camera and orbital model may assume a
// loaded catalog satisfies every invariant checked here, in
// particular strictly positive radii.
func LoadCatalog(r io.Reader) ([]*model.CelestialBody, error) {
	var payload catalogJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadCatalog: decode failed: %w", err)
	}

	bodies := make([]*model.CelestialBody, 0, len(payload.Bodies))
	for _, jb := range payload.Bodies {
		b := &model.CelestialBody{
			ID:                jb.ID,
			Name:              jb.Name,
			Radius:            jb.Radius,
			OrbitRadius:       jb.OrbitRadius,
			OrbitAngularSpeed: jb.OrbitAngularSpeed,
			AxialTilt:         jb.AxialTilt,
			IsStar:            jb.IsStar,
			Class:             classFromJSON(jb),
		}
		for _, jm := range jb.Moons {
			b.Moons = append(b.Moons, model.MoonSpec{
				Name:              jm.Name,
				Radius:            jm.Radius,
				OrbitRadius:       jm.OrbitRadius,
				OrbitAngularSpeed: jm.OrbitAngularSpeed,
				Color:             jm.Color,
			})
		}
		bodies = append(bodies, b)
	}

	if err := ValidateCatalog(bodies); err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	return bodies, nil
}

func classFromJSON(jb bodyJSON) model.BodyClass {
	if jb.IsStar {
		return model.ClassStar
	}
	switch strings.ToLower(jb.Class) {
	case "gas_giant":
		return model.ClassGasGiant
	default:
		return model.ClassRockyPlanet
	}
}

// ValidateCatalog checks the invariants the rest of the system relies
// on: unique ids and names, strictly positive radii, orbit radius zero
// exactly for stars.
func ValidateCatalog(bodies []*model.CelestialBody) error {
	if len(bodies) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	ids := make(map[int]bool, len(bodies))
	names := make(map[string]bool)
	for _, b := range bodies {
		if b.Name == "" {
			return fmt.Errorf("body id %d has empty name", b.ID)
		}
		if ids[b.ID] {
			return fmt.Errorf("duplicate body id %d", b.ID)
		}
		ids[b.ID] = true
		if names[b.Name] {
			return fmt.Errorf("duplicate body name %q", b.Name)
		}
		names[b.Name] = true

		if b.Radius <= 0 {
			return fmt.Errorf("body %q has non-positive radius %v", b.Name, b.Radius)
		}
		if b.IsStar && b.OrbitRadius != 0 {
			return fmt.Errorf("star %q must have orbit radius 0, got %v", b.Name, b.OrbitRadius)
		}
		if !b.IsStar && b.OrbitRadius <= 0 {
			return fmt.Errorf("body %q has non-positive orbit radius %v", b.Name, b.OrbitRadius)
		}
		if b.IsStar != (b.Class == model.ClassStar) {
			return fmt.Errorf("body %q star flag and class tag disagree", b.Name)
		}

		for i := range b.Moons {
			m := &b.Moons[i]
			if m.Name == "" {
				return fmt.Errorf("body %q has a moon with empty name", b.Name)
			}
			if names[m.Name] {
				return fmt.Errorf("duplicate body name %q", m.Name)
			}
			names[m.Name] = true
			if m.Radius <= 0 {
				return fmt.Errorf("moon %q has non-positive radius %v", m.Name, m.Radius)
			}
			if m.OrbitRadius <= 0 {
				return fmt.Errorf("moon %q has non-positive orbit radius %v", m.Name, m.OrbitRadius)
			}
		}
	}
	return nil
}
