package model

import "math"

func deg(d float64) float64 { return d * math.Pi / 180.0 }

// DefaultCatalog returns the built-in solar system: the Sun, eight
// planets, and the visually notable moons. Radii and orbit radii are
// render units chosen for visual pacing, not to scale.
func DefaultCatalog() []*CelestialBody {
	return []*CelestialBody{
		{
			ID: 0, Name: "Sun", Radius: 5, OrbitRadius: 0,
			OrbitAngularSpeed: 0, AxialTilt: deg(7.25),
			IsStar: true, Class: ClassStar,
		},
		{
			ID: 1, Name: "Mercury", Radius: 0.38, OrbitRadius: 8,
			OrbitAngularSpeed: 1, AxialTilt: deg(0.03),
			Class: ClassRockyPlanet,
		},
		{
			ID: 2, Name: "Venus", Radius: 0.95, OrbitRadius: 11,
			OrbitAngularSpeed: 1, AxialTilt: deg(177.4),
			Class: ClassRockyPlanet,
		},
		{
			ID: 3, Name: "Earth", Radius: 1, OrbitRadius: 14,
			OrbitAngularSpeed: 1, AxialTilt: deg(23.4),
			Class: ClassRockyPlanet,
			Moons: []MoonSpec{
				{Name: "Moon", Radius: 0.27, OrbitRadius: 2, OrbitAngularSpeed: 5, Color: "#B5B5B5"},
			},
		},
		{
			ID: 4, Name: "Mars", Radius: 0.53, OrbitRadius: 17,
			OrbitAngularSpeed: 1, AxialTilt: deg(25.2),
			Class: ClassRockyPlanet,
			Moons: []MoonSpec{
				{Name: "Phobos", Radius: 0.11, OrbitRadius: 1.4, OrbitAngularSpeed: 8, Color: "#8A7F72"},
				{Name: "Deimos", Radius: 0.06, OrbitRadius: 2.1, OrbitAngularSpeed: 6, Color: "#9C9186"},
			},
		},
		{
			ID: 5, Name: "Jupiter", Radius: 3.5, OrbitRadius: 24,
			OrbitAngularSpeed: 1, AxialTilt: deg(3.1),
			Class: ClassGasGiant,
			Moons: []MoonSpec{
				{Name: "Io", Radius: 0.29, OrbitRadius: 4.5, OrbitAngularSpeed: 9, Color: "#E8D14C"},
				{Name: "Europa", Radius: 0.25, OrbitRadius: 5.4, OrbitAngularSpeed: 7, Color: "#C9B9A2"},
				{Name: "Ganymede", Radius: 0.41, OrbitRadius: 6.5, OrbitAngularSpeed: 5, Color: "#978F82"},
				{Name: "Callisto", Radius: 0.38, OrbitRadius: 7.8, OrbitAngularSpeed: 4, Color: "#6F6A5E"},
			},
		},
		{
			ID: 6, Name: "Saturn", Radius: 3, OrbitRadius: 30,
			OrbitAngularSpeed: 1, AxialTilt: deg(26.7),
			Class: ClassGasGiant,
			Moons: []MoonSpec{
				{Name: "Titan", Radius: 0.40, OrbitRadius: 5.6, OrbitAngularSpeed: 4, Color: "#D8A15B"},
			},
		},
		{
			ID: 7, Name: "Uranus", Radius: 2, OrbitRadius: 36,
			OrbitAngularSpeed: 1, AxialTilt: deg(97.8),
			Class: ClassGasGiant,
		},
		{
			ID: 8, Name: "Neptune", Radius: 1.9, OrbitRadius: 42,
			OrbitAngularSpeed: 1, AxialTilt: deg(28.3),
			Class: ClassGasGiant,
			Moons: []MoonSpec{
				{Name: "Triton", Radius: 0.21, OrbitRadius: 3.4, OrbitAngularSpeed: 5, Color: "#C3CEDA"},
			},
		},
	}
}
