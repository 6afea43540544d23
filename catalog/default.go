package catalog

// Default returns the built-in solar system
// Radii and distances are relative display units, not to scale; periods are in Earth years
func Default() *Catalog {
	return &Catalog{
		SunRadius: 5,
		SunColor:  "#ffaa00",
		Bodies: []Entry{
			{
				Name:          "Mercury",
				Radius:        0.38,
				Distance:      10,
				Inclination:   0.1221730476, // 7.00°
				OrbitalPeriod: 0.2408467,
				RotationSpeed: 0.004,
				Color:         "#aaa9ad",
				Description:   "The smallest planet in our solar system and closest to the Sun, known for its extreme temperature variations.",
				Summary:       "The smallest and innermost planet in the Solar System.",
				Facts: []Fact{
					{"Diameter", "4,879 km"},
					{"Mass", "0.055 Earths"},
					{"Surface Temperature", "-173 to 427 °C"},
					{"Orbital Period", "88 Earth days"},
					{"Moons", "0"},
				},
			},
			{
				Name:          "Venus",
				Radius:        0.95,
				Distance:      15,
				Inclination:   0.0593411946, // 3.40°
				OrbitalPeriod: 0.61519726,
				RotationSpeed: 0.002,
				Color:         "#e39e1c",
				Description:   "Known for its thick, toxic atmosphere and intense heat, Venus is often called Earth's 'sister planet'.",
				Summary:       "Second planet from the Sun with a thick, toxic atmosphere.",
				Facts: []Fact{
					{"Diameter", "12,104 km"},
					{"Mass", "0.815 Earths"},
					{"Surface Temperature", "465 °C (average)"},
					{"Orbital Period", "225 Earth days"},
					{"Moons", "0"},
				},
			},
			{
				Name:          "Earth",
				Radius:        1,
				Distance:      20,
				Inclination:   0,
				OrbitalPeriod: 1.0,
				RotationSpeed: 0.01,
				Color:         "#6b93d6",
				Description:   "Our home planet, the only place known to harbor life, with vast oceans and diverse ecosystems.",
				Summary:       "Our home planet and the only known place with life.",
				Facts: []Fact{
					{"Diameter", "12,742 km"},
					{"Mass", "1 Earth"},
					{"Surface Temperature", "-88 to 58 °C"},
					{"Orbital Period", "365.25 Earth days"},
					{"Moons", "1 (The Moon)"},
				},
				Satellites: []Entry{
					{
						Name:          "Moon",
						Radius:        0.27,
						Distance:      2.5,
						OrbitalPeriod: 0.0748, // 27.3 days
						RotationSpeed: 0.003,
						Color:         "#aaaaaa",
						Summary:       "Earth's only natural satellite.",
					},
				},
			},
			{
				Name:          "Mars",
				Radius:        0.53,
				Distance:      25,
				Inclination:   0.0322888591, // 1.85°
				OrbitalPeriod: 1.8808158,
				RotationSpeed: 0.008,
				Color:         "#c1440e",
				Description:   "The 'Red Planet', known for its rusty appearance, polar ice caps, and potential for past microbial life.",
				Summary:       `The "Red Planet" with polar ice caps and evidence of ancient water.`,
				Facts: []Fact{
					{"Diameter", "6,779 km"},
					{"Mass", "0.107 Earths"},
					{"Surface Temperature", "-63 °C (average)"},
					{"Orbital Period", "687 Earth days"},
					{"Moons", "2 (Phobos & Deimos)"},
				},
			},
			{
				Name:          "Jupiter",
				Radius:        11.2,
				Distance:      35,
				Inclination:   0.0227764907, // 1.30°
				OrbitalPeriod: 11.862615,
				RotationSpeed: 0.02,
				Color:         "#d8ca9d",
				Description:   "The largest planet in our solar system, a gas giant with a Great Red Spot and numerous moons.",
				Summary:       "The largest planet with a distinctive Great Red Spot storm.",
				Facts: []Fact{
					{"Diameter", "139,820 km"},
					{"Mass", "317.8 Earths"},
					{"Cloud Top Temperature", "-145 °C (average)"},
					{"Orbital Period", "11.86 Earth years"},
					{"Moons", "95 (known, including Ganymede, Callisto, Io, Europa)"},
				},
			},
			{
				Name:          "Saturn",
				Radius:        9.45,
				Distance:      47,
				Inclination:   0.043353952, // 2.48°
				OrbitalPeriod: 29.447498,
				RotationSpeed: 0.018,
				Color:         "#ead6b8",
				Description:   "Famous for its stunning ring system, Saturn is another gas giant with a diverse collection of moons.",
				Summary:       "Known for its beautiful ring system made of ice particles.",
				Facts: []Fact{
					{"Diameter", "116,460 km"},
					{"Mass", "95.2 Earths"},
					{"Cloud Top Temperature", "-178 °C (average)"},
					{"Orbital Period", "29.45 Earth years"},
					{"Moons", "146 (known, including Titan, Rhea, Enceladus)"},
				},
				Rings: &Rings{Inner: 10.8, Outer: 15.5},
			},
			{
				Name:          "Uranus",
				Radius:        4.0,
				Distance:      58,
				Inclination:   0.0134390352, // 0.77°
				OrbitalPeriod: 84.016846,
				RotationSpeed: 0.012,
				Color:         "#c1d0d9",
				Description:   "An ice giant with a unique sideways rotation, Uranus has a faint ring system and numerous moons.",
				Summary:       "An ice giant that rotates on its side like a rolling ball.",
				Facts: []Fact{
					{"Diameter", "50,724 km"},
					{"Mass", "14.5 Earths"},
					{"Cloud Top Temperature", "-214 °C (average)"},
					{"Orbital Period", "84 Earth years"},
					{"Moons", "27 (known, including Titania, Oberon, Miranda)"},
				},
			},
			{
				Name:          "Neptune",
				Radius:        3.88,
				Distance:      68,
				Inclination:   0.0308923278, // 1.77°
				OrbitalPeriod: 164.79132,
				RotationSpeed: 0.01,
				Color:         "#3f54ba",
				Description:   "The most distant planet from the Sun, Neptune is an ice giant known for its strong winds and deep blue color.",
				Summary:       "The windiest planet with speeds up to 2,100 km/h.",
				Facts: []Fact{
					{"Diameter", "49,244 km"},
					{"Mass", "17.1 Earths"},
					{"Cloud Top Temperature", "-218 °C (average)"},
					{"Orbital Period", "164.8 Earth years"},
					{"Moons", "14 (known, including Triton)"},
				},
			},
		},
	}
}
