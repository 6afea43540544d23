// Package catalog describes the bodies of the scene: orbital parameters together with
// the facts and colours the interface shows for them
package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/orbit"
	"github.com/lixenwraith/orrery/vmath"
)

// ErrInvalidCatalog wraps every catalog load or validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// Fact is one labelled line of the info panel
type Fact struct {
	Label string `mapstructure:"label"`
	Value string `mapstructure:"value"`
}

// Rings describes a ring system in multiples of the body radius
type Rings struct {
	Inner float64 `mapstructure:"inner"`
	Outer float64 `mapstructure:"outer"`
}

// Entry is one body as authored in the catalog
type Entry struct {
	Name          string  `mapstructure:"name"`
	Radius        float64 `mapstructure:"radius"`
	Distance      float64 `mapstructure:"distance"`
	Inclination   float64 `mapstructure:"inclination"`
	OrbitalPeriod float64 `mapstructure:"orbitalPeriod"`
	RotationSpeed float64 `mapstructure:"rotationSpeed"`

	Color       string  `mapstructure:"color"`
	Description string  `mapstructure:"description"`
	Summary     string  `mapstructure:"summary"`
	Facts       []Fact  `mapstructure:"facts"`
	Rings       *Rings  `mapstructure:"rings"`
	Satellites  []Entry `mapstructure:"satellites"`
}

// Catalog is the full scene description
type Catalog struct {
	SunRadius float64 `mapstructure:"sunRadius"`
	SunColor  string  `mapstructure:"sunColor"`
	Bodies    []Entry `mapstructure:"bodies"`
}

// Validate checks every entry before any simulation state is built
func (c *Catalog) Validate() error {
	if !(c.SunRadius > 0) {
		return fmt.Errorf("%w: sunRadius=%g must be positive", ErrInvalidCatalog, c.SunRadius)
	}
	if _, err := colorful.Hex(c.SunColor); err != nil {
		return fmt.Errorf("%w: sun color %q: %v", ErrInvalidCatalog, c.SunColor, err)
	}
	if len(c.Bodies) == 0 {
		return fmt.Errorf("%w: no bodies", ErrInvalidCatalog)
	}
	for i := range c.Bodies {
		if err := c.Bodies[i].validate(); err != nil {
			return err
		}
	}
	if _, err := c.system(nil); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	return nil
}

func (e *Entry) validate() error {
	if _, err := colorful.Hex(e.Color); err != nil {
		return fmt.Errorf("%w: body %s color %q: %v", ErrInvalidCatalog, e.Name, e.Color, err)
	}
	if e.Rings != nil && !(e.Rings.Inner > 0 && e.Rings.Outer > e.Rings.Inner) {
		return fmt.Errorf("%w: body %s rings inner=%g outer=%g", ErrInvalidCatalog, e.Name, e.Rings.Inner, e.Rings.Outer)
	}
	for i := range e.Satellites {
		if err := e.Satellites[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Entry) body(rng *rand.Rand) *orbit.Body {
	b := &orbit.Body{
		Name:          e.Name,
		Radius:        e.Radius,
		Distance:      e.Distance,
		Inclination:   e.Inclination,
		OrbitalPeriod: e.OrbitalPeriod,
		RotationSpeed: e.RotationSpeed,
	}
	if rng != nil {
		b.Angle = rng.Float64() * vmath.TwoPi
	}
	for i := range e.Satellites {
		b.Satellites = append(b.Satellites, e.Satellites[i].body(rng))
	}
	return b
}

func (c *Catalog) system(rng *rand.Rand) (*orbit.System, error) {
	bodies := make([]*orbit.Body, len(c.Bodies))
	for i := range c.Bodies {
		bodies[i] = c.Bodies[i].body(rng)
	}
	return orbit.NewSystem(c.SunRadius, bodies...)
}

// Build creates the simulation bodies with orbital angles drawn from rng
// A nil rng starts every body at angle 0
func (c *Catalog) Build(rng *rand.Rand) (*orbit.System, error) {
	return c.system(rng)
}

// Entry finds a body or satellite by name
func (c *Catalog) Entry(name string) (*Entry, bool) {
	for i := range c.Bodies {
		if c.Bodies[i].Name == name {
			return &c.Bodies[i], true
		}
		for j := range c.Bodies[i].Satellites {
			if c.Bodies[i].Satellites[j].Name == name {
				return &c.Bodies[i].Satellites[j], true
			}
		}
	}
	return nil, false
}

// RGB returns the entry colour as 8-bit channels, grey when unparsable
func (e *Entry) RGB() (r, g, b uint8) {
	return hexRGB(e.Color)
}

// SunRGB returns the sun colour as 8-bit channels
func (c *Catalog) SunRGB() (r, g, b uint8) {
	return hexRGB(c.SunColor)
}

func hexRGB(s string) (r, g, b uint8) {
	col, err := colorful.Hex(s)
	if err != nil {
		return 128, 128, 128
	}
	return col.RGB255()
}
