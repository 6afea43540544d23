package content

import (
	"github.com/lixenwraith/orrery/vmath"
)

// Constellation is a stick figure drawn on the sky
// Lines index into Stars
type Constellation struct {
	Name  string
	Stars []vmath.Vec3F
	Lines [][2]int
}

// Centroid is the label anchor: the mean of the star positions
func (c Constellation) Centroid() vmath.Vec3F {
	var sum vmath.Vec3F
	if len(c.Stars) == 0 {
		return sum
	}
	for _, s := range c.Stars {
		sum = vmath.V3FAdd(sum, s)
	}
	return vmath.V3FScale(sum, 1/float64(len(c.Stars)))
}

// Segments resolves the line index pairs to endpoints, skipping out-of-range indices
func (c Constellation) Segments() [][2]vmath.Vec3F {
	segs := make([][2]vmath.Vec3F, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l[0] < 0 || l[1] < 0 || l[0] >= len(c.Stars) || l[1] >= len(c.Stars) {
			continue
		}
		segs = append(segs, [2]vmath.Vec3F{c.Stars[l[0]], c.Stars[l[1]]})
	}
	return segs
}

// Constellations returns the built-in figures
func Constellations() []Constellation {
	return constellations
}

func chain(n int) [][2]int {
	l := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		l = append(l, [2]int{i, i + 1})
	}
	return l
}

var constellations = []Constellation{
	{
		Name: "Ursa Major (Big Dipper)",
		Stars: []vmath.Vec3F{
			{X: 100, Y: 50, Z: -200},
			{X: 90, Y: 55, Z: -205},
			{X: 80, Y: 53, Z: -210},
			{X: 70, Y: 48, Z: -215},
			{X: 60, Y: 40, Z: -220},
			{X: 65, Y: 35, Z: -225},
			{X: 70, Y: 30, Z: -230},
		},
		Lines: chain(7),
	},
	{
		Name: "Orion",
		Stars: []vmath.Vec3F{
			{X: -80, Y: 60, Z: -200}, // Betelgeuse
			{X: -75, Y: 70, Z: -200}, // Bellatrix
			{X: -70, Y: 50, Z: -200},
			{X: -65, Y: 45, Z: -200}, // Alnilam
			{X: -60, Y: 40, Z: -200}, // Alnitak
			{X: -55, Y: 35, Z: -200}, // Mintaka
			{X: -50, Y: 20, Z: -200}, // Rigel
			{X: -45, Y: 25, Z: -200}, // Saiph
		},
		Lines: append(chain(8), [2]int{7, 3}),
	},
	{
		Name: "Cassiopeia",
		Stars: []vmath.Vec3F{
			{X: 50, Y: 100, Z: -250},
			{X: 60, Y: 110, Z: -250},
			{X: 70, Y: 105, Z: -250},
			{X: 80, Y: 115, Z: -250},
			{X: 90, Y: 105, Z: -250},
		},
		Lines: chain(5),
	},
	{
		Name: "Cygnus (Northern Cross)",
		Stars: []vmath.Vec3F{
			{X: -60, Y: 120, Z: -220},
			{X: -60, Y: 110, Z: -220},
			{X: -60, Y: 100, Z: -220},
			{X: -60, Y: 90, Z: -220},
			{X: -60, Y: 80, Z: -220},
			{X: -70, Y: 100, Z: -220},
			{X: -50, Y: 100, Z: -220},
		},
		Lines: append(chain(5), [2]int{2, 5}, [2]int{2, 6}),
	},
	{
		Name: "Lyra",
		Stars: []vmath.Vec3F{
			{X: -20, Y: 120, Z: -230}, // Vega
			{X: -25, Y: 115, Z: -230},
			{X: -15, Y: 115, Z: -230},
			{X: -25, Y: 110, Z: -230},
			{X: -15, Y: 110, Z: -230},
		},
		Lines: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}, {3, 4}},
	},
}
