package scene

import (
	"github.com/lixenwraith/orrery/vmath"
)

// Anchor is something that wants a text label
type Anchor struct {
	Text     string
	Position vmath.Vec3F
}

// Label is a placed label, Col/Row is the first character cell
type Label struct {
	Text  string
	Col   int
	Row   int
	Depth float64
}

// PlaceLabels centres each label on its anchor's projection
// Anchors behind the camera or off-grid are dropped
func (p *Projector) PlaceLabels(anchors []Anchor) []Label {
	out := make([]Label, 0, len(anchors))
	for _, a := range anchors {
		pt, ok := p.Project(a.Position)
		if !ok || !p.Visible(pt) {
			continue
		}
		n := len([]rune(a.Text))
		out = append(out, Label{
			Text:  a.Text,
			Col:   int(pt.X) - n/2,
			Row:   int(pt.Y),
			Depth: pt.Depth,
		})
	}
	return out
}
