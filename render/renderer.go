package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/hud"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/scene"
	"github.com/lixenwraith/orrery/sim"
	"github.com/lixenwraith/orrery/vmath"
)

const (
	statusRows = 1
	panelWidth = 36
	ambient    = 0.12
)

var (
	colorLabel      = mustHex("#e0e0e8")
	colorDim        = mustHex("#64646e")
	colorOrbit      = mustHex("#3a3a48")
	colorFigure     = mustHex("#ccccff")
	colorFigureText = mustHex("#8c8cc8")
	colorPanelBg    = mustHex("#101018")
	colorPanelFg    = mustHex("#d0d0d8")
	colorSelect     = mustHex("#ffd24a")
	colorRingTint   = mustHex("#fff4dc")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexOr(s string, fallback colorful.Color) colorful.Color {
	if c, err := colorful.Hex(s); err == nil {
		return c
	}
	return fallback
}

// Renderer draws frames into its buffer
// The projector of the last frame is kept for mouse picking
type Renderer struct {
	buf     *Buffer
	cat     *catalog.Catalog
	sun     colorful.Color
	palette map[string]colorful.Color
	rings   map[string]catalog.Rings
	proj    *scene.Projector
}

// New prepares colours and ring data from the catalog
func New(cat *catalog.Catalog, width, height int) *Renderer {
	r := &Renderer{
		buf:     NewBuffer(width, height),
		cat:     cat,
		sun:     hexOr(cat.SunColor, mustHex("#ffaa00")),
		palette: make(map[string]colorful.Color),
		rings:   make(map[string]catalog.Rings),
	}
	var add func(e *catalog.Entry)
	add = func(e *catalog.Entry) {
		r.palette[e.Name] = hexOr(e.Color, colorDim)
		if e.Rings != nil {
			r.rings[e.Name] = *e.Rings
		}
		for i := range e.Satellites {
			add(&e.Satellites[i])
		}
	}
	for i := range cat.Bodies {
		add(&cat.Bodies[i])
	}
	return r
}

// Buffer returns the compositor
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// Resize follows the terminal size
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Projector returns the projection used by the last Draw, nil before the first
func (r *Renderer) Projector() *scene.Projector {
	return r.proj
}

// ViewProjector builds the projection for the scene area of the buffer
func (r *Renderer) ViewProjector(fr sim.Frame) *scene.Projector {
	w, h := r.buf.Size()
	return scene.NewProjector(fr.Camera, w, h-statusRows, parameter.TerminalCellAspect, parameter.FieldOfViewDeg)
}

// Draw renders the full frame: sky, orbit guides, bodies, labels, panels, status
func (r *Renderer) Draw(s *sim.Sim, fr sim.Frame, h *hud.HUD, fps float64) {
	r.buf.Clear()
	r.proj = r.ViewProjector(fr)
	low := fr.LowQuality

	r.drawStars(fr)
	r.drawConstellations(s)
	if fr.Prefs.ShowOrbits {
		r.drawOrbits(s, low)
	}

	r.sphere(vmath.Vec3F{}, fr.SunRadius, r.sun, nil, !low)
	for _, p := range fr.Bodies {
		col := r.palette[p.Name]
		r.sphere(p.Position, p.Radius, col, &vmath.Vec3F{}, false)
		if rings, ok := r.rings[p.Name]; ok {
			r.drawRings(p.Position, p.Radius, rings, col, low)
		}
		if p.Name == fr.Selected {
			r.markSelected(p.Position, p.Radius)
		}
	}

	if fr.Prefs.ShowLabels {
		r.drawLabels(fr)
	}

	if fr.Selected != "" {
		e, _ := r.cat.Entry(fr.Selected)
		r.drawPanel(hud.InfoLines(e, panelWidth-4), r.panelRight(), 1, r.palette[fr.Selected])
	}
	if h != nil {
		if lines := h.Lines(60); len(lines) > 0 {
			r.drawOverlay(lines)
		}
	}
	r.drawStatus(fr, fps)
}

func (r *Renderer) drawStars(fr sim.Frame) {
	for i, st := range fr.Stars {
		p := vmath.V3FRotateY(st, fr.SkyRotation)
		pt, ok := r.proj.Project(p)
		if !ok || !r.proj.Visible(pt) {
			continue
		}
		// Fixed per-star brightness so the field does not shimmer between frames
		lum := 0.35 + 0.5*float64((i*2654435761)%97)/96
		ch := '.'
		if lum > 0.75 {
			ch = '*'
		}
		r.buf.Plot(int(pt.X), int(pt.Y), ch, colorful.Color{R: lum, G: lum, B: lum}, pt.Depth)
	}
}

func (r *Renderer) drawConstellations(s *sim.Sim) {
	figs := s.Constellations()
	if len(figs) == 0 {
		return
	}
	for _, c := range figs {
		for _, seg := range c.Segments() {
			a, okA := r.proj.Project(seg[0])
			b, okB := r.proj.Project(seg[1])
			if okA && okB {
				r.line(a, b, '·', colorFigure.BlendRgb(colorBlack, 0.4))
			}
		}
		for _, st := range c.Stars {
			if pt, ok := r.proj.Project(st); ok {
				r.buf.Plot(int(pt.X), int(pt.Y), '*', colorful.Color{R: 1, G: 1, B: 1}, pt.Depth-0.5)
			}
		}
		if pt, ok := r.proj.Project(c.Centroid()); ok && r.proj.Visible(pt) {
			n := len([]rune(c.Name))
			r.buf.Text(int(pt.X)-n/2, int(pt.Y)-1, c.Name, colorFigureText)
		}
	}
}

func (r *Renderer) drawOrbits(s *sim.Sim, low bool) {
	step := 1
	if low {
		step = 2
	}
	for _, b := range s.System().Bodies {
		path, ok := s.Path(b.Name)
		if !ok || len(path) < 2 {
			continue
		}
		prev, prevOK := r.proj.Project(path[0])
		for i := step; i <= len(path); i += step {
			cur, curOK := r.proj.Project(path[i%len(path)])
			if prevOK && curOK {
				r.line(prev, cur, '·', colorOrbit)
			}
			prev, prevOK = cur, curOK
		}
	}
}

// line steps between two projected points, interpolating depth
func (r *Renderer) line(a, b scene.Point, ch rune, col colorful.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	w, h := r.buf.Size()
	if steps > 4*(w+h) {
		return
	}
	if steps == 0 {
		r.buf.Plot(int(a.X), int(a.Y), ch, col, a.Depth)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.buf.Plot(
			int(math.Floor(a.X+dx*t)),
			int(math.Floor(a.Y+dy*t)),
			ch, col, a.Depth+(b.Depth-a.Depth)*t,
		)
	}
}

// sphere rasterizes a shaded disc
// light is the world position of the light source, nil for self-lit bodies
func (r *Renderer) sphere(center vmath.Vec3F, radius float64, base colorful.Color, light *vmath.Vec3F, glow bool) {
	pt, ok := r.proj.Project(center)
	if !ok {
		return
	}
	ry := r.proj.Radius(radius, pt.Depth)
	rx := ry * r.proj.CellAspect

	if ry < 0.5 {
		ch := '•'
		if ry > 0.25 {
			ch = '●'
		}
		r.buf.Plot(int(pt.X), int(pt.Y), ch, base, pt.Depth-radius)
		return
	}

	var toLight vmath.Vec3F
	if light != nil {
		toLight = vmath.V3FNormalize(vmath.V3FSub(*light, center))
	}
	right, up, back := r.proj.Right(), r.proj.Up(), vmath.V3FScale(r.proj.Forward(), -1)

	reach := 1.0
	if glow {
		reach = 1.5
	}
	minX, maxX := int(pt.X-rx*reach)-1, int(pt.X+rx*reach)+1
	minY, maxY := int(pt.Y-ry*reach)-1, int(pt.Y+ry*reach)+1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			nx := (float64(x) + 0.5 - pt.X) / rx
			ny := (float64(y) + 0.5 - pt.Y) / ry
			d2 := nx*nx + ny*ny

			if d2 > 1 {
				if glow && d2 < reach*reach {
					falloff := math.Exp(-(math.Sqrt(d2)-1)*4) * 0.6
					r.buf.Blend(x, y, base, BlendScreen, falloff)
				}
				continue
			}

			nz := math.Sqrt(1 - d2)
			var intensity float64
			if light == nil {
				// Limb darkening
				intensity = 0.65 + 0.35*nz
			} else {
				n := vmath.V3FAdd(vmath.V3FAdd(vmath.V3FScale(right, nx), vmath.V3FScale(up, -ny)), vmath.V3FScale(back, nz))
				intensity = ambient + (1-ambient)*math.Max(0, vmath.V3FDot(n, toLight))
			}
			r.buf.Fill(x, y, colorBlack.BlendRgb(base, intensity), pt.Depth-nz*radius)
		}
	}
}

func (r *Renderer) drawRings(center vmath.Vec3F, radius float64, rings catalog.Rings, base colorful.Color, low bool) {
	n := 128
	bands := 3
	if low {
		n, bands = 64, 2
	}
	col := base.BlendRgb(colorRingTint, 0.3)
	for band := range bands {
		rad := radius * (rings.Inner + (rings.Outer-rings.Inner)*float64(band)/float64(max(bands-1, 1)))
		for k := range n {
			a := vmath.TwoPi * float64(k) / float64(n)
			p := vmath.V3FAdd(center, vmath.Vec3F{X: rad * math.Cos(a), Z: rad * math.Sin(a)})
			if pt, ok := r.proj.Project(p); ok {
				r.buf.Plot(int(pt.X), int(pt.Y), '·', col, pt.Depth)
			}
		}
	}
}

func (r *Renderer) markSelected(center vmath.Vec3F, radius float64) {
	pt, ok := r.proj.Project(center)
	if !ok {
		return
	}
	rx := math.Max(r.proj.Radius(radius, pt.Depth)*r.proj.CellAspect, 0.5)
	y := int(pt.Y)
	r.buf.Text(int(math.Floor(pt.X-rx))-1, y, "[", colorSelect)
	r.buf.Text(int(math.Ceil(pt.X+rx)), y, "]", colorSelect)
}

func (r *Renderer) drawLabels(fr sim.Frame) {
	anchors := make([]scene.Anchor, 0, len(fr.Bodies))
	for _, p := range fr.Bodies {
		if p.Parent != "" {
			continue
		}
		anchors = append(anchors, scene.Anchor{Text: p.Name, Position: p.Position})
	}
	for _, l := range r.proj.PlaceLabels(anchors) {
		r.buf.Text(l.Col, l.Row+1, l.Text, colorLabel)
	}
}

func (r *Renderer) panelRight() int {
	w, _ := r.buf.Size()
	return max(w-panelWidth-1, 0)
}

func (r *Renderer) drawPanel(lines []string, x, y int, accent colorful.Color) {
	_, h := r.buf.Size()
	maxRows := h - statusRows - y - 1
	if maxRows <= 2 {
		return
	}
	if len(lines) > maxRows-2 {
		lines = lines[:maxRows-2]
	}
	blank := hud.Fit("", panelWidth)
	for row := 0; row < len(lines)+2; row++ {
		r.buf.TextBg(x, y+row, blank, colorPanelFg, colorPanelBg)
	}
	for i, l := range lines {
		fg := colorPanelFg
		if i == 0 {
			fg = accent
		}
		r.buf.TextBg(x+2, y+1+i, hud.Fit(l, panelWidth-4), fg, colorPanelBg)
	}
}

func (r *Renderer) drawOverlay(lines []string) {
	w, h := r.buf.Size()
	width := min(64, w-2)
	if width < 10 {
		return
	}
	rows := min(len(lines)+2, h-statusRows-2)
	x := (w - width) / 2
	y := max((h-statusRows-rows)/2, 0)
	blank := hud.Fit("", width)
	for row := range rows {
		r.buf.TextBg(x, y+row, blank, colorPanelFg, colorPanelBg)
	}
	for i := 0; i < rows-2 && i < len(lines); i++ {
		fg := colorPanelFg
		if i == 0 {
			fg = colorSelect
		}
		r.buf.TextBg(x+2, y+1+i, hud.Fit(lines[i], width-4), fg, colorPanelBg)
	}
}

func (r *Renderer) drawStatus(fr sim.Frame, fps float64) {
	w, h := r.buf.Size()
	if h == 0 {
		return
	}
	line := hud.StatusLine(fr, fps) + "   ? help"
	r.buf.TextBg(0, h-1, hud.Fit(line, w), colorDim, colorBlack)
}
