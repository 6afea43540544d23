package main

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/render"
)

// Cell size in pixels; 8x16 keeps the terminal renderer's 2:1 cell aspect
// and fits the debug font
const (
	cellW = 8
	cellH = 16
)

// Held keys repeat after this many ticks, every repeatEvery ticks
const (
	repeatDelay = 15
	repeatEvery = 3
)

// Special keys routed through the shared key table
var specialKeys = map[ebiten.Key]tcell.Key{
	ebiten.KeyArrowLeft:  tcell.KeyLeft,
	ebiten.KeyArrowRight: tcell.KeyRight,
	ebiten.KeyArrowUp:    tcell.KeyUp,
	ebiten.KeyArrowDown:  tcell.KeyDown,
	ebiten.KeyEscape:     tcell.KeyEscape,
	ebiten.KeyEnter:      tcell.KeyEnter,
	ebiten.KeyPageUp:     tcell.KeyPgUp,
	ebiten.KeyPageDown:   tcell.KeyPgDn,
}

type game struct {
	ex   *engine.Explorer
	rend *render.Renderer

	cols, rows int
	img        *image.RGBA
	frame      *ebiten.Image

	dragging       bool
	dragged        bool
	lastX, lastY   int
	startX, startY int
}

func newGame(ex *engine.Explorer, cols, rows int) *game {
	return &game{
		ex:   ex,
		rend: render.New(ex.Sim().Catalog(), cols, rows),
		cols: cols,
		rows: rows,
	}
}

func (g *game) Update() error {
	if quit := g.readKeys(); quit {
		return ebiten.Termination
	}
	g.readMouse()

	fr := g.ex.Step()
	g.rend.Draw(g.ex.Sim(), fr, g.ex.HUD(), g.ex.FPS())
	return nil
}

func held(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d > repeatDelay && d%repeatEvery == 0)
}

func (g *game) readKeys() bool {
	for _, r := range ebiten.AppendInputChars(nil) {
		if g.ex.Do(g.ex.Keys().Rune(r)) {
			return true
		}
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	for ek, tk := range specialKeys {
		if held(ek) && g.ex.Do(g.ex.Keys().Key(tk, shift)) {
			return true
		}
	}
	return false
}

func (g *game) readMouse() {
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.ex.Do(input.Action{Intent: input.IntentZoomIn})
	} else if wy < 0 {
		g.ex.Do(input.Action{Intent: input.IntentZoomOut})
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging, g.dragged = true, false
		g.startX, g.startY, g.lastX, g.lastY = x, y, x, y
	case g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if abs(x-g.startX) > cellW/2 || abs(y-g.startY) > cellH/2 {
			g.dragged = true
		}
		if g.dragged && (x != g.lastX || y != g.lastY) {
			g.ex.Drag(float64(x-g.lastX), float64(y-g.lastY), float64(g.cols*cellW), float64(g.rows*cellH))
		}
		g.lastX, g.lastY = x, y
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if g.dragging && !g.dragged {
			g.ex.Click(g.rend.Projector(), float64(x)/cellW, float64(y)/cellH)
		}
		g.dragging = false
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	w, h := g.cols*cellW, g.rows*cellH
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}

	buf := g.rend.Buffer()
	type glyph struct {
		x, y int
		r    rune
	}
	var text []glyph

	for row := range g.rows {
		for col := range g.cols {
			c := buf.Get(col, row)
			br, bg, bb := c.Bg.Clamped().RGB255()
			g.fillCell(col, row, 0, 0, cellW, cellH, br, bg, bb)

			switch c.Rune {
			case ' ', 0:
			case '.', '·', '*', '•', '●', '[', ']':
				// Point glyphs keep their colour as a centred pixel block
				s := markSize(c.Rune)
				fr, fg, fb := c.Fg.Clamped().RGB255()
				g.fillCell(col, row, (cellW-s)/2, (cellH-s)/2, s, s, fr, fg, fb)
			default:
				text = append(text, glyph{col * cellW, row * cellH, c.Rune})
			}
		}
	}

	g.frame.WritePixels(g.img.Pix)
	screen.DrawImage(g.frame, nil)
	for _, t := range text {
		ebitenutil.DebugPrintAt(screen, string(t.r), t.x+1, t.y)
	}
}

func markSize(r rune) int {
	switch r {
	case '●':
		return 6
	case '*', '•':
		return 3
	case '[', ']':
		return 4
	default:
		return 2
	}
}

func (g *game) fillCell(col, row, ox, oy, w, h int, r, gg, b uint8) {
	stride := g.img.Stride
	x0, y0 := col*cellW+ox, row*cellH+oy
	for y := y0; y < y0+h; y++ {
		i := y*stride + x0*4
		for x := 0; x < w; x++ {
			g.img.Pix[i+0] = r
			g.img.Pix[i+1] = gg
			g.img.Pix[i+2] = b
			g.img.Pix[i+3] = 0xff
			i += 4
		}
	}
}

// Layout sizes the cell grid to the window
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cols := max(int(math.Floor(float64(outsideWidth)/cellW)), 20)
	rows := max(int(math.Floor(float64(outsideHeight)/cellH)), 10)
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.rend.Resize(cols, rows)
	}
	return cols * cellW, rows * cellH
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
