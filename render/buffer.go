// Package render rasterizes a simulation frame into a depth-tested cell buffer
// and flushes it to a tcell screen
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// BlendMode selects how a write combines with the cell underneath
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha             // linear mix by alpha
	BlendScreen            // 1-(1-a)(1-b), brightens only
)

// Cell is one character position
// Depth is the view distance of whatever last wrote the rune, +Inf when empty
type Cell struct {
	Rune  rune
	Fg    colorful.Color
	Bg    colorful.Color
	Depth float64
}

var (
	colorBlack = colorful.Color{}
	emptyCell  = Cell{Rune: ' ', Depth: math.Inf(1)}
)

// Buffer is the frame compositor
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer allocates a cleared buffer
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates only when capacity is short, then clears
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if cap(b.cells) < n {
		b.cells = make([]Cell, n)
	}
	b.cells = b.cells[:n]
	b.width, b.height = width, height
	b.Clear()
}

// Clear resets every cell by doubling copies
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns width and height in cells
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

func (b *Buffer) at(x, y int) *Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// Get returns a copy of the cell, the empty cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if c := b.at(x, y); c != nil {
		return *c
	}
	return emptyCell
}

// Plot writes a foreground rune if depth is nearer than what the cell holds
func (b *Buffer) Plot(x, y int, r rune, fg colorful.Color, depth float64) bool {
	c := b.at(x, y)
	if c == nil || depth >= c.Depth {
		return false
	}
	c.Rune = r
	c.Fg = fg
	c.Depth = depth
	return true
}

// Fill paints the background of a cell with depth testing, clearing its rune
func (b *Buffer) Fill(x, y int, bg colorful.Color, depth float64) bool {
	c := b.at(x, y)
	if c == nil || depth >= c.Depth {
		return false
	}
	c.Rune = ' '
	c.Bg = bg
	c.Depth = depth
	return true
}

// Blend combines col into the background without touching rune or depth
func (b *Buffer) Blend(x, y int, col colorful.Color, mode BlendMode, alpha float64) {
	c := b.at(x, y)
	if c == nil {
		return
	}
	c.Bg = blend(c.Bg, col, mode, alpha)
}

func blend(dst, src colorful.Color, mode BlendMode, alpha float64) colorful.Color {
	switch mode {
	case BlendAlpha:
		return dst.BlendRgb(src, alpha).Clamped()
	case BlendScreen:
		s := colorful.Color{
			R: 1 - (1-dst.R)*(1-src.R),
			G: 1 - (1-dst.G)*(1-src.G),
			B: 1 - (1-dst.B)*(1-src.B),
		}
		return dst.BlendRgb(s, alpha).Clamped()
	default:
		return src
	}
}

// Text writes s starting at (x, y) over everything, keeping the background
func (b *Buffer) Text(x, y int, s string, fg colorful.Color) int {
	for _, r := range s {
		if c := b.at(x, y); c != nil {
			c.Rune = r
			c.Fg = fg
			c.Depth = 0
		}
		x++
	}
	return x
}

// TextBg writes s with an explicit background
func (b *Buffer) TextBg(x, y int, s string, fg, bg colorful.Color) int {
	for _, r := range s {
		if c := b.at(x, y); c != nil {
			c.Rune = r
			c.Fg = fg
			c.Bg = bg
			c.Depth = 0
		}
		x++
	}
	return x
}

// Style converts a cell to a tcell style
func (c Cell) Style() tcell.Style {
	fr, fg, fb := c.Fg.Clamped().RGB255()
	br, bg, bb := c.Bg.Clamped().RGB255()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fr), int32(fg), int32(fb))).
		Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
}

// Flush copies the buffer to the screen and shows it
func (b *Buffer) Flush(s tcell.Screen) {
	for y := range b.height {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			s.SetContent(x, y, r, nil, c.Style())
		}
	}
	s.Show()
}
