package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/render"
)

// dragThreshold separates a click from a drag, in cells
const dragThreshold = 1

// pointer tracks the left button between events
// A press that is released without moving picks; movement orbits the camera
type pointer struct {
	down           bool
	dragged        bool
	startX, startY int
	lastX, lastY   int
}

func (p *pointer) handle(ex *engine.Explorer, rend *render.Renderer, ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		ex.Do(input.Action{Intent: input.IntentZoomIn})
		return
	case btn&tcell.WheelDown != 0:
		ex.Do(input.Action{Intent: input.IntentZoomOut})
		return
	}

	if btn&tcell.Button1 != 0 {
		if !p.down {
			p.down, p.dragged = true, false
			p.startX, p.startY = x, y
			p.lastX, p.lastY = x, y
			return
		}
		if abs(x-p.startX) > dragThreshold || abs(y-p.startY) > dragThreshold {
			p.dragged = true
		}
		if p.dragged {
			w, h := rend.Buffer().Size()
			ex.Drag(float64(x-p.lastX), float64(y-p.lastY), float64(w), float64(h))
		}
		p.lastX, p.lastY = x, y
		return
	}

	// Release
	if p.down && !p.dragged {
		// Cell centre matches the projector's pixel centre convention
		ex.Click(rend.Projector(), float64(x)+0.5, float64(y)+0.5)
	}
	p.down = false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
