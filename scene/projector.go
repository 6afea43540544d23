// Package scene maps the 3D solar system onto a 2D grid: perspective projection,
// label placement, pick rays and the background star shell
package scene

import (
	"math"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// Point is a projected position in grid units, origin top-left
// Depth is the view-space distance along the camera forward axis
type Point struct {
	X, Y  float64
	Depth float64
}

// Projector is a pinhole camera over a Width x Height grid
// CellAspect is the height of one grid cell over its width (1 for pixels, ~2 for terminal cells)
type Projector struct {
	Eye        vmath.Vec3F
	Width      int
	Height     int
	CellAspect float64
	Near, Far  float64

	forward, right, up vmath.Vec3F
	focal              float64 // 1/tan(fov/2)
	aspect             float64 // visible width over height in square units
}

// NewProjector builds the view basis from a camera pose
// fovDeg is the vertical field of view
func NewProjector(pose camera.Pose, width, height int, cellAspect, fovDeg float64) *Projector {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if cellAspect <= 0 {
		cellAspect = 1
	}
	p := &Projector{
		Eye:        pose.Position,
		Width:      width,
		Height:     height,
		CellAspect: cellAspect,
		Near:       parameter.NearPlane,
		Far:        parameter.FarPlane,
		focal:      1 / math.Tan(fovDeg*math.Pi/360),
		aspect:     float64(width) / (float64(height) * cellAspect),
	}

	p.forward = vmath.V3FNormalize(vmath.V3FSub(pose.Target, pose.Position))
	if vmath.V3FMagSq(p.forward) == 0 {
		p.forward = vmath.Vec3F{Z: -1}
	}
	p.right = vmath.V3FCross(p.forward, vmath.AxisY)
	if vmath.V3FMagSq(p.right) < 1e-12 {
		// Looking straight up or down, yaw is undefined
		p.right = vmath.AxisX
	}
	p.right = vmath.V3FNormalize(p.right)
	p.up = vmath.V3FCross(p.right, p.forward)
	return p
}

// Forward, Right and Up are the unit view basis
func (p *Projector) Forward() vmath.Vec3F { return p.forward }
func (p *Projector) Right() vmath.Vec3F { return p.right }
func (p *Projector) Up() vmath.Vec3F { return p.up }

// Project maps a world point to the grid
// ok is false when the point lies outside the near/far range, including behind the eye
func (p *Projector) Project(w vmath.Vec3F) (Point, bool) {
	v := vmath.V3FSub(w, p.Eye)
	z := vmath.V3FDot(v, p.forward)
	if z < p.Near || z > p.Far {
		return Point{Depth: z}, false
	}
	ndcX := vmath.V3FDot(v, p.right) * p.focal / (z * p.aspect)
	ndcY := vmath.V3FDot(v, p.up) * p.focal / z
	return Point{
		X:     (ndcX*0.5 + 0.5) * float64(p.Width),
		Y:     (0.5 - ndcY*0.5) * float64(p.Height),
		Depth: z,
	}, true
}

// Visible reports whether a projected point falls on the grid
func (p *Projector) Visible(pt Point) bool {
	return pt.X >= 0 && pt.X < float64(p.Width) && pt.Y >= 0 && pt.Y < float64(p.Height)
}

// Radius converts a world radius at view depth into grid rows
// Multiply by CellAspect for the horizontal extent in columns
func (p *Projector) Radius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * p.focal / depth * float64(p.Height) / 2
}

// Ray returns the unit direction from the eye through grid position (x, y)
func (p *Projector) Ray(x, y float64) vmath.Vec3F {
	ndcX := 2*x/float64(p.Width) - 1
	ndcY := 1 - 2*y/float64(p.Height)
	d := p.forward
	d = vmath.V3FAdd(d, vmath.V3FScale(p.right, ndcX*p.aspect/p.focal))
	d = vmath.V3FAdd(d, vmath.V3FScale(p.up, ndcY/p.focal))
	return vmath.V3FNormalize(d)
}
