package sphere

import "math"

// Transform is the per-frame output for one item. Hosts apply it to whatever
// element, node or draw call represents the item.
type Transform struct {
	Index   int     `json:"index"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       float64 `json:"z"`
	Scale   float64 `json:"scale"`
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"z_index"`
}

// Rotation holds the trig terms of a pitch/yaw pair, computed once per frame.
type Rotation struct {
	cx, sx, cy, sy float64
}

// NewRotation precomputes the rotation for pitch rx (about X) and yaw ry (about Y).
func NewRotation(rx, ry float64) Rotation {
	return Rotation{
		cx: math.Cos(rx), sx: math.Sin(rx),
		cy: math.Cos(ry), sy: math.Sin(ry),
	}
}

// Apply rotates p about the X axis first, then about the Y axis.
func (r Rotation) Apply(p Vec3) Vec3 {
	y := p.Y*r.cx - p.Z*r.sx
	z1 := p.Y*r.sx + p.Z*r.cx
	x := p.X*r.cy + z1*r.sy
	z := -p.X*r.sy + z1*r.cy
	return Vec3{X: x, Y: y, Z: z}
}

// Projector maps rotated unit coordinates to screen transforms.
type Projector struct {
	PerspectiveDistance float64
	MinOpacity          float64
}

// NewProjector returns a projector for cfg.
func NewProjector(cfg ViewConfig) Projector {
	return Projector{
		PerspectiveDistance: cfg.PerspectiveDistance,
		MinOpacity:          cfg.MinOpacity,
	}
}

// PerspectiveScale returns d/(d-z). z at or beyond the camera is held just
// in front of it so the result stays finite.
func (p Projector) PerspectiveScale(z float64) float64 {
	denom := p.PerspectiveDistance - z
	if denom < 1e-6 {
		denom = 1e-6
	}
	return p.PerspectiveDistance / denom
}

// Opacity fades items towards the back of a sphere of the given radius.
func (p Projector) Opacity(z, radius float64) float64 {
	alpha := (z+radius)/(2*radius) + 0.1
	return clamp(alpha, p.MinOpacity, 1)
}

// Project produces the transform of pos under rot on a sphere of the given
// radius. Scale is the perspective scale; callers multiply in hover scale.
func (p Projector) Project(index int, pos Vec3, rot Rotation, radius float64) Transform {
	r := rot.Apply(pos)
	x, y, z := r.X*radius, r.Y*radius, r.Z*radius
	ps := p.PerspectiveScale(z)
	return Transform{
		Index:   index,
		X:       x,
		Y:       y,
		Z:       z,
		Scale:   ps,
		Opacity: p.Opacity(z, radius),
		ZIndex:  int(math.Floor(ps * 100)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
