// Package sphere implements the rotating icon sphere: a golden-spiral layout,
// inertial rotation driven by pointer and scroll input, perspective projection
// and smoothed hover scaling. It is host agnostic; a host feeds input events
// between frames, calls Step once per frame and applies the returned transforms.
//
// A Sphere is not safe for concurrent use. The loop package serialises input
// onto the goroutine that steps it.
package sphere

import (
	"fmt"
)

// Rect is a host rectangle in client pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// Frame is everything a host needs to paint one frame.
type Frame struct {
	Seq    uint64      `json:"seq"`
	Radius float64     `json:"radius"`
	Tilt   Vec2        `json:"tilt"`
	Items  []Transform `json:"items"`
}

// Sphere ties layout, motion, projection and hover scaling together.
type Sphere struct {
	cfg       ViewConfig
	items     []Item
	motion    *MotionState
	hover     *HoverScaler
	projector Projector

	radius    float64
	viewportW float64
	viewportH float64
	container *Rect
	tilt      Vec2
	seq       uint64
}

// New validates cfg, lays out one item per icon and sizes the sphere for a
// viewport of width × height pixels.
func New(cfg ViewConfig, icons []Icon, width, height int) (*Sphere, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(icons) == 0 {
		return nil, fmt.Errorf("%w: at least one icon is required", ErrInvalidConfig)
	}

	s := &Sphere{
		cfg:       cfg,
		items:     Initialize(icons),
		motion:    NewMotionState(cfg),
		hover:     NewHoverScaler(len(icons), cfg.HoverScale, cfg.HoverLerp),
		projector: NewProjector(cfg),
	}
	s.Resize(width, height)
	return s, nil
}

// Config returns the view configuration.
func (s *Sphere) Config() ViewConfig { return s.cfg }

// Items returns the static items. The slice must not be modified.
func (s *Sphere) Items() []Item { return s.items }

// Radius returns the current sphere radius in pixels.
func (s *Sphere) Radius() float64 { return s.radius }

// Motion returns a copy of the current motion state.
func (s *Sphere) Motion() MotionState { return *s.motion }

// Hovered returns the hovered item index, if any.
func (s *Sphere) Hovered() (int, bool) { return s.hover.Hovered() }

// Scale returns the hover scale of item i.
func (s *Sphere) Scale(i int) float64 { return s.hover.Scale(i) }

// Resize recomputes the radius for a new viewport. Item positions are kept.
func (s *Sphere) Resize(width, height int) {
	s.viewportW = float64(width)
	s.viewportH = float64(height)
	s.radius = s.cfg.RadiusForWidth(width)
}

// SetContainer sets the on-screen rectangle the sphere is drawn in. Pointer
// positions are measured from its center; without one the viewport center
// is used.
func (s *Sphere) SetContainer(r Rect) {
	s.container = &r
}

// PointerMove records a pointer position in client pixels. The offset from the
// container center is normalised by half the viewport size.
func (s *Sphere) PointerMove(clientX, clientY float64) {
	cx, cy := s.viewportW/2, s.viewportH/2
	if s.container != nil {
		cx, cy = s.container.Center()
	}
	px := normalise(clientX-cx, s.viewportW/2)
	py := normalise(clientY-cy, s.viewportH/2)
	s.SetPointer(px, py)
}

// TouchMove is PointerMove for the first touch point.
func (s *Sphere) TouchMove(x, y float64) {
	s.PointerMove(x, y)
}

// SetPointer records an already normalised pointer position.
func (s *Sphere) SetPointer(px, py float64) {
	s.motion.SetPointer(px, py)
	s.tilt = Vec2{X: px * s.cfg.TiltDegrees, Y: -py * s.cfg.TiltDegrees}
}

// Scroll raises the scroll impulse to its burst value.
func (s *Sphere) Scroll() {
	s.motion.Scroll()
}

// HoverEnter marks item i as hovered.
func (s *Sphere) HoverEnter(i int) {
	s.hover.Enter(i)
}

// HoverLeave clears the hover held by item i.
func (s *Sphere) HoverLeave(i int) {
	s.hover.Leave(i)
}

// Step advances motion and hover by one frame and projects every item.
// Items with a non-finite position are skipped.
func (s *Sphere) Step() Frame {
	s.motion.Step()
	rot := NewRotation(s.motion.Rotation.X, s.motion.Rotation.Y)

	out := make([]Transform, 0, len(s.items))
	for _, item := range s.items {
		if !item.Pos.finite() {
			continue
		}
		hs := s.hover.StepItem(item.Index)
		t := s.projector.Project(item.Index, item.Pos, rot, s.radius)
		t.Scale *= hs
		out = append(out, t)
	}

	s.seq++
	return Frame{
		Seq:    s.seq,
		Radius: s.radius,
		Tilt:   s.tilt,
		Items:  out,
	}
}

// Advance steps n frames, at least one, and returns the last.
func (s *Sphere) Advance(n int) Frame {
	f := s.Step()
	for i := 1; i < n; i++ {
		f = s.Step()
	}
	return f
}

func normalise(offset, half float64) float64 {
	if half <= 0 {
		return 0
	}
	return offset / half
}
