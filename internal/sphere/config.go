package sphere

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidConfig is returned by ViewConfig.Validate.
var ErrInvalidConfig = errors.New("sphere: invalid view config")

// Breakpoint maps viewports narrower than MaxWidth to Radius.
type Breakpoint struct {
	MaxWidth int     `json:"max_width" yaml:"max_width"`
	Radius   float64 `json:"radius" yaml:"radius"`
}

// ViewConfig is the read-only tuning of a sphere. It is not mutated after setup.
type ViewConfig struct {
	PerspectiveDistance float64      `json:"perspective_distance" yaml:"perspective_distance"`
	BaseAngularSpeed    float64      `json:"base_angular_speed" yaml:"base_angular_speed"`
	Friction            float64      `json:"friction" yaml:"friction"`
	PointerGain         float64      `json:"pointer_gain" yaml:"pointer_gain"`
	ScrollBurst         float64      `json:"scroll_burst" yaml:"scroll_burst"`
	ScrollDecay         float64      `json:"scroll_decay" yaml:"scroll_decay"`
	HoverScale          float64      `json:"hover_scale" yaml:"hover_scale"`
	HoverLerp           float64      `json:"hover_lerp" yaml:"hover_lerp"`
	TiltDegrees         float64      `json:"tilt_degrees" yaml:"tilt_degrees"`
	MinOpacity          float64      `json:"min_opacity" yaml:"min_opacity"`
	Breakpoints         []Breakpoint `json:"breakpoints" yaml:"breakpoints"`
	DefaultRadius       float64      `json:"default_radius" yaml:"default_radius"`
}

// DefaultViewConfig returns the reference tuning: 400px perspective, 0.05
// friction, 1.25 hover scale and the 640/1024 radius breakpoints.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		PerspectiveDistance: 400,
		BaseAngularSpeed:    0.002,
		Friction:            0.05,
		PointerGain:         0.005,
		ScrollBurst:         0.03,
		ScrollDecay:         0.95,
		HoverScale:          1.25,
		HoverLerp:           0.15,
		TiltDegrees:         5,
		MinOpacity:          0.15,
		Breakpoints: []Breakpoint{
			{MaxWidth: 640, Radius: 130},
			{MaxWidth: 1024, Radius: 170},
		},
		DefaultRadius: 220,
	}
}

// RadiusForWidth is the discrete breakpoint lookup applied on resize.
func (c ViewConfig) RadiusForWidth(width int) float64 {
	for _, bp := range c.Breakpoints {
		if width < bp.MaxWidth {
			return bp.Radius
		}
	}
	return c.DefaultRadius
}

// MaxRadius returns the largest radius any viewport width can produce.
func (c ViewConfig) MaxRadius() float64 {
	r := c.DefaultRadius
	for _, bp := range c.Breakpoints {
		if bp.Radius > r {
			r = bp.Radius
		}
	}
	return r
}

// Validate checks the numeric invariants the projector depends on. Every
// reachable radius must stay below the perspective distance.
func (c ViewConfig) Validate() error {
	if c.PerspectiveDistance <= 0 {
		return fmt.Errorf("%w: perspective distance %v must be positive", ErrInvalidConfig, c.PerspectiveDistance)
	}
	if !unitInterval(c.Friction) {
		return fmt.Errorf("%w: friction %v outside (0, 1]", ErrInvalidConfig, c.Friction)
	}
	if !unitInterval(c.HoverLerp) {
		return fmt.Errorf("%w: hover lerp %v outside (0, 1]", ErrInvalidConfig, c.HoverLerp)
	}
	if c.ScrollDecay < 0 || c.ScrollDecay >= 1 {
		return fmt.Errorf("%w: scroll decay %v outside [0, 1)", ErrInvalidConfig, c.ScrollDecay)
	}
	if c.ScrollBurst < 0 {
		return fmt.Errorf("%w: scroll burst %v is negative", ErrInvalidConfig, c.ScrollBurst)
	}
	if c.HoverScale < 1 {
		return fmt.Errorf("%w: hover scale %v below 1", ErrInvalidConfig, c.HoverScale)
	}
	if c.MinOpacity < 0 || c.MinOpacity > 1 {
		return fmt.Errorf("%w: min opacity %v outside [0, 1]", ErrInvalidConfig, c.MinOpacity)
	}
	if !sort.SliceIsSorted(c.Breakpoints, func(i, j int) bool {
		return c.Breakpoints[i].MaxWidth < c.Breakpoints[j].MaxWidth
	}) {
		return fmt.Errorf("%w: breakpoints must be ordered by max width", ErrInvalidConfig)
	}
	radii := []float64{c.DefaultRadius}
	for _, bp := range c.Breakpoints {
		radii = append(radii, bp.Radius)
	}
	for _, r := range radii {
		if r <= 0 {
			return fmt.Errorf("%w: radius %v must be positive", ErrInvalidConfig, r)
		}
		if r >= c.PerspectiveDistance {
			return fmt.Errorf("%w: radius %v must be below perspective distance %v", ErrInvalidConfig, r, c.PerspectiveDistance)
		}
	}
	return nil
}

func unitInterval(v float64) bool {
	return v > 0 && v <= 1
}
