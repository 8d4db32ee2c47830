package sphere

import "math"

// goldenAngle is π(3-√5), the azimuth increment between neighbouring points.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Vec3 is a point in sphere space. Y grows downwards, matching screen space.
type Vec3 struct {
	X, Y, Z float64
}

// LengthSq returns x²+y²+z².
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) finite() bool {
	return !math.IsNaN(v.X+v.Y+v.Z) && !math.IsInf(v.X+v.Y+v.Z, 0)
}

// Icon is the display content of one sphere item.
type Icon struct {
	Label string `json:"label"`
	Asset string `json:"asset"`
}

// Item is a sphere entry with stable identity and a fixed unit-sphere position.
type Item struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Asset string `json:"asset"`
	Pos   Vec3   `json:"pos"`
}

// Layout distributes n points over the unit sphere on a golden spiral, from
// the +Y pole (i=0) to the -Y pole (i=n-1). The result depends on n only.
// A single point sits on the +Y pole.
func Layout(n int) []Vec3 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Vec3{{X: 0, Y: 1, Z: 0}}
	}

	points := make([]Vec3, n)
	for i := range points {
		y := 1 - (float64(i)/float64(n-1))*2
		radiusAtY := math.Sqrt(math.Max(0, 1-y*y))
		theta := float64(i) * goldenAngle
		points[i] = Vec3{
			X: math.Cos(theta) * radiusAtY,
			Y: y,
			Z: math.Sin(theta) * radiusAtY,
		}
	}
	return points
}

// Initialize builds one Item per icon with its layout position.
func Initialize(icons []Icon) []Item {
	points := Layout(len(icons))
	items := make([]Item, len(icons))
	for i, icon := range icons {
		items[i] = Item{
			Index: i,
			Label: icon.Label,
			Asset: icon.Asset,
			Pos:   points[i],
		}
	}
	return items
}
