// Package snapshot rasterises a single sphere frame into an image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

// Format is an output image encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
)

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == WebP {
		return "image/webp"
	}
	return "image/png"
}

// Options controls the look of a snapshot.
type Options struct {
	// IconRadius is the disc radius in pixels at scale 1.
	IconRadius float64
	Background color.NRGBA
	Disc       color.NRGBA
	Accent     color.NRGBA
	Label      color.NRGBA
	// Labels draws item names under their discs.
	Labels bool
}

// DefaultOptions returns the dark theme of the page.
func DefaultOptions() Options {
	return Options{
		IconRadius: 24,
		Background: color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff},
		Disc:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30},
		Accent:     color.NRGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff},
		Label:      color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
		Labels:     true,
	}
}

// CanvasSize is the square canvas edge for a sphere of the given radius,
// matching the 2.5× container of the page.
func CanvasSize(radius float64) int {
	return int(math.Ceil(radius * 2.5))
}

// Render paints frame back to front. items supplies the labels; hovered items
// are outlined with the accent colour.
func Render(frame sphere.Frame, items []sphere.Item, hovered int, opts Options) *image.NRGBA {
	size := CanvasSize(frame.Radius)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	order := make([]sphere.Transform, len(frame.Items))
	copy(order, frame.Items)
	sort.SliceStable(order, func(i, j int) bool { return order[i].ZIndex < order[j].ZIndex })

	var z vector.Rasterizer
	cx, cy := float64(size)/2, float64(size)/2
	for _, t := range order {
		x, y := cx+t.X, cy+t.Y
		r := opts.IconRadius * t.Scale

		disc := fade(opts.Disc, t.Opacity)
		if t.Index == hovered {
			fillCircle(img, &z, x, y, r+2, fade(opts.Accent, t.Opacity))
		}
		fillCircle(img, &z, x, y, r, disc)

		if opts.Labels && t.Index >= 0 && t.Index < len(items) {
			drawLabel(img, items[t.Index].Label, x, y+r+12, fade(opts.Label, t.Opacity))
		}
	}
	return img
}

// Encode writes img in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("snapshot: png encode: %w", err)
		}
	case WebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("snapshot: webp encode: %w", err)
		}
	default:
		return fmt.Errorf("snapshot: unknown format %q", f)
	}
	return nil
}

func fade(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * clamp01(opacity)))
	return c
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

const circleSegments = 48

// fillCircle composites an anti-aliased disc over img. z is reset to the
// disc's clipped bounding box, so one rasterizer serves a whole frame.
func fillCircle(img *image.NRGBA, z *vector.Rasterizer, x, y, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(x-r)), int(math.Floor(y-r)),
		int(math.Ceil(x+r)), int(math.Ceil(y+r)),
	).Intersect(img.Bounds())
	if box.Empty() {
		return
	}

	z.Reset(box.Dx(), box.Dy())
	z.DrawOp = draw.Over
	ox, oy := x-float64(box.Min.X), y-float64(box.Min.Y)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		px := float32(ox + r*math.Cos(a))
		py := float32(oy + r*math.Sin(a))
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()
	z.Draw(img, box, image.NewUniform(c), image.Point{})
}

func drawLabel(img *image.NRGBA, label string, cx, baseline float64, c color.NRGBA) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, label)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(int(cx)-width.Round()/2, int(baseline)),
	}
	d.DrawString(label)
}
