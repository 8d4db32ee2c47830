// Command spheredesk shows the tech sphere in a desktop window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/config"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/logging"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

const iconRadius = 28

var (
	background = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0f, A: 0xff}
	accent     = color.RGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}
)

// game adapts a sphere to ebiten: Update is the frame tick, Layout the resize.
type game struct {
	s       *sphere.Sphere
	frame   sphere.Frame
	hovered int
	width   int
	height  int
}

func (g *game) Update() error {
	mx, my := ebiten.CursorPosition()
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		g.s.TouchMove(float64(tx), float64(ty))
		mx, my = tx, ty
	} else {
		g.s.PointerMove(float64(mx), float64(my))
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.s.Scroll()
	}

	x := float64(mx) - float64(g.width)/2
	y := float64(my) - float64(g.height)/2
	idx, ok := sphere.HitTest(g.frame, x, y, iconRadius)
	switch {
	case ok && idx != g.hovered:
		g.s.HoverLeave(g.hovered)
		g.s.HoverEnter(idx)
		g.hovered = idx
	case !ok && g.hovered >= 0:
		g.s.HoverLeave(g.hovered)
		g.hovered = -1
	}

	g.frame = g.s.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	order := make([]sphere.Transform, len(g.frame.Items))
	copy(order, g.frame.Items)
	sort.SliceStable(order, func(i, j int) bool { return order[i].ZIndex < order[j].ZIndex })

	items := g.s.Items()
	cx, cy := float32(g.width)/2, float32(g.height)/2
	for _, t := range order {
		x, y := cx+float32(t.X), cy+float32(t.Y)
		r := float32(iconRadius * t.Scale)
		a := uint8(255 * t.Opacity)

		if t.Index == g.hovered {
			vector.DrawFilledCircle(screen, x, y, r+2, color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: a}, true)
		}
		vector.DrawFilledCircle(screen, x, y, r, color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: a}, true)
		if t.Index >= 0 && t.Index < len(items) {
			label := items[t.Index].Label
			ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*3, int(y)-8)
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.s.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 800, "window height")
	flag.Parse()

	cfg := config.FromEnv()
	log, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	site, err := config.LoadContent(cfg.ContentFile)
	if err != nil {
		log.Fatal("Failed to load content", zap.Error(err))
	}
	view, err := config.LoadSphere(cfg.SphereFile)
	if err != nil {
		log.Fatal("Failed to load sphere config", zap.Error(err))
	}
	s, err := sphere.New(view, site.SphereIcons(), *width, *height)
	if err != nil {
		log.Fatal("Failed to build sphere", zap.Error(err))
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s: tech sphere", site.Profile.Name))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.SphereFPS)

	log.Info("Opening sphere window", zap.Int("items", len(s.Items())), zap.Float64("radius", s.Radius()))
	if err := ebiten.RunGame(&game{s: s, hovered: -1}); err != nil {
		log.Fatal("Sphere window failed", zap.Error(err))
	}
}
