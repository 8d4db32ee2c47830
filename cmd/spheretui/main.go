// Command spheretui draws the tech sphere in a terminal. Mouse motion steers
// it, the wheel gives it a scroll impulse and the icon under the mouse is
// enlarged. Esc, q or Ctrl-C quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/config"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere/loop"
)

// A terminal cell stands in for an 8×16 pixel block of the browser viewport.
const (
	cellW = 8
	cellH = 16

	iconRadius = 20
)

type viewer struct {
	screen tcell.Screen
	loop   *loop.Loop

	last    atomic.Pointer[sphere.Frame]
	hovered int
	items   []sphere.Item
}

func main() {
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	if err := run(*fps); err != nil {
		fmt.Fprintln(os.Stderr, "spheretui:", err)
		os.Exit(1)
	}
}

func run(fps int) error {
	cfg := config.FromEnv()
	site, err := config.LoadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	view, err := config.LoadSphere(cfg.SphereFile)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	s, err := sphere.New(view, site.SphereIcons(), cols*cellW, rows*cellH)
	if err != nil {
		return err
	}

	v := &viewer{
		screen:  screen,
		loop:    loop.New(s, fps),
		hovered: -1,
		items:   s.Items(),
	}
	go v.pollEvents()

	return v.loop.Run(context.Background(), v.draw)
}

var errQuit = errors.New("quit")

// pollEvents translates terminal events into sphere input until quit or until
// the loop stops accepting input.
func (v *viewer) pollEvents() {
	defer v.loop.Stop()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if err := v.handle(ev); err != nil {
			return
		}
	}
}

// handle applies one terminal event. It returns errQuit for a quit key and
// loop.ErrStopped once the loop is gone.
func (v *viewer) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return errQuit
		}
	case *tcell.EventResize:
		v.screen.Sync()
		cols, rows := ev.Size()
		return v.loop.Resize(cols*cellW, rows*cellH)
	case *tcell.EventMouse:
		x, y := ev.Position()
		if err := v.loop.Pointer(float64(x*cellW), float64(y*cellH)); err != nil {
			return err
		}
		if ev.Buttons()&(tcell.WheelUp|tcell.WheelDown) != 0 {
			if err := v.loop.Scroll(); err != nil {
				return err
			}
		}
		return v.updateHover(x, y)
	}
	return nil
}

func (v *viewer) updateHover(col, row int) error {
	f := v.last.Load()
	if f == nil {
		return nil
	}
	cols, rows := v.screen.Size()
	x := float64((col - cols/2) * cellW)
	y := float64((row - rows/2) * cellH)

	idx, ok := sphere.HitTest(*f, x, y, iconRadius)
	switch {
	case ok && idx != v.hovered:
		if v.hovered >= 0 {
			if err := v.loop.HoverLeave(v.hovered); err != nil {
				return err
			}
		}
		if err := v.loop.HoverEnter(idx); err != nil {
			return err
		}
		v.hovered = idx
	case !ok && v.hovered >= 0:
		if err := v.loop.HoverLeave(v.hovered); err != nil {
			return err
		}
		v.hovered = -1
	}
	return nil
}

// draw paints one frame back to front; it runs on the loop goroutine.
func (v *viewer) draw(f sphere.Frame) error {
	v.last.Store(&f)

	order := make([]sphere.Transform, len(f.Items))
	copy(order, f.Items)
	sort.SliceStable(order, func(i, j int) bool { return order[i].ZIndex < order[j].ZIndex })

	v.screen.Clear()
	cols, rows := v.screen.Size()
	for _, t := range order {
		if t.Index < 0 || t.Index >= len(v.items) {
			continue
		}
		col := cols/2 + int(t.X/cellW)
		row := rows/2 + int(t.Y/cellH)

		level := int32(255 * t.Opacity)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level))
		if t.Scale > 1.1 {
			style = style.Bold(true)
		}

		label := "● " + v.items[t.Index].Label
		col -= len([]rune(label)) / 2
		for i, r := range []rune(label) {
			v.screen.SetContent(col+i, row, r, nil, style)
		}
	}

	v.screen.Show()
	return nil
}
