// Package loop drives a sphere at a fixed frame rate. Input arrives from any
// goroutine and is applied on the loop goroutine between frames, so the
// sphere itself needs no locking.
package loop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Praveen-pk-pro/Portfolio-pk/internal/sphere"
)

// ErrStopped is returned for input sent to a stopped loop.
var ErrStopped = errors.New("loop: stopped")

// DefaultFPS is the frame rate used when New is given a non-positive rate.
const DefaultFPS = 60

const eventBuffer = 64

// Sink receives each frame. Returning an error stops the loop.
type Sink func(sphere.Frame) error

// Loop owns a sphere and its frame schedule.
type Loop struct {
	sphere   *sphere.Sphere
	interval time.Duration

	events   chan func(*sphere.Sphere)
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a loop ticking s at fps frames per second.
func New(s *sphere.Sphere, fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		sphere:   s,
		interval: time.Second / time.Duration(fps),
		events:   make(chan func(*sphere.Sphere), eventBuffer),
		stop:     make(chan struct{}),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration { return l.interval }

// Run ticks until ctx is done, Stop is called or sink fails. Pending input
// is applied before each frame. Run returns nil on ctx cancellation or Stop.
func (l *Loop) Run(ctx context.Context, sink Sink) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer l.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stop:
			return nil
		case fn := <-l.events:
			fn(l.sphere)
		case <-ticker.C:
			if l.stopped() || ctx.Err() != nil {
				return nil
			}
			l.drain()
			if err := sink(l.sphere.Step()); err != nil {
				return err
			}
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.events:
			fn(l.sphere)
		default:
			return
		}
	}
}

// Stop cancels the frame schedule. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Loop) stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}

// Done is closed once Stop has been called.
func (l *Loop) Done() <-chan struct{} { return l.stop }

// Send queues fn to run against the sphere on the loop goroutine.
func (l *Loop) Send(fn func(*sphere.Sphere)) error {
	if l.stopped() {
		return ErrStopped
	}
	select {
	case l.events <- fn:
		return nil
	case <-l.stop:
		return ErrStopped
	}
}

// Pointer queues a pointer move in client pixels.
func (l *Loop) Pointer(x, y float64) error {
	return l.Send(func(s *sphere.Sphere) { s.PointerMove(x, y) })
}

// Touch queues a touch move in client pixels.
func (l *Loop) Touch(x, y float64) error {
	return l.Send(func(s *sphere.Sphere) { s.TouchMove(x, y) })
}

// Scroll queues a scroll impulse.
func (l *Loop) Scroll() error {
	return l.Send(func(s *sphere.Sphere) { s.Scroll() })
}

// Resize queues a viewport resize.
func (l *Loop) Resize(width, height int) error {
	return l.Send(func(s *sphere.Sphere) { s.Resize(width, height) })
}

// Container queues a new container rectangle.
func (l *Loop) Container(r sphere.Rect) error {
	return l.Send(func(s *sphere.Sphere) { s.SetContainer(r) })
}

// HoverEnter queues a hover-enter for item i.
func (l *Loop) HoverEnter(i int) error {
	return l.Send(func(s *sphere.Sphere) { s.HoverEnter(i) })
}

// HoverLeave queues a hover-leave for item i.
func (l *Loop) HoverLeave(i int) error {
	return l.Send(func(s *sphere.Sphere) { s.HoverLeave(i) })
}
