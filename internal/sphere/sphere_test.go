package sphere

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIcons(n int) []Icon {
	icons := make([]Icon, n)
	for i := range icons {
		icons[i] = Icon{Label: string(rune('A' + i)), Asset: "icon.svg"}
	}
	return icons
}

func newTestSphere(t *testing.T, width, height int) *Sphere {
	t.Helper()
	s, err := New(DefaultViewConfig(), testIcons(12), width, height)
	require.NoError(t, err)
	return s
}

func TestNew_Validation(t *testing.T) {
	_, err := New(DefaultViewConfig(), nil, 800, 600)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultViewConfig()
	cfg.DefaultRadius = 450
	_, err = New(cfg, testIcons(3), 1400, 900)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSphere_ResizeKeepsLayout(t *testing.T) {
	s := newTestSphere(t, 500, 800)
	assert.Equal(t, 130.0, s.Radius())

	before := make([]Vec3, len(s.Items()))
	for i, item := range s.Items() {
		before[i] = item.Pos
	}

	s.Advance(10)
	s.Resize(800, 600)
	assert.Equal(t, 170.0, s.Radius())
	s.Resize(1400, 900)
	assert.Equal(t, 220.0, s.Radius())

	for i, item := range s.Items() {
		assert.Equal(t, before[i], item.Pos)
	}
	assert.Equal(t, 220.0, s.Step().Radius)
}

func TestSphere_PointerNormalisation(t *testing.T) {
	s := newTestSphere(t, 1000, 800)

	s.PointerMove(750, 200)
	m := s.Motion()
	assert.InDelta(t, 0.5, m.Pointer.X, 1e-12)
	assert.InDelta(t, -0.5, m.Pointer.Y, 1e-12)

	f := s.Step()
	assert.InDelta(t, 2.5, f.Tilt.X, 1e-12)
	assert.InDelta(t, 2.5, f.Tilt.Y, 1e-12)

	s.SetContainer(Rect{Left: 0, Top: 0, Width: 500, Height: 400})
	s.TouchMove(250, 600)
	m = s.Motion()
	assert.InDelta(t, 0.0, m.Pointer.X, 1e-12)
	assert.InDelta(t, 1.0, m.Pointer.Y, 1e-12)
}

func TestSphere_ZeroViewport(t *testing.T) {
	s := newTestSphere(t, 0, 0)
	s.PointerMove(100, 100)
	assert.Equal(t, Vec2{}, s.Motion().Pointer)
}

func TestSphere_StepOutput(t *testing.T) {
	s := newTestSphere(t, 1400, 900)
	f := s.Step()
	assert.Equal(t, uint64(1), f.Seq)
	require.Len(t, f.Items, 12)
	for i, tr := range f.Items {
		assert.Equal(t, i, tr.Index)
	}
	assert.Equal(t, uint64(2), s.Step().Seq)
}

func TestSphere_HoverScaleInFrame(t *testing.T) {
	s := newTestSphere(t, 1400, 900)
	s.HoverEnter(5)
	var f Frame
	for i := 0; i < 200; i++ {
		f = s.Step()
	}
	assert.InDelta(t, 1.25, s.Scale(5), 1e-4)

	proj := NewProjector(s.Config())
	m := s.Motion()
	want := proj.Project(5, s.Items()[5].Pos, NewRotation(m.Rotation.X, m.Rotation.Y), s.Radius())
	assert.InDelta(t, want.Scale*s.Scale(5), f.Items[5].Scale, 1e-9)

	s.HoverLeave(5)
	idx, ok := s.Hovered()
	assert.False(t, ok, "hovered %d", idx)
}

func TestSphere_SkipsNonFiniteItems(t *testing.T) {
	s := newTestSphere(t, 1400, 900)
	s.items[3].Pos.X = math.NaN()
	f := s.Step()
	assert.Len(t, f.Items, 11)
	for _, tr := range f.Items {
		assert.NotEqual(t, 3, tr.Index)
	}
}

func TestSphere_Boundedness(t *testing.T) {
	s := newTestSphere(t, 1400, 900)
	rng := rand.New(rand.NewSource(1))

	for frame := 0; frame < 10000; frame++ {
		s.SetPointer(rng.Float64()*2-1, rng.Float64()*2-1)
		if rng.Intn(50) == 0 {
			s.Scroll()
		}
		switch rng.Intn(20) {
		case 0:
			s.HoverEnter(rng.Intn(12))
		case 1:
			if idx, ok := s.Hovered(); ok {
				s.HoverLeave(idx)
			}
		}

		f := s.Step()
		for _, tr := range f.Items {
			if tr.Opacity < 0.15 || tr.Opacity > 1 {
				t.Fatalf("frame %d item %d opacity %v", frame, tr.Index, tr.Opacity)
			}
			hs := s.Scale(tr.Index)
			if hs < 1 || hs > 1.25 {
				t.Fatalf("frame %d item %d hover scale %v", frame, tr.Index, hs)
			}
		}
	}
}

func TestSphere_ExtremePointer(t *testing.T) {
	s := newTestSphere(t, 1400, 900)
	s.PointerMove(1e9, -1e9)
	for i := 0; i < 100; i++ {
		for _, tr := range s.Step().Items {
			assert.GreaterOrEqual(t, tr.Opacity, 0.15)
			assert.LessOrEqual(t, tr.Opacity, 1.0)
		}
	}
}
