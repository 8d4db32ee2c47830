package sphere

import "math"

const twoPi = 2 * math.Pi

// Vec2 is a pair of angles, velocities or normalised pointer coordinates.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MotionState integrates pointer and scroll input into rotation with inertia.
// It is advanced once per frame by Step.
type MotionState struct {
	Rotation      Vec2
	Velocity      Vec2
	Pointer       Vec2
	ScrollImpulse float64

	baseSpeed   float64
	friction    float64
	pointerGain float64
	burst       float64
	decay       float64
}

// NewMotionState returns a motion state at rest.
func NewMotionState(cfg ViewConfig) *MotionState {
	return &MotionState{
		baseSpeed:   cfg.BaseAngularSpeed,
		friction:    cfg.Friction,
		pointerGain: cfg.PointerGain,
		burst:       cfg.ScrollBurst,
		decay:       cfg.ScrollDecay,
	}
}

// SetPointer records the latest normalised pointer position.
func (m *MotionState) SetPointer(px, py float64) {
	m.Pointer = Vec2{X: px, Y: py}
}

// Scroll overwrites the scroll impulse with the burst value.
func (m *MotionState) Scroll() {
	m.ScrollImpulse = m.burst
}

// TargetVelocity maps pointer Y onto the X rotation rate and pointer X onto
// the Y rotation rate.
func (m *MotionState) TargetVelocity() Vec2 {
	return Vec2{
		X: m.Pointer.Y * m.pointerGain,
		Y: m.Pointer.X * m.pointerGain,
	}
}

// Step advances the state by one frame.
func (m *MotionState) Step() {
	m.ScrollImpulse *= m.decay

	target := m.TargetVelocity()
	m.Velocity.X += (target.X - m.Velocity.X) * m.friction
	m.Velocity.Y += (target.Y - m.Velocity.Y) * m.friction

	m.Rotation.X = wrapAngle(m.Rotation.X + m.Velocity.X + m.ScrollImpulse)
	m.Rotation.Y = wrapAngle(m.Rotation.Y + m.Velocity.Y + m.baseSpeed + m.ScrollImpulse)
}

// wrapAngle keeps an angle within (-2π, 2π). Trig values are unaffected.
func wrapAngle(a float64) float64 {
	if a >= twoPi || a <= -twoPi {
		return math.Mod(a, twoPi)
	}
	return a
}
