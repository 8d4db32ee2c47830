package sphere

// noHover marks the absence of a hovered item.
const noHover = -1

// HoverScaler keeps one smoothed scale per item, indexed by item index, and
// the single hovered index.
type HoverScaler struct {
	scales  []float64
	hovered int
	target  float64
	lerp    float64
}

// NewHoverScaler returns a scaler for n items, all at scale 1.
func NewHoverScaler(n int, target, lerp float64) *HoverScaler {
	scales := make([]float64, n)
	for i := range scales {
		scales[i] = 1
	}
	return &HoverScaler{
		scales:  scales,
		hovered: noHover,
		target:  target,
		lerp:    lerp,
	}
}

// Enter marks item i as hovered, replacing any previous one. Unknown indexes
// are ignored.
func (h *HoverScaler) Enter(i int) {
	if i < 0 || i >= len(h.scales) {
		return
	}
	h.hovered = i
}

// Leave clears the hover if item i is the hovered one. A late leave from an
// item that has already lost the hover does nothing.
func (h *HoverScaler) Leave(i int) {
	if h.hovered == i {
		h.hovered = noHover
	}
}

// Clear drops the hover regardless of which item holds it.
func (h *HoverScaler) Clear() {
	h.hovered = noHover
}

// Hovered returns the hovered index, if any.
func (h *HoverScaler) Hovered() (int, bool) {
	return h.hovered, h.hovered != noHover
}

// Scale returns the current scale of item i, or 1 for unknown indexes.
func (h *HoverScaler) Scale(i int) float64 {
	if i < 0 || i >= len(h.scales) {
		return 1
	}
	return h.scales[i]
}

// StepItem moves item i one lerp step towards its target and returns the new scale.
func (h *HoverScaler) StepItem(i int) float64 {
	if i < 0 || i >= len(h.scales) {
		return 1
	}
	target := 1.0
	if i == h.hovered {
		target = h.target
	}
	s := h.scales[i] + (target-h.scales[i])*h.lerp
	h.scales[i] = clamp(s, 1, h.target)
	return h.scales[i]
}

// Step advances every item by one frame.
func (h *HoverScaler) Step() {
	for i := range h.scales {
		h.StepItem(i)
	}
}
