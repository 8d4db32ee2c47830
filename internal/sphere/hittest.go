package sphere

// HitTest returns the front-most item whose disc contains (x, y). Coordinates
// are relative to the sphere center; each disc has radius iconRadius·Scale.
func HitTest(f Frame, x, y, iconRadius float64) (int, bool) {
	best, bestZ := noHover, 0
	for _, t := range f.Items {
		r := iconRadius * t.Scale
		dx, dy := x-t.X, y-t.Y
		if dx*dx+dy*dy > r*r {
			continue
		}
		if best == noHover || t.ZIndex > bestZ {
			best, bestZ = t.Index, t.ZIndex
		}
	}
	return best, best != noHover
}
