package tableview

import "math"

// MinMoveThreshold is the smallest movement, in content units, that counts as
// the visible region having moved.
const MinMoveThreshold = 0.1

// Region is the part of the content currently exposed by the viewport, in
// content-local coordinates.
type Region = Rect

// VisibleRegion projects the viewport window onto the content. The result
// never extends past the content edges, however far the offset overscrolls.
func VisibleRegion(viewport Size, offset Vec2, content Frame) Region {
	c := ContentRect(content)

	top := c.Top - offset.Y
	bottom := top - viewport.Height
	left := c.Left + offset.X
	right := left + viewport.Width

	r := Region{
		Top:    math.Min(top, c.Top),
		Bottom: math.Max(bottom, c.Bottom),
		Left:   math.Max(left, c.Left),
		Right:  math.Min(right, c.Right),
	}
	// a window scrolled entirely off the content collapses onto the edge
	if r.Bottom > r.Top {
		if top > c.Top {
			r.Top, r.Bottom = c.Top, c.Top
		} else {
			r.Top, r.Bottom = c.Bottom, c.Bottom
		}
	}
	if r.Left > r.Right {
		if left < c.Left {
			r.Left, r.Right = c.Left, c.Left
		} else {
			r.Left, r.Right = c.Right, c.Right
		}
	}
	return r
}

// RegionMoved reports whether cur differs from prev by more than threshold on
// any edge. A nil prev means no pass has run yet. Thresholds below
// MinMoveThreshold are raised to it.
func RegionMoved(prev *Region, cur Region, threshold float64) bool {
	if prev == nil {
		return true
	}
	threshold = math.Max(threshold, MinMoveThreshold)
	return math.Abs(prev.Top-cur.Top) > threshold ||
		math.Abs(prev.Bottom-cur.Bottom) > threshold ||
		math.Abs(prev.Left-cur.Left) > threshold ||
		math.Abs(prev.Right-cur.Right) > threshold
}
