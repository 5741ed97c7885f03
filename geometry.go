// Package tableview provides a recycling list and grid layout engine for
// scrollable containers. Only the items that intersect the visible region are
// bound to live elements; everything else lives in an identifier-keyed pool.
package tableview

// Size is a width/height pair in content units.
type Size struct {
	Width  float64
	Height float64
}

// Vec2 is a 2D vector. Scroll offsets use it as the distance the viewport has
// moved from the content's left (X) and top (Y) edges.
type Vec2 struct {
	X float64
	Y float64
}

// Rect is an edge-relative rectangle in content-local coordinates.
// Y grows upward, so Bottom <= Top and Left <= Right.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Top - r.Bottom
}

// Frame is an anchor-relative rectangle: (X, Y) is the position of the anchor
// point, and the anchor is a fraction of the size (0,0 = bottom-left,
// 1,1 = top-right).
type Frame struct {
	X, Y             float64
	Width, Height    float64
	AnchorX, AnchorY float64
}

// Top returns the top edge.
func (f Frame) Top() float64 {
	return f.Y + (1-f.AnchorY)*f.Height
}

// Bottom returns the bottom edge.
func (f Frame) Bottom() float64 {
	return f.Y - f.AnchorY*f.Height
}

// Left returns the left edge.
func (f Frame) Left() float64 {
	return f.X - f.AnchorX*f.Width
}

// Right returns the right edge.
func (f Frame) Right() float64 {
	return f.X + (1-f.AnchorX)*f.Width
}

// Rect returns the frame's edges.
func (f Frame) Rect() Rect {
	return Rect{Top: f.Top(), Bottom: f.Bottom(), Left: f.Left(), Right: f.Right()}
}

// SetTop sets the height and moves the frame so its top edge sits at top.
func (f Frame) SetTop(top, height float64) Frame {
	f.Height = height
	f.Y = top - (1-f.AnchorY)*height
	return f
}

// SetBottom sets the height and moves the frame so its bottom edge sits at bottom.
func (f Frame) SetBottom(bottom, height float64) Frame {
	f.Height = height
	f.Y = bottom + f.AnchorY*height
	return f
}

// SetLeft sets the width and moves the frame so its left edge sits at left.
func (f Frame) SetLeft(left, width float64) Frame {
	f.Width = width
	f.X = left + f.AnchorX*width
	return f
}

// SetRight sets the width and moves the frame so its right edge sits at right.
func (f Frame) SetRight(right, width float64) Frame {
	f.Width = width
	f.X = right - (1-f.AnchorX)*width
	return f
}

// ContentRect returns the edges of a content node in its own local space,
// where the origin is the node's anchor point.
func ContentRect(content Frame) Rect {
	return Rect{
		Top:    (1 - content.AnchorY) * content.Height,
		Bottom: -content.AnchorY * content.Height,
		Left:   -content.AnchorX * content.Width,
		Right:  (1 - content.AnchorX) * content.Width,
	}
}
