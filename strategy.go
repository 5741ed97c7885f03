package tableview

import "math"

// Kind tags the strategy a view lays its items out with.
type Kind uint8

// Kinds, one per layout direction plus the wrapping grid.
const (
	TopDown Kind = iota
	BottomUp
	LeftRight
	RightLeft
	Grid
)

func (k Kind) String() string {
	switch k {
	case TopDown:
		return "top-down"
	case BottomUp:
		return "bottom-up"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	case Grid:
		return "grid"
	}
	return "unknown"
}

// Cursor is a scan position in offset space: distances measured from the
// content's leading edges in scan order. Cross, Line and Count are only used
// by the grid.
type Cursor struct {
	Main  float64 // leading edge of the current line
	Cross float64 // where the next item of the line starts
	Line  float64 // largest main extent in the current line
	Count int     // items already in the current line
}

// Span is an item slot in offset space. Near <= Far.
type Span struct {
	Near, Far           float64
	CrossNear, CrossFar float64
}

// Strategy is the direction-aware position math of one layout kind. All
// methods are pure; a strategy is resolved once per reload.
type Strategy interface {
	Kind() Kind

	// Start is the cursor of index 0.
	Start() Cursor
	// Next advances the cursor past an item of the given size.
	Next(cur Cursor, size Size) Cursor
	// Span is the slot an item of the given size occupies at cur.
	Span(cur Cursor, size Size) Span
	// Trail is the padding after the last item on the main axis.
	Trail() float64

	// Place moves f so that it occupies s inside content.
	Place(f Frame, content Rect, s Span) Frame
	// Project converts a content-local region into offset space.
	Project(content Rect, r Region) Span
	// ScrollOffset is the scroll offset that puts the leading edge of s on
	// the viewport's leading edge. The axis the strategy does not scroll
	// keeps its value from cur.
	ScrollOffset(content Rect, viewport Size, s Span, cur Vec2) Vec2

	// Outside reports whether s has no area in common with region.
	Outside(s, region Span) bool
	// Exhausted reports whether no item at or after next can reach region.
	Exhausted(next Cursor, region Span) bool
	// RowStart returns the normalized cursor when the item at cur opens a
	// new row. Scans may restart from any row start.
	RowStart(cur Cursor, size Size) (Cursor, bool)
}

// NewStrategy resolves the strategy for cfg. crossExtent is the viewport
// extent across the scroll axis; only the grid uses it.
func NewStrategy(cfg Config, crossExtent float64) Strategy {
	vertical := cfg.Orientation == Vertical
	var main, cross axis
	if vertical {
		main, cross = verticalAxis(cfg.Vertical), horizontalAxis(cfg.Horizontal)
	} else {
		main, cross = horizontalAxis(cfg.Horizontal), verticalAxis(cfg.Vertical)
	}
	lead, trail := main.padding(cfg)
	spacing, crossSpacing := cfg.SpacingY, cfg.SpacingX
	if !vertical {
		spacing, crossSpacing = cfg.SpacingX, cfg.SpacingY
	}
	l := linear{
		axis:    main,
		kind:    cfg.Kind(),
		lead:    lead,
		trail:   trail,
		spacing: spacing,
	}
	if !cfg.Wrap {
		return l
	}
	crossLead, crossTrail := cross.padding(cfg)
	l.kind = Grid
	return grid{
		linear: l,
		cross:  cross,
		start:  crossLead,
		limit:  math.Max(crossExtent-crossTrail, crossLead),
		gap:    crossSpacing,
	}
}

func verticalAxis(d VerticalDirection) axis {
	if d == BottomToTop {
		return bottomUp{}
	}
	return topDown{}
}

func horizontalAxis(d HorizontalDirection) axis {
	if d == RightToLeft {
		return rightLeft{}
	}
	return leftRight{}
}

// axis maps one offset-space axis onto content-local coordinates. There is
// one implementation per direction so the hot loop never branches on it.
type axis interface {
	extent(s Size) float64
	padding(cfg Config) (lead, trail float64)
	place(f Frame, content Rect, near, extent float64) Frame
	project(content Rect, r Region) (near, far float64)
	scroll(content Rect, viewport Size, near float64, cur Vec2) Vec2
}

type topDown struct{}

func (topDown) extent(s Size) float64 { return s.Height }

func (topDown) padding(cfg Config) (float64, float64) { return cfg.PaddingTop, cfg.PaddingBottom }

func (topDown) place(f Frame, c Rect, near, extent float64) Frame {
	return f.SetTop(c.Top-near, extent)
}

func (topDown) project(c Rect, r Region) (float64, float64) {
	return c.Top - r.Top, c.Top - r.Bottom
}

func (topDown) scroll(_ Rect, _ Size, near float64, cur Vec2) Vec2 {
	return Vec2{X: cur.X, Y: near}
}

type bottomUp struct{}

func (bottomUp) extent(s Size) float64 { return s.Height }

func (bottomUp) padding(cfg Config) (float64, float64) { return cfg.PaddingBottom, cfg.PaddingTop }

func (bottomUp) place(f Frame, c Rect, near, extent float64) Frame {
	return f.SetBottom(c.Bottom+near, extent)
}

func (bottomUp) project(c Rect, r Region) (float64, float64) {
	return r.Bottom - c.Bottom, r.Top - c.Bottom
}

func (bottomUp) scroll(c Rect, viewport Size, near float64, cur Vec2) Vec2 {
	return Vec2{X: cur.X, Y: c.Height() - near - viewport.Height}
}

type leftRight struct{}

func (leftRight) extent(s Size) float64 { return s.Width }

func (leftRight) padding(cfg Config) (float64, float64) { return cfg.PaddingLeft, cfg.PaddingRight }

func (leftRight) place(f Frame, c Rect, near, extent float64) Frame {
	return f.SetLeft(c.Left+near, extent)
}

func (leftRight) project(c Rect, r Region) (float64, float64) {
	return r.Left - c.Left, r.Right - c.Left
}

func (leftRight) scroll(_ Rect, _ Size, near float64, cur Vec2) Vec2 {
	return Vec2{X: near, Y: cur.Y}
}

type rightLeft struct{}

func (rightLeft) extent(s Size) float64 { return s.Width }

func (rightLeft) padding(cfg Config) (float64, float64) { return cfg.PaddingRight, cfg.PaddingLeft }

func (rightLeft) place(f Frame, c Rect, near, extent float64) Frame {
	return f.SetRight(c.Right-near, extent)
}

func (rightLeft) project(c Rect, r Region) (float64, float64) {
	return c.Right - r.Right, c.Right - r.Left
}

func (rightLeft) scroll(c Rect, viewport Size, near float64, cur Vec2) Vec2 {
	return Vec2{X: c.Width() - near - viewport.Width, Y: cur.Y}
}

// linear lays items out one after another along the main axis.
type linear struct {
	axis    axis
	kind    Kind
	lead    float64
	trail   float64
	spacing float64
}

func (l linear) Kind() Kind { return l.kind }

func (l linear) Start() Cursor { return Cursor{Main: l.lead} }

func (l linear) Next(cur Cursor, size Size) Cursor {
	cur.Main += l.axis.extent(size) + l.spacing
	return cur
}

func (l linear) Span(cur Cursor, size Size) Span {
	return Span{Near: cur.Main, Far: cur.Main + l.axis.extent(size)}
}

func (l linear) Trail() float64 { return l.trail }

func (l linear) Place(f Frame, content Rect, s Span) Frame {
	return l.axis.place(f, content, s.Near, s.Far-s.Near)
}

func (l linear) Project(content Rect, r Region) Span {
	near, far := l.axis.project(content, r)
	return Span{Near: near, Far: far}
}

func (l linear) ScrollOffset(content Rect, viewport Size, s Span, cur Vec2) Vec2 {
	return l.axis.scroll(content, viewport, s.Near, cur)
}

func (l linear) Outside(s, region Span) bool {
	return s.Far <= region.Near || s.Near >= region.Far
}

func (l linear) Exhausted(next Cursor, region Span) bool {
	return next.Main >= region.Far
}

func (l linear) RowStart(cur Cursor, _ Size) (Cursor, bool) {
	return cur, true
}
