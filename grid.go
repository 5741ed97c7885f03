package tableview

import "math"

// grid wraps items into rows (vertical views) or columns (horizontal views).
// A line closes as soon as the next item would overflow the cross bound; items
// are never reordered to balance lines.
type grid struct {
	linear
	cross axis
	start float64 // cross padding before the first item of a line
	limit float64 // cross offset no item may extend past
	gap   float64 // cross spacing between items of a line
}

// wrap returns the cursor the item actually starts at, opening a new line
// when it does not fit. The first item of a line never wraps.
func (g grid) wrap(cur Cursor, size Size) Cursor {
	if cur.Count > 0 && cur.Cross+g.cross.extent(size) > g.limit {
		return Cursor{
			Main:  cur.Main + cur.Line + g.linear.spacing,
			Cross: g.start,
		}
	}
	return cur
}

func (g grid) Start() Cursor {
	return Cursor{Main: g.lead, Cross: g.start}
}

func (g grid) Next(cur Cursor, size Size) Cursor {
	cur = g.wrap(cur, size)
	cur.Cross += g.cross.extent(size) + g.gap
	cur.Line = math.Max(cur.Line, g.axis.extent(size))
	cur.Count++
	return cur
}

func (g grid) Span(cur Cursor, size Size) Span {
	cur = g.wrap(cur, size)
	return Span{
		Near:      cur.Main,
		Far:       cur.Main + g.axis.extent(size),
		CrossNear: cur.Cross,
		CrossFar:  cur.Cross + g.cross.extent(size),
	}
}

func (g grid) Place(f Frame, content Rect, s Span) Frame {
	f = g.axis.place(f, content, s.Near, s.Far-s.Near)
	return g.cross.place(f, content, s.CrossNear, s.CrossFar-s.CrossNear)
}

func (g grid) Project(content Rect, r Region) Span {
	near, far := g.axis.project(content, r)
	crossNear, crossFar := g.cross.project(content, r)
	return Span{Near: near, Far: far, CrossNear: crossNear, CrossFar: crossFar}
}

func (g grid) Outside(s, region Span) bool {
	return g.linear.Outside(s, region) ||
		s.CrossFar <= region.CrossNear || s.CrossNear >= region.CrossFar
}

func (g grid) RowStart(cur Cursor, size Size) (Cursor, bool) {
	cur = g.wrap(cur, size)
	if cur.Count > 0 {
		return cur, false
	}
	return Cursor{Main: cur.Main, Cross: g.start}, true
}
