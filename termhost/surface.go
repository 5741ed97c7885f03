package termhost

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/tableview"
)

// Surface is a scrollable window onto content measured in character cells.
// It implements tableview.Container. The content node is anchored at its
// top-left corner, so content-local x runs from 0 to Width and y from 0 down
// to -Height.
type Surface struct {
	width, height int
	offset        tableview.Vec2
	content       tableview.Size
	elements      []tableview.Element

	// Scrollbar draws a scrollbar on the trailing column (vertical content)
	// or row (horizontal content) when the content overflows.
	Scrollbar  bool
	ThumbStyle Style
	TrackStyle Style
}

var _ tableview.Container = (*Surface)(nil)

// NewSurface creates a surface with a width x height viewport.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:      width,
		height:     height,
		content:    tableview.Size{Width: float64(width), Height: float64(height)},
		Scrollbar:  true,
		ThumbStyle: Style{}.Background(PaletteColor(57)),
		TrackStyle: Style{}.Foreground(PaletteColor(240)),
	}
}

func (s *Surface) ViewportSize() tableview.Size {
	return tableview.Size{Width: float64(s.width), Height: float64(s.height)}
}

func (s *Surface) ScrollOffset() tableview.Vec2 { return s.offset }

// SetScrollOffset moves the window, clamped to the scrollable range.
func (s *Surface) SetScrollOffset(o tableview.Vec2) {
	s.offset = s.clamp(o)
}

func (s *Surface) ContentFrame() tableview.Frame {
	return tableview.Frame{Width: s.content.Width, Height: s.content.Height, AnchorY: 1}
}

// SetContentSize resizes the content and re-clamps the scroll offset.
func (s *Surface) SetContentSize(size tableview.Size) {
	s.content = size
	s.offset = s.clamp(s.offset)
}

func (s *Surface) Attach(e tableview.Element) {
	if l, ok := e.(*Label); ok {
		l.attached = true
	}
	s.elements = append(s.elements, e)
}

func (s *Surface) Detach(e tableview.Element) {
	if i := slices.Index(s.elements, e); i >= 0 {
		s.elements = slices.Delete(s.elements, i, i+1)
	}
	if l, ok := e.(*Label); ok {
		l.attached = false
	}
}

// Elements returns the attached elements in attach order.
func (s *Surface) Elements() []tableview.Element {
	return s.elements
}

// Size returns the viewport size in cells.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Resize changes the viewport size. The caller lays its view out again.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = width, height
	s.offset = s.clamp(s.offset)
}

// ScrollBy moves the window by the given number of cells.
func (s *Surface) ScrollBy(dx, dy float64) {
	s.SetScrollOffset(tableview.Vec2{X: s.offset.X + dx, Y: s.offset.Y + dy})
}

// MaxOffset is the largest offset on each axis.
func (s *Surface) MaxOffset() tableview.Vec2 {
	return tableview.Vec2{
		X: math.Max(s.content.Width-float64(s.width), 0),
		Y: math.Max(s.content.Height-float64(s.height), 0),
	}
}

func (s *Surface) clamp(o tableview.Vec2) tableview.Vec2 {
	limit := s.MaxOffset()
	o.X = math.Min(math.Max(o.X, 0), limit.X)
	o.Y = math.Min(math.Max(o.Y, 0), limit.Y)
	return o
}

// Render clears the viewport area of buf and draws every attached element
// that implements Drawable, then the scrollbar.
func (s *Surface) Render(buf *Buffer) {
	clip := Rect{Width: min(s.width, buf.Width()), Height: min(s.height, buf.Height())}
	buf.FillRect(0, 0, clip.Width, clip.Height, EmptyGlyph())

	for _, e := range s.elements {
		d, ok := e.(Drawable)
		if !ok {
			continue
		}
		x, y := s.project(e.Frame())
		d.Draw(buf, x, y, clip)
	}

	if !s.Scrollbar {
		return
	}
	if s.content.Height > float64(s.height) {
		top, size := thumb(int(s.content.Height), s.height, int(s.offset.Y))
		col := clip.Width - 1
		for row := 0; row < clip.Height; row++ {
			if row >= top && row < top+size {
				buf.Set(col, row, Glyph{Rune: ' ', Style: s.ThumbStyle})
			} else {
				buf.Set(col, row, Glyph{Rune: '│', Style: s.TrackStyle})
			}
		}
	} else if s.content.Width > float64(s.width) {
		left, size := thumb(int(s.content.Width), s.width, int(s.offset.X))
		row := clip.Height - 1
		for col := 0; col < clip.Width; col++ {
			if col >= left && col < left+size {
				buf.Set(col, row, Glyph{Rune: ' ', Style: s.ThumbStyle})
			} else {
				buf.Set(col, row, Glyph{Rune: '─', Style: s.TrackStyle})
			}
		}
	}
}

// project converts an element frame to the buffer position of its top-left
// corner.
func (s *Surface) project(f tableview.Frame) (x, y int) {
	x = int(math.Round(f.Left() - s.offset.X))
	y = int(math.Round(-f.Top() - s.offset.Y))
	return x, y
}

// ScrollbarView renders the vertical scrollbar as a lipgloss-styled column
// exactly as tall as the viewport. Content that fits shows a full thumb.
func (s *Surface) ScrollbarView(thumbStyle, trackStyle lipgloss.Style) string {
	if s.height <= 0 {
		return ""
	}
	top, size := thumb(int(s.content.Height), s.height, int(s.offset.Y))
	var b strings.Builder
	for i := 0; i < s.height; i++ {
		if top <= i && i < top+size {
			// non-breaking space keeps the background escape codes
			b.WriteString(thumbStyle.Render("\u00a0"))
		} else {
			b.WriteString(trackStyle.Render("│"))
		}
		if i < s.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// thumb returns the position and length of a scrollbar thumb on a track of
// viewport cells.
func thumb(content, viewport, offset int) (top, size int) {
	if content <= viewport || viewport <= 0 {
		return 0, viewport
	}
	maxOffset := content - viewport
	offset = min(max(offset, 0), maxOffset)

	size = int(float64(viewport) * float64(viewport) / float64(content))
	size = min(max(size, 1), viewport)

	maxTop := viewport - size
	if maxTop > 0 {
		top = int(float64(offset) / float64(maxOffset) * float64(maxTop))
	}
	return min(max(top, 0), maxTop), size
}
