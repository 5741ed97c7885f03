package termhost

import "github.com/kungfusheep/tableview"

// Drawable elements can paint themselves onto a Surface. x and y are the
// element's top-left corner in buffer coordinates and may be negative;
// anything outside clip must not be drawn.
type Drawable interface {
	Draw(buf *Buffer, x, y int, clip Rect)
}

// Rect is a clip rectangle in buffer coordinates.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Label is a block of word-wrapped text. It is the element the views in this
// package recycle.
type Label struct {
	frame    tableview.Frame
	text     string
	style    Style
	attached bool
	active   bool
	uses     int
}

// NewLabel returns an empty label with the given style.
func NewLabel(style Style) *Label {
	return &Label{style: style}
}

func (l *Label) Frame() tableview.Frame     { return l.frame }
func (l *Label) SetFrame(f tableview.Frame) { l.frame = f }

// Clone returns an unattached label with the same style and size.
func (l *Label) Clone() tableview.Element {
	return &Label{
		frame: tableview.Frame{Width: l.frame.Width, Height: l.frame.Height, AnchorX: l.frame.AnchorX, AnchorY: l.frame.AnchorY},
		style: l.style,
	}
}

// Reset clears the text when the label goes back to the pool.
func (l *Label) Reset() {
	l.text = ""
	l.active = false
}

// Activate marks the label as in use.
func (l *Label) Activate() {
	l.active = true
	l.uses++
}

// Attached reports whether the label is on a surface.
func (l *Label) Attached() bool { return l.attached }

// Active reports whether the label is bound to an item.
func (l *Label) Active() bool { return l.active }

// Uses returns how many times the label has been taken from a pool.
func (l *Label) Uses() int { return l.uses }

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(s string) { l.text = s }

func (l *Label) Style() Style { return l.style }

func (l *Label) SetStyle(s Style) { l.style = s }

// Draw fills the label's rectangle with its background and writes the
// wrapped text from the top-left corner.
func (l *Label) Draw(buf *Buffer, x, y int, clip Rect) {
	w, h := int(l.frame.Width+0.5), int(l.frame.Height+0.5)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if clip.Contains(col, row) {
				buf.Set(col, row, Glyph{Rune: ' ', Style: l.style})
			}
		}
	}

	for i, line := range Wrap(l.text, w) {
		row := y + i
		if i >= h || row >= clip.Y+clip.Height {
			break
		}
		if row < clip.Y {
			continue
		}
		col := x
		if col < clip.X {
			line = dropColumns(line, clip.X-col)
			col = clip.X
		}
		right := min(x+w, clip.X+clip.Width)
		if right > col {
			buf.WriteStringClipped(col, row, line, l.style, right-col)
		}
	}
}
