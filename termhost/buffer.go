package termhost

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Buffer is a 2D grid of glyphs representing a drawable surface.
type Buffer struct {
	cells  []Glyph
	width  int
	height int
}

// NewBuffer creates a new buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]Glyph, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if the given coordinates are within the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the glyph at the given coordinates.
// Returns an empty glyph if out of bounds.
func (b *Buffer) Get(x, y int) Glyph {
	if !b.InBounds(x, y) {
		return EmptyGlyph()
	}
	return b.cells[y*b.width+x]
}

// Set sets the glyph at the given coordinates.
// Does nothing if out of bounds.
func (b *Buffer) Set(x, y int, g Glyph) {
	if !b.InBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = g
}

// Fill fills the entire buffer with the given glyph.
func (b *Buffer) Fill(g Glyph) {
	for i := range b.cells {
		b.cells[i] = g
	}
}

// Clear clears the buffer to empty glyphs with default style.
func (b *Buffer) Clear() {
	b.Fill(EmptyGlyph())
}

// FillRect fills a rectangular region with the given glyph.
func (b *Buffer) FillRect(x, y, width, height int, g Glyph) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			b.Set(x+dx, y+dy, g)
		}
	}
}

// WriteString writes s at the given coordinates, one grapheme cluster per
// display column group, and returns the number of columns used.
func (b *Buffer) WriteString(x, y int, s string, style Style) int {
	return b.WriteStringClipped(x, y, s, style, b.width-x)
}

// WriteStringClipped writes s, stopping before it would exceed maxWidth
// columns. A wide character that does not fit entirely is dropped.
func (b *Buffer) WriteStringClipped(x, y int, s string, style Style, maxWidth int) int {
	written := 0
	state := -1
	var cluster string
	var width int
	for len(s) > 0 {
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if written+width > maxWidth {
			break
		}
		r := []rune(cluster)[0]
		b.Set(x+written, y, Glyph{Rune: r, Style: style})
		for i := 1; i < width; i++ {
			b.Set(x+written+i, y, Glyph{Style: style})
		}
		written += width
	}
	return written
}

// GetLine returns the content of a single line with trailing spaces removed.
func (b *Buffer) GetLine(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var line strings.Builder
	for x := 0; x < b.width; x++ {
		r := b.Get(x, y).Rune
		if r == 0 {
			continue
		}
		line.WriteRune(r)
	}
	return strings.TrimRight(line.String(), " ")
}

// String returns the buffer contents with trailing spaces and trailing empty
// lines removed.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.GetLine(y)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Glyph, width*height)
	for i := range cells {
		cells[i] = EmptyGlyph()
	}
	for y := 0; y < min(height, b.height); y++ {
		for x := 0; x < min(width, b.width); x++ {
			cells[y*width+x] = b.cells[y*b.width+x]
		}
	}

	b.cells = cells
	b.width = width
	b.height = height
}

// Truncate shortens s to at most width columns, appending tail when it had to
// cut.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}

// StringWidth returns the display width of s in columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
