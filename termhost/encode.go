package termhost

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"sync"

	"golang.org/x/term"
)

// Encode writes the buffer as ANSI text, one line per row separated by "\n".
// Style changes are emitted only when the style differs from the previous
// glyph and every line ends with a reset.
func Encode(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.Height(); y++ {
		var last Style
		styled := false
		for x := 0; x < b.Width(); x++ {
			g := b.Get(x, y)
			if g.Rune == 0 {
				continue
			}
			if g.Style != last {
				writeStyle(bw, g.Style)
				last = g.Style
				styled = true
			}
			bw.WriteRune(g.Rune)
		}
		if styled {
			bw.WriteString("\x1b[0m")
		}
		if y < b.Height()-1 {
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("encode buffer: %w", err)
	}
	return nil
}

// writeStyle writes ANSI escape codes for the given style.
func writeStyle(w *bufio.Writer, style Style) {
	// Reset first if we need to turn off attributes
	w.WriteString("\x1b[0")

	if style.Attr.Has(AttrBold) {
		w.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		w.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		w.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		w.WriteString(";4")
	}
	if style.Attr.Has(AttrInverse) {
		w.WriteString(";7")
	}

	writeColor(w, style.FG, true)
	writeColor(w, style.BG, false)
	w.WriteString("m")
}

// writeColor writes the ANSI escape code for a color.
func writeColor(w *bufio.Writer, c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			w.WriteString(";39")
		} else {
			w.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		if c.Index >= 8 {
			// Bright colors
			base += 60 - 8
		}
		w.WriteByte(';')
		w.WriteString(strconv.Itoa(base + int(c.Index)))
	case Color256:
		if fg {
			w.WriteString(";38;5;")
		} else {
			w.WriteString(";48;5;")
		}
		w.WriteString(strconv.Itoa(int(c.Index)))
	case ColorRGB:
		if fg {
			w.WriteString(";38;2;")
		} else {
			w.WriteString(";48;2;")
		}
		w.WriteString(strconv.Itoa(int(c.R)))
		w.WriteByte(';')
		w.WriteString(strconv.Itoa(int(c.G)))
		w.WriteByte(';')
		w.WriteString(strconv.Itoa(int(c.B)))
	}
}

// TerminalSize returns the size of the terminal behind fd.
func TerminalSize(fd int) (width, height int, err error) {
	width, height, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, height, nil
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

var bufferPool = sync.Pool{
	New: func() any { return &Buffer{} },
}

// GetBuffer gets a cleared buffer from the pool, resizing if needed.
func GetBuffer(width, height int) *Buffer {
	b := bufferPool.Get().(*Buffer)
	needed := width * height
	if cap(b.cells) < needed {
		b.cells = make([]Glyph, needed)
	} else {
		b.cells = b.cells[:needed]
	}
	b.width = width
	b.height = height
	b.Clear()
	return b
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(b *Buffer) {
	if b == nil {
		return
	}
	bufferPool.Put(b)
}
