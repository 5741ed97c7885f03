package termhost

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap splits s on newlines and word-wraps each line to width columns.
// Words wider than width are broken between grapheme clusters.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

// WrappedHeight is the number of rows Wrap produces for s.
func WrappedHeight(s string, width int) int {
	return len(Wrap(s, width))
}

func wrapLine(s string, width int) []string {
	var out []string
	var line strings.Builder
	col := 0
	lastSpace := -1 // byte length of line up to and including its last space
	state := -1
	var cluster string
	var w int
	for len(s) > 0 {
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		for col+w > width && col > 0 {
			if cluster == " " {
				break
			}
			text := line.String()
			line.Reset()
			if lastSpace > 0 {
				out = append(out, strings.TrimRight(text[:lastSpace], " "))
				rest := text[lastSpace:]
				line.WriteString(rest)
				col = uniseg.StringWidth(rest)
			} else {
				out = append(out, text)
				col = 0
			}
			lastSpace = -1
		}
		if cluster == " " && col+w > width {
			// a space at the wrap point ends the line
			out = append(out, line.String())
			line.Reset()
			col, lastSpace = 0, -1
			continue
		}
		line.WriteString(cluster)
		col += w
		if cluster == " " {
			lastSpace = line.Len()
		}
	}
	return append(out, line.String())
}

// dropColumns removes the first n display columns of s. A wide character
// cut in half is replaced by a space.
func dropColumns(s string, n int) string {
	state := -1
	var w int
	for n > 0 && len(s) > 0 {
		_, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		n -= w
	}
	if n < 0 {
		return strings.Repeat(" ", -n) + s
	}
	return s
}
