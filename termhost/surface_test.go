package termhost

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/kungfusheep/tableview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textFeed is a data source of strings rendered by labels.
type textFeed struct {
	items []string
	width int
}

func (f *textFeed) IdentifierAt(int) string { return tableview.DefaultIdentifier }

func (f *textFeed) ConfigureCell(c *tableview.Cell, i int) {
	c.Element().(*Label).SetText(f.items[i])
}

func (f *textFeed) SizeAt(i int) float64 {
	return float64(WrappedHeight(f.items[i], f.width))
}

func newTextView(t *testing.T, cfg tableview.Config, s *Surface, items ...string) (*tableview.View, *textFeed) {
	t.Helper()
	w, _ := s.Size()
	f := &textFeed{items: items, width: w}
	v := tableview.New(
		tableview.WithConfig(cfg),
		tableview.WithContainer(s),
		tableview.WithDataSource(f),
		tableview.WithSizeProvider(f),
	)
	tmpl := NewLabel(Style{})
	tmpl.SetFrame(tableview.Frame{Width: float64(w), Height: 1})
	v.RegisterTemplate(tmpl)
	require.NoError(t, v.Reload(len(items)))
	return v, f
}

func TestSurfaceHostsView(t *testing.T) {
	s := NewSurface(10, 4)
	s.Scrollbar = false
	v, _ := newTextView(t, tableview.DefaultConfig(), s,
		"alpha", "bravo", "charlie delta echo", "foxtrot", "golf")

	assert.Equal(t, 6.0, v.Extent())
	assert.Equal(t, []int{0, 1, 2}, v.LiveIndexes())
	assert.Len(t, s.Elements(), 3)

	buf := NewBuffer(10, 4)
	s.Render(buf)
	assert.Equal(t, "alpha\nbravo\ncharlie\ndelta echo", buf.String())

	s.ScrollBy(0, 5)
	assert.Equal(t, 2.0, s.ScrollOffset().Y, "clamped to the content")
	require.NoError(t, v.Layout())
	assert.Equal(t, []int{2, 3, 4}, v.LiveIndexes())
	assert.Len(t, s.Elements(), 3, "recycled labels are detached")

	s.Render(buf)
	assert.Equal(t, "charlie\ndelta echo\nfoxtrot\ngolf", buf.String())
}

func TestSurfaceBottomToTop(t *testing.T) {
	s := NewSurface(10, 4)
	s.Scrollbar = false
	cfg := tableview.DefaultConfig()
	cfg.Vertical = tableview.BottomToTop
	cfg.MinExtent = 4
	newTextView(t, cfg, s, "alpha", "beta", "gamma")

	buf := NewBuffer(10, 4)
	s.Render(buf)
	assert.Equal(t, "\ngamma\nbeta\nalpha", buf.String())
}

func TestSurfaceHorizontal(t *testing.T) {
	s := NewSurface(12, 2)
	s.Scrollbar = false
	cfg := tableview.DefaultConfig()
	cfg.Orientation = tableview.Horizontal
	cfg.SpacingX = 1

	f := &textFeed{items: []string{"one", "two", "three", "four"}}
	v := tableview.New(
		tableview.WithConfig(cfg),
		tableview.WithContainer(s),
		tableview.WithDataSource(f),
		tableview.WithSizeProvider(tableview.SizeFunc(func(i int) float64 {
			return float64(StringWidth(f.items[i]))
		})),
	)
	tmpl := NewLabel(Style{})
	tmpl.SetFrame(tableview.Frame{Height: 1, AnchorY: 1})
	v.RegisterTemplate(tmpl)
	require.NoError(t, v.Reload(4))

	buf := NewBuffer(12, 2)
	s.Render(buf)
	assert.Equal(t, "one two thre", buf.String())

	s.ScrollBy(4, 0)
	require.NoError(t, v.Layout())
	s.Render(buf)
	assert.Equal(t, "two three fo", buf.String())
}

func TestSurface(t *testing.T) {
	t.Run("ContentFrameAnchoredTopLeft", func(t *testing.T) {
		s := NewSurface(10, 4)
		s.SetContentSize(tableview.Size{Width: 10, Height: 30})
		r := tableview.ContentRect(s.ContentFrame())
		assert.Equal(t, tableview.Rect{Top: 0, Bottom: -30, Left: 0, Right: 10}, r)
	})

	t.Run("Clamp", func(t *testing.T) {
		s := NewSurface(10, 4)
		s.SetContentSize(tableview.Size{Width: 10, Height: 30})
		s.SetScrollOffset(tableview.Vec2{X: 3, Y: 100})
		assert.Equal(t, tableview.Vec2{X: 0, Y: 26}, s.ScrollOffset())

		s.SetContentSize(tableview.Size{Width: 10, Height: 10})
		assert.Equal(t, 6.0, s.ScrollOffset().Y, "shrinking content re-clamps")

		s.ScrollBy(0, -50)
		assert.Equal(t, 0.0, s.ScrollOffset().Y)
	})

	t.Run("AttachDetach", func(t *testing.T) {
		s := NewSurface(10, 4)
		a, b := NewLabel(Style{}), NewLabel(Style{})
		s.Attach(a)
		s.Attach(b)
		assert.True(t, a.Attached())
		s.Detach(a)
		assert.False(t, a.Attached())
		assert.Equal(t, []tableview.Element{b}, s.Elements())
		s.Detach(a)
		assert.Len(t, s.Elements(), 1)
	})

	t.Run("ScrollbarDrawn", func(t *testing.T) {
		s := NewSurface(5, 4)
		s.SetContentSize(tableview.Size{Width: 5, Height: 16})
		buf := NewBuffer(5, 4)
		s.Render(buf)
		assert.Equal(t, ' ', buf.Get(4, 0).Rune, "thumb at the top")
		assert.Equal(t, s.ThumbStyle, buf.Get(4, 0).Style)
		assert.Equal(t, '│', buf.Get(4, 3).Rune)

		s.SetScrollOffset(tableview.Vec2{Y: 12})
		s.Render(buf)
		assert.Equal(t, '│', buf.Get(4, 0).Rune)
		assert.Equal(t, s.ThumbStyle, buf.Get(4, 3).Style, "thumb at the bottom")
	})

	t.Run("ScrollbarView", func(t *testing.T) {
		s := NewSurface(5, 4)
		s.SetContentSize(tableview.Size{Width: 5, Height: 16})
		view := s.ScrollbarView(lipgloss.NewStyle(), lipgloss.NewStyle())
		assert.Equal(t, 3, strings.Count(view, "\n"), "one line per viewport row")
		assert.Equal(t, 3, strings.Count(view, "│"))
	})
}

func TestThumb(t *testing.T) {
	tests := []struct {
		name                      string
		content, viewport, offset int
		top, size                 int
	}{
		{"FullVisibility", 10, 10, 0, 0, 10},
		{"DoubleContentTop", 20, 10, 0, 0, 5},
		{"DoubleContentBottom", 20, 10, 10, 5, 5},
		{"DoubleContentMiddle", 20, 10, 5, 2, 5},
		{"HugeContent", 100, 10, 45, 4, 1},
		{"Overscrolled", 20, 10, 99, 5, 5},
		{"Negative", 20, 10, -4, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top, size := thumb(tt.content, tt.viewport, tt.offset)
			assert.Equal(t, tt.top, top)
			assert.Equal(t, tt.size, size)
		})
	}
}

func TestLabel(t *testing.T) {
	t.Run("DrawClipped", func(t *testing.T) {
		l := NewLabel(Style{})
		l.SetFrame(tableview.Frame{Width: 5, Height: 2})
		l.SetText("abcdefgh")

		buf := NewBuffer(6, 3)
		l.Draw(buf, -2, 1, Rect{Width: 6, Height: 3})
		assert.Equal(t, "\ncde\nh", buf.String())
	})

	t.Run("Lifecycle", func(t *testing.T) {
		tmpl := NewLabel(Style{}.Bold())
		tmpl.SetFrame(tableview.Frame{X: 4, Width: 8, Height: 1, AnchorY: 1})
		tmpl.SetText("template")

		clone := tmpl.Clone().(*Label)
		assert.Equal(t, Style{}.Bold(), clone.Style())
		assert.Equal(t, 8.0, clone.Frame().Width)
		assert.Empty(t, clone.Text())

		clone.Activate()
		assert.True(t, clone.Active())
		clone.SetText("bound")
		clone.Reset()
		assert.False(t, clone.Active())
		assert.Empty(t, clone.Text())
		assert.Equal(t, 1, clone.Uses())
	})
}

func TestEncode(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "hi", Style{})
		var out bytes.Buffer
		require.NoError(t, Encode(&out, buf))
		assert.Equal(t, "hi  \n    ", out.String())
	})

	t.Run("Styled", func(t *testing.T) {
		buf := NewBuffer(3, 1)
		buf.WriteString(0, 0, "ok", Style{}.Bold().Foreground(BasicColor(1)))
		var out bytes.Buffer
		require.NoError(t, Encode(&out, buf))
		assert.Equal(t, "\x1b[0;1;31;49mok\x1b[0;39;49m \x1b[0m", out.String())
	})

	t.Run("Attributes", func(t *testing.T) {
		buf := NewBuffer(1, 1)
		buf.Set(0, 0, Glyph{Rune: 'a', Style: Style{Attr: AttrDim | AttrInverse}})
		var out bytes.Buffer
		require.NoError(t, Encode(&out, buf))
		assert.Equal(t, "\x1b[0;2;7;39;49ma\x1b[0m", out.String())
	})

	t.Run("Colors", func(t *testing.T) {
		buf := NewBuffer(3, 1)
		buf.Set(0, 0, Glyph{Rune: 'a', Style: Style{}.Foreground(BasicColor(9))})
		buf.Set(1, 0, Glyph{Rune: 'b', Style: Style{}.Background(PaletteColor(57))})
		buf.Set(2, 0, Glyph{Rune: 'c', Style: Style{}.Foreground(Hex(0xFF5500))})
		var out bytes.Buffer
		require.NoError(t, Encode(&out, buf))
		s := out.String()
		assert.Contains(t, s, ";91;49m")
		assert.Contains(t, s, ";39;48;5;57m")
		assert.Contains(t, s, ";38;2;255;85;0;49m")
	})

	t.Run("WideCharacters", func(t *testing.T) {
		buf := NewBuffer(3, 1)
		buf.WriteString(0, 0, "日x", Style{})
		var out bytes.Buffer
		require.NoError(t, Encode(&out, buf))
		assert.Equal(t, "日x", out.String())
	})
}
