package termhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	t.Run("NewBuffer", func(t *testing.T) {
		buf := NewBuffer(8, 3)
		assert.Equal(t, 8, buf.Width())
		assert.Equal(t, 3, buf.Height())
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				assert.Equal(t, ' ', buf.Get(x, y).Rune)
			}
		}
	})

	t.Run("InBounds", func(t *testing.T) {
		buf := NewBuffer(10, 10)
		tests := []struct {
			x, y   int
			expect bool
		}{
			{0, 0, true},
			{9, 9, true},
			{-1, 0, false},
			{0, -1, false},
			{10, 0, false},
			{0, 10, false},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expect, buf.InBounds(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
		}
	})

	t.Run("SetOutOfBoundsIgnored", func(t *testing.T) {
		buf := NewBuffer(2, 2)
		buf.Set(5, 5, Glyph{Rune: 'x'})
		assert.Equal(t, EmptyGlyph(), buf.Get(5, 5))
	})

	t.Run("WriteString", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		style := Style{}.Bold()
		n := buf.WriteString(1, 0, "hello", style)
		assert.Equal(t, 5, n)
		assert.Equal(t, " hello", buf.GetLine(0))
		assert.Equal(t, style, buf.Get(1, 0).Style)
	})

	t.Run("WriteStringClips", func(t *testing.T) {
		buf := NewBuffer(4, 1)
		n := buf.WriteString(0, 0, "overflow", Style{})
		assert.Equal(t, 4, n)
		assert.Equal(t, "over", buf.GetLine(0))
	})

	t.Run("WideCharacters", func(t *testing.T) {
		buf := NewBuffer(6, 1)
		n := buf.WriteString(0, 0, "日本x", Style{})
		assert.Equal(t, 5, n)
		assert.Equal(t, '日', buf.Get(0, 0).Rune)
		assert.Equal(t, rune(0), buf.Get(1, 0).Rune, "placeholder for the second column")
		assert.Equal(t, "日本x", buf.GetLine(0))
	})

	t.Run("WideCharacterDoesNotSplit", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteStringClipped(0, 0, "ab日", Style{}, 3)
		assert.Equal(t, 2, n)
		assert.Equal(t, "ab", buf.GetLine(0))
	})

	t.Run("GraphemeClusters", func(t *testing.T) {
		buf := NewBuffer(10, 1)
		n := buf.WriteString(0, 0, "e\u0301!", Style{})
		assert.Equal(t, 2, n, "combining mark shares its base column")
		assert.Equal(t, 'e', buf.Get(0, 0).Rune)
		assert.Equal(t, '!', buf.Get(1, 0).Rune)
	})

	t.Run("FillRect", func(t *testing.T) {
		buf := NewBuffer(4, 3)
		buf.FillRect(1, 1, 2, 5, Glyph{Rune: '#'})
		assert.Equal(t, "\n ##\n ##", buf.String())
	})

	t.Run("Resize", func(t *testing.T) {
		buf := NewBuffer(4, 2)
		buf.WriteString(0, 0, "abcd", Style{})
		buf.Resize(2, 3)
		require.Equal(t, 2, buf.Width())
		assert.Equal(t, "ab", buf.String())
		assert.Equal(t, ' ', buf.Get(1, 2).Rune)
	})
}

func TestBufferPool(t *testing.T) {
	buf := GetBuffer(5, 2)
	buf.WriteString(0, 0, "dirty", Style{})
	PutBuffer(buf)
	PutBuffer(nil)

	again := GetBuffer(3, 3)
	assert.Equal(t, 3, again.Width())
	assert.Equal(t, 3, again.Height())
	assert.Empty(t, again.String(), "pooled buffers come back cleared")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10, "…"))
	assert.Equal(t, "hel…", Truncate("hello world", 4, "…"))
	assert.Equal(t, 4, StringWidth("日本"))
}
