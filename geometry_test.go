package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrame(t *testing.T) {
	t.Run("Edges", func(t *testing.T) {
		f := Frame{X: 10, Y: 20, Width: 40, Height: 10, AnchorX: 0.5, AnchorY: 0.5}
		assert.Equal(t, 25.0, f.Top())
		assert.Equal(t, 15.0, f.Bottom())
		assert.Equal(t, -10.0, f.Left())
		assert.Equal(t, 30.0, f.Right())
		assert.Equal(t, Rect{Top: 25, Bottom: 15, Left: -10, Right: 30}, f.Rect())
	})

	t.Run("SettersHonourAnchor", func(t *testing.T) {
		anchors := []struct{ x, y float64 }{{0, 0}, {0.5, 0.5}, {1, 1}, {0.25, 0.75}}
		for _, a := range anchors {
			f := Frame{AnchorX: a.x, AnchorY: a.y}

			top := f.SetTop(100, 30)
			assert.InDelta(t, 100, top.Top(), 1e-9)
			assert.InDelta(t, 70, top.Bottom(), 1e-9)

			bottom := f.SetBottom(-50, 20)
			assert.InDelta(t, -50, bottom.Bottom(), 1e-9)
			assert.InDelta(t, -30, bottom.Top(), 1e-9)

			left := f.SetLeft(5, 10)
			assert.InDelta(t, 5, left.Left(), 1e-9)
			assert.InDelta(t, 15, left.Right(), 1e-9)

			right := f.SetRight(80, 40)
			assert.InDelta(t, 80, right.Right(), 1e-9)
			assert.InDelta(t, 40, right.Left(), 1e-9)
		}
	})

	t.Run("SettersKeepOtherAxis", func(t *testing.T) {
		f := Frame{X: 7, Width: 3, Height: 9}
		moved := f.SetTop(0, 4)
		assert.Equal(t, 7.0, moved.X)
		assert.Equal(t, 3.0, moved.Width)
		assert.Equal(t, 9.0, f.Height, "receiver is not modified")
	})
}

func TestContentRect(t *testing.T) {
	tests := []struct {
		name   string
		frame  Frame
		expect Rect
	}{
		{"TopCenter", Frame{Width: 100, Height: 500, AnchorX: 0.5, AnchorY: 1}, Rect{Top: 0, Bottom: -500, Left: -50, Right: 50}},
		{"BottomLeft", Frame{Width: 100, Height: 500}, Rect{Top: 500, Bottom: 0, Left: 0, Right: 100}},
		{"Center", Frame{X: 99, Y: 99, Width: 20, Height: 10, AnchorX: 0.5, AnchorY: 0.5}, Rect{Top: 5, Bottom: -5, Left: -10, Right: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ContentRect(tt.frame)
			assert.Equal(t, tt.expect, r)
			assert.Equal(t, tt.frame.Width, r.Width())
			assert.Equal(t, tt.frame.Height, r.Height())
		})
	}
}
