package tableview

import (
	"fmt"
	"testing"
)

// continuous scrolling, one row per frame
func BenchmarkLayoutScroll(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000, 1000000} {
		b.Run(fmt.Sprintf("Items_%d", n), func(b *testing.B) {
			h := newHarness(b, DefaultConfig(), Size{Width: 120, Height: 50}, n, 1)
			if err := h.view.Reload(n); err != nil {
				b.Fatal(err)
			}
			limit := h.view.Extent() - 50

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				h.container.offset.Y = float64(i % int(limit))
				if err := h.view.Layout(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// page up/down: every pass recycles and fills a whole viewport
func BenchmarkLayoutPageScroll(b *testing.B) {
	h := newHarness(b, DefaultConfig(), Size{Width: 120, Height: 48}, 100000, 1)
	if err := h.view.Reload(100000); err != nil {
		b.Fatal(err)
	}
	start := h.view.Extent() / 2

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		h.container.offset.Y = start
		if i%2 == 0 {
			h.container.offset.Y += 48
		}
		if err := h.view.Layout(); err != nil {
			b.Fatal(err)
		}
	}
}

// random jumps across a long grid
func BenchmarkLayoutGridJump(b *testing.B) {
	cfg := configWith(func(c *Config) { c.Wrap = true })
	h := newHarness(b, cfg, Size{Width: 120, Height: 50}, 100000, 1)
	h.view.SetGridSizeProvider(GridSizeFunc(func(int) Size { return Size{Width: 10, Height: 2} }))
	if err := h.view.Reload(100000); err != nil {
		b.Fatal(err)
	}
	limit := h.view.Extent() - 50

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		h.container.offset.Y = float64((i * 7919) % int(limit))
		if err := h.view.Layout(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReload(b *testing.B) {
	h := newHarness(b, DefaultConfig(), Size{Width: 120, Height: 50}, 100000, 1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := h.view.Reload(100000); err != nil {
			b.Fatal(err)
		}
	}
}
