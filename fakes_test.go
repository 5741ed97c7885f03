package tableview

import (
	"strconv"
	"testing"
)

// fakeElem is an element that records its lifecycle.
type fakeElem struct {
	frame     Frame
	attached  bool
	label     string
	resets    int
	activates int
	clones    *int
}

func (e *fakeElem) Frame() Frame     { return e.frame }
func (e *fakeElem) SetFrame(f Frame) { e.frame = f }
func (e *fakeElem) Reset()           { e.resets++; e.label = "" }
func (e *fakeElem) Activate()        { e.activates++ }
func (e *fakeElem) Attached() bool   { return e.attached }

func (e *fakeElem) Clone() Element {
	if e.clones != nil {
		*e.clones++
	}
	return &fakeElem{frame: e.frame, clones: e.clones}
}

// fakeContainer is a scroll surface that keeps its attached elements in a set.
type fakeContainer struct {
	viewport Size
	offset   Vec2
	frame    Frame
	attached map[Element]bool
}

func newFakeContainer(viewport Size) *fakeContainer {
	return &fakeContainer{
		viewport: viewport,
		frame:    Frame{Width: viewport.Width, Height: viewport.Height, AnchorX: 0.5, AnchorY: 1},
		attached: make(map[Element]bool),
	}
}

func (c *fakeContainer) ViewportSize() Size     { return c.viewport }
func (c *fakeContainer) ScrollOffset() Vec2     { return c.offset }
func (c *fakeContainer) SetScrollOffset(o Vec2) { c.offset = o }
func (c *fakeContainer) ContentFrame() Frame    { return c.frame }

func (c *fakeContainer) SetContentSize(s Size) {
	c.frame.Width, c.frame.Height = s.Width, s.Height
}

func (c *fakeContainer) Attach(e Element) {
	c.attached[e] = true
	if f, ok := e.(*fakeElem); ok {
		f.attached = true
	}
}

func (c *fakeContainer) Detach(e Element) {
	delete(c.attached, e)
	if f, ok := e.(*fakeElem); ok {
		f.attached = false
	}
}

// feed is a list of item labels with fixed sizes.
type feed struct {
	items []string
	size  float64
}

func newFeed(n int, size float64) *feed {
	f := &feed{size: size}
	for i := 0; i < n; i++ {
		f.items = append(f.items, "item "+strconv.Itoa(i))
	}
	return f
}

func (f *feed) IdentifierAt(int) string { return DefaultIdentifier }

func (f *feed) ConfigureCell(c *Cell, index int) {
	c.Element().(*fakeElem).label = f.items[index]
}

func (f *feed) SizeAt(int) float64 { return f.size }

type harness struct {
	view      *View
	container *fakeContainer
	feed      *feed
	clones    *int
}

func newHarness(t testing.TB, cfg Config, viewport Size, count int, size float64) *harness {
	t.Helper()
	h := &harness{
		container: newFakeContainer(viewport),
		feed:      newFeed(count, size),
		clones:    new(int),
	}
	h.view = New(
		WithConfig(cfg),
		WithContainer(h.container),
		WithDataSource(h.feed),
		WithSizeProvider(h.feed),
	)
	h.view.RegisterTemplate(&fakeElem{clones: h.clones})
	return h
}

func (h *harness) label(index int) string {
	c := h.view.Cell(index)
	if c == nil {
		return ""
	}
	return c.Element().(*fakeElem).label
}

func configWith(mut func(*Config)) Config {
	cfg := DefaultConfig()
	if mut != nil {
		mut(&cfg)
	}
	return cfg
}
