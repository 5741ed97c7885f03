package main

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/kungfusheep/tableview"
	"github.com/kungfusheep/tableview/termhost"
)

const (
	headerID  = "header"
	messageID = "message"

	tileWidth  = 18
	tileHeight = 3
)

const junk = "sf sdfg sdf g sdfg sdfg kliuhwieurhgiower giu is dfi gsdifu gsuidguis dfui hui sdfui gsui dguih sduihf gsuihd"

type item struct {
	header bool
	text   string
}

// feed is the data source of the demo: a log of messages broken up by day
// headers. items is the filtered view of all; both share item pointers.
// Message heights depend on the wrap width and are cached.
type feed struct {
	all     []*item
	items   []*item
	filter  string
	rng     *rand.Rand
	width   int // wrap width of linear layouts
	cross   int // viewport extent across a horizontal layout
	heights []int
	styles  map[string]termhost.Style
}

func newFeed(count int, seed int64) *feed {
	f := &feed{
		rng: rand.New(rand.NewSource(seed)),
		styles: map[string]termhost.Style{
			headerID:  termhost.Style{}.Bold().Foreground(termhost.PaletteColor(214)),
			messageID: {},
		},
	}
	for i := 0; i < count; i++ {
		f.all = append(f.all, f.generate(i))
	}
	f.items = f.all
	return f
}

func (f *feed) generate(i int) *item {
	if i%25 == 0 {
		return &item{header: true, text: fmt.Sprintf("── day %d ──", i/25+1)}
	}
	end := f.rng.Intn(len(junk))
	return &item{text: fmt.Sprintf("#%d %s", i, junk[:end])}
}

// setFilter keeps the items matching raw. Headers are only kept by the empty
// filter.
func (f *feed) setFilter(raw string) {
	f.filter, f.heights = raw, nil
	q := parseQuery(raw)
	if len(q) == 0 {
		f.items = f.all
		return
	}
	f.items = nil
	for _, it := range f.all {
		if !it.header && q.Match(it.text) {
			f.items = append(f.items, it)
		}
	}
}

// insert adds a new message at index i of the filtered items.
func (f *feed) insert(i int) {
	it := &item{text: fmt.Sprintf("new message %d", len(f.all))}
	at := len(f.all)
	if i < len(f.items) {
		at = slices.Index(f.all, f.items[i])
	}
	f.all = slices.Insert(f.all, at, it)
	if f.filter != "" {
		f.items = slices.Insert(f.items, i, it)
	} else {
		f.items = f.all
	}
	f.heights = nil
}

func (f *feed) delete(i int) {
	it := f.items[i]
	f.all = slices.DeleteFunc(f.all, func(o *item) bool { return o == it })
	if f.filter != "" {
		f.items = slices.Delete(f.items, i, i+1)
	} else {
		f.items = f.all
	}
	f.heights = nil
}

// expand appends text to item i so it needs more rows.
func (f *feed) expand(i int) {
	f.items[i].text += " " + junk[:40]
	f.heights = nil
}

func (f *feed) resize(width, cross int) {
	if width != f.width {
		f.heights = nil
	}
	f.width, f.cross = width, cross
}

func (f *feed) IdentifierAt(i int) string {
	if f.items[i].header {
		return headerID
	}
	return messageID
}

func (f *feed) ConfigureCell(c *tableview.Cell, i int) {
	l := c.Element().(*termhost.Label)
	l.SetText(f.items[i].text)
	l.SetStyle(f.styles[c.Identifier()])

	// the cross axis of linear layouts is not positioned by the view
	fr := l.Frame()
	fr.Width, fr.AnchorY = float64(f.width), 1
	if f.cross > 0 {
		fr.Height = float64(f.cross)
	}
	l.SetFrame(fr)
}

// SizeAt is the row count of item i in a vertical list, or its column count
// in a horizontal one.
func (f *feed) SizeAt(i int) float64 {
	if f.cross > 0 {
		return float64(min(termhost.StringWidth(f.items[i].text), 40))
	}
	if len(f.heights) != len(f.items) {
		f.heights = make([]int, len(f.items))
	}
	if f.heights[i] == 0 {
		f.heights[i] = termhost.WrappedHeight(f.items[i].text, f.width)
	}
	return float64(f.heights[i])
}

// GridSizeAt sizes inventory tiles; headers span a whole row.
func (f *feed) GridSizeAt(i int) tableview.Size {
	if f.items[i].header {
		return tableview.Size{Width: float64(f.width), Height: 1}
	}
	return tableview.Size{Width: tileWidth, Height: tileHeight}
}
