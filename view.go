package tableview

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"
)

// Container is the host scroll surface a view lays its cells into.
type Container interface {
	// ViewportSize is the size of the visible window.
	ViewportSize() Size
	// ScrollOffset is how far the window has moved from the content's top
	// and left edges.
	ScrollOffset() Vec2
	SetScrollOffset(Vec2)
	// ContentFrame is the content node's frame in viewport space.
	ContentFrame() Frame
	SetContentSize(Size)
	Attach(Element)
	Detach(Element)
}

// DataSource resolves which template backs an index and binds data to cells.
type DataSource interface {
	IdentifierAt(index int) string
	ConfigureCell(c *Cell, index int)
}

// DataSourceFuncs adapts plain functions to DataSource. A nil Identifier
// selects DefaultIdentifier; a nil Configure does nothing.
type DataSourceFuncs struct {
	Identifier func(index int) string
	Configure  func(c *Cell, index int)
}

func (d DataSourceFuncs) IdentifierAt(index int) string {
	if d.Identifier == nil {
		return DefaultIdentifier
	}
	return d.Identifier(index)
}

func (d DataSourceFuncs) ConfigureCell(c *Cell, index int) {
	if d.Configure != nil {
		d.Configure(c, index)
	}
}

// SizeProvider gives the main-axis extent of each item of a linear layout.
// It may be called several times per index per pass.
type SizeProvider interface {
	SizeAt(index int) float64
}

// SizeFunc adapts a function to SizeProvider.
type SizeFunc func(index int) float64

func (f SizeFunc) SizeAt(index int) float64 { return f(index) }

// GridSizeProvider gives the 2D size of each item of a grid layout.
type GridSizeProvider interface {
	GridSizeAt(index int) Size
}

// GridSizeFunc adapts a function to GridSizeProvider.
type GridSizeFunc func(index int) Size

func (f GridSizeFunc) GridSizeAt(index int) Size { return f(index) }

// PassStats describes the most recent layout pass.
type PassStats struct {
	Skipped  bool // region had not moved past the threshold
	Recycled int
	Scanned  int
	Filled   int
}

// View is a recycling list or grid bound to one container. It is not safe
// for concurrent use; drive it from the goroutine that owns the container.
type View struct {
	cfg       Config
	container Container
	data      DataSource
	sizes     SizeProvider
	gridSizes GridSizeProvider
	logger    *slog.Logger

	pool     *Pool
	strategy Strategy
	marks    Checkpoints
	live     map[int]*Cell
	count    int
	extent   float64

	lastRegion *Region
	last       PassStats
	busy       bool
	pending    bool

	listeners    []listener
	nextListener int
}

type listener struct {
	id int
	fn func(SizeChangedEvent)
}

// Option configures a View.
type Option func(*View)

// WithConfig sets the layout configuration used by the next Reload.
func WithConfig(cfg Config) Option {
	return func(v *View) { v.cfg = cfg }
}

// WithContainer binds the host container.
func WithContainer(c Container) Option {
	return func(v *View) { v.container = c }
}

// WithDataSource sets the data source.
func WithDataSource(d DataSource) Option {
	return func(v *View) { v.data = d }
}

// WithSizeProvider sets the item sizes of linear layouts.
func WithSizeProvider(p SizeProvider) Option {
	return func(v *View) { v.sizes = p }
}

// WithGridSizeProvider sets the item sizes of grid layouts.
func WithGridSizeProvider(p GridSizeProvider) Option {
	return func(v *View) { v.gridSizes = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a view. Nothing is laid out until Reload.
func New(opts ...Option) *View {
	v := &View{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
		live:   make(map[int]*Cell),
	}
	for _, o := range opts {
		o(v)
	}
	v.pool = NewPool(v.detach)
	v.pool.notify = v.emit
	return v
}

func (v *View) detach(e Element) {
	if v.container != nil {
		v.container.Detach(e)
	}
}

// SetConfig replaces the configuration; it takes effect on the next Reload.
func (v *View) SetConfig(cfg Config) *View {
	v.cfg = cfg
	return v
}

// SetContainer binds the host container.
func (v *View) SetContainer(c Container) *View {
	v.container = c
	return v
}

// SetDataSource sets the data source.
func (v *View) SetDataSource(d DataSource) *View {
	v.data = d
	return v
}

// SetSizeProvider sets the item sizes of linear layouts.
func (v *View) SetSizeProvider(p SizeProvider) *View {
	v.sizes = p
	return v
}

// SetGridSizeProvider sets the item sizes of grid layouts.
func (v *View) SetGridSizeProvider(p GridSizeProvider) *View {
	v.gridSizes = p
	return v
}

// Config returns the configuration in use.
func (v *View) Config() Config { return v.cfg }

// Pool returns the view's cell pool.
func (v *View) Pool() *Pool { return v.pool }

// Strategy returns the strategy resolved by the last Reload, or nil.
func (v *View) Strategy() Strategy { return v.strategy }

// Count returns the item count of the last Reload.
func (v *View) Count() int { return v.count }

// Extent returns the main-axis content extent applied by the last Reload.
func (v *View) Extent() float64 { return v.extent }

// LastPass returns statistics of the most recent layout pass.
func (v *View) LastPass() PassStats { return v.last }

// RegisterTemplate registers a template for identifier, or for
// DefaultIdentifier when none is given.
func (v *View) RegisterTemplate(t Template, identifier ...string) {
	id := DefaultIdentifier
	if len(identifier) > 0 && identifier[0] != "" {
		id = identifier[0]
	}
	v.pool.Register(t, id)
}

// Dequeue returns a reusable cell for identifier.
func (v *View) Dequeue(identifier string) (*Cell, error) {
	return v.pool.Dequeue(identifier)
}

// Cell returns the live cell bound to index, or nil.
func (v *View) Cell(index int) *Cell {
	return v.live[index]
}

// LiveIndexes returns the indexes of all live cells in ascending order.
func (v *View) LiveIndexes() []int {
	out := make([]int, 0, len(v.live))
	for i := range v.live {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// OnSizeChanged subscribes fn to size-change notifications from live cells
// and returns a function that unsubscribes it.
func (v *View) OnSizeChanged(fn func(SizeChangedEvent)) func() {
	v.nextListener++
	id := v.nextListener
	v.listeners = append(v.listeners, listener{id: id, fn: fn})
	return func() {
		v.listeners = slices.DeleteFunc(v.listeners, func(l listener) bool { return l.id == id })
	}
}

func (v *View) emit(e SizeChangedEvent) {
	// a listener may unsubscribe while it runs
	for _, l := range slices.Clone(v.listeners) {
		l.fn(e)
	}
}

// Reload recycles every live cell, recomputes and applies the content
// extent for count items, then fills the visible region.
func (v *View) Reload(count int) error {
	if err := v.reload(count); err != nil {
		return err
	}
	return v.Layout()
}

// ReloadKeepingOffset reloads like Reload but keeps the visible content in
// place. Layouts that grow from their trailing edge (bottom-to-top and
// right-to-left) move the scroll offset by the change in extent.
func (v *View) ReloadKeepingOffset(count int) error {
	before := v.extent
	if err := v.reload(count); err != nil {
		return err
	}
	if before > 0 {
		off := v.container.ScrollOffset()
		diff := v.extent - before
		switch {
		case v.cfg.Orientation == Vertical && v.cfg.Vertical == BottomToTop:
			off.Y += diff
		case v.cfg.Orientation == Horizontal && v.cfg.Horizontal == RightToLeft:
			off.X += diff
		}
		v.container.SetScrollOffset(v.clampOffset(off))
	}
	return v.Layout()
}

func (v *View) reload(count int) error {
	if v.busy {
		return ErrReentrant
	}
	if v.container == nil {
		return ErrNoContainer
	}
	if v.data == nil {
		return ErrNoDataSource
	}
	if err := v.cfg.Validate(); err != nil {
		return err
	}
	if v.cfg.Wrap && v.gridSizes == nil {
		return fmt.Errorf("%w: grid layout needs a GridSizeProvider", ErrNoSizeProvider)
	}
	if !v.cfg.Wrap && v.sizes == nil {
		return fmt.Errorf("%w: %s layout needs a SizeProvider", ErrNoSizeProvider, v.cfg.Kind())
	}
	if count < 0 {
		count = 0
	}

	v.recycleAll()
	v.count = count
	viewport := v.container.ViewportSize()
	cross := viewport.Width
	if v.cfg.Orientation == Horizontal {
		cross = viewport.Height
	}
	v.strategy = NewStrategy(v.cfg, cross)
	v.applyExtent()
	v.lastRegion = nil

	v.logger.Debug("tableview reload",
		slog.String("kind", v.strategy.Kind().String()),
		slog.Int("count", count),
		slog.Float64("extent", v.extent))
	return nil
}

// applyExtent measures all items, records the seek checkpoints and resizes
// the content node.
func (v *View) applyExtent() {
	extent, marks := Measure(v.strategy, v.count, v.sizeAt)
	viewport := v.container.ViewportSize()
	mainViewport := viewport.Height
	if v.cfg.Orientation == Horizontal {
		mainViewport = viewport.Width
	}
	extent = math.Max(extent, v.cfg.MinExtent)
	if v.cfg.ScrollAlways {
		extent = math.Max(extent, mainViewport+1)
	}
	v.extent = extent
	v.marks = marks

	frame := v.container.ContentFrame()
	var size Size
	if v.cfg.Orientation == Vertical {
		size = Size{Width: frame.Width, Height: extent}
		if v.cfg.Wrap || size.Width <= 0 {
			size.Width = viewport.Width
		}
	} else {
		size = Size{Width: extent, Height: frame.Height}
		if v.cfg.Wrap || size.Height <= 0 {
			size.Height = viewport.Height
		}
	}
	v.container.SetContentSize(size)
}

func (v *View) sizeAt(index int) Size {
	if v.cfg.Wrap {
		s := v.gridSizes.GridSizeAt(index)
		return Size{Width: math.Max(s.Width, 0), Height: math.Max(s.Height, 0)}
	}
	s := math.Max(v.sizes.SizeAt(index), 0)
	if v.cfg.Orientation == Horizontal {
		return Size{Width: s}
	}
	return Size{Height: s}
}

// ScrollOffsetForIndex returns the scroll offset that puts the leading edge
// of index on the viewport's leading edge. It is not clamped to the
// scrollable range.
func (v *View) ScrollOffsetForIndex(index int) (Vec2, error) {
	if v.container == nil {
		return Vec2{}, ErrNoContainer
	}
	if v.strategy == nil {
		return Vec2{}, ErrNotLoaded
	}
	s, err := v.spanOf(index)
	if err != nil {
		return Vec2{}, err
	}
	content := ContentRect(v.container.ContentFrame())
	return v.strategy.ScrollOffset(content, v.container.ViewportSize(), s, v.container.ScrollOffset()), nil
}

// ScrollToIndex scrolls the container to index, clamped to the scrollable
// range, and lays out.
func (v *View) ScrollToIndex(index int) error {
	off, err := v.ScrollOffsetForIndex(index)
	if err != nil {
		return err
	}
	v.container.SetScrollOffset(v.clampOffset(off))
	return v.Layout()
}

// spanOf replays the strategy from the closest checkpoint to index.
func (v *View) spanOf(index int) (Span, error) {
	if index < 0 || index >= v.count {
		return Span{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, v.count)
	}
	mark, ok := v.marks.At(index)
	if !ok {
		return OffsetOfIndex(v.strategy, index, v.count, v.sizeAt)
	}
	cur := mark.Cursor
	for i := mark.Index; i < index; i++ {
		cur = v.strategy.Next(cur, v.sizeAt(i))
	}
	return v.strategy.Span(cur, v.sizeAt(index)), nil
}

func (v *View) clampOffset(off Vec2) Vec2 {
	viewport := v.container.ViewportSize()
	content := v.container.ContentFrame()
	off.X = math.Min(math.Max(off.X, 0), math.Max(content.Width-viewport.Width, 0))
	off.Y = math.Min(math.Max(off.Y, 0), math.Max(content.Height-viewport.Height, 0))
	return off
}
