package tableview

// Element is a host visual element the engine positions.
type Element interface {
	Frame() Frame
	SetFrame(Frame)
}

// Template is a registered source element. The template element itself is
// handed out the first time it is needed, as long as it is not attached
// anywhere; later cells are clones.
type Template interface {
	Element
	Clone() Element
}

// Poolable elements are reset when their cell is recycled.
type Poolable interface {
	Reset()
}

// Activator elements are told when their cell is about to be used.
type Activator interface {
	Activate()
}

// Attacher elements report whether they currently have a parent.
type Attacher interface {
	Attached() bool
}

// Cell binds one element to one data index while it is live.
type Cell struct {
	identifier string
	index      int
	active     bool
	elem       Element
	owner      *Pool

	// slot the cell was placed in, and the size it was placed with
	span Span
	size Size

	// OnUse runs when the cell is taken from the pool, before it is
	// configured. OnReuse runs when it is recycled.
	OnUse   func(*Cell)
	OnReuse func(*Cell)
}

// Identifier returns the template identifier the cell was created from.
func (c *Cell) Identifier() string {
	return c.identifier
}

// Index returns the bound data index, or -1 when the cell is pooled.
func (c *Cell) Index() int {
	if !c.active {
		return -1
	}
	return c.index
}

// Active reports whether the cell is live.
func (c *Cell) Active() bool {
	return c.active
}

// Element returns the host element.
func (c *Cell) Element() Element {
	return c.elem
}

// NotifySizeChanged tells the view's size-change subscribers that the cell's
// content now wants a different size. It does nothing for pooled cells. The
// view does not reflow on its own.
func (c *Cell) NotifySizeChanged(size Size) {
	if !c.active || c.owner == nil || c.owner.notify == nil {
		return
	}
	c.owner.notify(SizeChangedEvent{Cell: c, Size: size})
}

// SizeChangedEvent is emitted by Cell.NotifySizeChanged.
type SizeChangedEvent struct {
	Cell *Cell
	Size Size
}
