package tableview

import "fmt"

// DefaultIdentifier is used when a template is registered without one.
const DefaultIdentifier = "default"

type registration struct {
	template Template
	used     bool // template element already handed out
}

// Pool keeps inactive cells per identifier, most recently recycled on top.
// A pool belongs to exactly one view.
type Pool struct {
	templates map[string]*registration
	free      map[string][]*Cell
	created   map[string]int

	detach func(Element)
	notify func(SizeChangedEvent)
}

// NewPool creates an empty pool. detach is called with the element of every
// recycled cell; it may be nil.
func NewPool(detach func(Element)) *Pool {
	return &Pool{
		templates: make(map[string]*registration),
		free:      make(map[string][]*Cell),
		created:   make(map[string]int),
		detach:    detach,
	}
}

// Register associates a template with identifier. The last registration for
// an identifier wins; cells already pooled under it stay reusable.
func (p *Pool) Register(t Template, identifier string) {
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	p.templates[identifier] = &registration{template: t}
}

// Registered reports whether identifier has a template.
func (p *Pool) Registered(identifier string) bool {
	_, ok := p.templates[identifier]
	return ok
}

// Dequeue returns a cell for identifier: the most recently recycled one if
// any, otherwise a new one from the registered template.
func (p *Pool) Dequeue(identifier string) (*Cell, error) {
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	var c *Cell
	if stack := p.free[identifier]; len(stack) > 0 {
		c = stack[len(stack)-1]
		stack[len(stack)-1] = nil
		p.free[identifier] = stack[:len(stack)-1]
	} else {
		reg, ok := p.templates[identifier]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnregistered, identifier)
		}
		c = &Cell{identifier: identifier, owner: p, elem: p.instantiate(reg)}
		p.created[identifier]++
	}

	c.active = true
	if a, ok := c.elem.(Activator); ok {
		a.Activate()
	}
	if c.OnUse != nil {
		c.OnUse(c)
	}
	return c, nil
}

func (p *Pool) instantiate(reg *registration) Element {
	if !reg.used {
		reg.used = true
		if a, ok := reg.template.(Attacher); !ok || !a.Attached() {
			return reg.template
		}
	}
	return reg.template.Clone()
}

// Recycle resets c, detaches its element and pushes it onto its
// identifier's stack. Recycling a cell that is not live is refused.
func (p *Pool) Recycle(c *Cell) error {
	if c == nil {
		return fmt.Errorf("%w: nil cell", ErrNotLive)
	}
	if !c.active || c.owner != p {
		return fmt.Errorf("%w: %q index %d", ErrNotLive, c.identifier, c.index)
	}
	if r, ok := c.elem.(Poolable); ok {
		r.Reset()
	}
	if c.OnReuse != nil {
		c.OnReuse(c)
	}
	if p.detach != nil {
		p.detach(c.elem)
	}
	c.active = false
	c.index = -1
	c.span = Span{}
	p.free[c.identifier] = append(p.free[c.identifier], c)
	return nil
}

// Pooled returns how many inactive cells identifier has.
func (p *Pool) Pooled(identifier string) int {
	return len(p.free[identifier])
}

// Created returns how many cells were ever instantiated for identifier.
func (p *Pool) Created(identifier string) int {
	return p.created[identifier]
}
