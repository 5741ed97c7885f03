package tableview

import (
	"fmt"
	"log/slog"
	"sort"
)

// Layout runs one fill/recycle pass if the visible region moved past the
// configured threshold since the last pass. Calling it before the first
// Reload does nothing. A Layout requested while a pass is running is
// deferred until that pass returns.
func (v *View) Layout() error {
	if v.busy {
		v.pending = true
		return nil
	}
	if v.strategy == nil || v.container == nil {
		return nil
	}

	v.busy = true
	defer func() { v.busy = false }()

	for {
		v.pending = false
		if err := v.pass(); err != nil {
			return err
		}
		if !v.pending {
			return nil
		}
	}
}

func (v *View) pass() error {
	frame := v.container.ContentFrame()
	region := VisibleRegion(v.container.ViewportSize(), v.container.ScrollOffset(), frame)
	if !RegionMoved(v.lastRegion, region, v.cfg.MinMove) {
		v.last = PassStats{Skipped: true}
		return nil
	}
	v.lastRegion = &region

	content := ContentRect(frame)
	target := v.strategy.Project(content, region)

	stats := PassStats{Recycled: v.recycle(target)}
	scanned, filled, err := v.fill(content, target)
	stats.Scanned, stats.Filled = scanned, filled
	v.last = stats

	v.logger.Debug("tableview layout",
		slog.Float64("near", target.Near),
		slog.Float64("far", target.Far),
		slog.Int("recycled", stats.Recycled),
		slog.Int("scanned", stats.Scanned),
		slog.Int("filled", stats.Filled),
		slog.Int("live", len(v.live)))
	return err
}

// recycle returns every live cell whose slot lies outside target to the pool.
func (v *View) recycle(target Span) int {
	n := 0
	for i, c := range v.live {
		if !v.strategy.Outside(c.span, target) {
			continue
		}
		delete(v.live, i)
		if err := v.pool.Recycle(c); err != nil {
			v.invariant("recycle live cell", err, i)
			continue
		}
		n++
	}
	return n
}

// fill walks the items from the closest checkpoint before target and binds a
// cell to every unrepresented index that overlaps it.
func (v *View) fill(content Rect, target Span) (scanned, filled int, err error) {
	mark, ok := v.marks.Seek(target.Near)
	if !ok {
		return 0, 0, nil
	}
	cur := mark.Cursor
	for i := mark.Index; i < v.count; i++ {
		size := v.sizeAt(i)
		c, live := v.live[i]
		if live {
			size = c.size
		}
		span := v.strategy.Span(cur, size)
		cur = v.strategy.Next(cur, size)
		scanned++

		if !live && !v.strategy.Outside(span, target) {
			if err := v.bind(i, span, size, content); err != nil {
				return scanned, filled, err
			}
			filled++
		}
		if v.strategy.Exhausted(cur, target) {
			break
		}
	}
	return scanned, filled, nil
}

func (v *View) bind(index int, span Span, size Size, content Rect) error {
	id := v.data.IdentifierAt(index)
	c, err := v.pool.Dequeue(id)
	if err != nil {
		return fmt.Errorf("bind index %d: %w", index, err)
	}
	if prev, dup := v.live[index]; dup {
		v.invariant("bind", ErrDuplicateIndex, index)
		_ = v.pool.Recycle(prev)
	}
	c.index, c.span, c.size = index, span, size
	v.data.ConfigureCell(c, index)
	c.elem.SetFrame(v.strategy.Place(c.elem.Frame(), content, span))
	v.container.Attach(c.elem)
	v.live[index] = c
	return nil
}

func (v *View) invariant(op string, err error, index int) {
	v.logger.Error("tableview invariant violated",
		slog.String("op", op),
		slog.Int("index", index),
		slog.Any("err", err))
	debugAssert(false, "%s index %d: %v", op, index, err)
}

func (v *View) recycleAll() {
	for i, c := range v.live {
		delete(v.live, i)
		if err := v.pool.Recycle(c); err != nil {
			v.invariant("recycle on reload", err, i)
		}
	}
}

// FixPositions re-measures every item and moves the live cells to their new
// slots without recycling or filling. Use it after item sizes changed; the
// next Layout then runs unconditionally.
func (v *View) FixPositions() error {
	if v.busy {
		return ErrReentrant
	}
	if v.strategy == nil || v.container == nil {
		return nil
	}
	v.refresh()
	return nil
}

// refresh resolves the strategy against the current viewport, reapplies the
// content extent and re-places every live cell.
func (v *View) refresh() {
	viewport := v.container.ViewportSize()
	cross := viewport.Width
	if v.cfg.Orientation == Horizontal {
		cross = viewport.Height
	}
	v.strategy = NewStrategy(v.cfg, cross)
	v.applyExtent()
	v.lastRegion = nil

	content := ContentRect(v.container.ContentFrame())
	for i, c := range v.live {
		span, err := v.spanOf(i)
		if err != nil {
			v.invariant("fix position", err, i)
			continue
		}
		c.span, c.size = span, v.sizeAt(i)
		c.elem.SetFrame(v.strategy.Place(c.elem.Frame(), content, span))
	}
}

// DeleteIndexes removes items from the view. Live cells at those indexes are
// recycled, later cells move down, and the view is laid out again. Indexes
// refer to positions before the deletion.
func (v *View) DeleteIndexes(indexes ...int) error {
	if v.busy {
		return ErrReentrant
	}
	del, err := v.uniqueIndexes(indexes, v.count)
	if err != nil {
		return err
	}
	if len(del) == 0 {
		return nil
	}

	live := make(map[int]*Cell, len(v.live))
	for i, c := range v.live {
		// number of deleted indexes below i
		below := sort.SearchInts(del, i)
		if below < len(del) && del[below] == i {
			if err := v.pool.Recycle(c); err != nil {
				v.invariant("delete", err, i)
			}
			continue
		}
		c.index = i - below
		live[c.index] = c
	}
	v.live = live
	v.count -= len(del)
	if v.strategy == nil {
		return nil
	}
	v.refresh()
	return v.Layout()
}

// InsertIndexes inserts items into the view. Indexes refer to positions
// after the insertion and must be distinct; live cells at or after each of
// them move up and the new items are bound by the following layout pass.
func (v *View) InsertIndexes(indexes ...int) error {
	if v.busy {
		return ErrReentrant
	}
	ins, err := v.uniqueIndexes(indexes, v.count+len(indexes))
	if err != nil {
		return err
	}
	if len(ins) != len(indexes) {
		return fmt.Errorf("%w: duplicate insert index in %v", ErrIndexOutOfRange, indexes)
	}
	if len(ins) == 0 {
		return nil
	}

	cells := make([]*Cell, 0, len(v.live))
	for _, c := range v.live {
		cells = append(cells, c)
	}
	for _, at := range ins {
		for _, c := range cells {
			if c.index >= at {
				c.index++
			}
		}
	}
	v.live = make(map[int]*Cell, len(cells))
	for _, c := range cells {
		v.live[c.index] = c
	}
	v.count += len(ins)
	if v.strategy == nil {
		return nil
	}
	v.refresh()
	return v.Layout()
}

// uniqueIndexes sorts and dedups indexes, rejecting any outside [0, limit).
func (v *View) uniqueIndexes(indexes []int, limit int) ([]int, error) {
	out := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= limit {
			return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, limit)
		}
		out = append(out, i)
	}
	sort.Ints(out)
	n := 0
	for i, x := range out {
		if i > 0 && x == out[n-1] {
			continue
		}
		out[n] = x
		n++
	}
	return out[:n], nil
}
