package tableview

import (
	"fmt"
	"math"
	"sort"
)

// Checkpoint is a cursor at which a scan may start: index is the first item
// of a row and cursor is the scan position just before it.
type Checkpoint struct {
	Index  int
	Cursor Cursor
}

// Checkpoints are recorded in index order; their Main offsets never decrease.
type Checkpoints []Checkpoint

// Seek returns the last checkpoint whose leading edge is at or before near.
// The boolean is false when there are none.
func (cs Checkpoints) Seek(near float64) (Checkpoint, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Cursor.Main > near })
	if i == 0 {
		if len(cs) == 0 {
			return Checkpoint{}, false
		}
		return cs[0], true
	}
	return cs[i-1], true
}

// At returns the last checkpoint at or before index.
func (cs Checkpoints) At(index int) (Checkpoint, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Index > index })
	if i == 0 {
		return Checkpoint{}, false
	}
	return cs[i-1], true
}

// Measure replays the strategy over all items. It returns the main-axis
// extent of the content (padding included) and a checkpoint per row.
func Measure(s Strategy, count int, sizeAt func(int) Size) (float64, Checkpoints) {
	cur := s.Start()
	far := cur.Main
	marks := make(Checkpoints, 0, count)
	for i := 0; i < count; i++ {
		size := sizeAt(i)
		if mark, ok := s.RowStart(cur, size); ok {
			marks = append(marks, Checkpoint{Index: i, Cursor: mark})
		}
		far = math.Max(far, s.Span(cur, size).Far)
		cur = s.Next(cur, size)
	}
	return far + s.Trail(), marks
}

// TotalExtent is the main-axis content extent for count items, never less
// than minExtent.
func TotalExtent(s Strategy, count int, sizeAt func(int) Size, minExtent float64) float64 {
	extent, _ := Measure(s, count, sizeAt)
	return math.Max(extent, minExtent)
}

// OffsetOfIndex replays the strategy up to index and returns the slot of that
// item in offset space.
func OffsetOfIndex(s Strategy, index, count int, sizeAt func(int) Size) (Span, error) {
	if index < 0 || index >= count {
		return Span{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, count)
	}
	cur := s.Start()
	for i := 0; i < index; i++ {
		cur = s.Next(cur, sizeAt(i))
	}
	return s.Span(cur, sizeAt(index)), nil
}
