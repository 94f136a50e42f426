package state

import (
	"fmt"

	"github.com/atomicstack/hn-tui/internal/hn"
)

// OutOfRangeError reports a focus request outside the list bounds.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("focus index %d out of range [0,%d)", e.Index, e.Len)
}

// ListView owns an ordered set of stories and the focused index. Focus is -1
// only while the list is empty.
type ListView struct {
	items  []hn.Item
	focus  int
	offset int
}

// NewListView copies items and focuses the first entry.
func NewListView(items []hn.Item) *ListView {
	v := &ListView{items: CloneItems(items), focus: -1}
	if len(v.items) > 0 {
		v.focus = 0
	}
	return v
}

// Len returns the number of items.
func (v *ListView) Len() int {
	return len(v.items)
}

// Items returns a copy of the items in display order.
func (v *ListView) Items() []hn.Item {
	return CloneItems(v.items)
}

// Item returns the item at index.
func (v *ListView) Item(index int) (hn.Item, bool) {
	if index < 0 || index >= len(v.items) {
		return hn.Item{}, false
	}
	return v.items[index], true
}

// FocusIndex returns the focused index, or -1 for an empty list.
func (v *ListView) FocusIndex() int {
	return v.focus
}

// Focused returns a copy of the focused item.
func (v *ListView) Focused() (hn.Item, bool) {
	return v.Item(v.focus)
}

// SetFocus moves focus to index. Out-of-range requests leave focus unchanged.
func (v *ListView) SetFocus(index int) error {
	if index < 0 || index >= len(v.items) {
		return &OutOfRangeError{Index: index, Len: len(v.items)}
	}
	v.focus = index
	return nil
}

// Offset is the index of the first visible item.
func (v *ListView) Offset() int {
	return v.offset
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []hn.Item) []hn.Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]hn.Item, len(items))
	copy(dup, items)
	return dup
}
