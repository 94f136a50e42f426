package state

// MoveFocusUp moves focus to the previous item, wrapping to the last one.
func (v *ListView) MoveFocusUp() bool {
	n := len(v.items)
	if n == 0 {
		return false
	}
	if v.focus > 0 {
		v.focus--
	} else {
		v.focus = n - 1
	}
	return n > 1
}

// MoveFocusDown moves focus to the next item, wrapping to the first one.
func (v *ListView) MoveFocusDown() bool {
	n := len(v.items)
	if n == 0 {
		return false
	}
	if v.focus < n-1 {
		v.focus++
	} else {
		v.focus = 0
	}
	return n > 1
}

// MoveFocusHome moves focus to the first item.
func (v *ListView) MoveFocusHome() bool {
	if len(v.items) == 0 {
		return false
	}
	old := v.focus
	v.focus = 0
	return old != v.focus
}

// MoveFocusEnd moves focus to the last item.
func (v *ListView) MoveFocusEnd() bool {
	n := len(v.items)
	if n == 0 {
		return false
	}
	old := v.focus
	v.focus = n - 1
	return old != v.focus
}

// MoveFocusPageUp moves focus up by the given page size.
func (v *ListView) MoveFocusPageUp(maxVisible int) bool {
	return v.moveFocusBy(-v.pageSize(maxVisible))
}

// MoveFocusPageDown moves focus down by the given page size.
func (v *ListView) MoveFocusPageDown(maxVisible int) bool {
	return v.moveFocusBy(v.pageSize(maxVisible))
}

func (v *ListView) moveFocusBy(delta int) bool {
	if len(v.items) == 0 {
		return false
	}
	old := v.focus
	v.focus += delta
	if v.focus < 0 {
		v.focus = 0
	}
	if v.focus >= len(v.items) {
		v.focus = len(v.items) - 1
	}
	return v.focus != old
}

func (v *ListView) pageSize(maxVisible int) int {
	total := len(v.items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureFocusVisible adjusts the viewport offset so the focused item stays visible.
func (v *ListView) EnsureFocusVisible(maxVisible int) {
	if len(v.items) == 0 {
		v.offset = 0
		return
	}
	if maxVisible <= 0 {
		v.offset = 0
		return
	}
	maxOffset := len(v.items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.offset > maxOffset {
		v.offset = maxOffset
	}
	if v.offset < 0 {
		v.offset = 0
	}
	if v.focus < v.offset {
		v.offset = v.focus
	}
	upper := v.offset + maxVisible - 1
	if v.focus > upper {
		v.offset = v.focus - maxVisible + 1
		if v.offset < 0 {
			v.offset = 0
		}
		if v.offset > maxOffset {
			v.offset = maxOffset
		}
	}
}
