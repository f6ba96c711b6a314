package sketchpad

// History holds the live shape list and the stack of undone shapes.
type History struct {
	live    []Shape
	deleted []Shape
}

// Commit appends a newly drawn shape. Anything undone before can no longer
// be redone.
func (h *History) Commit(shape Shape) {
	h.live = append(h.live, shape)
	h.deleted = nil
}

// Undo moves the last shape onto the deleted stack. It reports false when
// there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.live) == 0 {
		return false
	}
	last := h.live[len(h.live)-1]
	h.live = h.live[:len(h.live)-1]
	h.deleted = append(h.deleted, last)
	return true
}

// Redo moves the most recently undone shape back onto the live list. It
// reports false when the deleted stack is empty.
func (h *History) Redo() bool {
	if len(h.deleted) == 0 {
		return false
	}
	last := h.deleted[len(h.deleted)-1]
	h.deleted = h.deleted[:len(h.deleted)-1]
	h.live = append(h.live, last)
	return true
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.live = nil
	h.deleted = nil
}

// Replace swaps the live list for an externally supplied value. The deleted
// stack is left alone.
func (h *History) Replace(shapes []Shape) {
	h.live = CloneShapes(shapes)
}

// Shapes returns a deep copy of the live list.
func (h *History) Shapes() []Shape {
	out := CloneShapes(h.live)
	if out == nil {
		return []Shape{}
	}
	return out
}

// Len is the number of live shapes.
func (h *History) Len() int { return len(h.live) }

// Deleted is the number of shapes that can be redone.
func (h *History) Deleted() int { return len(h.deleted) }
