package obelizmo

import "cmp"

// Mark attaches a typed annotation to a half-open byte range of a text.
// Marks are value types; copying one is cheap and renders never share
// state through them.
type Mark[K cmp.Ordered] struct {
	Kind   K
	Offset uint32
	Len    uint32
}

// End returns the first byte position past the marked range.
func (m Mark[K]) End() uint32 {
	return m.Offset + m.Len
}

// applyLess orders marks for application: ascending offset, longer marks
// first at equal offset, ascending kind as the final tie-break. Same-offset
// marks therefore pop outer-before-inner.
func applyLess[K cmp.Ordered](a, b Mark[K]) bool {
	if a.Offset != b.Offset {
		return a.Offset < b.Offset
	}
	if a.Len != b.Len {
		return a.Len > b.Len
	}
	return a.Kind < b.Kind
}

// closeLess orders open marks for closing: ascending end, shorter marks
// first at equal end, descending kind. The inverted tie-breaks mirror
// applyLess, so inner marks always close before the spans containing them.
func closeLess[K cmp.Ordered](a, b Mark[K]) bool {
	ae, be := a.End(), b.End()
	if ae != be {
		return ae < be
	}
	if a.Len != b.Len {
		return a.Len < b.Len
	}
	return a.Kind > b.Kind
}

// markHeap is a binary min-heap of marks under an arbitrary order.
type markHeap[K cmp.Ordered] struct {
	less  func(a, b Mark[K]) bool
	marks []Mark[K]
}

func newMarkHeap[K cmp.Ordered](less func(a, b Mark[K]) bool, capacity int) markHeap[K] {
	h := markHeap[K]{less: less}
	if capacity > 0 {
		h.marks = make([]Mark[K], 0, capacity)
	}
	return h
}

func (h *markHeap[K]) len() int {
	return len(h.marks)
}

func (h *markHeap[K]) push(m Mark[K]) {
	h.marks = append(h.marks, m)
	h.siftUp(len(h.marks) - 1)
}

func (h *markHeap[K]) peek() (Mark[K], bool) {
	if len(h.marks) == 0 {
		var none Mark[K]
		return none, false
	}
	return h.marks[0], true
}

func (h *markHeap[K]) pop() (Mark[K], bool) {
	if len(h.marks) == 0 {
		var none Mark[K]
		return none, false
	}
	top := h.marks[0]
	last := len(h.marks) - 1
	h.marks[0] = h.marks[last]
	h.marks = h.marks[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return top, true
}

// clone copies the backing array. Marks are value types, so a flat copy is
// a complete copy.
func (h *markHeap[K]) clone() markHeap[K] {
	c := markHeap[K]{less: h.less}
	if len(h.marks) > 0 {
		c.marks = make([]Mark[K], len(h.marks))
		copy(c.marks, h.marks)
	}
	return c
}

func (h *markHeap[K]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.marks[i], h.marks[parent]) {
			break
		}
		h.marks[i], h.marks[parent] = h.marks[parent], h.marks[i]
		i = parent
	}
}

func (h *markHeap[K]) siftDown(i int) {
	n := len(h.marks)
	for {
		left, right := 2*i+1, 2*i+2
		least := i
		if left < n && h.less(h.marks[left], h.marks[least]) {
			least = left
		}
		if right < n && h.less(h.marks[right], h.marks[least]) {
			least = right
		}
		if least == i {
			return
		}
		h.marks[i], h.marks[least] = h.marks[least], h.marks[i]
		i = least
	}
}

// --- Queues ----------------------------------------------------------------

// MarkQueue is a snapshot of a marked string's store, ordered for
// application: the mark popped next is the mark whose open bookend comes
// next. Obtain one from MarkedString.Queue; popping it never affects the
// store it was cloned from.
type MarkQueue[K cmp.Ordered] struct {
	h markHeap[K]
}

// Len returns the number of marks remaining in the queue.
func (q *MarkQueue[K]) Len() int {
	return q.h.len()
}

// Empty is true iff no marks remain.
func (q *MarkQueue[K]) Empty() bool {
	return q.h.len() == 0
}

// Peek returns the next mark to apply without removing it.
func (q *MarkQueue[K]) Peek() (Mark[K], bool) {
	return q.h.peek()
}

// Pop removes and returns the next mark to apply.
func (q *MarkQueue[K]) Pop() (Mark[K], bool) {
	return q.h.pop()
}

// OpenSet holds the marks which a sweep has opened but not yet closed,
// ordered for closing: the mark popped next is the mark whose close
// bookend comes next.
type OpenSet[K cmp.Ordered] struct {
	h markHeap[K]
}

// NewOpenSet creates an empty open set.
func NewOpenSet[K cmp.Ordered]() *OpenSet[K] {
	return &OpenSet[K]{h: newMarkHeap[K](closeLess[K], 0)}
}

// Len returns the number of open marks.
func (s *OpenSet[K]) Len() int {
	return s.h.len()
}

// Empty is true iff no marks are open.
func (s *OpenSet[K]) Empty() bool {
	return s.h.len() == 0
}

// Push adds a mark to the open set.
func (s *OpenSet[K]) Push(m Mark[K]) {
	s.h.push(m)
}

// Peek returns the next mark to close without removing it.
func (s *OpenSet[K]) Peek() (Mark[K], bool) {
	return s.h.peek()
}

// Pop removes and returns the next mark to close.
func (s *OpenSet[K]) Pop() (Mark[K], bool) {
	return s.h.pop()
}
