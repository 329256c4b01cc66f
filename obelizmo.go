package obelizmo

import (
	"cmp"
	"math"
	"strings"
)

// MarkedString pairs an immutable text with a store of marks. The text is
// borrowed, never copied; the zero number of marks is a valid state and
// renders as the plain text.
//
// The store accepts duplicate and overlapping marks and performs no
// deduplication. Insertion order is irrelevant: the rendered output for a
// given multiset of marks is byte-identical however the marks arrived,
// because emission order is established by the queues at render time.
type MarkedString[K cmp.Ordered] struct {
	text  string
	marks markHeap[K]
}

// NewMarkedString creates a marked string over text, with no marks yet.
func NewMarkedString[K cmp.Ordered](text string) *MarkedString[K] {
	return &MarkedString[K]{
		text:  text,
		marks: newMarkHeap[K](applyLess[K], 0),
	}
}

// NewMarkedStringWithCapacity creates a marked string with room for
// capacity marks before the store reallocates.
func NewMarkedStringWithCapacity[K cmp.Ordered](text string, capacity int) *MarkedString[K] {
	return &MarkedString[K]{
		text:  text,
		marks: newMarkHeap[K](applyLess[K], capacity),
	}
}

// Text returns the underlying text.
func (ms *MarkedString[K]) Text() string {
	return ms.text
}

// Len returns the length of the underlying text in bytes.
func (ms *MarkedString[K]) Len() int {
	return len(ms.text)
}

// MarkCount returns the number of marks in the store.
func (ms *MarkedString[K]) MarkCount() int {
	return ms.marks.len()
}

// Queue clones the mark store into an application-ordered queue. The
// sweep engines and the terminal printer consume such clones; the store
// itself is untouched by rendering.
func (ms *MarkedString[K]) Queue() MarkQueue[K] {
	return MarkQueue[K]{h: ms.marks.clone()}
}

// --- Inserting marks -------------------------------------------------------

// MarkSlice marks the half-open region [start, end) with kind. It returns
// ErrInvalidRegion if the boundaries are reversed or exceed the text.
func (ms *MarkedString[K]) MarkSlice(kind K, start, end uint32) error {
	if start > end || uint64(end) > uint64(len(ms.text)) {
		T().Errorf("obelizmo: invalid region [%d, %d) for text of length %d", start, end, len(ms.text))
		return ErrInvalidRegion
	}
	ms.marks.push(Mark[K]{Kind: kind, Offset: start, Len: end - start})
	return nil
}

// MarkFrom marks length bytes starting at offset with kind. It returns
// ErrInvalidRegion if the region exceeds the text or the end position
// overflows uint32.
func (ms *MarkedString[K]) MarkFrom(kind K, offset, length uint32) error {
	if length > math.MaxUint32-offset {
		return ErrInvalidRegion
	}
	return ms.MarkSlice(kind, offset, offset+length)
}

// --- Substring helpers -----------------------------------------------------

// FindAndMark marks the first occurrence of needle in the text with kind
// and returns its byte offset. ok is false, and nothing is marked, if
// needle does not occur.
func (ms *MarkedString[K]) FindAndMark(kind K, needle string) (index int, ok bool) {
	return ms.FindAndMarkPos(kind, needle, 0)
}

// FindAndMarkPos marks the first occurrence of needle at or after byte
// position from.
func (ms *MarkedString[K]) FindAndMarkPos(kind K, needle string, from int) (index int, ok bool) {
	if from < 0 || from > len(ms.text) {
		return 0, false
	}
	i := strings.Index(ms.text[from:], needle)
	if i < 0 {
		return 0, false
	}
	return ms.markHit(kind, from+i, len(needle))
}

// FindAndMarkLast marks the last occurrence of needle in the text.
func (ms *MarkedString[K]) FindAndMarkLast(kind K, needle string) (index int, ok bool) {
	i := strings.LastIndex(ms.text, needle)
	if i < 0 {
		return 0, false
	}
	return ms.markHit(kind, i, len(needle))
}

// --- Regex helpers ---------------------------------------------------------

// MatchAndMark marks the first match of re in the text with kind and
// returns the match's byte offset.
func (ms *MarkedString[K]) MatchAndMark(kind K, re Regexer) (index int, ok bool) {
	start, end, ok := re.Match(ms.text)
	if !ok {
		return 0, false
	}
	return ms.markHit(kind, start, end-start)
}

// MatchAndMarkPos marks the first match of re at or after byte position
// from.
func (ms *MarkedString[K]) MatchAndMarkPos(kind K, re Regexer, from int) (index int, ok bool) {
	if from < 0 || from > len(ms.text) {
		return 0, false
	}
	start, end, ok := re.MatchPos(from, ms.text)
	if !ok {
		return 0, false
	}
	return ms.markHit(kind, start, end-start)
}

// MatchAndMarkAll marks every match of re in the text with kind. It
// reports whether at least one match was marked.
func (ms *MarkedString[K]) MatchAndMarkAll(kind K, re Regexer) bool {
	any := false
	for span := range re.Iterate(ms.text) {
		if _, ok := ms.markHit(kind, span[0], span[1]-span[0]); ok {
			any = true
		}
	}
	return any
}

// markHit inserts a mark for a search hit. Hits are in range by
// construction, so the range-insertion path cannot fail here.
func (ms *MarkedString[K]) markHit(kind K, start, length int) (int, bool) {
	if err := ms.MarkSlice(kind, uint32(start), uint32(start+length)); err != nil {
		return 0, false
	}
	return start, true
}
