package obelizmo

import (
	"cmp"
	"io"
)

// Bookends maps a mark kind to the byte sequences emitted at the opening
// and closing obelus of a mark of that kind. A bookend table must be
// total: it is called for every kind the store contains.
type Bookends[K cmp.Ordered] func(kind K) (open, close string)

// WriteTree renders the marked text to w, emitting every mark with
// exactly one open and one close bookend. If the marks nest properly the
// output is a well-nested tag sequence; for marks that straddle one
// another the opens and closes still balance, but the caller is
// responsible for producing nesting marks when the output format requires
// nesting. The cost is O(n log n) in the number of marks.
//
// If w implements EncodedWriter, literal text is routed through
// WriteEncoded; bookends are written raw either way.
func (ms *MarkedString[K]) WriteTree(w io.Writer, bookends Bookends[K]) error {
	if bookends == nil {
		return ErrIllegalArguments
	}
	in := ms.Queue()
	out := NewOpenSet[K]()
	body := bodyWriter(w)
	c := 0
	for {
		m, mok := in.Peek()
		o, ook := out.Peek()
		if !mok && !ook {
			break
		}
		// The next obelus is a close when the nearest open mark ends at or
		// before the next mark begins, and an open otherwise.
		if !mok || (ook && o.End() <= m.Offset) {
			pos := int(o.End())
			if pos > c {
				if err := body(ms.text[c:pos]); err != nil {
					return err
				}
				c = pos
			}
			_, cb := bookends(o.Kind)
			if err := writeString(w, cb); err != nil {
				return err
			}
			out.Pop()
		} else {
			pos := int(m.Offset)
			if pos > c {
				if err := body(ms.text[c:pos]); err != nil {
					return err
				}
				c = pos
			}
			ob, _ := bookends(m.Kind)
			if err := writeString(w, ob); err != nil {
				return err
			}
			out.Push(m)
			in.Pop()
		}
	}
	if c < len(ms.text) {
		return body(ms.text[c:])
	}
	return nil
}
