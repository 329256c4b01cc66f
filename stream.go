package obelizmo

import "io"

// WriteStream renders the marked text to w for in-band protocols which
// cannot represent overlap, SGR terminal styling being the canonical
// case. At most one mark is announced at a time: when an inner mark
// opens, the covering outer mark is closed first, and when the inner mark
// closes, the enclosing mark is re-announced. Zero-width transitions are
// skipped: a mark superseded at the same offset defers its open until it
// has visible width, and a re-announcement that would close again before
// any literal text is dropped.
//
// If w implements EncodedWriter, literal text is routed through
// WriteEncoded; bookends are written raw either way.
func (ms *MarkedString[K]) WriteStream(w io.Writer, bookends Bookends[K]) error {
	return ms.writeStream(w, bookends, true)
}

// WriteStreamKeepZeroWidth renders like WriteStream but emits every
// open/close transition, including zero-width ones.
func (ms *MarkedString[K]) WriteStreamKeepZeroWidth(w io.Writer, bookends Bookends[K]) error {
	return ms.writeStream(w, bookends, false)
}

func (ms *MarkedString[K]) writeStream(w io.Writer, bookends Bookends[K], skipZeroWidth bool) error {
	if bookends == nil {
		return ErrIllegalArguments
	}
	in := ms.Queue()
	out := NewOpenSet[K]()
	body := bodyWriter(w)
	open := func(m Mark[K]) error {
		ob, _ := bookends(m.Kind)
		return writeString(w, ob)
	}
	close := func(m Mark[K]) error {
		_, cb := bookends(m.Kind)
		return writeString(w, cb)
	}
	c := 0
	for {
		m, mok := in.Peek()
		o, ook := out.Peek()
		if !mok && !ook {
			break
		}
		if !mok || (ook && o.End() <= m.Offset) {
			// Closing obelus. Emit pending text, close the announced mark,
			// then re-announce the enclosing mark, unless it would close
			// again with no text in between.
			pos := int(o.End())
			if pos > c {
				if err := body(ms.text[c:pos]); err != nil {
					return err
				}
				c = pos
			}
			out.Pop()
			if err := close(o); err != nil {
				return err
			}
			for {
				o2, ok2 := out.Peek()
				if !ok2 {
					break
				}
				if skipZeroWidth && int(o2.End()) == c {
					// Would close at this very position; never re-announced,
					// so popping it emits nothing.
					out.Pop()
					continue
				}
				if err := open(o2); err != nil {
					return err
				}
				break
			}
		} else {
			// Opening obelus.
			pos := int(m.Offset)
			if pos > c {
				if err := body(ms.text[c:pos]); err != nil {
					return err
				}
				c = pos
			}
			if ook && o.End() > m.Offset {
				// The top of the open set covers this point; close it before
				// the inner mark takes over. A mark opening at this very
				// offset was never announced and needs no close.
				if !skipZeroWidth || int(o.Offset) < c {
					if err := close(o); err != nil {
						return err
					}
				}
			}
			in.Pop()
			if skipZeroWidth {
				if m2, ok2 := in.Peek(); ok2 && m2.Offset == m.Offset {
					// A same-offset successor supersedes m immediately;
					// announcing m now would be an open-close pair around
					// nothing. Defer the open until m resurfaces.
					out.Push(m)
					continue
				}
			}
			if err := open(m); err != nil {
				return err
			}
			out.Push(m)
		}
	}
	if c < len(ms.text) {
		return body(ms.text[c:])
	}
	return nil
}
