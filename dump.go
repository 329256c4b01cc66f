package obelizmo

import (
	"fmt"
	"io"
)

// Dump writes the store's marks to w in application order, one per line
// (for debugging purposes).
func (ms *MarkedString[K]) Dump(w io.Writer) {
	q := ms.Queue()
	for {
		m, ok := q.Pop()
		if !ok {
			break
		}
		snippet := ""
		if int(m.End()) <= len(ms.text) {
			snippet = ms.text[m.Offset:m.End()]
		}
		fmt.Fprintf(w, "%v @%d+%d “%s”\n", m.Kind, m.Offset, m.Len, snippet)
	}
}
