/*
Package term prints marked strings to a terminal, one logical line per
call, with marks rendered as SGR escape sequences. It drives the stream
emission order of package obelizmo while maintaining one style stack per
color class, so that closing an inner color automatically restores the
enclosing color of the same class, and so that styles spanning several
lines are re-announced at the start of each new line. The line-at-a-time
contract lets a caller in a raw-mode terminal reposition the cursor
between lines.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2023–25, the obelizmo authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package term

import (
	"cmp"
	"io"

	"github.com/mnemnion/obelizmo"
	"github.com/mnemnion/obelizmo/sgr"
)

// Colors maps a mark kind to its terminal color. A color table must be
// total: it is called for every kind the store contains.
type Colors[K cmp.Ordered] func(kind K) sgr.Color

// Printer emits a marked string line by line. It clones the mark store
// when created, reset, or re-bound with NewText; marks added to the store
// afterwards are not seen until the next Reset.
type Printer[K cmp.Ordered] struct {
	ms     *obelizmo.MarkedString[K]
	colors Colors[K]
	in     obelizmo.MarkQueue[K]
	out    *obelizmo.OpenSet[K]
	stacks [sgr.StyleClass][]obelizmo.Mark[K]
	m      obelizmo.Mark[K]
	mok    bool
	cur    int
	state  pstate
	reopen bool
}

type pstate uint8

const (
	pInitial pstate = iota
	pWriteThis
	pThisMark
	pWriteNext
	pNextMark
	pLast
	pFinal
)

// NewPrinter creates a printer over ms. The color table is retained for
// the life of the printer.
func NewPrinter[K cmp.Ordered](ms *obelizmo.MarkedString[K], colors Colors[K]) *Printer[K] {
	p := &Printer[K]{colors: colors}
	p.NewText(ms)
	return p
}

// NewText rebinds the printer to another marked string and resets it.
// Stack capacities are retained.
func (p *Printer[K]) NewText(ms *obelizmo.MarkedString[K]) {
	p.ms = ms
	p.Reset()
}

// Reset rewinds the printer and re-clones the mark store, picking up
// marks added since the last clone.
func (p *Printer[K]) Reset() {
	p.in = p.ms.Queue()
	p.out = obelizmo.NewOpenSet[K]()
	for i := range p.stacks {
		p.stacks[i] = p.stacks[i][:0]
	}
	p.cur = 0
	p.state = pInitial
	p.reopen = false
}

// PrintLine emits the next logical line of the marked text to w. A
// logical line ends at "\n", "\r" or "\r\n"; the terminator is consumed
// but never written. PrintLine returns (true, nil) while more lines may
// follow, (false, nil) on the call that completes the last line, and
// (false, io.EOF) on every call thereafter. Styles spanning a line break
// stay on their stacks and are re-announced before the first literal
// byte of the following line.
func (p *Printer[K]) PrintLine(w io.Writer) (more bool, err error) {
	for {
		switch p.state {
		case pInitial:
			p.m, p.mok = p.in.Pop()
			p.state = p.next()
		case pWriteThis:
			stopped, err := p.emit(w, int(p.m.Offset))
			if err != nil {
				return false, err
			}
			if stopped {
				return true, nil
			}
			p.state = pThisMark
		case pThisMark:
			col := p.colors(p.m.Kind)
			if err := p.announce(w); err != nil {
				return false, err
			}
			if _, err := w.Write(col.On()); err != nil {
				return false, err
			}
			if cls := col.Class(); cls < sgr.StyleClass {
				p.stacks[cls] = append(p.stacks[cls], p.m)
			}
			p.out.Push(p.m)
			p.m, p.mok = p.in.Pop()
			p.state = p.next()
		case pWriteNext:
			o, _ := p.out.Peek()
			stopped, err := p.emit(w, int(o.End()))
			if err != nil {
				return false, err
			}
			if stopped {
				return true, nil
			}
			p.state = pNextMark
		case pNextMark:
			o, _ := p.out.Pop()
			col := p.colors(o.Kind)
			if _, err := w.Write(col.Off()); err != nil {
				return false, err
			}
			if cls := col.Class(); cls < sgr.StyleClass {
				p.unstack(cls, o)
				if n := len(p.stacks[cls]); n > 0 {
					top := p.stacks[cls][n-1]
					if _, err := w.Write(p.colors(top.Kind).On()); err != nil {
						return false, err
					}
				}
			}
			p.state = p.next()
		case pLast:
			stopped, err := p.emit(w, p.ms.Len())
			if err != nil {
				return false, err
			}
			if stopped {
				return true, nil
			}
			p.state = pFinal
			return false, nil
		default: // pFinal
			return false, io.EOF
		}
	}
}

// next selects the state handling the nearest obelus, or the epilogue.
func (p *Printer[K]) next() pstate {
	if p.mok {
		if o, ok := p.out.Peek(); ok && o.End() <= p.m.Offset {
			return pWriteNext
		}
		return pWriteThis
	}
	if !p.out.Empty() {
		return pWriteNext
	}
	return pLast
}

// emit writes literal text from the cursor up to target, stopping early
// if a line terminator intervenes. It reports whether a terminator was
// consumed; the terminator itself is never written.
func (p *Printer[K]) emit(w io.Writer, target int) (stopped bool, err error) {
	if target <= p.cur {
		return false, nil
	}
	text := p.ms.Text()
	seg := text[p.cur:target]
	end := len(seg)
	stop := -1
	for i := 0; i < end; i++ {
		if seg[i] == '\n' || seg[i] == '\r' {
			stop = i
			break
		}
	}
	if stop < 0 {
		if err := p.write(w, seg); err != nil {
			return false, err
		}
		p.cur = target
		return false, nil
	}
	if err := p.write(w, seg[:stop]); err != nil {
		return false, err
	}
	p.cur += stop + 1
	if seg[stop] == '\r' && p.cur < len(text) && text[p.cur] == '\n' {
		p.cur++
	}
	p.reopen = true
	return true, nil
}

// write emits literal bytes, re-announcing the active stack tops first
// when a new line is starting.
func (p *Printer[K]) write(w io.Writer, s string) error {
	if len(s) == 0 {
		return nil
	}
	if err := p.announce(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// announce re-emits the top of every non-empty class stack. Called ahead
// of the first output on a fresh line.
func (p *Printer[K]) announce(w io.Writer) error {
	if !p.reopen {
		return nil
	}
	p.reopen = false
	for cls := range p.stacks {
		if n := len(p.stacks[cls]); n > 0 {
			top := p.stacks[cls][n-1]
			if _, err := w.Write(p.colors(top.Kind).On()); err != nil {
				return err
			}
		}
	}
	return nil
}

// unstack removes mark o from a class stack, searching from the top: the
// close order guarantees an inner mark of a class sits above its
// enclosing marks of the same class.
func (p *Printer[K]) unstack(cls sgr.Class, o obelizmo.Mark[K]) {
	stack := p.stacks[cls]
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == o {
			p.stacks[cls] = append(stack[:i], stack[i+1:]...)
			return
		}
	}
}
