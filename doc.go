/*
Package obelizmo obelizes strings: it attaches typed markup spans to
immutable text and emits the text with those spans rendered in a chosen
output format.

Marks

A mark is a triple (kind, offset, length) covering a half-open byte range
of a text. The kind type is chosen by the caller; any ordered type with a
small set of values will do. Marks may be inserted in any order, may
duplicate one another and may overlap. A MarkedString borrows its text,
never copying or mutating it, and owns nothing but a priority-ordered
store of marks.

Obeli

The name of the package derives from the obelus, the dagger-like sign with
which Alexandrian scholars marked passages in the margins of manuscripts.
In this package an obelus is a position at which markup is emitted: either
the opening or the closing bookend of a mark.

Rendering

Two emission strategies are provided. The tree render (WriteTree) writes
every mark with exactly one open and one close bookend, nested when the
marks nest; it suits tag formats of the XML/HTML family. The stream render
(WriteStream) produces in-band styled output for protocols which cannot
represent overlap, such as SGR terminal escapes: whenever an inner span
closes, the enclosing outer span is re-announced, and zero-width
open/close transitions are skipped.

Rendering operates on a clone of the mark store. A marked string may be
rendered any number of times, with different bookend tables, and marks may
be added between renders.

For terminal output see the sgr and term subpackages; for HTML entity
escaping and for reading marks back out of inline HTML, the html
subpackage.

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
package obelizmo

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MarkError is an error type for the obelizmo module.
type MarkError string

func (e MarkError) Error() string {
	return string(e)
}

// ErrInvalidRegion is flagged whenever a mark's region boundaries are
// reversed or exceed the length of the marked text.
const ErrInvalidRegion = MarkError("mark region is invalid for text")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MarkError("illegal arguments")
