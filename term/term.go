package term

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	xterm "golang.org/x/term"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Interactive reports whether f is attached to a terminal. Callers use it
// to choose between the SGR printer and a plain render when output may be
// redirected to a file or pipe.
func Interactive(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Width is a simple helper for sizing terminal output. It reads the
// terminal's width from f and leaves a margin on wide terminals; if f is
// not a terminal, or its size cannot be read, Width falls back to 65.
func Width(f *os.File) int {
	width := 65
	if xterm.IsTerminal(int(f.Fd())) {
		w, _, err := xterm.GetSize(int(f.Fd()))
		if err == nil {
			switch {
			case w > 65:
				width = w - 10
			case w > 30:
				width = w - 5
			case w > 10:
				width = w
			default:
				width = 10
			}
		}
	}
	T().P("format", "term").Infof("setting line length to %d en", width)
	return width
}
