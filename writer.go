package obelizmo

import "io"

// EncodedWriter is implemented by sinks which can transform literal text
// on the way through, HTML entity escaping being the canonical transform.
// The sweep engines route text portions through WriteEncoded when the
// sink provides it; markup bookends are always written raw through Write.
type EncodedWriter interface {
	io.Writer
	// WriteEncoded writes p through the sink's transform. n reports the
	// number of bytes of p consumed, not the number of transformed bytes
	// written downstream.
	WriteEncoded(p []byte) (n int, err error)
}

// bodyWriter selects the text-emission path for a sink once, up front.
func bodyWriter(w io.Writer) func(s string) error {
	if ew, ok := w.(EncodedWriter); ok {
		return func(s string) error {
			_, err := ew.WriteEncoded([]byte(s))
			return err
		}
	}
	return func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
