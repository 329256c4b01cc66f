package obelizmo

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tintTags(k tint) (string, string) {
	var n string
	switch k {
	case red:
		n = "r"
	case teal:
		n = "t"
	case green:
		n = "g"
	case yellow:
		n = "y"
	case blue:
		n = "b"
	}
	return "<" + n + ">", "</" + n + ">"
}

// marksA is the shared-offset nesting arrangement over "red blue green yellow".
func marksA(t *testing.T) *MarkedString[tint] {
	t.Helper()
	ms := NewMarkedString[tint]("red blue green yellow")
	ms.MarkFrom(red, 0, 3)
	ms.MarkFrom(teal, 4, 10)
	ms.MarkFrom(green, 9, 5)
	ms.MarkFrom(yellow, 15, 6)
	ms.MarkFrom(blue, 4, 4)
	return ms
}

// marksB is the overlapping arrangement over "func 10 funky 456".
func marksB(t *testing.T) *MarkedString[tint] {
	t.Helper()
	ms := NewMarkedString[tint]("func 10 funky 456")
	ms.MarkFrom(red, 0, 4)
	ms.MarkFrom(blue, 5, 2)
	ms.MarkFrom(red, 8, 5)
	ms.MarkFrom(yellow, 9, 1)
	ms.MarkFrom(blue, 14, 3)
	return ms
}

func TestTreeNested(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := marksA(t)
	var sb strings.Builder
	if err := ms.WriteTree(&sb, tintTags); err != nil {
		t.Fatal(err)
	}
	t.Logf("tree = %s", sb.String())
	want := "<r>red</r> <t><b>blue</b> <g>green</g></t> <y>yellow</y>"
	if sb.String() != want {
		t.Errorf("tree render\n got %q\nwant %q", sb.String(), want)
	}
}

func TestTreeOverlapping(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := marksB(t)
	var sb strings.Builder
	if err := ms.WriteTree(&sb, tintTags); err != nil {
		t.Fatal(err)
	}
	want := "<r>func</r> <b>10</b> <r>f<y>u</y>nky</r> <b>456</b>"
	if sb.String() != want {
		t.Errorf("tree render\n got %q\nwant %q", sb.String(), want)
	}
}

func TestTreeAdjacentMarksStayDisjoint(t *testing.T) {
	ms := NewMarkedString[tint]("abcdefghi")
	ms.MarkSlice(red, 0, 5)
	ms.MarkSlice(blue, 5, 9)
	var sb strings.Builder
	if err := ms.WriteTree(&sb, tintTags); err != nil {
		t.Fatal(err)
	}
	want := "<r>abcde</r><b>fghi</b>"
	if sb.String() != want {
		t.Errorf("adjacent marks\n got %q\nwant %q", sb.String(), want)
	}
}

func TestTreeNoMarks(t *testing.T) {
	ms := NewMarkedString[tint]("plain text")
	var sb strings.Builder
	if err := ms.WriteTree(&sb, tintTags); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "plain text" {
		t.Errorf("markless render = %q", sb.String())
	}
}

func TestTreeRenderIsRepeatable(t *testing.T) {
	ms := marksA(t)
	var first, second strings.Builder
	if err := ms.WriteTree(&first, tintTags); err != nil {
		t.Fatal(err)
	}
	if err := ms.WriteTree(&second, tintTags); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("re-render differs:\n%q\n%q", first.String(), second.String())
	}
	if ms.MarkCount() != 5 {
		t.Errorf("render must not consume the store, count = %d", ms.MarkCount())
	}
}

func TestTreeNilBookends(t *testing.T) {
	ms := NewMarkedString[tint]("x")
	if err := ms.WriteTree(&strings.Builder{}, nil); err != ErrIllegalArguments {
		t.Errorf("nil bookends: got %v", err)
	}
}
