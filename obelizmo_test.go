package obelizmo

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMarkSliceRegions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := NewMarkedString[tint]("0123456789")
	if err := ms.MarkSlice(red, 0, 10); err != nil {
		t.Errorf("full-range mark failed: %v", err)
	}
	if err := ms.MarkSlice(red, 5, 5); err != nil {
		t.Errorf("empty region should be legal, got %v", err)
	}
	if err := ms.MarkSlice(red, 6, 5); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("reversed region: got %v, want ErrInvalidRegion", err)
	}
	if err := ms.MarkSlice(red, 0, 11); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("region past text end: got %v, want ErrInvalidRegion", err)
	}
	if ms.MarkCount() != 2 {
		t.Errorf("failed inserts must not leave marks, count = %d", ms.MarkCount())
	}
}

func TestMarkFromOverflow(t *testing.T) {
	ms := NewMarkedString[tint]("0123456789")
	if err := ms.MarkFrom(red, 2, 3); err != nil {
		t.Errorf("valid mark failed: %v", err)
	}
	if err := ms.MarkFrom(red, 2, 9); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("mark past text end: got %v, want ErrInvalidRegion", err)
	}
	if err := ms.MarkFrom(red, math.MaxUint32, 2); !errors.Is(err, ErrInvalidRegion) {
		t.Errorf("u32 overflow: got %v, want ErrInvalidRegion", err)
	}
}

func TestFindAndMark(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := NewMarkedString[tint]("the cat sat on the mat")
	i, ok := ms.FindAndMark(red, "at")
	if !ok || i != 5 {
		t.Errorf("FindAndMark = (%d, %v), want (5, true)", i, ok)
	}
	i, ok = ms.FindAndMarkPos(red, "at", 6)
	if !ok || i != 9 {
		t.Errorf("FindAndMarkPos = (%d, %v), want (9, true)", i, ok)
	}
	i, ok = ms.FindAndMarkLast(red, "at")
	if !ok || i != 20 {
		t.Errorf("FindAndMarkLast = (%d, %v), want (20, true)", i, ok)
	}
	if _, ok = ms.FindAndMark(red, "dog"); ok {
		t.Error("absent needle should report no hit")
	}
	if _, ok = ms.FindAndMarkPos(red, "the", 30); ok {
		t.Error("out-of-range start should report no hit")
	}
	if ms.MarkCount() != 3 {
		t.Errorf("expected 3 marks, have %d", ms.MarkCount())
	}
}

func TestMatchAndMark(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := NewMarkedString[tint]("func 10 funky 456")
	digits := Regexp(regexp.MustCompile(`[0-9]+`))
	i, ok := ms.MatchAndMark(blue, digits)
	if !ok || i != 5 {
		t.Errorf("MatchAndMark = (%d, %v), want (5, true)", i, ok)
	}
	i, ok = ms.MatchAndMarkPos(blue, digits, 8)
	if !ok || i != 14 {
		t.Errorf("MatchAndMarkPos = (%d, %v), want (14, true)", i, ok)
	}
	if _, ok = ms.MatchAndMark(blue, Regexp(regexp.MustCompile(`z+`))); ok {
		t.Error("non-matching regex should report no hit")
	}
}

func TestMatchAndMarkAll(t *testing.T) {
	ms := NewMarkedString[tint]("func 10 funky 456")
	if !ms.MatchAndMarkAll(red, Regexp(regexp.MustCompile(`fun[ck]+`))) {
		t.Error("expected matches")
	}
	if ms.MarkCount() != 2 {
		t.Errorf("expected 2 marks, have %d", ms.MarkCount())
	}
	if ms.MatchAndMarkAll(red, Regexp(regexp.MustCompile(`z+`))) {
		t.Error("expected no matches")
	}
	if ms.MarkCount() != 2 {
		t.Errorf("no-hit pass must not add marks, have %d", ms.MarkCount())
	}
}
