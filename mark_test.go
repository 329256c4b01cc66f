package obelizmo

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type tint uint8

const (
	red tint = iota
	teal
	green
	yellow
	blue
)

func TestApplyOrder(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ms := NewMarkedString[tint]("red blue green yellow")
	ms.MarkSlice(yellow, 15, 21)
	ms.MarkSlice(blue, 4, 8)
	ms.MarkSlice(red, 0, 3)
	ms.MarkSlice(green, 9, 14)
	ms.MarkSlice(teal, 4, 14)
	q := ms.Queue()
	want := []Mark[tint]{
		{red, 0, 3},
		{teal, 4, 10}, // longer mark first at equal offset
		{blue, 4, 4},
		{green, 9, 5},
		{yellow, 15, 6},
	}
	for i, w := range want {
		m, ok := q.Pop()
		if !ok {
			t.Fatalf("queue exhausted after %d marks, want %d", i, len(want))
		}
		if m != w {
			t.Errorf("pop %d = %v, want %v", i, m, w)
		}
	}
	if !q.Empty() {
		t.Errorf("queue should be empty, has %d marks left", q.Len())
	}
}

func TestApplyOrderKindTieBreak(t *testing.T) {
	ms := NewMarkedString[tint]("hello")
	ms.MarkSlice(blue, 0, 5)
	ms.MarkSlice(red, 0, 5)
	q := ms.Queue()
	m, _ := q.Pop()
	if m.Kind != red {
		t.Errorf("equal ranges should pop ascending kind, got %v first", m.Kind)
	}
}

func TestCloseOrder(t *testing.T) {
	out := NewOpenSet[tint]()
	out.Push(Mark[tint]{teal, 4, 10})
	out.Push(Mark[tint]{green, 9, 5})
	out.Push(Mark[tint]{blue, 4, 4})
	// blue ends first; green and teal share end 14, shorter green closes first
	want := []tint{blue, green, teal}
	for i, w := range want {
		m, ok := out.Pop()
		if !ok {
			t.Fatalf("open set exhausted after %d marks", i)
		}
		if m.Kind != w {
			t.Errorf("pop %d = %v, want %v", i, m.Kind, w)
		}
	}
}

func TestCloseOrderKindTieBreak(t *testing.T) {
	out := NewOpenSet[tint]()
	out.Push(Mark[tint]{red, 0, 5})
	out.Push(Mark[tint]{blue, 0, 5})
	m, _ := out.Pop()
	if m.Kind != blue {
		t.Errorf("equal ranges should close descending kind, got %v first", m.Kind)
	}
}

func TestQueueIsAClone(t *testing.T) {
	ms := NewMarkedString[tint]("hello world")
	ms.MarkSlice(red, 0, 5)
	ms.MarkSlice(blue, 6, 11)
	q := ms.Queue()
	q.Pop()
	q.Pop()
	if q.Len() != 0 {
		t.Errorf("drained queue has %d marks", q.Len())
	}
	if ms.MarkCount() != 2 {
		t.Errorf("draining a queue must not touch the store, count = %d", ms.MarkCount())
	}
	q2 := ms.Queue()
	if q2.Len() != 2 {
		t.Errorf("fresh queue has %d marks, want 2", q2.Len())
	}
}
