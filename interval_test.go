package sre

import (
	"reflect"
	"testing"
)

func TestFlipEmptyList(t *testing.T) {
	got := Flip(nil, Interval{From: 0, Len: 10})
	want := []Interval{{From: 0, Len: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flip(nil, bound) = %v, want %v", got, want)
	}
}

func TestFlipWholeBound(t *testing.T) {
	bound := Interval{From: 0, Len: 10}
	got := Flip([]Interval{bound}, bound)
	if len(got) != 0 {
		t.Fatalf("Flip(whole bound) = %v, want empty", got)
	}
}

func TestFlipGaps(t *testing.T) {
	bound := Interval{From: 0, Len: 20}
	ivs := []Interval{{From: 3, Len: 2}, {From: 10, Len: 5}}
	got := Flip(ivs, bound)
	want := []Interval{
		{From: 0, Len: 3},
		{From: 5, Len: 5},
		{From: 15, Len: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flip(%v, %v) = %v, want %v", ivs, bound, got, want)
	}
}

func TestFlipAdjacentIntervalsNoZeroGap(t *testing.T) {
	bound := Interval{From: 0, Len: 10}
	ivs := []Interval{{From: 0, Len: 5}, {From: 5, Len: 5}}
	got := Flip(ivs, bound)
	if len(got) != 0 {
		t.Fatalf("Flip(adjacent intervals covering bound) = %v, want empty", got)
	}
}

func TestFlipDoubleIsIdentity(t *testing.T) {
	bound := Interval{From: 0, Len: 30}
	ivs := []Interval{{From: 2, Len: 4}, {From: 10, Len: 1}, {From: 20, Len: 10}}
	once := Flip(ivs, bound)
	twice := Flip(once, bound)
	if !reflect.DeepEqual(ivs, twice) {
		t.Fatalf("Flip(Flip(ivs)) = %v, want %v", twice, ivs)
	}
}

func TestSelectionsSeedAndToSlice(t *testing.T) {
	s := NewSelections()
	s.Seed(42)
	got := s.ToSlice()
	want := []Interval{{From: 0, Len: 42}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Seed(42).ToSlice() = %v, want %v", got, want)
	}
}

func TestSelectionsReplaceAllAndClear(t *testing.T) {
	s := NewSelections()
	s.Append(0, 3)
	s.Append(5, 2)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	s.ReplaceAll([]Interval{{From: 1, Len: 1}})
	if s.Len() != 1 {
		t.Fatalf("Len() after ReplaceAll = %d, want 1", s.Len())
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
}
