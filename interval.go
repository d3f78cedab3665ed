package sre

import "container/list"

// Interval is a half-open byte range [From, From+Len) within a Buffer.
// Zero-length intervals are legal: they mark a caret position used by
// anchor-only substitutions.
type Interval struct {
	From int
	Len  int
}

// End returns the exclusive end offset of the interval.
func (iv Interval) End() int {
	return iv.From + iv.Len
}

/*
 Selections is the ordered, disjoint list of intervals a program's commands
 operate on. It is backed by container/list, as the teacher's line buffer
 is. Commands that reshape the list, extract (x/y) included, take a
 ToSlice snapshot and rebuild it with ReplaceAll rather than splicing
 elements in place.

 Invariants (I1-I3 of the spec): after any command returns, the list is
 monotone and disjoint, and every interval lies within the owning buffer's
 bounds. Commands are responsible for restoring these before returning.
*/
type Selections struct {
	l *list.List
}

// NewSelections returns an empty selection list.
func NewSelections() *Selections {
	return &Selections{l: list.New()}
}

// Append adds an interval at the tail of the list.
func (s *Selections) Append(from, length int) {
	s.l.PushBack(Interval{From: from, Len: length})
}

// AppendInterval adds iv at the tail of the list.
func (s *Selections) AppendInterval(iv Interval) {
	s.l.PushBack(iv)
}

// Clear releases all intervals.
func (s *Selections) Clear() {
	s.l.Init()
}

// Seed replaces the list with a single interval covering the whole buffer
// of length n. Used at the start of a pass and by the 'u' command.
func (s *Selections) Seed(n int) {
	s.l.Init()
	s.l.PushBack(Interval{From: 0, Len: n})
}

// Len returns the number of selections.
func (s *Selections) Len() int {
	return s.l.Len()
}

// ToSlice returns a snapshot copy of the selections in order.
func (s *Selections) ToSlice() []Interval {
	out := make([]Interval, 0, s.l.Len())
	for e := s.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(Interval))
	}
	return out
}

// ReplaceAll discards the current list and rebuilds it from ivs, in order.
func (s *Selections) ReplaceAll(ivs []Interval) {
	s.l.Init()
	for _, iv := range ivs {
		s.l.PushBack(iv)
	}
}

/*
 Flip produces the complement of ivs within bound. ivs must already be
 sorted and disjoint (every caller satisfies this: selections are
 maintained in that order throughout a pass).

 Rules (spec §4.1):
   - an empty ivs yields {bound}
   - a single interval equal to bound yields no intervals
   - otherwise one interval per maximal gap between consecutive intervals,
     including the gaps before the first and after the last

 Gaps are half-open [start, end); a gap with start == end is never emitted.
*/
func Flip(ivs []Interval, bound Interval) []Interval {
	if len(ivs) == 0 {
		return []Interval{bound}
	}
	var out []Interval
	cursor := bound.From
	for _, iv := range ivs {
		if iv.From > cursor {
			out = append(out, Interval{From: cursor, Len: iv.From - cursor})
		}
		if iv.End() > cursor {
			cursor = iv.End()
		}
	}
	if bound.End() > cursor {
		out = append(out, Interval{From: cursor, Len: bound.End() - cursor})
	}
	return out
}
