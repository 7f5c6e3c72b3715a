package docspan

import (
	"cmp"
	"fmt"
	"slices"
)

// Interval is a bare [Begin, End) range produced by MinimalCover.
type Interval struct {
	Begin int
	End   int
}

// Len returns the number of bytes in the interval.
func (i Interval) Len() int {
	return i.End - i.Begin
}

// Span returns the interval as an untyped span.
func (i Interval) Span() Span {
	return Span{Begin: i.Begin, End: i.End}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Begin, i.End)
}

// MinimalCover merges spans into the minimal sorted list of intervals that
// covers them. Overlapping and directly adjacent ranges are merged, so the
// result never contains two intervals that touch.
// Returns EINVALID if any span is malformed.
func MinimalCover(spans []Span) ([]Interval, error) {
	if len(spans) == 0 {
		return nil, nil
	}

	intervals := make([]Interval, 0, len(spans))
	for _, s := range spans {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		intervals = append(intervals, Interval{Begin: s.Begin, End: s.End})
	}

	slices.SortFunc(intervals, func(a, b Interval) int {
		if c := cmp.Compare(a.Begin, b.Begin); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	cover := intervals[:1]
	for _, next := range intervals[1:] {
		last := &cover[len(cover)-1]
		if touches(*last, next) {
			last.End = max(last.End, next.End)
			continue
		}
		cover = append(cover, next)
	}
	return cover, nil
}

func touches(a, b Interval) bool {
	return !(a.End < b.Begin || b.End < a.Begin)
}
