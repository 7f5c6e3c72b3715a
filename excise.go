package docspan

import (
	"sort"
	"strings"
)

// Excise returns a new document with the regions covered by removals cut out
// of the text. Spans inside a removed region are deleted, spans with one edge
// inside a region are clipped to its boundary, and every surviving span is
// shifted so it still points at the same content. The input is not modified.
//
// Returns EINVALID before any rewriting if a removal span or a document span
// is malformed or does not fit the text.
func Excise(doc *Document, removals []Span) (*Document, error) {
	cover, err := MinimalCover(removals)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	for _, c := range cover {
		if c.End > len(doc.Text) {
			return nil, Errorf(EINVALID, "removal %s past text length %d", c, len(doc.Text))
		}
	}

	if len(cover) == 0 {
		return doc.Clone(), nil
	}
	if len(cover) == 1 && cover[0].Begin == 0 && cover[0].End == len(doc.Text) {
		return &Document{Source: doc.Source}, nil
	}

	spans := make([]Span, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		if clipped, ok := clip(s, cover); ok {
			spans = append(spans, clipped.Clone())
		}
	}

	shift := newShifter(cover)
	for i := range spans {
		spans[i].Begin -= shift.removedBefore(spans[i].Begin)
		spans[i].End -= shift.removedBefore(spans[i].End)
	}

	return &Document{
		Source: doc.Source,
		Text:   cut(doc.Text, cover),
		Spans:  spans,
	}, nil
}

// clip classifies s against every cover interval in order. It reports false
// when s falls entirely inside one of them.
func clip(s Span, cover []Interval) (Span, bool) {
	for _, c := range cover {
		switch {
		case c.Begin <= s.Begin && s.End <= c.End:
			return s, false
		case c.Begin <= s.Begin && s.Begin < c.End:
			s.Begin = c.End
		case s.Begin < c.Begin && c.Begin < s.End && s.End <= c.End:
			s.End = c.Begin
		}
	}
	return s, true
}

// cut concatenates the text segments lying between cover intervals.
func cut(text string, cover []Interval) string {
	var b strings.Builder
	cursor := 0
	for _, c := range cover {
		b.WriteString(text[cursor:c.Begin])
		cursor = c.End
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// shifter answers how many bytes were removed at or before an offset.
type shifter struct {
	ends    []int
	removed []int // removed[i] is the total length of cover[0..i]
}

func newShifter(cover []Interval) *shifter {
	s := &shifter{
		ends:    make([]int, len(cover)),
		removed: make([]int, len(cover)),
	}
	total := 0
	for i, c := range cover {
		total += c.Len()
		s.ends[i] = c.End
		s.removed[i] = total
	}
	return s
}

// removedBefore returns the total length of intervals ending at or before off.
func (s *shifter) removedBefore(off int) int {
	n := sort.Search(len(s.ends), func(i int) bool { return s.ends[i] > off })
	if n == 0 {
		return 0
	}
	return s.removed[n-1]
}
