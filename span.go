package docspan

import (
	"fmt"
	"maps"
)

// Kind is the type tag of a span, e.g. "Paragraph", "Header" or "TemplateField".
// The set of kinds is closed per document but open across producers.
type Kind string

// Span is a typed, half-open byte range [Begin, End) over a document's text.
type Span struct {
	Begin int  `json:"begin"`
	End   int  `json:"end"`
	Kind  Kind `json:"kind"`

	// Depth is the nesting level assigned by the producer. Smaller values are
	// closer to the document root. It only matters for spans sharing a range.
	Depth int `json:"depth"`

	// Attributes hold producer-specific metadata (heading level, row index...).
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Validate returns an error if the span offsets are malformed.
func (s Span) Validate() error {
	if s.Begin < 0 {
		return Errorf(EINVALID, "invalid span %s: negative begin", s)
	}
	if s.Begin > s.End {
		return Errorf(EINVALID, "invalid span %s: begin after end", s)
	}
	return nil
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Covers reports whether other lies entirely within s.
func (s Span) Covers(other Span) bool {
	return s.Begin <= other.Begin && other.End <= s.End
}

// Intersects reports whether the spans share at least one byte.
func (s Span) Intersects(other Span) bool {
	return s.Begin < other.End && other.Begin < s.End
}

// SameRange reports whether both spans have identical offsets.
func (s Span) SameRange(other Span) bool {
	return s.Begin == other.Begin && s.End == other.End
}

// Clone returns a copy of the span that does not share its attribute map.
func (s Span) Clone() Span {
	s.Attributes = maps.Clone(s.Attributes)
	return s
}

func (s Span) String() string {
	if s.Kind == "" {
		return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
	}
	return fmt.Sprintf("%s[%d,%d)", s.Kind, s.Begin, s.End)
}
