package docspan

import (
	"strings"
	"unicode"
)

// NoiseMarker marks regions of a document that should be removed.
type NoiseMarker interface {
	Mark(doc *Document) []Span
}

// KindMarker marks every span of the listed kinds, e.g. headers and footers.
type KindMarker struct {
	Kinds []Kind
}

// Mark returns the spans whose kind is listed.
func (m *KindMarker) Mark(doc *Document) []Span {
	var marks []Span
	for _, s := range doc.Spans {
		for _, k := range m.Kinds {
			if s.Kind == k {
				marks = append(marks, s)
				break
			}
		}
	}
	return marks
}

// AttributeMarker marks spans carrying attribute Key. When Value is set the
// attribute must also equal it.
type AttributeMarker struct {
	Key   string
	Value string
}

// Mark returns the spans carrying the attribute.
func (m *AttributeMarker) Mark(doc *Document) []Span {
	var marks []Span
	for _, s := range doc.Spans {
		v, ok := s.Attributes[m.Key]
		if ok && (m.Value == "" || v == m.Value) {
			marks = append(marks, s)
		}
	}
	return marks
}

// EmptyMarker marks elements with no visible content: zero-length spans and
// spans covering only whitespace.
type EmptyMarker struct{}

// Mark returns the empty spans of doc.
func (m *EmptyMarker) Mark(doc *Document) []Span {
	var marks []Span
	for _, s := range doc.Spans {
		if strings.TrimFunc(doc.Content(s), unicode.IsSpace) == "" {
			marks = append(marks, s)
		}
	}
	return marks
}

// DocumentCleaner removes noise from documents.
type DocumentCleaner interface {
	// Clean returns a new document with marked regions excised.
	Clean(doc *Document) (*Document, error)
}

var _ DocumentCleaner = (*Cleaner)(nil)

// Cleaner excises the union of the regions reported by its markers.
type Cleaner struct {
	Markers []NoiseMarker
}

// NewCleaner returns a Cleaner using the given markers.
func NewCleaner(markers ...NoiseMarker) *Cleaner {
	return &Cleaner{Markers: markers}
}

// Clean returns a new document with every marked region excised.
func (c *Cleaner) Clean(doc *Document) (*Document, error) {
	var removals []Span
	for _, m := range c.Markers {
		removals = append(removals, m.Mark(doc)...)
	}
	return Excise(doc, removals)
}
