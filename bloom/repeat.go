// Package bloom detects boilerplate repeated across documents using Bloom
// filters.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/docspan"
)

var _ docspan.NoiseMarker = (*RepeatMarker)(nil)

// RepeatMarker marks spans whose content appears in at least two observed
// documents. Only spans of the configured kinds are considered; an empty
// Kinds list considers every span.
//
// False positives are possible: a span may be marked although its content
// was seen only once. Safe for concurrent use.
type RepeatMarker struct {
	Kinds []docspan.Kind

	mu       sync.Mutex
	seen     *bloom.BloomFilter
	repeated *bloom.BloomFilter
}

// NewRepeatMarker creates a marker sized for n distinct span contents with
// the given false positive rate.
func NewRepeatMarker(n uint, fpRate float64, kinds ...docspan.Kind) *RepeatMarker {
	return &RepeatMarker{
		Kinds:    kinds,
		seen:     bloom.NewWithEstimates(n, fpRate),
		repeated: bloom.NewWithEstimates(n, fpRate),
	}
}

// Observe records the span contents of doc. Content repeated within a single
// document counts once.
func (m *RepeatMarker) Observe(doc *docspan.Document) {
	keys := make(map[string]struct{})
	for _, s := range doc.Spans {
		if k, ok := m.key(doc, s); ok {
			keys[k] = struct{}{}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range keys {
		if m.seen.TestOrAddString(k) {
			m.repeated.AddString(k)
		}
	}
}

// Mark returns the spans of doc whose content was observed in more than one
// document.
func (m *RepeatMarker) Mark(doc *docspan.Document) []docspan.Span {
	m.mu.Lock()
	defer m.mu.Unlock()

	var marks []docspan.Span
	for _, s := range doc.Spans {
		if k, ok := m.key(doc, s); ok && m.repeated.TestString(k) {
			marks = append(marks, s)
		}
	}
	return marks
}

// EstimatedCount returns the approximate number of distinct contents seen.
func (m *RepeatMarker) EstimatedCount() uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint(m.seen.ApproximatedSize())
}

func (m *RepeatMarker) key(doc *docspan.Document, s docspan.Span) (string, bool) {
	if !m.considers(s.Kind) {
		return "", false
	}
	content := strings.Join(strings.Fields(doc.Content(s)), " ")
	if content == "" {
		return "", false
	}
	return string(s.Kind) + "\x00" + content, true
}

func (m *RepeatMarker) considers(k docspan.Kind) bool {
	if len(m.Kinds) == 0 {
		return true
	}
	for _, want := range m.Kinds {
		if want == k {
			return true
		}
	}
	return false
}
