package mock

import "github.com/fwojciec/docspan"

var _ docspan.NoiseMarker = (*NoiseMarker)(nil)

// NoiseMarker is a mock implementation of docspan.NoiseMarker.
type NoiseMarker struct {
	MarkFn func(doc *docspan.Document) []docspan.Span
}

func (m *NoiseMarker) Mark(doc *docspan.Document) []docspan.Span {
	return m.MarkFn(doc)
}

var _ docspan.DocumentCleaner = (*DocumentCleaner)(nil)

// DocumentCleaner is a mock implementation of docspan.DocumentCleaner.
type DocumentCleaner struct {
	CleanFn func(doc *docspan.Document) (*docspan.Document, error)
}

func (c *DocumentCleaner) Clean(doc *docspan.Document) (*docspan.Document, error) {
	return c.CleanFn(doc)
}
