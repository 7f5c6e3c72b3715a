package mock

import "github.com/fwojciec/docspan"

var _ docspan.RecordExtractor = (*RecordExtractor)(nil)

// RecordExtractor is a mock implementation of docspan.RecordExtractor.
type RecordExtractor struct {
	ExtractFn func(doc *docspan.Document, tmpl *docspan.Template) (*docspan.Record, error)
}

func (e *RecordExtractor) Extract(doc *docspan.Document, tmpl *docspan.Template) (*docspan.Record, error) {
	return e.ExtractFn(doc, tmpl)
}
