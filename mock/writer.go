package mock

import (
	"context"

	"github.com/fwojciec/docspan"
)

var _ docspan.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docspan.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *docspan.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *docspan.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
