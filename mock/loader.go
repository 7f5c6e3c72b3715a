package mock

import (
	"context"

	"github.com/fwojciec/docspan"
)

var _ docspan.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of docspan.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (*docspan.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*docspan.Document, error) {
	return l.LoadDocumentFn(ctx, path)
}
