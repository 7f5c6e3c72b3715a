package mock

import (
	"context"

	"github.com/fwojciec/docspan"
)

var _ docspan.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docspan.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *docspan.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*docspan.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter docspan.DocumentFilter) ([]*docspan.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docspan.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docspan.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docspan.DocumentFilter) ([]*docspan.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
