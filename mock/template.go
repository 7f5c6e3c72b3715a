package mock

import (
	"context"

	"github.com/fwojciec/docspan"
)

var _ docspan.TemplateService = (*TemplateService)(nil)

// TemplateService is a mock implementation of docspan.TemplateService.
type TemplateService struct {
	CreateTemplateFn   func(ctx context.Context, tmpl *docspan.Template) error
	FindTemplateByIDFn func(ctx context.Context, id string) (*docspan.Template, error)
	FindTemplatesFn    func(ctx context.Context, filter docspan.TemplateFilter) ([]*docspan.Template, error)
	DeleteTemplateFn   func(ctx context.Context, id string) error
}

func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *docspan.Template) error {
	return s.CreateTemplateFn(ctx, tmpl)
}

func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*docspan.Template, error) {
	return s.FindTemplateByIDFn(ctx, id)
}

func (s *TemplateService) FindTemplates(ctx context.Context, filter docspan.TemplateFilter) ([]*docspan.Template, error) {
	return s.FindTemplatesFn(ctx, filter)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	return s.DeleteTemplateFn(ctx, id)
}
