package docspan

import (
	"context"
	"sort"
	"time"
)

// Field is a named template field located by a path expression.
type Field struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Template is a set of field paths learned from one document and replayed
// against structurally similar documents.
type Template struct {
	ID        string    `json:"id,omitempty" yaml:"-"`
	Name      string    `json:"name" yaml:"name"`
	Kinds     []Kind    `json:"kinds,omitempty" yaml:"kinds,omitempty"`
	Fields    []Field   `json:"fields" yaml:"fields"`
	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"-"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"-"`
}

// Validate returns an error if the template contains invalid fields.
func (t *Template) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "template name required")
	}
	if len(t.Fields) == 0 {
		return Errorf(EINVALID, "template %q has no fields", t.Name)
	}
	seen := make(map[string]bool, len(t.Fields))
	for _, f := range t.Fields {
		if f.Name == "" {
			return Errorf(EINVALID, "template %q has a field without a name", t.Name)
		}
		if seen[f.Name] {
			return Errorf(EINVALID, "template %q has duplicate field %q", t.Name, f.Name)
		}
		seen[f.Name] = true
		if _, err := ParsePath(f.Path); err != nil {
			return Errorf(EINVALID, "template %q field %q: %s", t.Name, f.Name, ErrorMessage(err))
		}
	}
	return nil
}

// Learn builds a template named name whose fields select the example spans
// of doc. Only the given kinds contribute path segments; an empty list
// recognizes every kind.
//
// Returns ENOTFOUND if an example span is not present in doc and EINVALID if
// no path can address it.
func Learn(doc *Document, name string, kinds []Kind, examples map[string]Span) (*Template, error) {
	tree := BuildTree(doc.Spans)
	sel := NewSelector(kinds...)

	names := make([]string, 0, len(examples))
	for n := range examples {
		names = append(names, n)
	}
	sort.Strings(names)

	tmpl := &Template{Name: name, Kinds: kinds}
	for _, field := range names {
		example := examples[field]
		node := tree.Lookup(example)
		if node == nil {
			return nil, Errorf(ENOTFOUND, "field %q: no span %s in document", field, example)
		}
		p, ok := sel.GeneratePath(node)
		if !ok {
			return nil, Errorf(EINVALID, "field %q: span %s has an unrecognized kind", field, example)
		}
		tmpl.Fields = append(tmpl.Fields, Field{Name: field, Path: p.String()})
	}

	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// Record holds the values a template extracted from one document.
type Record struct {
	Template string              `json:"template"`
	Values   map[string][]string `json:"values"`

	// Ambiguities found while building the structure tree. Paths may resolve
	// differently on documents with ambiguous structure.
	Ambiguities []Ambiguity `json:"-"`
}

// RecordExtractor replays templates against documents.
type RecordExtractor interface {
	Extract(doc *Document, tmpl *Template) (*Record, error)
}

var _ RecordExtractor = (*Extractor)(nil)

// Extractor implements RecordExtractor over the structure tree.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract selects every template field in doc and returns the covered text.
// Fields with no match map to an empty slice.
func (e *Extractor) Extract(doc *Document, tmpl *Template) (*Record, error) {
	if doc == nil || tmpl == nil {
		return nil, Errorf(EINVALID, "document and template are required")
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}

	tree := BuildTree(doc.Spans)
	sel := NewSelector(tmpl.Kinds...)

	rec := &Record{
		Template:    tmpl.Name,
		Values:      make(map[string][]string, len(tmpl.Fields)),
		Ambiguities: tree.Ambiguities,
	}
	for _, f := range tmpl.Fields {
		p, err := ParsePath(f.Path)
		if err != nil {
			return nil, err
		}
		values := []string{}
		for _, s := range SpansOf(sel.Select(tree, p)) {
			values = append(values, doc.Content(s))
		}
		rec.Values[f.Name] = values
	}
	return rec, nil
}

// TemplateService represents a service for managing templates.
type TemplateService interface {
	// CreateTemplate stores a new template.
	// Returns ECONFLICT if a template with the same name exists.
	CreateTemplate(ctx context.Context, tmpl *Template) error

	// FindTemplateByID retrieves a template by ID.
	// Returns ENOTFOUND if template does not exist.
	FindTemplateByID(ctx context.Context, id string) (*Template, error)

	// FindTemplates retrieves templates matching the filter, ordered by name.
	FindTemplates(ctx context.Context, filter TemplateFilter) ([]*Template, error)

	// DeleteTemplate permanently removes a template.
	// Returns ENOTFOUND if template does not exist.
	DeleteTemplate(ctx context.Context, id string) error
}

// TemplateFilter represents a filter for FindTemplates.
type TemplateFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
