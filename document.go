package docspan

import (
	"context"
	"time"
)

// Document is a text buffer together with the spans annotating it.
// Engine operations never mutate a Document they receive; they return a new one.
type Document struct {
	ID          string    `json:"id,omitempty"`
	Source      string    `json:"source,omitempty"`
	Text        string    `json:"text"`
	Spans       []Span    `json:"spans"`
	ContentHash string    `json:"contentHash,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

// NewDocument returns a document over text holding the given spans.
// Returns EINVALID if any span does not fit the text.
func NewDocument(text string, spans ...Span) (*Document, error) {
	doc := &Document{Text: text}
	for _, s := range spans {
		if err := doc.Add(s); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Add appends a span after checking it against the text bounds.
func (d *Document) Add(s Span) error {
	if err := d.checkSpan(s); err != nil {
		return err
	}
	d.Spans = append(d.Spans, s)
	return nil
}

// Validate returns an error if any span does not fit the document text.
func (d *Document) Validate() error {
	for _, s := range d.Spans {
		if err := d.checkSpan(s); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) checkSpan(s Span) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.End > len(d.Text) {
		return Errorf(EINVALID, "invalid span %s: end past text length %d", s, len(d.Text))
	}
	return nil
}

// Content returns the text covered by s.
func (d *Document) Content(s Span) string {
	return d.Text[s.Begin:s.End]
}

// SpansOfKind returns the spans of the given kind in store order.
func (d *Document) SpansOfKind(kind Kind) []Span {
	var spans []Span
	for _, s := range d.Spans {
		if s.Kind == kind {
			spans = append(spans, s)
		}
	}
	return spans
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	other := *d
	other.Spans = cloneSpans(d.Spans)
	return &other
}

func cloneSpans(spans []Span) []Span {
	if spans == nil {
		return nil
	}
	out := make([]Span, len(spans))
	for i, s := range spans {
		out[i] = s.Clone()
	}
	return out
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing stored documents.
type DocumentService interface {
	// CreateDocument stores a document and assigns its ID and content hash.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentLoader reads a document from a path, parsing it if needed.
type DocumentLoader interface {
	LoadDocument(ctx context.Context, path string) (*Document, error)
}

// Parser is the upstream structural extractor: it turns a source format into
// a document whose spans carry kinds and nesting depths.
type Parser interface {
	Parse(content string) (*Document, error)
}
