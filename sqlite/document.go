package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/docspan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docspan.DocumentService = (*DocumentService)(nil)

// DocumentService implements docspan.DocumentService using SQLite.
// Spans are stored as a JSON column next to the text they index.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, source, text, spans, content_hash, created_at"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*docspan.Document, error) {
	var doc docspan.Document
	var spans, createdAt string

	if err := row.Scan(&doc.ID, &doc.Source, &doc.Text, &spans, &doc.ContentHash, &createdAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(spans, &doc.Spans, "spans"); err != nil {
		return nil, err
	}

	var err error
	doc.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDocument stores a document, assigning its ID, content hash and creation time.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docspan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	spans, err := encodeJSON(doc.Spans, "spans")
	if err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.CreatedAt = time.Now().UTC().Truncate(time.Second)
	doc.ContentHash = hashContent(doc.Text)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Source, doc.Text, spans, doc.ContentHash, doc.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docspan.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docspan.Errorf(docspan.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docspan.DocumentFilter) ([]*docspan.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docspan.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docspan.Errorf(docspan.ENOTFOUND, "document not found")
	}

	return nil
}
