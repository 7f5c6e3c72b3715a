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
var _ docspan.TemplateService = (*TemplateService)(nil)

// TemplateService implements docspan.TemplateService using SQLite.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

const templateColumns = "id, name, kinds, fields, created_at, updated_at"

func scanTemplate(row scanner) (*docspan.Template, error) {
	var tmpl docspan.Template
	var kinds, fields, createdAt, updatedAt string

	if err := row.Scan(&tmpl.ID, &tmpl.Name, &kinds, &fields, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := decodeJSON(kinds, &tmpl.Kinds, "kinds"); err != nil {
		return nil, err
	}
	if err := decodeJSON(fields, &tmpl.Fields, "fields"); err != nil {
		return nil, err
	}

	var err error
	if tmpl.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if tmpl.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// CreateTemplate stores a new template.
func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *docspan.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	existing, err := s.FindTemplates(ctx, docspan.TemplateFilter{Name: &tmpl.Name, Limit: 1})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return docspan.Errorf(docspan.ECONFLICT, "template %q already exists", tmpl.Name)
	}

	kinds, err := encodeJSON(tmpl.Kinds, "kinds")
	if err != nil {
		return err
	}
	fields, err := encodeJSON(tmpl.Fields, "fields")
	if err != nil {
		return err
	}

	tmpl.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (`+templateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, tmpl.ID, tmpl.Name, kinds, fields,
		tmpl.CreatedAt.Format(time.RFC3339), tmpl.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindTemplateByID retrieves a template by ID.
func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*docspan.Template, error) {
	tmpl, err := scanTemplate(s.db.QueryRowContext(ctx,
		"SELECT "+templateColumns+" FROM templates WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docspan.Errorf(docspan.ENOTFOUND, "template not found")
	}
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// FindTemplates retrieves templates matching the filter, ordered by name.
func (s *TemplateService) FindTemplates(ctx context.Context, filter docspan.TemplateFilter) ([]*docspan.Template, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + templateColumns + " FROM templates WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*docspan.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

// DeleteTemplate permanently removes a template.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docspan.Errorf(docspan.ENOTFOUND, "template not found")
	}

	return nil
}
