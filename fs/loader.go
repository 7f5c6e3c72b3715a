// Package fs provides file-based loading and storage of documents and templates.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docspan"
)

// Ensure Loader implements docspan.DocumentLoader at compile time.
var _ docspan.DocumentLoader = (*Loader)(nil)

// Loader reads documents from disk. JSON files hold a serialized document;
// HTML files are handed to Parser.
type Loader struct {
	Parser docspan.Parser
}

// NewLoader creates a new Loader using parser for markup files.
func NewLoader(parser docspan.Parser) *Loader {
	return &Loader{Parser: parser}
}

// LoadDocument reads the document stored at path.
func (l *Loader) LoadDocument(ctx context.Context, path string) (*docspan.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc *docspan.Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc = &docspan.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, docspan.Errorf(docspan.EINVALID, "failed to decode %s: %v", path, err)
		}
		if err := doc.Validate(); err != nil {
			return nil, err
		}
	case ".html", ".htm":
		if l.Parser == nil {
			return nil, docspan.Errorf(docspan.EINVALID, "no parser configured for %s", path)
		}
		doc, err = l.Parser.Parse(string(data))
		if err != nil {
			return nil, err
		}
	default:
		return nil, docspan.Errorf(docspan.EINVALID, "unsupported document format %q", filepath.Ext(path))
	}

	if doc.Source == "" {
		doc.Source = path
	}
	return doc, nil
}
