package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fwojciec/docspan"
)

// OutputPath converts a document source to the relative path its cleaned
// copy is written under. The directory structure of the source is kept;
// root, volume and parent-directory elements are dropped.
// Example: pages/invoice-7.html → pages/invoice-7.json
func OutputPath(source string) string {
	clean := filepath.ToSlash(filepath.Clean(source))
	clean = strings.TrimPrefix(clean, filepath.ToSlash(filepath.VolumeName(source)))

	var parts []string
	for _, part := range strings.Split(clean, "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "document.json"
	}

	last := parts[len(parts)-1]
	parts[len(parts)-1] = strings.TrimSuffix(last, filepath.Ext(last)) + ".json"
	return filepath.Join(parts...)
}

// Ensure Writer implements docspan.DocumentWriter at compile time.
var _ docspan.DocumentWriter = (*Writer)(nil)

// Writer writes documents as JSON files to a directory. A Writer refuses to
// write two different sources to the same output path. Safe for concurrent
// use.
type Writer struct {
	baseDir string

	mu      sync.Mutex
	claimed map[string]string // output path -> source
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, claimed: make(map[string]string)}
}

// CreateDocument writes a document to disk. The file is written to a
// temporary name first and renamed into place. Writing a second source to an
// output path already used by this Writer returns ECONFLICT.
func (w *Writer) CreateDocument(ctx context.Context, doc *docspan.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath := OutputPath(doc.Source)
	if err := w.claim(relPath, doc.Source); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (w *Writer) claim(relPath, source string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.claimed[relPath]; ok && prev != source {
		return docspan.Errorf(docspan.ECONFLICT, "%s and %s both write %s", prev, source, relPath)
	}
	w.claimed[relPath] = source
	return nil
}
