package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "html file", source: "pages/invoice-7.html", want: filepath.Join("pages", "invoice-7.json")},
		{name: "json file", source: "in/doc.json", want: filepath.Join("in", "doc.json")},
		{name: "no extension", source: "notes", want: "notes.json"},
		{name: "absolute path", source: "/srv/site/a.html", want: filepath.Join("srv", "site", "a.json")},
		{name: "parent directories", source: "../up/a.html", want: filepath.Join("up", "a.json")},
		{name: "dot segments", source: "./x/./y/../b.htm", want: filepath.Join("x", "b.json")},
		{name: "empty source", source: "", want: "document.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.OutputPath(tt.source))
		})
	}
}

func TestWriter_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("writes document as JSON", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		w := fs.NewWriter(dir)
		doc := &docspan.Document{
			Source: "pages/a.html",
			Text:   "\nBODY\n",
			Spans:  []docspan.Span{{Begin: 1, End: 5, Kind: "Body"}},
		}

		err := w.CreateDocument(context.Background(), doc)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "pages", "a.json"))
		require.NoError(t, err)

		var got docspan.Document
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, doc.Text, got.Text)
		assert.Equal(t, doc.Spans, got.Spans)

		leftovers, err := filepath.Glob(filepath.Join(dir, "pages", "*.tmp"))
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("keeps sources with the same base name apart", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.CreateDocument(ctx, &docspan.Document{Source: "a/x.html", Text: "from a"}))
		require.NoError(t, w.CreateDocument(ctx, &docspan.Document{Source: "b/x.html", Text: "from b"}))

		a, err := os.ReadFile(filepath.Join(dir, "a", "x.json"))
		require.NoError(t, err)
		assert.Contains(t, string(a), `"from a"`)
		b, err := os.ReadFile(filepath.Join(dir, "b", "x.json"))
		require.NoError(t, err)
		assert.Contains(t, string(b), `"from b"`)
	})

	t.Run("rejects two sources mapping to one file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.CreateDocument(ctx, &docspan.Document{Source: "docs/x.html", Text: "html"}))
		err := w.CreateDocument(ctx, &docspan.Document{Source: "docs/x.json", Text: "json"})

		assert.Equal(t, docspan.ECONFLICT, docspan.ErrorCode(err))
		data, err := os.ReadFile(filepath.Join(dir, "docs", "x.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"html"`)
	})

	t.Run("concurrent writes of distinct sources", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		sources := []string{"a/x.html", "b/x.html", "c/x.html", "d/x.html"}
		errs := make(chan error, len(sources))
		for _, src := range sources {
			go func() {
				errs <- w.CreateDocument(ctx, &docspan.Document{Source: src, Text: src})
			}()
		}
		for range sources {
			require.NoError(t, <-errs)
		}

		files, err := filepath.Glob(filepath.Join(dir, "*", "x.json"))
		require.NoError(t, err)
		assert.Len(t, files, len(sources))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		ctx := context.Background()

		require.NoError(t, w.CreateDocument(ctx, &docspan.Document{Source: "a.html", Text: "old"}))
		require.NoError(t, w.CreateDocument(ctx, &docspan.Document{Source: "a.html", Text: "new"}))

		data, err := os.ReadFile(filepath.Join(dir, "a.json"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"new"`)
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())
		doc := &docspan.Document{Text: "a", Spans: []docspan.Span{{Begin: 3, End: 1}}}

		err := w.CreateDocument(context.Background(), doc)

		assert.Equal(t, docspan.EINVALID, docspan.ErrorCode(err))
	})
}
