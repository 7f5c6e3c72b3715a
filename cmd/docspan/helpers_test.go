package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fwojciec/docspan"
	main "github.com/fwojciec/docspan/cmd/docspan"
	"github.com/fwojciec/docspan/mock"
	"github.com/stretchr/testify/require"
)

// page returns "HEAD\nBODY\nFOOT" annotated with a page, header, body and
// footer.
func page(t *testing.T, source string) *docspan.Document {
	t.Helper()

	doc, err := docspan.NewDocument("HEAD\nBODY\nFOOT",
		docspan.Span{Begin: 0, End: 14, Kind: "Page"},
		docspan.Span{Begin: 0, End: 4, Kind: "Header", Depth: 1},
		docspan.Span{Begin: 5, End: 9, Kind: "Body", Depth: 1},
		docspan.Span{Begin: 10, End: 14, Kind: "Footer", Depth: 1},
	)
	require.NoError(t, err)
	doc.Source = source
	return doc
}

// loaderOf serves documents by path.
func loaderOf(docs map[string]*docspan.Document) *mock.DocumentLoader {
	return &mock.DocumentLoader{
		LoadDocumentFn: func(_ context.Context, path string) (*docspan.Document, error) {
			doc, ok := docs[path]
			if !ok {
				return nil, docspan.Errorf(docspan.ENOTFOUND, "no such file %q", path)
			}
			return doc.Clone(), nil
		},
	}
}

func newDeps(loader docspan.DocumentLoader) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Loader:    loader,
		Extractor: docspan.NewExtractor(),
	}, stdout, stderr
}
