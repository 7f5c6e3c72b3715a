package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/mock"
	dsslog "github.com/fwojciec/docspan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("logs removed bytes and span counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		doc := &docspan.Document{
			Source: "a.html",
			Text:   "HEAD\nBODY",
			Spans:  []docspan.Span{{Begin: 0, End: 4, Kind: "header"}, {Begin: 5, End: 9, Kind: "p"}},
		}
		inner := &mock.DocumentCleaner{
			CleanFn: func(d *docspan.Document) (*docspan.Document, error) {
				return &docspan.Document{Text: "\nBODY", Spans: []docspan.Span{{Begin: 1, End: 5, Kind: "p"}}}, nil
			},
		}

		out, err := dsslog.NewLoggingCleaner(inner, logger).Clean(doc)

		require.NoError(t, err)
		assert.Equal(t, "\nBODY", out.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=clean")
		assert.Contains(t, output, "source=a.html")
		assert.Contains(t, output, "spans=2")
		assert.Contains(t, output, "kept=1")
		assert.Contains(t, output, "removed_bytes=4")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentCleaner{
			CleanFn: func(d *docspan.Document) (*docspan.Document, error) {
				return nil, errors.New("boom")
			},
		}

		_, err := dsslog.NewLoggingCleaner(inner, logger).Clean(&docspan.Document{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
		assert.NotContains(t, buf.String(), "removed_bytes")
	})
}
