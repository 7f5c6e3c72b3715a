package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docspan"
)

// Ensure LoggingCleaner implements docspan.DocumentCleaner.
var _ docspan.DocumentCleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a DocumentCleaner with logging.
type LoggingCleaner struct {
	next   docspan.DocumentCleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next docspan.DocumentCleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs how much was removed.
func (c *LoggingCleaner) Clean(doc *docspan.Document) (out *docspan.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source", doc.Source,
			"spans", len(doc.Spans),
			"duration", time.Since(begin),
		}
		if out != nil {
			attrs = append(attrs,
				"kept", len(out.Spans),
				"removed_bytes", len(doc.Text)-len(out.Text),
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		c.logger.Info("clean", attrs...)
	}(time.Now())
	return c.next.Clean(doc)
}
