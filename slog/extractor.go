package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docspan"
)

// Ensure LoggingExtractor implements docspan.RecordExtractor.
var _ docspan.RecordExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RecordExtractor with logging. Structural
// ambiguities are logged as warnings.
type LoggingExtractor struct {
	next   docspan.RecordExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docspan.RecordExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(doc *docspan.Document, tmpl *docspan.Template) (rec *docspan.Record, err error) {
	defer func(begin time.Time) {
		source, name, fields := "", "", 0
		if doc != nil {
			source = doc.Source
		}
		if tmpl != nil {
			name, fields = tmpl.Name, len(tmpl.Fields)
		}
		if rec != nil {
			for _, a := range rec.Ambiguities {
				e.logger.Warn("ambiguous structure",
					"source", source,
					"outer", a.Outer.String(),
					"inner", a.Inner.String(),
				)
			}
		}
		matched := 0
		if rec != nil {
			for _, vs := range rec.Values {
				if len(vs) > 0 {
					matched++
				}
			}
		}
		e.logger.Info("extract",
			"source", source,
			"template", name,
			"fields", fields,
			"matched", matched,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(doc, tmpl)
}
