package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/bloom"
	"github.com/fwojciec/docspan/goquery"
	docslog "github.com/fwojciec/docspan/slog"
	"golang.org/x/sync/errgroup"
)

// repeatFalsePositiveRate bounds how often unique content is mistaken for
// repeated boilerplate.
const repeatFalsePositiveRate = 0.001

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	docs, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	markers := c.markers(docs)
	if len(markers) == 0 {
		err := docspan.Errorf(docspan.EINVALID, "nothing to remove: use --remove-kind, --remove-empty, --boilerplate or --repeated")
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}
	cleaner := docslog.NewLoggingCleaner(docspan.NewCleaner(markers...), deps.Logger)

	cleaned := make([]*docspan.Document, len(docs))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.limit())
	for i, doc := range docs {
		g.Go(func() error {
			out, err := cleaner.Clean(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", doc.Source, err)
			}
			if deps.Writer != nil {
				if err := deps.Writer.CreateDocument(ctx, out); err != nil {
					return fmt.Errorf("%s: %w", doc.Source, err)
				}
			}
			if c.Save {
				if err := deps.Documents.CreateDocument(ctx, out); err != nil {
					return fmt.Errorf("%s: %w", doc.Source, err)
				}
			}
			cleaned[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	for _, doc := range cleaned {
		switch {
		case c.Save:
			fmt.Fprintf(deps.Stdout, "%s  %s  %d spans\n", doc.ID, doc.Source, len(doc.Spans))
		case deps.Writer != nil:
			fmt.Fprintf(deps.Stdout, "%s  %d spans\n", doc.Source, len(doc.Spans))
		default:
			if len(cleaned) > 1 {
				fmt.Fprintf(deps.Stdout, "==> %s <==\n", doc.Source)
			}
			fmt.Fprintln(deps.Stdout, doc.Text)
		}
	}

	return nil
}

// load reads every input file concurrently, preserving argument order.
func (c *CleanCmd) load(deps *Dependencies) ([]*docspan.Document, error) {
	docs := make([]*docspan.Document, len(c.Files))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.limit())
	for i, path := range c.Files {
		g.Go(func() error {
			doc, err := deps.Loader.LoadDocument(ctx, path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *CleanCmd) markers(docs []*docspan.Document) []docspan.NoiseMarker {
	var markers []docspan.NoiseMarker
	if len(c.RemoveKind) > 0 {
		markers = append(markers, &docspan.KindMarker{Kinds: toKinds(c.RemoveKind)})
	}
	if c.RemoveEmpty {
		markers = append(markers, &docspan.EmptyMarker{})
	}
	if c.Boilerplate {
		markers = append(markers, &docspan.AttributeMarker{Key: goquery.BoilerplateAttr})
	}
	if len(c.Repeated) > 0 {
		n := 0
		for _, doc := range docs {
			n += len(doc.Spans)
		}
		repeat := bloom.NewRepeatMarker(uint(max(n, 1)), repeatFalsePositiveRate, toKinds(c.Repeated)...)
		for _, doc := range docs {
			repeat.Observe(doc)
		}
		markers = append(markers, repeat)
	}
	return markers
}

func (c *CleanCmd) limit() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}

func toKinds(names []string) []docspan.Kind {
	kinds := make([]docspan.Kind, len(names))
	for i, n := range names {
		kinds[i] = docspan.Kind(n)
	}
	return kinds
}
