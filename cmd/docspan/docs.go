package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	filter := docspan.DocumentFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'docspan clean --save' to store some.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d bytes  %d spans\n", d.ID, d.Source, len(d.Text), len(d.Spans))
	}

	return nil
}
