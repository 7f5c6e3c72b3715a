package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docspan"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	sections := docspan.Sections(doc)
	if len(sections) == 0 {
		fmt.Fprintln(deps.Stderr, "No headings found.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", strings.Repeat("  ", s.Level-1), s.Title, s.Anchor)
	}
	return nil
}
