package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
)

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	tmpls, err := deps.Templates.FindTemplates(deps.Ctx, docspan.TemplateFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	if len(tmpls) == 0 {
		fmt.Fprintln(deps.Stdout, "No templates found. Use 'docspan learn' to create one.")
		return nil
	}

	for _, t := range tmpls {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d fields\n", t.ID, t.Name, len(t.Fields))
	}

	return nil
}
