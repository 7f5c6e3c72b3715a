package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	tmpl, err := c.template(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	rec, err := deps.Extractor.Extract(doc, tmpl)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

func (c *ExtractCmd) template(deps *Dependencies) (*docspan.Template, error) {
	if c.Template != "" {
		return fs.ReadTemplate(c.Template)
	}

	tmpls, err := deps.Templates.FindTemplates(deps.Ctx, docspan.TemplateFilter{Name: &c.Name})
	if err != nil {
		return nil, err
	}
	if len(tmpls) == 0 {
		return nil, docspan.Errorf(docspan.ENOTFOUND, "template %q not found. Use 'docspan templates' to see available templates.", c.Name)
	}
	return tmpls[0], nil
}
