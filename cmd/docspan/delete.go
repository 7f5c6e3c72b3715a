package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
)

// Run executes the delete-doc command.
func (c *DeleteDocCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docspan.Errorf(docspan.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if docspan.ErrorCode(err) == docspan.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'docspan docs' to see stored documents.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %s (%s)\n", doc.ID, doc.Source)
	return nil
}

// Run executes the delete-template command.
func (c *DeleteTemplateCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return docspan.Errorf(docspan.EINVALID, "use --force to confirm deletion")
	}

	tmpl, err := c.find(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	if err := deps.Templates.DeleteTemplate(deps.Ctx, tmpl.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted template %q\n", tmpl.Name)
	return nil
}

// find resolves the argument as a template ID first, then as a name.
func (c *DeleteTemplateCmd) find(deps *Dependencies) (*docspan.Template, error) {
	tmpl, err := deps.Templates.FindTemplateByID(deps.Ctx, c.Name)
	if err == nil {
		return tmpl, nil
	}
	if docspan.ErrorCode(err) != docspan.ENOTFOUND {
		return nil, err
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
