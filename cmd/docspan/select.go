package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
)

// Run executes the select command.
func (c *SelectCmd) Run(deps *Dependencies) error {
	p, err := docspan.ParsePath(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	tree := docspan.BuildTree(doc.Spans)
	logAmbiguities(deps, doc, tree)

	nodes := docspan.NewSelector(toKinds(c.Kinds)...).Select(tree, p)
	if len(nodes) == 0 {
		fmt.Fprintf(deps.Stderr, "No elements match %q.\n", p.String())
		return nil
	}

	for _, n := range nodes {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", n.Span, doc.Content(*n.Span))
	}
	return nil
}

func logAmbiguities(deps *Dependencies, doc *docspan.Document, tree *docspan.Tree) {
	for _, a := range tree.Ambiguities {
		deps.Logger.Warn("ambiguous structure",
			"source", doc.Source,
			"outer", a.Outer.String(),
			"inner", a.Inner.String(),
		)
	}
}
