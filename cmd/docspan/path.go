package main

import (
	"fmt"

	"github.com/fwojciec/docspan"
)

// Run executes the path command.
func (c *PathCmd) Run(deps *Dependencies) error {
	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	tree := docspan.BuildTree(doc.Spans)
	logAmbiguities(deps, doc, tree)

	target := docspan.Span{Begin: c.Begin, End: c.End, Kind: docspan.Kind(c.Kind)}
	n := tree.Lookup(target)
	if n == nil {
		err := docspan.Errorf(docspan.ENOTFOUND, "no element at %s", target)
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	p, ok := docspan.NewSelector(toKinds(c.Kinds)...).GeneratePath(n)
	if !ok {
		err := docspan.Errorf(docspan.EINVALID, "element %s has no path: kind %q is not recognized", n.Span, n.Kind())
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, p)
	return nil
}
