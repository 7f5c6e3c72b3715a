package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/fs"
)

// Run executes the learn command.
func (c *LearnCmd) Run(deps *Dependencies) error {
	examples, err := parseFields(c.Fields)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	doc, err := deps.Loader.LoadDocument(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	tmpl, err := docspan.Learn(doc, c.Name, toKinds(c.Kinds), examples)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		err = fs.WriteTemplate(c.Out, tmpl)
	} else {
		err = deps.Templates.CreateTemplate(deps.Ctx, tmpl)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docspan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Learned template %q:\n", tmpl.Name)
	for _, f := range tmpl.Fields {
		fmt.Fprintf(deps.Stdout, "  %s: %s\n", f.Name, f.Path)
	}
	return nil
}

// parseFields parses name=begin:end example arguments.
func parseFields(args []string) (map[string]docspan.Span, error) {
	examples := make(map[string]docspan.Span, len(args))
	for _, arg := range args {
		name, rng, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, docspan.Errorf(docspan.EINVALID, "invalid field %q: expected name=begin:end", arg)
		}
		b, e, ok := strings.Cut(rng, ":")
		if !ok {
			return nil, docspan.Errorf(docspan.EINVALID, "invalid field %q: expected name=begin:end", arg)
		}
		begin, err := strconv.Atoi(b)
		if err != nil {
			return nil, docspan.Errorf(docspan.EINVALID, "invalid begin offset in %q", arg)
		}
		end, err := strconv.Atoi(e)
		if err != nil {
			return nil, docspan.Errorf(docspan.EINVALID, "invalid end offset in %q", arg)
		}
		if _, dup := examples[name]; dup {
			return nil, docspan.Errorf(docspan.EINVALID, "duplicate field %q", name)
		}
		examples[name] = docspan.Span{Begin: begin, End: end}
	}
	return examples, nil
}
