package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Loader    docspan.DocumentLoader
	Writer    docspan.DocumentWriter
	Documents docspan.DocumentService
	Templates docspan.TemplateService
	Extractor docspan.RecordExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"DOCSPAN_DB" help:"Database path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Clean     CleanCmd     `cmd:"" help:"Remove noise from documents"`
	Select    SelectCmd    `cmd:"" help:"Print the elements a path selects"`
	Path      PathCmd      `cmd:"" help:"Generate the path of an element"`
	Outline   OutlineCmd   `cmd:"" help:"Print the headings of a document"`
	Learn     LearnCmd     `cmd:"" help:"Learn an extraction template from an example document"`
	Extract   ExtractCmd   `cmd:"" help:"Extract a record from a document with a template"`
	Templates TemplatesCmd `cmd:"" help:"List stored templates"`
	Docs      DocsCmd      `cmd:"" help:"List stored documents"`

	DeleteDoc      DeleteDocCmd      `cmd:"" name:"delete-doc" help:"Delete a stored document"`
	DeleteTemplate DeleteTemplateCmd `cmd:"" name:"delete-template" help:"Delete a stored template"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Files       []string `arg:"" help:"Documents to clean (.json or .html)"`
	RemoveKind  []string `short:"k" name:"remove-kind" help:"Remove elements of this kind (repeatable)"`
	RemoveEmpty bool     `name:"remove-empty" help:"Remove elements with no visible content"`
	Boilerplate bool     `short:"b" help:"Remove elements flagged as page boilerplate"`
	Repeated    []string `short:"r" name:"repeated" help:"Remove elements of this kind repeated across the input documents (repeatable)"`
	Out         string   `short:"o" help:"Write cleaned documents as JSON into this directory"`
	Save        bool     `short:"s" help:"Store cleaned documents in the database"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent document limit"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	File  string   `arg:"" help:"Document (.json or .html)"`
	Path  string   `arg:"" help:"Path expression, e.g. 'body > main > p:nth-of-type(2)'"`
	Kinds []string `short:"k" name:"kind" help:"Recognized kind (repeatable, default all)"`
}

// PathCmd is the "path" subcommand.
type PathCmd struct {
	File  string   `arg:"" help:"Document (.json or .html)"`
	Begin int      `required:"" help:"Element begin offset"`
	End   int      `required:"" help:"Element end offset"`
	Kind  string   `help:"Element kind when several share the range"`
	Kinds []string `short:"k" name:"kind-filter" help:"Recognized kind (repeatable, default all)"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	File string `arg:"" help:"Document (.json or .html)"`
}

// LearnCmd is the "learn" subcommand.
type LearnCmd struct {
	Name   string   `arg:"" help:"Template name"`
	File   string   `arg:"" help:"Example document (.json or .html)"`
	Fields []string `short:"f" name:"field" required:"" help:"Example field as name=begin:end (repeatable)"`
	Kinds  []string `short:"k" name:"kind" help:"Recognized kind (repeatable, default all)"`
	Out    string   `short:"o" help:"Write the template to this YAML file instead of the database"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Name     string `arg:"" help:"Template name"`
	File     string `arg:"" help:"Document (.json or .html)"`
	Template string `short:"t" help:"Read the template from this YAML file instead of the database"`
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Source string `help:"Only documents from this source"`
	Limit  int    `short:"n" default:"50" help:"Maximum number of documents"`
}

// DeleteDocCmd is the "delete-doc" subcommand.
type DeleteDocCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// DeleteTemplateCmd is the "delete-template" subcommand.
type DeleteTemplateCmd struct {
	Name  string `arg:"" help:"Template name or ID"`
	Force bool   `help:"Confirm deletion"`
}
