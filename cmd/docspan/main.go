package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docspan"
	"github.com/fwojciec/docspan/fs"
	"github.com/fwojciec/docspan/goquery"
	docslog "github.com/fwojciec/docspan/slog"
	"github.com/fwojciec/docspan/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService docspan.DocumentService
	TemplateService docspan.TemplateService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docspan"),
		kong.Description("Clean, query and template span-annotated documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docspan --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Loader = fs.NewLoader(goquery.NewParser())
	deps.Extractor = docslog.NewLoggingExtractor(docspan.NewExtractor(), deps.Logger)

	cmd := strings.Fields(kongCtx.Command())[0]
	if needsDB(cmd, cli) {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCSPAN_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = sqlite.NewDocumentService(m.DB)
		m.TemplateService = sqlite.NewTemplateService(m.DB)
		deps.DB = m.DB
		deps.Documents = m.DocumentService
		deps.Templates = m.TemplateService
	}

	if cmd == "clean" && cli.Clean.Out != "" {
		deps.Writer = fs.NewWriter(cli.Clean.Out)
	}

	return kongCtx.Run(deps)
}

// needsDB reports whether the command reads or writes the database.
func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "clean":
		return cli.Clean.Save
	case "learn":
		return cli.Learn.Out == ""
	case "extract":
		return cli.Extract.Template == ""
	case "templates", "docs", "delete-doc", "delete-template":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSPAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docspan.db"
	}
	dir := filepath.Join(home, ".docspan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docspan.db")
}
