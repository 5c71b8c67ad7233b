package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/spraydoc"
	"github.com/fwojciec/spraydoc/goquery"
	sprayhttp "github.com/fwojciec/spraydoc/http"
	sprayslog "github.com/fwojciec/spraydoc/slog"
	sprayyaml "github.com/fwojciec/spraydoc/yaml"
)

// defaultCatalog is used when no --catalog is given.
//
//go:embed catalog.yaml
var defaultCatalog []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Nil values are replaced with the
	// HTTP implementations.
	Fetcher     spraydoc.Fetcher
	Sitemaps    spraydoc.SitemapService
	Suggestions spraydoc.SuggestionSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("spraydoc"),
		kong.Description("Link directive references in spray-routing documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'spraydoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
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

	catalog, err := m.loadCatalog(cli.Catalog)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}
	deps.Index = spraydoc.NewDirectiveIndex(catalog)
	deps.Logger.Debug("catalog loaded", "path", cli.Catalog, "directives", deps.Index.Len())
	deps.Linker = sprayslog.NewLoggingLinker(goquery.NewLinker(deps.Index), deps.Logger)

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = sprayhttp.NewFetcher(sprayhttp.WithTimeout(cli.Timeout))
	}
	deps.Fetcher = sprayslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer deps.Fetcher.Close()

	sitemaps := m.Sitemaps
	if sitemaps == nil {
		sitemaps = sprayhttp.NewSitemapService(nil)
	}
	deps.Sitemaps = sprayslog.NewLoggingSitemapService(sitemaps, deps.Logger)

	suggestions := m.Suggestions
	if suggestions == nil && cli.Endpoint != "" {
		client, err := sprayhttp.NewSuggestionClient(cli.Endpoint, cli.Template, sprayhttp.WithTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", spraydoc.ErrorMessage(err))
			return err
		}
		suggestions = client
	}
	if suggestions != nil {
		deps.Suggestions = sprayslog.NewLoggingSuggestionSource(suggestions, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) loadCatalog(path string) (spraydoc.DirectiveCatalog, error) {
	if path == "" {
		return sprayyaml.ParseCatalog(defaultCatalog)
	}
	return sprayyaml.LoadCatalog(path)
}
