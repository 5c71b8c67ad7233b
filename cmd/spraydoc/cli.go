package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/spraydoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Index       *spraydoc.DirectiveIndex
	Linker      spraydoc.Linker
	Fetcher     spraydoc.Fetcher
	Sitemaps    spraydoc.SitemapService
	Suggestions spraydoc.SuggestionSource // nil without an endpoint
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose  bool          `short:"v" help:"Enable debug logging"`
	Catalog  string        `short:"C" type:"path" env:"SPRAYDOC_CATALOG" help:"Directive catalog file (YAML or JSON); defaults to the built-in catalog"`
	Endpoint string        `env:"SPRAYDOC_ENDPOINT" help:"Base URL of the documentation search endpoint"`
	Template string        `help:"Suggestion request template; %QUERY is replaced with the query"`
	Timeout  time.Duration `default:"10s" help:"Timeout for each HTTP request"`

	Link   LinkCmd   `cmd:"" help:"Link directive references in a single page"`
	Site   SiteCmd   `cmd:"" help:"Write a linked copy of a whole documentation site"`
	Search SearchCmd `cmd:"" help:"Query directive suggestions like the search box does"`
	Serve  ServeCmd  `cmd:"" help:"Preview a rendered site with links and search"`
}

// LinkCmd is the "link" subcommand.
type LinkCmd struct {
	Source   string `arg:"" help:"HTML file or page URL"`
	PagePath string `name:"page-path" help:"URL path the page is served under; defaults to the URL path or file path"`
}

// SiteCmd is the "site" subcommand.
type SiteCmd struct {
	Source        string   `arg:"" help:"Rendered site directory or published site URL"`
	Name          string   `arg:"" help:"Name for the output directory"`
	Path          string   `arg:"" optional:"" default:"." help:"Base path for output"`
	Filter        []string `short:"F" name:"filter" help:"Only process URLs matching regex (repeatable)"`
	Exclude       []string `short:"X" name:"exclude" help:"Skip URLs matching regex (repeatable)"`
	Concurrency   int      `short:"c" default:"4" help:"Concurrent page limit"`
	Rate          float64  `default:"2" help:"Requests per second per host when fetching a published site"`
	AllowFailures bool     `name:"allow-failures" help:"Write the output even when some pages fail"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query   string `arg:"" help:"Search text"`
	Version string `help:"Documentation version whose directives are searched locally"`
	Limit   int    `default:"10" help:"Maximum number of suggestions"`
	Select  int    `help:"Navigate to the n-th suggestion (1-based)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Dir     string `arg:"" type:"existingdir" help:"Rendered site directory"`
	Addr    string `default:"localhost:8080" help:"Listen address"`
	Version string `help:"Documentation version whose directives are searched locally"`
}
