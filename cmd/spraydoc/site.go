package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/spraydoc"
	"github.com/fwojciec/spraydoc/fs"
	sprayhttp "github.com/fwojciec/spraydoc/http"
	"github.com/fwojciec/spraydoc/site"
)

// Run executes the site command.
func (c *SiteCmd) Run(deps *Dependencies) error {
	filter, err := spraydoc.CompileURLFilter(c.Filter, c.Exclude)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}

	store := fs.NewSiteStore(c.Path, c.Name)
	p := &site.Processor{
		Linker:        deps.Linker,
		Store:         store,
		Filter:        filter,
		Concurrency:   c.Concurrency,
		AllowFailures: c.AllowFailures,
	}

	root := ""
	if isRemote(c.Source) {
		p.Source = sprayhttp.NewSitemapSource(deps.Sitemaps, filter)
		p.Fetcher = deps.Fetcher
		p.RateLimiter = site.NewDomainLimiter(c.Rate)
		root = c.Source
	} else {
		dir := fs.NewDirSource(c.Source)
		p.Source = dir
		p.Fetcher = dir
		p.RetryDelays = []time.Duration{}
	}

	progress := func(event site.ProgressEvent) {
		switch event.Type {
		case site.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case site.ProgressCompleted:
			deps.Logger.Debug("page done",
				"url", site.TruncateURL(event.URL, 80),
				"linked", event.Linked,
				"progress", fmt.Sprintf("%d/%d", event.Completed, event.Total),
			)
		case site.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := p.Process(deps.Ctx, root, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Wrote %d pages to %s (%d changed, %d links)\n",
		result.Pages, store.Dir(), result.Changed, result.Linked)
	fmt.Fprintf(deps.Stdout, "  Fingerprint %s\n", result.Fingerprint)
	deps.Logger.Debug("site run", "run_id", result.RunID, "bytes", result.Bytes, "failed", result.Failed)
	return nil
}
