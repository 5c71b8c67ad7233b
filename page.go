package spraydoc

import "context"

// Page is a rendered documentation page flowing through the site pipeline.
type Page struct {
	URL  string
	HTML string
}

// PageSource lists the pages of a rendered site.
// Implementations hide whether pages come from a sitemap or a local directory.
type PageSource interface {
	Discover(ctx context.Context, root string) ([]string, error)
}

// PageStore persists processed pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
