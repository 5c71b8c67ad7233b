package http

import (
	"context"

	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.PageSource = (*SitemapSource)(nil)

// SitemapSource discovers the pages of a published site from its sitemaps.
type SitemapSource struct {
	sitemaps spraydoc.SitemapService
	filter   *spraydoc.URLFilter
}

// NewSitemapSource returns a PageSource backed by sitemaps. filter may be nil.
func NewSitemapSource(sitemaps spraydoc.SitemapService, filter *spraydoc.URLFilter) *SitemapSource {
	return &SitemapSource{sitemaps: sitemaps, filter: filter}
}

// Discover returns the sitemap URLs under root.
func (s *SitemapSource) Discover(ctx context.Context, root string) ([]string, error) {
	urls, err := s.sitemaps.DiscoverURLs(ctx, root, s.filter)
	if err != nil {
		return nil, err
	}
	if len(urls) == 0 {
		return nil, spraydoc.Errorf(spraydoc.ENOTFOUND, "no sitemap pages found under %s", root)
	}
	return urls, nil
}
