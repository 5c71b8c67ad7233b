package mock

import (
	"context"

	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of spraydoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *spraydoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *spraydoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
