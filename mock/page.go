package mock

import (
	"context"

	"github.com/fwojciec/spraydoc"
)

// Compile-time interface verification.
var (
	_ spraydoc.PageSource    = (*PageSource)(nil)
	_ spraydoc.PageStore     = (*PageStore)(nil)
	_ spraydoc.DomainLimiter = (*DomainLimiter)(nil)
)

// PageSource is a mock implementation of spraydoc.PageSource.
type PageSource struct {
	DiscoverFn func(ctx context.Context, root string) ([]string, error)
}

func (s *PageSource) Discover(ctx context.Context, root string) ([]string, error) {
	return s.DiscoverFn(ctx, root)
}

// PageStore is a mock implementation of spraydoc.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *spraydoc.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *spraydoc.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// DomainLimiter is a mock implementation of spraydoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
