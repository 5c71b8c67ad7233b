package site

import (
	"context"
	"sync"

	"github.com/fwojciec/spraydoc"
	"golang.org/x/time/rate"
)

var _ spraydoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host so a remote documentation
// site is fetched politely while other hosts proceed independently.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per host, without bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = l
	}
	d.mu.Unlock()

	return l.Wait(ctx)
}
