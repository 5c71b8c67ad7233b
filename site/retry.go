package site

import (
	"context"
	"time"

	"github.com/fwojciec/spraydoc"
)

// DefaultRetryDelays returns the backoff between fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry calls fetch until it succeeds, sleeping delays[i] after
// the i-th failure. Not-found pages are not retried.
func fetchWithRetry(ctx context.Context, url string, fetch func(context.Context, string) (string, error), delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) || spraydoc.ErrorCode(err) == spraydoc.ENOTFOUND {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
