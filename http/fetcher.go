// Package http provides HTTP implementations of spraydoc services: page
// fetching, sitemap discovery and the documentation search client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/spraydoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// UserAgent identifies spraydoc requests.
const UserAgent = "spraydoc/1.0"

var _ spraydoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered documentation pages. Sphinx output is static,
// so no JavaScript rendering is needed.
type Fetcher struct {
	client *http.Client
}

// Option configures HTTP services in this package.
type Option func(*options)

type options struct {
	client  *http.Client
	timeout time.Duration
}

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient sets the underlying client. The client is copied and its
// Timeout always replaced by the WithTimeout value, DefaultFetchTimeout
// unless given.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

func buildClient(opts []Option) *http.Client {
	o := &options{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(o)
	}
	client := &http.Client{}
	if o.client != nil {
		c := *o.client
		client = &c
	}
	client.Timeout = o.timeout
	return client
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	return &Fetcher{client: buildClient(opts)}
}

// Fetch returns the body served at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", spraydoc.Errorf(spraydoc.ENOTFOUND, "page %s not found", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}
