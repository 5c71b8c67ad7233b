// Package site applies the directive linker across a whole rendered
// documentation site, ahead of time. It coordinates page discovery,
// fetching, linking and staged storage.
package site

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/spraydoc"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed at once.
const DefaultConcurrency = 4

// Processor links every page of a site and stores the result.
type Processor struct {
	Source      spraydoc.PageSource
	Fetcher     spraydoc.Fetcher
	Linker      spraydoc.Linker
	Store       spraydoc.PageStore
	RateLimiter spraydoc.DomainLimiter // optional
	Filter      *spraydoc.URLFilter    // optional
	Concurrency int
	RetryDelays []time.Duration

	// AllowFailures commits the output even when some pages failed.
	AllowFailures bool
}

// Result summarizes a processing run.
type Result struct {
	RunID   string
	Pages   int // pages saved
	Linked  int // links inserted across all saved pages
	Changed int // saved pages whose HTML differs from the source
	Failed  int
	Bytes   int

	// Fingerprint is the xxhash of every saved page URL and output hash,
	// in URL order. Two runs producing the same site share a fingerprint.
	Fingerprint string
}

// ProgressType indicates the kind of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Linked    int
	Error     error
}

// ProgressFunc receives progress events. It is called from a single
// goroutine.
type ProgressFunc func(ProgressEvent)

type pageResult struct {
	url     string
	html    string
	hash    string
	linked  int
	changed bool
	err     error
}

// Process discovers the pages under root, links them and saves them to the
// store. The store is committed when every page succeeded (or
// AllowFailures is set) and aborted otherwise.
func (p *Processor) Process(ctx context.Context, root string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	discovered, err := p.Source.Discover(ctx, root)
	if err != nil {
		return nil, err
	}
	urls := p.dedupe(discovered)

	result := &Result{RunID: uuid.NewString()}
	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	go func() {
		for _, u := range urls {
			g.Go(func() error {
				resultCh <- p.processPage(gctx, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var done int
	var saveErr error
	hashes := make(map[string]string, total)
	for r := range resultCh {
		done++

		if r.err == nil {
			if saveErr != nil {
				r.err = saveErr
			} else if err := p.Store.Save(ctx, &spraydoc.Page{URL: r.url, HTML: r.html}); err != nil {
				saveErr = err
				r.err = err
			}
		}
		if r.err != nil {
			result.Failed++
			progress(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, URL: r.url, Error: r.err})
			continue
		}

		result.Pages++
		result.Linked += r.linked
		result.Bytes += len(r.html)
		hashes[r.url] = r.hash
		if r.changed {
			result.Changed++
		}
		progress(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: r.url, Linked: r.linked})
	}
	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	result.Fingerprint = fingerprint(hashes)

	if err := ctx.Err(); err != nil {
		_ = p.Store.Abort()
		return result, err
	}
	if saveErr != nil {
		_ = p.Store.Abort()
		return result, saveErr
	}
	if result.Failed > 0 && !p.AllowFailures {
		_ = p.Store.Abort()
		return result, spraydoc.Errorf(spraydoc.EINTERNAL, "%d of %d pages failed", result.Failed, total)
	}
	if err := p.Store.Commit(); err != nil {
		return result, err
	}
	return result, nil
}

// dedupe drops repeated and filtered-out URLs, keeping discovery order.
func (p *Processor) dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !p.Filter.Match(u) {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}

// fingerprint combines per-page hashes into a single site hash.
func fingerprint(hashes map[string]string) string {
	urls := make([]string, 0, len(hashes))
	for u := range hashes {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	d := xxhash.New()
	for _, u := range urls {
		_, _ = d.WriteString(u)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(hashes[u])
		_, _ = d.WriteString("\n")
	}
	return fmt.Sprintf("%x", d.Sum64())
}

func (p *Processor) processPage(ctx context.Context, pageURL string) pageResult {
	r := pageResult{url: pageURL}

	if p.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
				r.err = err
				return r
			}
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	src, err := fetchWithRetry(ctx, pageURL, p.Fetcher.Fetch, delays)
	if err != nil {
		r.err = err
		return r
	}

	linked, err := p.Linker.Link(src, PagePath(pageURL))
	if err != nil {
		r.err = err
		return r
	}

	r.html = linked.HTML
	r.hash = ComputeHash(linked.HTML)
	r.linked = linked.Linked
	r.changed = linked.HTML != src
	return r
}

// PagePath returns the path component of a page URL, which is what the
// linker matches the documentation version against.
func PagePath(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Path
}
