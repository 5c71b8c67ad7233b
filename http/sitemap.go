package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.SitemapService = (*SitemapService)(nil)

// SitemapService lists the pages of a published documentation site from
// its XML sitemaps.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a SitemapService. A nil client means
// http.DefaultClient.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns every page URL in the site's sitemaps that lies
// under baseURL's path and passes filter. Sitemaps come from robots.txt
// Sitemap directives, falling back to /sitemap.xml. Sitemap indexes are
// followed recursively, each sitemap at most once.
// The result is empty (not nil) when the site has no sitemap.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *spraydoc.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, spraydoc.Errorf(spraydoc.EINVALID, "invalid base URL: %v", err)
	}
	prefix := strings.TrimSuffix(base.Path, "/")
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	crawl := &sitemapCrawl{svc: s, visited: make(map[string]bool)}
	urls := []string{}
	seen := make(map[string]bool)
	for _, sm := range sitemaps {
		locs, err := crawl.read(ctx, sm)
		if err != nil {
			return nil, err
		}
		for _, loc := range locs {
			if seen[loc] || !underPath(loc, prefix) || !filter.Match(loc) {
				continue
			}
			seen[loc] = true
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

// underPath reports whether rawURL's path is prefix or lies below it.
// An empty prefix admits every URL.
func underPath(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Path == prefix || strings.HasPrefix(u.Path, prefix+"/")
}

// locateSitemaps returns sitemap URLs declared in robots.txt, or
// /sitemap.xml when robots.txt declares none and that file exists.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if declared, err := s.robotsSitemaps(ctx, robots); err == nil && len(declared) > 0 {
		return declared, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	const directive = "sitemap:"
	var out []string
	sc := bufio.NewScanner(body)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if len(line) <= len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if loc := strings.TrimSpace(line[len(directive):]); loc != "" {
			out = append(out, loc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return out, nil
}

// sitemapCrawl follows one tree of sitemaps and sitemap indexes.
type sitemapCrawl struct {
	svc     *SitemapService
	visited map[string]bool
}

func (c *sitemapCrawl) read(ctx context.Context, sitemapURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if c.visited[sitemapURL] {
		return nil, nil
	}
	c.visited[sitemapURL] = true

	body, err := c.svc.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap %s", sitemapURL)
	}

	if root.Tag != "sitemapindex" {
		return locs(root, "url"), nil
	}

	var out []string
	for _, child := range locs(root, "sitemap") {
		urls, err := c.read(ctx, child)
		if err != nil {
			return nil, err
		}
		out = append(out, urls...)
	}
	return out, nil
}

// locs returns the non-empty <loc> texts of root's children named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
