package spraydoc

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs of a published documentation site.
type SitemapService interface {
	// DiscoverURLs returns the URLs listed in the site's sitemaps, following
	// robots.txt Sitemap directives first and /sitemap.xml otherwise.
	// A nil filter accepts every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects which pages of a site are processed.
type URLFilter struct {
	// Include, when non-empty, requires at least one pattern to match.
	Include []*regexp.Regexp

	// Exclude rejects URLs matching any pattern. Applied after Include.
	Exclude []*regexp.Regexp
}

// CompileURLFilter builds a filter from include and exclude patterns.
// It returns nil when no patterns are given.
func CompileURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	var err error
	if f.Include, err = compilePatterns(include); err != nil {
		return nil, err
	}
	if f.Exclude, err = compilePatterns(exclude); err != nil {
		return nil, err
	}
	return f, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid filter pattern %q: %v", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Match reports whether url passes the filter. A nil filter matches all.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}
	return true
}
