package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/spraydoc"
)

// maxSuggestionBody caps the size of a suggestion response.
const maxSuggestionBody = 1 << 20

var _ spraydoc.SuggestionSource = (*SuggestionClient)(nil)

// SuggestionClient queries the documentation search endpoint.
type SuggestionClient struct {
	client   *http.Client
	template string
}

// NewSuggestionClient creates a client for the endpoint described by
// template, resolved against baseURL. The literal %QUERY in template is
// replaced with the URL-escaped query. An empty template means
// spraydoc.DefaultSuggestionTemplate.
func NewSuggestionClient(baseURL, template string, opts ...Option) (*SuggestionClient, error) {
	if template == "" {
		template = spraydoc.DefaultSuggestionTemplate
	}
	if !strings.Contains(template, "%QUERY") {
		return nil, spraydoc.Errorf(spraydoc.EINVALID, "suggestion template %q has no %%QUERY placeholder", template)
	}
	if !strings.HasPrefix(template, "http://") && !strings.HasPrefix(template, "https://") {
		base, err := url.Parse(baseURL)
		if err != nil || base.Host == "" {
			return nil, spraydoc.Errorf(spraydoc.EINVALID, "invalid endpoint base URL %q", baseURL)
		}
		template = strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(template, "/")
	}
	client := buildClient(opts)
	return &SuggestionClient{client: client, template: template}, nil
}

// URL returns the request URL for query.
func (c *SuggestionClient) URL(query string) string {
	return strings.ReplaceAll(c.template, "%QUERY", url.QueryEscape(query))
}

// FetchSuggestions returns the ranked suggestions for query.
func (c *SuggestionClient) FetchSuggestions(ctx context.Context, query string) ([]spraydoc.Suggestion, error) {
	target := c.URL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	var suggestions []spraydoc.Suggestion
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxSuggestionBody)).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("decoding suggestions: %w", err)
	}
	return suggestions, nil
}
