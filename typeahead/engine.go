// Package typeahead implements the documentation search autocomplete:
// a suggestion engine merging a local corpus with a remote source, and a
// widget state machine that renders results and navigates on selection.
package typeahead

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/spraydoc"
)

// DefaultLimit is the maximum number of suggestions returned per query.
const DefaultLimit = 10

// Tokenize splits s on whitespace. It is used for both the local corpus and
// the live query.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

// DatumTokens returns the tokens a suggestion is indexed under.
func DatumTokens(s spraydoc.Suggestion) []string {
	return Tokenize(strings.ToLower(s.Name + " " + s.Extra.Parent))
}

// Engine answers queries from an optional local corpus first and fills the
// remaining slots with remote results. Suggestions are de-duplicated by URL.
type Engine struct {
	remote spraydoc.SuggestionSource
	limit  int

	mu    sync.RWMutex
	local []indexedDatum
}

type indexedDatum struct {
	datum  spraydoc.Suggestion
	tokens []string
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLimit sets the maximum number of suggestions per query.
// Values below 1 are ignored.
func WithLimit(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.limit = n
		}
	}
}

// NewEngine creates an Engine backed by remote. remote may be nil, in which
// case only the local corpus is searched.
func NewEngine(remote spraydoc.SuggestionSource, opts ...EngineOption) *Engine {
	e := &Engine{
		remote: remote,
		limit:  DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Limit returns the maximum number of suggestions per query.
func (e *Engine) Limit() int {
	return e.limit
}

// Add indexes datums in the local corpus.
func (e *Engine) Add(datums ...spraydoc.Suggestion) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range datums {
		e.local = append(e.local, indexedDatum{datum: d, tokens: DatumTokens(d)})
	}
}

// Search returns at most Limit suggestions for query. A remote failure is
// returned together with whatever local matches were found.
func (e *Engine) Search(ctx context.Context, query string) ([]spraydoc.Suggestion, error) {
	results := e.searchLocal(query)
	if len(results) >= e.limit || e.remote == nil {
		return results, nil
	}

	remote, err := e.remote.FetchSuggestions(ctx, query)
	if err != nil {
		return results, err
	}

	seen := make(map[string]bool, len(results))
	for _, r := range results {
		seen[r.URL] = true
	}
	for _, r := range remote {
		if len(results) >= e.limit {
			break
		}
		if seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		results = append(results, r)
	}
	return results, nil
}

// searchLocal returns local datums where every query token prefixes at
// least one datum token, in insertion order.
func (e *Engine) searchLocal(query string) []spraydoc.Suggestion {
	queryTokens := Tokenize(strings.ToLower(query))
	if len(queryTokens) == 0 {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []spraydoc.Suggestion
	for _, d := range e.local {
		if len(out) >= e.limit {
			break
		}
		if matchesAll(d.tokens, queryTokens) {
			out = append(out, d.datum)
		}
	}
	return out
}

func matchesAll(datumTokens, queryTokens []string) bool {
	for _, q := range queryTokens {
		found := false
		for _, t := range datumTokens {
			if strings.HasPrefix(t, q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// DirectiveSuggestions converts a directive index into suggestions that
// point at the reference pages of the given documentation version.
func DirectiveSuggestions(index *spraydoc.DirectiveIndex, version string) []spraydoc.Suggestion {
	directives := index.Directives()
	out := make([]spraydoc.Suggestion, 0, len(directives))
	for _, d := range directives {
		out = append(out, spraydoc.Suggestion{
			Name:  d.Name,
			URL:   spraydoc.DirectiveURL(version, d),
			Extra: spraydoc.SuggestionExtra{Parent: d.Group},
		})
	}
	return out
}
