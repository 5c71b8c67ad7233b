package mock

import (
	"context"

	"github.com/fwojciec/spraydoc"
)

var (
	_ spraydoc.SuggestionSource = (*SuggestionSource)(nil)
	_ spraydoc.Navigator        = (*Navigator)(nil)
)

// SuggestionSource is a mock implementation of spraydoc.SuggestionSource.
type SuggestionSource struct {
	FetchSuggestionsFn func(ctx context.Context, query string) ([]spraydoc.Suggestion, error)
}

func (s *SuggestionSource) FetchSuggestions(ctx context.Context, query string) ([]spraydoc.Suggestion, error) {
	return s.FetchSuggestionsFn(ctx, query)
}

// Navigator is a mock implementation of spraydoc.Navigator.
type Navigator struct {
	NavigateFn func(url string) error
}

func (n *Navigator) Navigate(url string) error {
	return n.NavigateFn(url)
}
