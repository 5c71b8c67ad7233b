package spraydoc

import "context"

// DefaultSuggestionTemplate is the documentation search endpoint.
// The literal %QUERY is replaced with the escaped user input.
const DefaultSuggestionTemplate = "/search/documentation/typeahead?terms=%QUERY"

// Suggestion is one result returned by the documentation search endpoint.
type Suggestion struct {
	Name  string          `json:"name"`
	URL   string          `json:"url"`
	Extra SuggestionExtra `json:"extra"`
}

// SuggestionExtra carries display metadata for a suggestion.
type SuggestionExtra struct {
	Parent string `json:"parent"`
}

// SuggestionSource returns ranked suggestions for a query.
type SuggestionSource interface {
	FetchSuggestions(ctx context.Context, query string) ([]Suggestion, error)
}

// Navigator moves the current browsing context to a new location.
type Navigator interface {
	Navigate(url string) error
}
