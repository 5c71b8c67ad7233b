package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.SuggestionSource = (*LoggingSuggestionSource)(nil)

// LoggingSuggestionSource wraps a SuggestionSource with logging.
type LoggingSuggestionSource struct {
	next   spraydoc.SuggestionSource
	logger *slog.Logger
}

// NewLoggingSuggestionSource creates a new LoggingSuggestionSource.
func NewLoggingSuggestionSource(next spraydoc.SuggestionSource, logger *slog.Logger) *LoggingSuggestionSource {
	return &LoggingSuggestionSource{next: next, logger: logger}
}

// FetchSuggestions delegates to the wrapped source and logs the query.
func (s *LoggingSuggestionSource) FetchSuggestions(ctx context.Context, query string) (suggestions []spraydoc.Suggestion, err error) {
	defer func(begin time.Time) {
		s.logger.Info("suggestions",
			"query", query,
			"count", len(suggestions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchSuggestions(ctx, query)
}
