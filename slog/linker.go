package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.Linker = (*LoggingLinker)(nil)

// LoggingLinker wraps a Linker with debug logging.
type LoggingLinker struct {
	next   spraydoc.Linker
	logger *slog.Logger
}

// NewLoggingLinker creates a new LoggingLinker.
func NewLoggingLinker(next spraydoc.Linker, logger *slog.Logger) *LoggingLinker {
	return &LoggingLinker{next: next, logger: logger}
}

// Link delegates to the wrapped linker and logs the detected version and
// the number of links inserted.
func (l *LoggingLinker) Link(html string, pagePath string) (result *spraydoc.LinkResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Warn("link", "page", pagePath, "err", err)
			return
		}
		version := result.Version
		if !result.Active {
			version = "(inactive)"
		}
		l.logger.Debug("link",
			"page", pagePath,
			"version", version,
			"linked", result.Linked,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.Link(html, pagePath)
}
