// Package chi serves a rendered documentation site locally, linking
// directive references on the fly and answering typeahead queries.
package chi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/fwojciec/spraydoc"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// TypeaheadPath is where the search box queries for suggestions.
const TypeaheadPath = "/search/documentation/typeahead"

// Searcher returns suggestions for a query. Limit caps how many of them
// one response carries.
type Searcher interface {
	Search(ctx context.Context, query string) ([]spraydoc.Suggestion, error)
	Limit() int
}

// Server is the preview server.
type Server struct {
	pages    spraydoc.Fetcher
	linker   spraydoc.Linker
	searcher Searcher
	static   http.Handler
	logger   *slog.Logger

	router chi.Router
}

// NewServer creates a Server. HTML pages are read from pages and linked
// before being served; every other path is delegated to static.
func NewServer(pages spraydoc.Fetcher, linker spraydoc.Linker, searcher Searcher, static http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		pages:    pages,
		linker:   linker,
		searcher: searcher,
		static:   static,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get(TypeaheadPath, s.handleTypeahead)
	r.Get("/*", s.handlePage)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleTypeahead handles GET /search/documentation/typeahead?terms=.
func (s *Server) handleTypeahead(w http.ResponseWriter, r *http.Request) {
	terms := r.URL.Query().Get("terms")
	if strings.TrimSpace(terms) == "" {
		writeJSON(w, http.StatusOK, []spraydoc.Suggestion{})
		return
	}

	suggestions, err := s.searcher.Search(r.Context(), terms)
	if err != nil {
		if len(suggestions) == 0 {
			s.handleError(w, r, err)
			return
		}
		s.logger.Warn("partial suggestions", "terms", terms, "err", err)
	}
	if limit := s.searcher.Limit(); limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	if suggestions == nil {
		suggestions = []spraydoc.Suggestion{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// handlePage serves HTML pages through the linker and everything else as
// static files.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if !isPage(r.URL.Path) {
		s.static.ServeHTTP(w, r)
		return
	}

	src, err := s.pages.Fetch(r.Context(), r.URL.Path)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := s.linker.Link(src, r.URL.Path)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.HTML))
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("http request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// handleError writes err as a JSON error response with a status derived
// from its code. Internal details are logged, not returned.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := spraydoc.ErrorCode(err), spraydoc.ErrorMessage(err)
	if code == spraydoc.EINTERNAL {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, errorStatus(code), errorResponse{Error: message})
}

type errorResponse struct {
	Error string `json:"error"`
}

var codes = map[string]int{
	spraydoc.EINVALID:  http.StatusBadRequest,
	spraydoc.ENOTFOUND: http.StatusNotFound,
	spraydoc.EINTERNAL: http.StatusInternalServerError,
}

func errorStatus(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// isPage reports whether p names an HTML page rather than an asset.
func isPage(p string) bool {
	if strings.HasSuffix(p, "/") {
		return true
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".html", ".htm":
		return true
	}
	return false
}
