package typeahead

import (
	"context"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/spraydoc"
)

// DefaultMinLength is the number of characters typed before a query is sent.
const DefaultMinLength = 3

// State is the widget's position in its input lifecycle.
type State int

const (
	StateIdle State = iota
	StateQuerying
	StateDisplaying
)

func (s State) String() string {
	switch s {
	case StateQuerying:
		return "querying"
	case StateDisplaying:
		return "displaying"
	default:
		return "idle"
	}
}

// Searcher returns suggestions for a query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]spraydoc.Suggestion, error)
}

// View is what the widget shows for the current input.
type View struct {
	Query       string
	Suggestions []spraydoc.Suggestion

	// Items holds one rendered entry per suggestion.
	Items []string

	// Empty holds the rendered empty-state message when no suggestion was
	// found, and is blank otherwise.
	Empty string

	// Err is the search failure, if any. It is reported for logging only;
	// the view itself degrades to the empty state.
	Err error
}

// Widget drives a search box: it queries once enough characters are typed,
// renders the results, and navigates when a suggestion is selected.
// A Widget serves a single input and is not safe for concurrent use.
type Widget struct {
	searcher  Searcher
	navigator spraydoc.Navigator
	minLength int

	state State
	view  *View
}

// WidgetOption configures a Widget.
type WidgetOption func(*Widget)

// WithMinLength sets how many characters must be typed before querying.
func WithMinLength(n int) WidgetOption {
	return func(w *Widget) {
		w.minLength = n
	}
}

// NewWidget creates a Widget in the idle state.
func NewWidget(searcher Searcher, navigator spraydoc.Navigator, opts ...WidgetOption) *Widget {
	w := &Widget{
		searcher:  searcher,
		navigator: navigator,
		minLength: DefaultMinLength,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current state.
func (w *Widget) State() State {
	return w.state
}

// View returns the last rendered view, or nil when idle.
func (w *Widget) View() *View {
	return w.view
}

// Input handles the current contents of the search box. Input shorter than
// the minimum length returns the widget to idle without querying and
// yields a nil view.
func (w *Widget) Input(ctx context.Context, text string) *View {
	if utf8.RuneCountInString(text) < w.minLength {
		w.reset()
		return nil
	}

	w.state = StateQuerying
	suggestions, err := w.searcher.Search(ctx, text)

	view := &View{Query: text, Suggestions: suggestions, Err: err}
	if len(suggestions) == 0 {
		view.Empty = RenderEmpty(text)
	}
	for _, s := range suggestions {
		view.Items = append(view.Items, RenderSuggestion(s))
	}

	w.state = StateDisplaying
	w.view = view
	return view
}

// Select navigates to the suggestion's URL and returns the widget to idle.
func (w *Widget) Select(s spraydoc.Suggestion) error {
	w.reset()
	if s.URL == "" {
		return spraydoc.Errorf(spraydoc.EINVALID, "suggestion %q has no URL", s.Name)
	}
	return w.navigator.Navigate(s.URL)
}

// Clear empties the input and returns the widget to idle.
func (w *Widget) Clear() {
	w.reset()
}

func (w *Widget) reset() {
	w.state = StateIdle
	w.view = nil
}

// RenderEmpty renders the message shown when a query has no results.
func RenderEmpty(query string) string {
	return strings.Join([]string{
		`<span class="tt-empty-message">`,
		`Could not find results for: <strong>` + html.EscapeString(query) + `</strong>`,
		`</span>`,
	}, "\n")
}

// RenderSuggestion renders a single suggestion as its parent label followed
// by its emphasized name.
func RenderSuggestion(s spraydoc.Suggestion) string {
	return `<div>` + html.EscapeString(s.Extra.Parent) + `:&nbsp;<strong>` + html.EscapeString(s.Name) + `</strong></div>`
}
