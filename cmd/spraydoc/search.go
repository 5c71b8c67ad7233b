package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/spraydoc"
	"github.com/fwojciec/spraydoc/goquery"
	"github.com/fwojciec/spraydoc/typeahead"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if deps.Suggestions == nil && c.Version == "" {
		err := spraydoc.Errorf(spraydoc.EINVALID, "nothing to search: set --endpoint or --version")
		fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}

	widget := typeahead.NewWidget(newEngine(deps, c.Version, c.Limit), &printNavigator{w: deps.Stdout})
	view := widget.Input(deps.Ctx, c.Query)
	if view == nil {
		fmt.Fprintf(deps.Stderr, "Type at least %d characters to search.\n", typeahead.DefaultMinLength)
		return nil
	}
	if view.Err != nil {
		fmt.Fprintf(deps.Stderr, "warning: suggestion endpoint failed: %v\n", view.Err)
	}

	if view.Empty != "" {
		fmt.Fprintln(deps.Stdout, goquery.PlainText(view.Empty))
		return nil
	}

	if c.Select > 0 {
		if c.Select > len(view.Suggestions) {
			err := spraydoc.Errorf(spraydoc.EINVALID, "only %d suggestions, cannot select %d", len(view.Suggestions), c.Select)
			fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
			return err
		}
		return widget.Select(view.Suggestions[c.Select-1])
	}

	for i, item := range view.Items {
		fmt.Fprintf(deps.Stdout, "%2d. %s  %s\n", i+1, goquery.PlainText(item), view.Suggestions[i].URL)
	}
	return nil
}

// newEngine builds a suggestion engine over the remote endpoint, seeded
// with the catalog's directives for version when one is given.
func newEngine(deps *Dependencies, version string, limit int) *typeahead.Engine {
	engine := typeahead.NewEngine(deps.Suggestions, typeahead.WithLimit(limit))
	if version != "" {
		engine.Add(typeahead.DirectiveSuggestions(deps.Index, version)...)
	}
	return engine
}

// printNavigator "navigates" by printing the target URL.
type printNavigator struct {
	w io.Writer
}

func (n *printNavigator) Navigate(url string) error {
	_, err := fmt.Fprintln(n.w, url)
	return err
}
