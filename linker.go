package spraydoc

// LinkResult holds the outcome of linking directives in a single page.
type LinkResult struct {
	// HTML is the transformed document. It equals the input when the page
	// is not a spray-routing documentation page.
	HTML string

	// Version is the documentation version extracted from the page path.
	Version string

	// Active reports whether the page path matched the version pattern.
	Active bool

	// Linked is the number of elements wrapped in a directive link.
	Linked int
}

// Linker decorates directive names in rendered code samples with links to
// their reference pages.
type Linker interface {
	// Link transforms html, served at pagePath, and returns the result.
	// Pages outside the spray-routing documentation are returned unchanged.
	Link(html string, pagePath string) (*LinkResult, error)
}
