package spraydoc

import (
	"regexp"
	"strings"
)

// DirectiveGroup is one entry of a directive catalog. Entries holds the
// member directive names separated by whitespace.
type DirectiveGroup struct {
	Group   string `json:"group" yaml:"group"`
	Entries string `json:"entries" yaml:"entries"`
}

// DirectiveCatalog maps directive groups to their members, in page order.
// It is supplied by the documentation build and is never mutated.
type DirectiveCatalog []DirectiveGroup

// Directive is a single linkable directive.
// Group already carries the "-directives" suffix used in reference URLs.
type Directive struct {
	Group string
	Name  string
}

// DirectiveIndex is the flattened, ordered form of a DirectiveCatalog.
// It is built once and is read-only afterwards, so it is safe to share
// between goroutines.
type DirectiveIndex struct {
	directives []Directive
}

// NewDirectiveIndex flattens a catalog into an index. Group order and entry
// order are preserved and duplicate names are kept; Find returns the first.
func NewDirectiveIndex(catalog DirectiveCatalog) *DirectiveIndex {
	var directives []Directive
	for _, g := range catalog {
		for _, name := range strings.Fields(g.Entries) {
			directives = append(directives, Directive{
				Group: g.Group + "-directives",
				Name:  name,
			})
		}
	}
	return &DirectiveIndex{directives: directives}
}

// Find returns the first directive whose name equals name exactly.
func (ix *DirectiveIndex) Find(name string) (Directive, bool) {
	for _, d := range ix.directives {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// Len returns the number of indexed directives.
func (ix *DirectiveIndex) Len() int {
	return len(ix.directives)
}

// Directives returns a copy of the indexed directives in index order.
func (ix *DirectiveIndex) Directives() []Directive {
	out := make([]Directive, len(ix.directives))
	copy(out, ix.directives)
	return out
}

// versionRE captures the documentation version from a spray-routing page
// path. Milestone versions (e.g. "1.0-M8") never match because the
// capture excludes "M".
var versionRE = regexp.MustCompile(`/documentation/([^/M]*)/spray-routing/.*`)

// PageVersion extracts the documentation version from a page path.
// It returns false when the page is not a spray-routing documentation page,
// in which case no directive links are generated for it.
func PageVersion(path string) (string, bool) {
	m := versionRE.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// DirectiveURL returns the reference page path for a directive.
func DirectiveURL(version string, d Directive) string {
	return "/documentation/" + version + "/spray-routing/" + d.Group + "/" + d.Name + "/"
}
