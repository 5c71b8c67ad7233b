// Package goquery implements HTML transforms for spraydoc using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spraydoc"
	"github.com/fwojciec/spraydoc/bloom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultCandidates selects Pygments name tokens in Scala code blocks and
// inline literals, which is where Sphinx renders directive names.
const DefaultCandidates = ".highlight-scala .n, .literal .pre"

// nameFalsePositiveRate is the error rate of the candidate name prefilter.
const nameFalsePositiveRate = 0.001

// maxSiblingSteps bounds the walk over whitespace-only siblings.
const maxSiblingSteps = 64

var _ spraydoc.Linker = (*Linker)(nil)

// Linker wraps directive names found in code samples with links to their
// reference pages. The document is parsed into a tree, transformed and
// rendered back, so a Linker never touches a live page.
type Linker struct {
	index      *spraydoc.DirectiveIndex
	names      *bloom.Filter // rejects most non-directive tokens before Find
	candidates string
}

// Option configures a Linker.
type Option func(*Linker)

// WithCandidates overrides the CSS selector for candidate elements.
func WithCandidates(selector string) Option {
	return func(l *Linker) {
		l.candidates = selector
	}
}

// NewLinker creates a Linker backed by the given directive index.
func NewLinker(index *spraydoc.DirectiveIndex, opts ...Option) *Linker {
	directives := index.Directives()
	l := &Linker{
		index:      index,
		names:      bloom.NewFilter(uint(len(directives)), nameFalsePositiveRate),
		candidates: DefaultCandidates,
	}
	for _, d := range directives {
		l.names.Add(d.Name)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Link wraps every qualifying candidate element in an anchor pointing at
// the directive's reference page. Pages whose path does not carry a
// spray-routing documentation version are returned untouched, as are
// blank pages.
func (l *Linker) Link(src string, pagePath string) (*spraydoc.LinkResult, error) {
	version, ok := spraydoc.PageVersion(pagePath)
	if !ok {
		return &spraydoc.LinkResult{HTML: src}, nil
	}
	if strings.TrimSpace(src) == "" {
		return &spraydoc.LinkResult{HTML: src, Version: version, Active: true}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, spraydoc.Errorf(spraydoc.EINVALID, "failed to parse HTML: %v", err)
	}

	linked := 0
	doc.Find(l.candidates).Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)

		// Crude guards against member access ("ctx.complete"), named
		// arguments ("path: String") and assignments ("val get = ...").
		if n.PrevSibling != nil && textContent(n.PrevSibling) == "." {
			return
		}
		if nextTextHasPrefix(n, ":") || nextTextHasPrefix(n, "=") {
			return
		}

		name := sel.Text()
		if !l.names.Test(name) {
			return
		}
		d, ok := l.index.Find(name)
		if !ok {
			return
		}
		sel.WrapNode(anchor(spraydoc.DirectiveURL(version, d)))
		linked++
	})

	out, err := doc.Html()
	if err != nil {
		return nil, spraydoc.Errorf(spraydoc.EINTERNAL, "failed to render HTML: %v", err)
	}

	return &spraydoc.LinkResult{
		HTML:    out,
		Version: version,
		Active:  true,
		Linked:  linked,
	}, nil
}

// nextTextHasPrefix reports whether the first sibling after n that is not a
// single space has text starting with prefix.
func nextTextHasPrefix(n *html.Node, prefix string) bool {
	next := n.NextSibling
	for steps := 0; next != nil && steps < maxSiblingSteps; steps++ {
		text := textContent(next)
		if strings.HasPrefix(text, prefix) {
			return true
		}
		if text != " " {
			return false
		}
		next = next.NextSibling
	}
	return false
}

// textContent mirrors the DOM textContent property for a single node.
func textContent(n *html.Node) string {
	switch n.Type {
	case html.TextNode, html.CommentNode:
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func anchor(href string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.A,
		Data:     "a",
		Attr:     []html.Attribute{{Key: "href", Val: href}},
	}
}
