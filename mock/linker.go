package mock

import "github.com/fwojciec/spraydoc"

var _ spraydoc.Linker = (*Linker)(nil)

// Linker is a mock implementation of spraydoc.Linker.
type Linker struct {
	LinkFn func(html string, pagePath string) (*spraydoc.LinkResult, error)
}

func (l *Linker) Link(html string, pagePath string) (*spraydoc.LinkResult, error) {
	return l.LinkFn(html, pagePath)
}
