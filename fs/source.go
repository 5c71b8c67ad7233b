package fs

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spraydoc"
)

var (
	_ spraydoc.PageSource = (*DirSource)(nil)
	_ spraydoc.Fetcher    = (*DirSource)(nil)
)

// DirSource serves the pages of a locally rendered site directory.
// Page URLs are slash-rooted paths relative to the directory, as a web
// server would expose them.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Discover lists the HTML pages whose URL path starts with prefix, in
// lexical order. An empty prefix lists the whole site.
func (s *DirSource) Discover(ctx context.Context, prefix string) ([]string, error) {
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}

	var pages []string
	err := filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isHTML(p) {
			return nil
		}
		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		u := "/" + filepath.ToSlash(rel)
		if strings.HasPrefix(u, prefix) {
			pages = append(pages, u)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, spraydoc.Errorf(spraydoc.ENOTFOUND, "site directory %q not found", s.dir)
		}
		return nil, err
	}
	return pages, nil
}

// Fetch reads the page served at url.
func (s *DirSource) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel, err := URLToPath(url)
	if err != nil {
		return "", spraydoc.Errorf(spraydoc.EINVALID, "invalid page URL %q: %v", url, err)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(path.Clean("/"+rel))))
	if os.IsNotExist(err) {
		return "", spraydoc.Errorf(spraydoc.ENOTFOUND, "page %s not found", url)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (s *DirSource) Close() error {
	return nil
}

func isHTML(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	return ext == ".html" || ext == ".htm"
}
