package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/spraydoc"
)

var _ spraydoc.PageStore = (*SiteStore)(nil)

// SiteStore writes processed pages under baseDir/name. Pages are staged in
// baseDir/name.tmp and replace the previous output only on Commit.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a SiteStore.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{baseDir: baseDir, name: name}
}

// Dir returns the final output directory.
func (s *SiteStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *SiteStore) stagingDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Save stages a page.
func (s *SiteStore) Save(ctx context.Context, page *spraydoc.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel, err := URLToPath(page.URL)
	if err != nil {
		return spraydoc.Errorf(spraydoc.EINVALID, "invalid page URL %q: %v", page.URL, err)
	}

	full := filepath.Join(s.stagingDir(), filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, []byte(page.HTML), 0644)
}

// Commit replaces the output directory with the staged pages.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}
	if _, err := os.Stat(s.stagingDir()); os.IsNotExist(err) {
		return os.MkdirAll(s.Dir(), 0755)
	}
	return os.Rename(s.stagingDir(), s.Dir())
}

// Abort discards the staged pages.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.stagingDir())
}
