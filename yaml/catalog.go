// Package yaml reads directive catalogs from YAML or JSON files.
package yaml

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spraydoc"
	"gopkg.in/yaml.v3"
)

// ParseCatalog decodes a catalog document: a sequence of {group, entries}
// mappings. JSON input is accepted since it is valid YAML.
func ParseCatalog(data []byte) (spraydoc.DirectiveCatalog, error) {
	var catalog spraydoc.DirectiveCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, spraydoc.Errorf(spraydoc.EINVALID, "invalid catalog: %v", err)
	}
	for i, g := range catalog {
		if strings.TrimSpace(g.Group) == "" {
			return nil, spraydoc.Errorf(spraydoc.EINVALID, "catalog group %d has no name", i+1)
		}
	}
	return catalog, nil
}

// LoadCatalog reads and decodes the catalog at path.
func LoadCatalog(path string) (spraydoc.DirectiveCatalog, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if os.IsNotExist(err) {
		return nil, spraydoc.Errorf(spraydoc.ENOTFOUND, "catalog %s not found", path)
	} else if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}
