// Package fs provides file-system storage and sources for rendered sites.
package fs

import (
	"net/url"
	"path"
	"strings"
)

// URLToPath converts a page URL to a relative, slash-separated file path.
//
//	https://spray.io/documentation/1.2/spray-routing/ → documentation/1.2/spray-routing/index.html
//	/documentation/1.2/index.html                     → documentation/1.2/index.html
//	/documentation/1.2/changelog                      → documentation/1.2/changelog.html
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	p := u.Path
	if p == "" || p == "/" {
		return "index.html", nil
	}

	dir := strings.HasSuffix(p, "/")
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	switch {
	case dir:
		return p + "/index.html", nil
	case strings.HasSuffix(p, ".html"), strings.HasSuffix(p, ".htm"):
		return p, nil
	default:
		return p + ".html", nil
	}
}
