package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/spraydoc"
)

// Run executes the link command.
func (c *LinkCmd) Run(deps *Dependencies) error {
	src, pagePath, err := c.read(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}

	result, err := deps.Linker.Link(src, pagePath)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spraydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, result.HTML)

	if !result.Active {
		fmt.Fprintf(deps.Stderr, "%s is not a spray-routing page; left unchanged\n", pagePath)
		return nil
	}
	fmt.Fprintf(deps.Stderr, "Linked %d directives (version %s)\n", result.Linked, result.Version)
	return nil
}

// read returns the page source and the path it is served under.
func (c *LinkCmd) read(deps *Dependencies) (string, string, error) {
	if isRemote(c.Source) {
		html, err := deps.Fetcher.Fetch(deps.Ctx, c.Source)
		if err != nil {
			return "", "", err
		}
		pagePath := c.PagePath
		if pagePath == "" {
			u, err := url.Parse(c.Source)
			if err != nil {
				return "", "", spraydoc.Errorf(spraydoc.EINVALID, "invalid URL %q", c.Source)
			}
			pagePath = u.Path
		}
		return html, pagePath, nil
	}

	data, err := os.ReadFile(c.Source)
	if os.IsNotExist(err) {
		return "", "", spraydoc.Errorf(spraydoc.ENOTFOUND, "file %s not found", c.Source)
	} else if err != nil {
		return "", "", err
	}
	pagePath := c.PagePath
	if pagePath == "" {
		pagePath = "/" + strings.TrimPrefix(filepath.ToSlash(c.Source), "/")
	}
	return string(data), pagePath, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
