package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/spraydoc"
	main "github.com/fwojciec/spraydoc/cmd/spraydoc"
	"github.com/fwojciec/spraydoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSiteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("given a local site, when processed, then a linked copy is written", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		out := t.TempDir()
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-routing/index.html"), routingPage)
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-can/index.html"), routingPage)
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"site", src, "linked", out}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 2 pages")
		assert.Contains(t, stdout.String(), "Wrote 2 pages")

		routing, err := os.ReadFile(filepath.Join(out, "linked/documentation/1.2/spray-routing/index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(routing), `href="/documentation/1.2/spray-routing/path-directives/pathPrefix/"`)

		can, err := os.ReadFile(filepath.Join(out, "linked/documentation/1.2/spray-can/index.html"))
		require.NoError(t, err)
		assert.Equal(t, routingPage, string(can))
	})

	t.Run("given a blank page, when processed, then it is copied and the run succeeds", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		out := t.TempDir()
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-routing/index.html"), routingPage)
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-routing/blank.html"), "")
		writeFile(t, filepath.Join(src, "blank.html"), "")
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"site", src, "linked", out}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote 3 pages")
		assert.FileExists(t, filepath.Join(out, "linked/blank.html"))
		routing, err := os.ReadFile(filepath.Join(out, "linked/documentation/1.2/spray-routing/index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(routing), `href="/documentation/1.2/spray-routing/path-directives/pathPrefix/"`)
	})

	t.Run("given a filter, when processed, then only matching pages are written", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		out := t.TempDir()
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-routing/index.html"), routingPage)
		writeFile(t, filepath.Join(src, "blog/index.html"), "<p>blog</p>")
		writeFile(t, filepath.Join(src, "documentation/1.2/spray-routing/old/index.html"), routingPage)
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{
			"site", src, "linked", out, "--filter", "spray-routing", "--exclude", "/old/",
		}, &stdout, &stderr)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(out, "linked/documentation/1.2/spray-routing/index.html"))
		assert.NoFileExists(t, filepath.Join(out, "linked/blog/index.html"))
		assert.NoFileExists(t, filepath.Join(out, "linked/documentation/1.2/spray-routing/old/index.html"))
		assert.Contains(t, stdout.String(), "Fingerprint ")
	})

	t.Run("given a published site, when processed, then sitemap pages are fetched", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		m := main.NewMain()
		m.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(_ context.Context, baseURL string, _ *spraydoc.URLFilter) ([]string, error) {
				return []string{baseURL + "documentation/1.2/spray-routing/"}, nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return routingPage, nil
			},
			CloseFn: func() error { return nil },
		}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"site", "https://spray.io/", "spray", out}, &stdout, &stderr)

		require.NoError(t, err)
		page, err := os.ReadFile(filepath.Join(out, "spray/documentation/1.2/spray-routing/index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), `href="/documentation/1.2/spray-routing/method-directives/get/"`)
	})

	t.Run("given a missing directory, when processed, then it fails without output", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{
			"site", filepath.Join(out, "nope"), "linked", out,
		}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, spraydoc.ENOTFOUND, spraydoc.ErrorCode(err))
		assert.NoDirExists(t, filepath.Join(out, "linked"))
	})

	t.Run("given an invalid filter, when processed, then it fails", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{
			"site", t.TempDir(), "linked", t.TempDir(), "--filter", "(",
		}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, spraydoc.EINVALID, spraydoc.ErrorCode(err))
	})
}
