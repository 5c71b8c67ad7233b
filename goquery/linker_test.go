package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/spraydoc"
	"github.com/fwojciec/spraydoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pagePath = "/documentation/1.2.0/spray-routing/basic-directives/"

func newLinker() *goquery.Linker {
	return goquery.NewLinker(spraydoc.NewDirectiveIndex(spraydoc.DirectiveCatalog{
		{Group: "basic", Entries: "path get complete"},
		{Group: "method", Entries: "post get"},
	}))
}

// codeBlock wraps Pygments-style spans in a Sphinx Scala highlight block.
func codeBlock(spans string) string {
	return `<!DOCTYPE html><html><body><div class="highlight-scala"><div class="highlight"><pre>` +
		spans + `</pre></div></div></body></html>`
}

func links(t *testing.T, html string) map[string]string {
	t.Helper()

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	out := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, sel *gq.Selection) {
		href, _ := sel.Attr("href")
		out[sel.Text()] = href
	})
	return out
}

func TestLinker_Link(t *testing.T) {
	t.Parallel()

	t.Run("wraps a directive name in a reference link", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span><span class="o">(</span><span class="s">"x"</span><span class="o">)</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.True(t, result.Active)
		assert.Equal(t, "1.2.0", result.Version)
		assert.Equal(t, 1, result.Linked)
		assert.Equal(t, map[string]string{
			"path": "/documentation/1.2.0/spray-routing/basic-directives/path/",
		}, links(t, result.HTML))
		assert.Contains(t, result.HTML, `<a href="/documentation/1.2.0/spray-routing/basic-directives/path/"><span class="n">path</span></a>`)
	})

	t.Run("first group containing the name wins", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">get</span> <span class="o">{</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, "/documentation/1.2.0/spray-routing/basic-directives/get/", links(t, result.HTML)["get"])
	})

	t.Run("links inline literals", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><p>Use <code class="docutils literal"><span class="pre">complete</span></code> to finish.</p></body></html>`

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Linked)
		assert.Equal(t, "/documentation/1.2.0/spray-routing/basic-directives/complete/", links(t, result.HTML)["complete"])
	})

	t.Run("skips member access after a dot", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">ctx</span><span class="o">.</span><span class="n">complete</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
		assert.Empty(t, links(t, result.HTML))
	})

	t.Run("skips names followed by a colon", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span><span class="k">:</span> <span class="kt">String</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
	})

	t.Run("skips names followed by a space then a colon", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span><span class="w"> </span><span class="k">:</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
	})

	t.Run("skips names followed by several single spaces then equals", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">get</span> <span class="w"> </span> <span class="o">=</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
	})

	t.Run("links when spacing is not a single space", func(t *testing.T) {
		t.Parallel()

		// Two spaces do not count as a skippable separator.
		src := codeBlock(`<span class="n">get</span>  <span class="o">=</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Linked)
	})

	t.Run("links names at the end of a sibling chain", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">post</span> `)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, "/documentation/1.2.0/spray-routing/method-directives/post/", links(t, result.HTML)["post"])
	})

	t.Run("leaves unknown names untouched", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">respondWithMediaType</span>`)

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
		assert.True(t, result.Active)
	})

	t.Run("ignores names outside candidate elements", func(t *testing.T) {
		t.Parallel()

		src := `<html><body><p><span class="n">path</span></p><div class="highlight-java"><span class="n">get</span></div></body></html>`

		result, err := newLinker().Link(src, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 0, result.Linked)
	})

	t.Run("returns input unchanged outside spray-routing docs", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span>`)

		result, err := newLinker().Link(src, "/documentation/1.2.0/spray-can/")

		require.NoError(t, err)
		assert.False(t, result.Active)
		assert.Equal(t, src, result.HTML)
		assert.Equal(t, 0, result.Linked)
	})

	t.Run("returns input unchanged for milestone versions", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span>`)

		result, err := newLinker().Link(src, "/documentation/1.0-M8/spray-routing/")

		require.NoError(t, err)
		assert.False(t, result.Active)
		assert.Equal(t, src, result.HTML)
	})

	t.Run("running twice nests links", func(t *testing.T) {
		t.Parallel()

		src := codeBlock(`<span class="n">path</span>`)
		l := newLinker()

		first, err := l.Link(src, pagePath)
		require.NoError(t, err)
		second, err := l.Link(first.HTML, pagePath)
		require.NoError(t, err)

		assert.Equal(t, 1, second.Linked)
		assert.Equal(t, 2, strings.Count(second.HTML, "<a href="))
	})

	t.Run("honors custom candidate selector", func(t *testing.T) {
		t.Parallel()

		l := goquery.NewLinker(
			spraydoc.NewDirectiveIndex(spraydoc.DirectiveCatalog{{Group: "basic", Entries: "path"}}),
			goquery.WithCandidates("code"),
		)

		result, err := l.Link(`<html><body><code>path</code></body></html>`, pagePath)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Linked)
	})

	t.Run("leaves blank pages unchanged", func(t *testing.T) {
		t.Parallel()

		for _, p := range []string{pagePath, "/other/"} {
			result, err := newLinker().Link("   ", p)

			require.NoError(t, err)
			assert.Equal(t, "   ", result.HTML)
			assert.Equal(t, 0, result.Linked)
		}
	})
}
