package spraydoc_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/spraydoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFilter_Match(t *testing.T) {
	t.Parallel()

	t.Run("nil filter matches everything", func(t *testing.T) {
		t.Parallel()

		var f *spraydoc.URLFilter
		assert.True(t, f.Match("https://spray.io/anything"))
	})

	t.Run("include and exclude", func(t *testing.T) {
		t.Parallel()

		f := &spraydoc.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/spray-routing/`)},
			Exclude: []*regexp.Regexp{regexp.MustCompile(`/old/`)},
		}

		assert.True(t, f.Match("https://spray.io/documentation/1.2/spray-routing/"))
		assert.False(t, f.Match("https://spray.io/documentation/1.2/spray-can/"))
		assert.False(t, f.Match("https://spray.io/old/documentation/1.2/spray-routing/"))
	})
}

func TestCompileURLFilter(t *testing.T) {
	t.Parallel()

	t.Run("no patterns yields nil", func(t *testing.T) {
		t.Parallel()

		f, err := spraydoc.CompileURLFilter(nil, nil)
		require.NoError(t, err)
		assert.Nil(t, f)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()

		_, err := spraydoc.CompileURLFilter([]string{"("}, nil)
		require.Error(t, err)
		assert.Equal(t, spraydoc.EINVALID, spraydoc.ErrorCode(err))

		_, err = spraydoc.CompileURLFilter(nil, []string{"["})
		require.Error(t, err)
		assert.Equal(t, spraydoc.EINVALID, spraydoc.ErrorCode(err))
	})

	t.Run("exclude patterns reject matches", func(t *testing.T) {
		t.Parallel()

		f, err := spraydoc.CompileURLFilter(nil, []string{`/spray-can/`})
		require.NoError(t, err)
		assert.True(t, f.Match("https://spray.io/documentation/1.2/spray-routing/"))
		assert.False(t, f.Match("https://spray.io/documentation/1.2/spray-can/"))
	})
}
