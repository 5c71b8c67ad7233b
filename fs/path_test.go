package fs_test

import (
	"testing"

	"github.com/fwojciec/spraydoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://spray.io", "index.html"},
		{"https://spray.io/", "index.html"},
		{"https://spray.io/documentation/1.2/spray-routing/", "documentation/1.2/spray-routing/index.html"},
		{"/documentation/1.2/spray-routing/index.html", "documentation/1.2/spray-routing/index.html"},
		{"/documentation/1.2/changelog", "documentation/1.2/changelog.html"},
		{"/../../etc/passwd", "etc/passwd.html"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
