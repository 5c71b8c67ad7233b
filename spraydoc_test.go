package spraydoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/spraydoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := spraydoc.Errorf(spraydoc.EINVALID, "bad catalog %q", "x.yaml")

	assert.Equal(t, spraydoc.EINVALID, spraydoc.ErrorCode(err))
	assert.Equal(t, "bad catalog \"x.yaml\"", spraydoc.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, spraydoc.ErrorCode(nil))
		assert.Empty(t, spraydoc.ErrorMessage(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("loading: %w", spraydoc.Errorf(spraydoc.ENOTFOUND, "missing"))
		assert.Equal(t, spraydoc.ENOTFOUND, spraydoc.ErrorCode(err))
		assert.Equal(t, "missing", spraydoc.ErrorMessage(err))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		assert.Equal(t, spraydoc.EINTERNAL, spraydoc.ErrorCode(err))
		assert.Equal(t, "Internal error.", spraydoc.ErrorMessage(err))
	})
}
