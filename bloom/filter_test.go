package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/spraydoc/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.001)
	assert.False(t, f.Test("pathPrefix"))

	f.Add("pathPrefix")

	assert.True(t, f.Test("pathPrefix"))
	assert.False(t, f.Test("pathSuffix"))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.Add("get")

	assert.True(t, f.Test("get"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const n = 10000
	f := bloom.NewFilter(n, 0.01)
	for i := range n {
		f.Add(fmt.Sprintf("directive%d", i))
	}

	falsePositives := 0
	for i := range n {
		if f.Test(fmt.Sprintf("absent%d", i)) {
			falsePositives++
		}
	}

	rate := float64(falsePositives) / n
	assert.Less(t, rate, 0.02, "false positive rate %f exceeds 2%%", rate)
}
