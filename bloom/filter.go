// Package bloom provides probabilistic set membership for directive names.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter answers "definitely absent" for names it was never given.
// It may report a name as present when it was not, never the reverse.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes a filter for n names at the given false positive rate.
// n below 1 is treated as 1.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add records name.
func (f *Filter) Add(name string) {
	f.f.AddString(name)
}

// Test reports whether name was possibly added.
func (f *Filter) Test(name string) bool {
	return f.f.TestString(name)
}
