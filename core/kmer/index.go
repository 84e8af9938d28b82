// core/kmer/index.go
package kmer

import (
	"github.com/pkg/errors"
)

// MaxK is the longest k-mer that fits in a uint64 at 2 bits per base.
const MaxK = 32

// ErrInvalidConfiguration marks parameters the packed representation cannot honor.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ValidateK rejects k values outside [1, MaxK].
func ValidateK(k int) error {
	if k < 1 || k > MaxK {
		return errors.Wrapf(ErrInvalidConfiguration, "k=%d must be between 1 and %d", k, MaxK)
	}
	return nil
}

// IsForward reports whether w is encoded in its literal orientation.
//
// Pairs are walked inward from both ends while they match ignoring case;
// the first differing pair (or the middle) is then compared as raw bytes,
// so lower-case input can pick the opposite orientation of its upper-case twin.
func IsForward(w []byte) bool {
	n := len(w)
	if n == 0 {
		return true
	}
	i := 0
	for i < n/2 && upper(w[i]) == upper(w[n-1-i]) {
		i++
	}
	return w[i] <= w[n-1-i]
}

// Index packs w into its canonical 2-bit index. The last base folded
// occupies the low two bits. len(w) must not exceed MaxK.
func Index(w []byte) uint64 {
	var idx uint64
	if IsForward(w) {
		for _, b := range w {
			idx = idx<<2 | base2bit[b]
		}
		return idx
	}
	for i := len(w) - 1; i >= 0; i-- {
		idx = idx<<2 | base2bitCmp[w[i]]
	}
	return idx
}

// Decode turns a packed index back into k upper-case bases.
func Decode(idx uint64, k int) []byte {
	out := make([]byte, k)
	for off := 0; off < k; off++ {
		out[k-1-off] = "ACGT"[(idx>>(2*uint(off)))&3]
	}
	return out
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
