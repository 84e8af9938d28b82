// core/kmer/table.go
package kmer

// Two-bit codes per byte. Anything outside ACGTacgt maps to 0, same as 'A'.
var (
	base2bit    [256]uint64
	base2bitCmp [256]uint64
)

func init() {
	base2bit['C'], base2bit['c'] = 1, 1
	base2bit['G'], base2bit['g'] = 2, 2
	base2bit['T'], base2bit['t'] = 3, 3

	base2bitCmp['A'], base2bitCmp['a'] = 3, 3
	base2bitCmp['C'], base2bitCmp['c'] = 2, 2
	base2bitCmp['G'], base2bitCmp['g'] = 1, 1
}

// Code returns the forward 2-bit code of b.
func Code(b byte) uint64 { return base2bit[b] }

// ComplementCode returns the 2-bit code of b's Watson-Crick partner.
func ComplementCode(b byte) uint64 { return base2bitCmp[b] }
