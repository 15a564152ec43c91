// core/dna/dna.go
package dna

import "fmt"

// Bases is the canonical base order. Every tie-break in this module that
// depends on base order walks this string left to right.
const Bases = "ACGT"

var (
	complement [256]byte
	baseIndex  [256]int8
)

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'

	for i := range baseIndex {
		baseIndex[i] = -1
	}
	for i := 0; i < len(Bases); i++ {
		baseIndex[Bases[i]] = int8(i)
	}
}

// Index returns the position of b in Bases, or -1 for anything else.
func Index(b byte) int { return int(baseIndex[b]) }

// Complement returns the Watson-Crick partner of b. Unknown bytes map to 'N'.
func Complement(b byte) byte {
	if c := complement[b]; c != 0 {
		return c
	}
	return 'N'
}

// RevComp returns the reverse complement of seq (A<->T, C<->G, then reversed).
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = Complement(seq[n-1-i])
	}
	return string(out)
}

// ValidateACGT reports the first byte of seq that is not A, C, G or T.
func ValidateACGT(seq string) error {
	for i := 0; i < len(seq); i++ {
		if baseIndex[seq[i]] < 0 {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T", seq[i], i+1)
		}
	}
	return nil
}

// ToUpper upper-cases ASCII letters in place and returns b.
func ToUpper(b []byte) []byte {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return b
}
