// Package motif holds the value types shared by the search strategies:
// motif sets, their distance score, pseudocount profiles and consensus.
//
// Everything here is pure; no function retains or mutates its arguments.
package motif

import (
	"errors"
	"fmt"

	"isgmotif-core/dna"
)

// ErrMalformedInput marks a corpus the search cannot run on.
var ErrMalformedInput = errors.New("malformed input")

// InputError describes which sequence made a corpus unusable.
// Index is -1 when the corpus as a whole is at fault.
type InputError struct {
	Index  int
	Reason string
}

func (e *InputError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedInput, e.Reason)
	}
	return fmt.Sprintf("%v: sequence %d: %s", ErrMalformedInput, e.Index, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrMalformedInput }

// Validate checks that seqs is a usable corpus for k-mers of length k:
// non-empty, every sequence at least k long and made of A, C, G, T only.
func Validate(seqs []string, k int) error {
	if len(seqs) == 0 {
		return &InputError{Index: -1, Reason: "empty corpus"}
	}
	for i, s := range seqs {
		if len(s) < k {
			return &InputError{Index: i, Reason: fmt.Sprintf("length %d is shorter than k=%d", len(s), k)}
		}
		if err := dna.ValidateACGT(s); err != nil {
			return &InputError{Index: i, Reason: err.Error()}
		}
	}
	return nil
}

// Set is one k-mer per input sequence; index i belongs to sequence i.
type Set []string

// Clone returns an independent copy of m.
func (m Set) Clone() Set { return append(Set(nil), m...) }

// K returns the motif length, or 0 for an empty set.
func (m Set) K() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// columnCounts returns per-base occurrence counts of column j.
func (m Set) columnCounts(j int) [4]int {
	var c [4]int
	for _, row := range m {
		if b := dna.Index(row[j]); b >= 0 {
			c[b]++
		}
	}
	return c
}

// Score is the sum over columns of t minus the most frequent base count.
// Lower is better; 0 means every column is monomorphic.
func Score(m Set) int {
	t := len(m)
	total := 0
	for j := 0; j < m.K(); j++ {
		c := m.columnCounts(j)
		best := 0
		for _, n := range c {
			if n > best {
				best = n
			}
		}
		total += t - best
	}
	return total
}

// Consensus picks the most frequent base of every column. Ties resolve to
// the earliest base in dna.Bases.
func Consensus(m Set) string {
	k := m.K()
	out := make([]byte, k)
	for j := 0; j < k; j++ {
		c := m.columnCounts(j)
		best := 0
		for b := 1; b < len(c); b++ {
			if c[b] > c[best] {
				best = b
			}
		}
		out[j] = dna.Bases[best]
	}
	return string(out)
}
