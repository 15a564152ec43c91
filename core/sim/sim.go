// Package sim generates synthetic promoter sets with a planted motif, for
// benchmarking and testing motif discovery.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"isgmotif-core/dna"
	"isgmotif-core/fasta"
)

// Background returns an upper-case DNA sequence of the given length with
// ~gc fraction GC.
func Background(r *rand.Rand, length int, gc float64) string {
	if length <= 0 {
		return ""
	}
	if gc < 0 {
		gc = 0
	}
	if gc > 1 {
		gc = 1
	}
	gcCount := int(float64(length)*gc + 0.5)
	if gcCount > length {
		gcCount = length
	}

	seq := make([]byte, length)
	for i := range seq {
		coin := r.Intn(2)
		if i < gcCount {
			seq[i] = "GC"[coin]
		} else {
			seq[i] = "AT"[coin]
		}
	}
	// Shuffle to disperse bases.
	for i := length - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
	return string(seq)
}

// Mutate copies m with exactly n positions changed to a different base.
func Mutate(r *rand.Rand, m string, n int) string {
	if n > len(m) {
		n = len(m)
	}
	out := []byte(m)
	for _, pos := range r.Perm(len(m))[:n] {
		cur := dna.Index(out[pos])
		shift := 1 + r.Intn(3)
		if cur < 0 {
			cur = 0
		}
		out[pos] = dna.Bases[(cur+shift)%4]
	}
	return string(out)
}

// Options control Corpus.
type Options struct {
	N         int     // number of sequences
	Length    int     // length of each sequence
	GC        float64 // background GC fraction
	Motif     string  // planted motif
	Mutations int     // substitutions per planted copy
	Seed      int64   // 0 = time-based
}

// Planted is a generated corpus together with the offsets of each copy.
type Planted struct {
	Records []fasta.Record
	Offsets []int
}

// Corpus returns opts.N background sequences, each with one (possibly
// mutated) copy of opts.Motif at a random offset.
func Corpus(opts Options) (Planted, error) {
	k := len(opts.Motif)
	if k == 0 {
		return Planted{}, fmt.Errorf("empty motif")
	}
	if err := dna.ValidateACGT(opts.Motif); err != nil {
		return Planted{}, fmt.Errorf("motif: %w", err)
	}
	if opts.Length < k {
		return Planted{}, fmt.Errorf("length %d shorter than motif (%d)", opts.Length, k)
	}
	if opts.N <= 0 {
		return Planted{}, fmt.Errorf("need at least one sequence")
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	out := Planted{
		Records: make([]fasta.Record, opts.N),
		Offsets: make([]int, opts.N),
	}
	for i := 0; i < opts.N; i++ {
		bg := Background(r, opts.Length, opts.GC)
		off := r.Intn(opts.Length - k + 1)
		copyM := Mutate(r, opts.Motif, opts.Mutations)
		out.Records[i] = fasta.Record{
			ID:  fmt.Sprintf("sim%d", i+1),
			Seq: bg[:off] + copyM + bg[off+k:],
		}
		out.Offsets[i] = off
	}
	return out, nil
}
