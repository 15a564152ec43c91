package motif

import "isgmotif-core/dna"

// Profile holds per-column base probabilities, indexed [base][column] with
// bases in dna.Bases order. A Profile is never patched after BuildProfile.
type Profile [4][]float64

// Len returns the number of columns.
func (p Profile) Len() int { return len(p[0]) }

// Column returns the four probabilities of column j.
func (p Profile) Column(j int) [4]float64 {
	return [4]float64{p[0][j], p[1][j], p[2][j], p[3][j]}
}

// Prob is the product of per-position probabilities of kmer under p.
// Bytes outside A, C, G, T contribute 0.
func (p Profile) Prob(kmer string) float64 {
	prob := 1.0
	for j := 0; j < len(kmer); j++ {
		b := dna.Index(kmer[j])
		if b < 0 {
			return 0
		}
		prob *= p[b][j]
	}
	return prob
}

// BuildProfile turns m into a Laplace-smoothed profile. Every (base, column)
// starts at 1 and gains 1 per occurrence in every row except exclude
// (pass a negative index to count all rows). Columns are normalised by
// t'+4 where t' is the number of rows counted, so t' = 0 gives 0.25 throughout.
func BuildProfile(m Set, exclude int) Profile {
	k := m.K()
	var counts [4][]int
	for b := range counts {
		counts[b] = make([]int, k)
		for j := range counts[b] {
			counts[b][j] = 1
		}
	}
	counted := 0
	for i, row := range m {
		if i == exclude {
			continue
		}
		counted++
		for j := 0; j < k; j++ {
			if b := dna.Index(row[j]); b >= 0 {
				counts[b][j]++
			}
		}
	}

	denom := float64(counted + 4)
	var p Profile
	for b := range p {
		p[b] = make([]float64, k)
		for j := range p[b] {
			p[b][j] = float64(counts[b][j]) / denom
		}
	}
	return p
}
