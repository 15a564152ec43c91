package isre

import (
	"sort"

	"isgmotif-core/dna"
	"isgmotif-core/fasta"
)

const (
	StrandPlus  = "+"
	StrandMinus = "-"
)

// Hit is the best pattern match in one sequence. Pos is 0-based on the
// strand it was found on; for "-" that is the reverse complement.
type Hit struct {
	ID         string
	Found      bool
	Mismatches int
	Strand     string
	Pos        int
	Window     string
}

// Scan returns the lowest-mismatch window of seq on either strand.
// The forward strand is scanned before the reverse complement, each left to
// right, and only a strictly lower count replaces the current hit, so ties
// keep the earliest window. Found is false when seq is shorter than the pattern.
func (p Pattern) Scan(id, seq string) Hit {
	best := Hit{ID: id}
	n := p.Len()
	for _, strand := range [2]struct {
		name string
		s    string
	}{{StrandPlus, seq}, {StrandMinus, dna.RevComp(seq)}} {
		for pos := 0; pos+n <= len(strand.s); pos++ {
			w := strand.s[pos : pos+n]
			mm := p.Mismatches(w)
			if !best.Found || mm < best.Mismatches {
				best = Hit{ID: id, Found: true, Mismatches: mm, Strand: strand.name, Pos: pos, Window: w}
				if mm == 0 {
					return best
				}
			}
		}
	}
	return best
}

// Rank sorts hits by ascending mismatch count, keeping input order on ties.
// Sequences without a hit sort last.
func Rank(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Found != b.Found {
			return a.Found
		}
		return a.Mismatches < b.Mismatches
	})
}

// ScanAll scans every record and returns the ranked hits.
func ScanAll(p Pattern, recs []fasta.Record) []Hit {
	hits := make([]Hit, len(recs))
	for i, r := range recs {
		hits[i] = p.Scan(r.ID, r.Seq)
	}
	Rank(hits)
	return hits
}
