// Package enrich tests whether strong pattern hits are over-represented in
// one gene set relative to another.
package enrich

import (
	"errors"
	"fmt"
	"math"

	"isgmotif-core/isre"
)

// DefaultStrongThreshold is the largest mismatch count that still makes a
// hit strong.
const DefaultStrongThreshold = 1

// Table is a 2x2 contingency table. Row 0 is the target set, row 1 the
// control set; column 0 counts strong hits, column 1 weak ones.
type Table [2][2]int

// Counts tallies hits into strong and weak. A sequence with no hit at all
// counts as weak.
func Counts(hits []isre.Hit, threshold int) (strong, weak int) {
	for _, h := range hits {
		if h.Found && h.Mismatches <= threshold {
			strong++
		} else {
			weak++
		}
	}
	return strong, weak
}

// NewTable builds the table for a target and a control hit list.
func NewTable(target, control []isre.Hit, threshold int) Table {
	var t Table
	t[0][0], t[0][1] = Counts(target, threshold)
	t[1][0], t[1][1] = Counts(control, threshold)
	return t
}

// Validate rejects negative cells.
func (t Table) Validate() error {
	for i := range t {
		for j := range t[i] {
			if t[i][j] < 0 {
				return fmt.Errorf("negative count %d at [%d][%d]", t[i][j], i, j)
			}
		}
	}
	return nil
}

// OddsRatio is the sample odds ratio (a*d)/(b*c). It is +Inf when only the
// denominator is zero and NaN when both are.
func (t Table) OddsRatio() float64 {
	num := float64(t[0][0]) * float64(t[1][1])
	den := float64(t[0][1]) * float64(t[1][0])
	switch {
	case den == 0 && num == 0:
		return math.NaN()
	case den == 0:
		return math.Inf(1)
	}
	return num / den
}

// Result is the outcome of a Fisher exact test.
type Result struct {
	Table     Table
	OddsRatio float64
	PValue    float64
}

// ErrEmptyTable is returned for a table whose cells are all zero.
var ErrEmptyTable = errors.New("contingency table is empty")

// relTol absorbs rounding when comparing table probabilities to the
// observed one.
const relTol = 1 + 1e-7

// FisherExact runs a two-sided Fisher exact test on t. The p-value sums the
// hypergeometric probabilities of every table with the same margins that is
// no more likely than the observed one.
func FisherExact(t Table) (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Table: t, OddsRatio: t.OddsRatio()}

	a, b, c, d := t[0][0], t[0][1], t[1][0], t[1][1]
	n := a + b + c + d
	if n == 0 {
		return Result{}, ErrEmptyTable
	}
	row0 := a + b
	col0 := a + c
	// A degenerate margin leaves only one possible table.
	if row0 == 0 || row0 == n || col0 == 0 || col0 == n {
		res.PValue = 1
		return res, nil
	}

	lo := col0 - (n - row0)
	if lo < 0 {
		lo = 0
	}
	hi := row0
	if col0 < hi {
		hi = col0
	}

	base := lchoose(n, col0)
	logp := func(x int) float64 {
		return lchoose(row0, x) + lchoose(n-row0, col0-x) - base
	}
	obs := logp(a)
	limit := obs + math.Log(relTol)

	var p float64
	for x := lo; x <= hi; x++ {
		if lp := logp(x); lp <= limit {
			p += math.Exp(lp)
		}
	}
	if p > 1 {
		p = 1
	}
	res.PValue = p
	return res, nil
}

func lchoose(n, k int) float64 {
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

func lgamma(n int) float64 {
	v, _ := math.Lgamma(float64(n))
	return v
}
