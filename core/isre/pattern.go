// Package isre scans sequences for the best match to a fixed, gapped
// consensus such as the interferon-stimulated response element.
package isre

import (
	"errors"
	"fmt"
	"strings"

	"isgmotif-core/dna"
)

// Consensus is the ISRE-like reference: AGTTTC, two free positions, TTTC.
const Consensus = "AGTTTCNNTTTC"

// Wildcard marks pattern positions that never count as mismatches.
const Wildcard = 'N'

// Pattern is a compiled fixed-length pattern of literal anchors and wildcards.
type Pattern struct {
	text    string
	anchors []int // positions that must match literally
}

// ISRE is the compiled Consensus pattern.
var ISRE = MustParse(Consensus)

// Parse compiles s. Letters A, C, G, T are literal anchors, N is a wildcard;
// input is upper-cased first.
func Parse(s string) (Pattern, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return Pattern{}, errors.New("empty pattern")
	}
	p := Pattern{text: s}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == Wildcard:
		case dna.Index(s[i]) >= 0:
			p.anchors = append(p.anchors, i)
		default:
			return Pattern{}, fmt.Errorf("invalid pattern base %q at %d; allowed: A C G T N", s[i], i+1)
		}
	}
	if len(p.anchors) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no literal positions", s)
	}
	return p, nil
}

// MustParse is Parse that panics on error; for package-level patterns.
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string { return p.text }

// Len is the window length the pattern is matched against.
func (p Pattern) Len() int { return len(p.text) }

// Mismatches counts anchor positions where window differs from the pattern.
// window must be p.Len() long.
func (p Pattern) Mismatches(window string) int {
	if len(window) != len(p.text) {
		panic(fmt.Sprintf("isre: window length %d != pattern length %d", len(window), len(p.text)))
	}
	mm := 0
	for _, i := range p.anchors {
		if window[i] != p.text[i] {
			mm++
		}
	}
	return mm
}
