package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"isgmotif-core/isre"
	"isgmotif-core/motif"
	"isgmotif/internal/jsonutil"
	"isgmotif/pkg/api"
)

// FormatHitTSV returns one scan row without the trailing newline.
func FormatHitTSV(h isre.Hit) string {
	if !h.Found {
		return h.ID + "\t" + NA + "\t" + NoStrand + "\t" + NA + "\t"
	}
	return h.ID + "\t" + strconv.Itoa(h.Mismatches) + "\t" + h.Strand + "\t" + strconv.Itoa(h.Pos) + "\t" + h.Window
}

// StreamScanText writes rows as they arrive on in.
func StreamScanText(w io.Writer, in <-chan isre.Hit, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ScanTSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintln(w, FormatHitTSV(h)); err != nil {
			return err
		}
	}
	return nil
}

// WriteScanText writes a complete scan table.
func WriteScanText(w io.Writer, hits []isre.Hit, header bool) error {
	ch := make(chan isre.Hit, len(hits))
	for _, h := range hits {
		ch <- h
	}
	close(ch)
	return StreamScanText(w, ch, header)
}

// ToAPIHit converts a hit to the stable wire schema (v1).
func ToAPIHit(h isre.Hit) api.HitV1 {
	return api.HitV1{
		Gene:       h.ID,
		Found:      h.Found,
		Mismatches: h.Mismatches,
		Strand:     h.Strand,
		Position:   h.Pos,
		BestMatch:  h.Window,
	}
}

// WriteScanJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteScanJSON(w io.Writer, hits []isre.Hit) error {
	out := make([]api.HitV1, 0, len(hits))
	for _, h := range hits {
		out = append(out, ToAPIHit(h))
	}
	return jsonutil.EncodePretty(w, out)
}

// ReadScanTSV parses a table written by WriteScanText. Blank lines, '#'
// comments and the header row are skipped; NA mismatches mark a sequence
// without a hit. Only the gene and mismatches columns are required.
func ReadScanTSV(r io.Reader) ([]isre.Hit, error) {
	var hits []isre.Hit
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 2 {
			return nil, fmt.Errorf("%w: scan table line %d: want at least 2 columns", motif.ErrMalformedInput, lineNo)
		}
		if f[0] == "gene" && f[1] == "mismatches" {
			continue
		}
		h := isre.Hit{ID: f[0]}
		if f[1] != NA {
			mm, err := strconv.Atoi(f[1])
			if err != nil || mm < 0 {
				return nil, fmt.Errorf("%w: scan table line %d: bad mismatches %q", motif.ErrMalformedInput, lineNo, f[1])
			}
			h.Found, h.Mismatches = true, mm
			if len(f) >= 5 {
				h.Strand = f[2]
				pos, err := strconv.Atoi(f[3])
				if err != nil || pos < 0 {
					return nil, fmt.Errorf("%w: scan table line %d: bad position %q", motif.ErrMalformedInput, lineNo, f[3])
				}
				h.Pos = pos
				h.Window = f[4]
			}
		}
		hits = append(hits, h)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}
