package output

import (
	"fmt"
	"io"
	"strconv"

	"isgmotif-core/enrich"
	"isgmotif/internal/jsonutil"
	"isgmotif/pkg/api"
)

// Enrichment is a finished motif-enrich run.
type Enrichment struct {
	Pattern   string
	Threshold int
	Result    enrich.Result
}

// formatFloat prints the shortest exact form; +Inf and NaN print as such.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteEnrichText writes the contingency table and test statistics.
func WriteEnrichText(w io.Writer, e Enrichment, header bool) error {
	t := e.Result.Table
	var err error
	p := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, a...)
		}
	}
	if header {
		p("# pattern: %s  strong: mismatches <= %d\n", e.Pattern, e.Threshold)
	}
	p("set\tstrong\tweak\n")
	p("case\t%d\t%d\n", t[0][0], t[0][1])
	p("control\t%d\t%d\n", t[1][0], t[1][1])
	p("\nOdds ratio: %s\n", formatFloat(e.Result.OddsRatio))
	p("P-value: %s\n", formatFloat(e.Result.PValue))
	return err
}

// ToAPIEnrichment converts a run to the stable wire schema (v1).
func ToAPIEnrichment(e Enrichment) api.EnrichmentV1 {
	return api.EnrichmentV1{
		Pattern:         e.Pattern,
		StrongThreshold: e.Threshold,
		Table:           e.Result.Table,
		OddsRatio:       api.Float(e.Result.OddsRatio),
		PValue:          e.Result.PValue,
	}
}

// WriteEnrichJSON writes one pretty-indented v1 object.
func WriteEnrichJSON(w io.Writer, e Enrichment) error {
	return jsonutil.EncodePretty(w, ToAPIEnrichment(e))
}
