package output

import (
	"fmt"
	"io"

	"isgmotif-core/search"
	"isgmotif/internal/jsonutil"
	"isgmotif/pkg/api"
)

// Discovery is a finished motif-find run: the effective parameters plus the
// best result over all restarts. Genes[i] names Result.Motifs[i].
type Discovery struct {
	Config search.Config
	Genes  []string
	Result search.Result
}

// WriteDiscoveryText writes the gene/motif table followed by the score and
// consensus trailer lines.
func WriteDiscoveryText(w io.Writer, d Discovery, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, DiscoveryTSVHeader); err != nil {
			return err
		}
	}
	for i, m := range d.Result.Motifs {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", d.Genes[i], m); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n# Best score: %d\n# Consensus: %s\n", d.Result.Score, d.Result.Consensus())
	return err
}

// ToAPIDiscovery converts a run to the stable wire schema (v1).
func ToAPIDiscovery(d Discovery) api.DiscoveryV1 {
	v := api.DiscoveryV1{
		Strategy:  string(d.Config.Strategy),
		K:         d.Config.K,
		Restarts:  d.Config.Restarts,
		Seed:      d.Config.Seed,
		Score:     d.Result.Score,
		Consensus: d.Result.Consensus(),
		Motifs:    make([]api.MotifV1, len(d.Result.Motifs)),
	}
	if d.Config.Strategy == search.StrategyGibbs {
		v.Iterations = d.Config.Iterations
	}
	for i, m := range d.Result.Motifs {
		v.Motifs[i] = api.MotifV1{Gene: d.Genes[i], Motif: m, Position: d.Result.Offsets[i]}
	}
	return v
}

// WriteDiscoveryJSON writes one pretty-indented v1 object.
func WriteDiscoveryJSON(w io.Writer, d Discovery) error {
	return jsonutil.EncodePretty(w, ToAPIDiscovery(d))
}
