package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Header rows for text outputs. Keep these as the single source of truth;
// motif-enrich parses ScanTSVHeader back.
const (
	DiscoveryTSVHeader = "gene\tmotif"
	ScanTSVHeader      = "gene\tmismatches\tstrand\tposition\tbest_match"
)

// Placeholders written for a sequence too short to hold a single window.
const (
	NA       = "NA"
	NoStrand = "."
)
