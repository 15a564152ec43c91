package writers

import (
	"fmt"
	"io"

	"isgmotif-core/isre"
	"isgmotif/internal/output"
)

// Payloads handed to registered writers.
type (
	DiscoveryPayload struct {
		Discovery output.Discovery
		Header    bool
	}
	ScanPayload struct {
		Hits   []isre.Hit
		Header bool
	}
	EnrichPayload struct {
		Enrichment output.Enrichment
		Header     bool
	}
)

// WriterFunc renders one payload.
type WriterFunc func(w io.Writer, payload interface{}) error

// Writer registries (format → handler), one per report kind.
var (
	DiscoveryWriters = map[string]WriterFunc{}
	ScanWriters      = map[string]WriterFunc{}
	EnrichWriters    = map[string]WriterFunc{}
)

// Register helpers (idempotent last-wins).
func RegisterDiscovery(format string, fn WriterFunc) { DiscoveryWriters[format] = fn }
func RegisterScan(format string, fn WriterFunc)      { ScanWriters[format] = fn }
func RegisterEnrich(format string, fn WriterFunc)    { EnrichWriters[format] = fn }

func dispatch(kind string, reg map[string]WriterFunc, format string, w io.Writer, payload interface{}) error {
	fn, ok := reg[format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", kind, format)
	}
	return fn(w, payload)
}

func WriteDiscovery(format string, w io.Writer, p DiscoveryPayload) error {
	return dispatch("discovery", DiscoveryWriters, format, w, p)
}

func WriteScan(format string, w io.Writer, p ScanPayload) error {
	return dispatch("scan", ScanWriters, format, w, p)
}

func WriteEnrich(format string, w io.Writer, p EnrichPayload) error {
	return dispatch("enrichment", EnrichWriters, format, w, p)
}

func init() {
	RegisterDiscovery(output.FormatText, func(w io.Writer, v interface{}) error {
		p := v.(DiscoveryPayload)
		return output.WriteDiscoveryText(w, p.Discovery, p.Header)
	})
	RegisterDiscovery(output.FormatJSON, func(w io.Writer, v interface{}) error {
		return output.WriteDiscoveryJSON(w, v.(DiscoveryPayload).Discovery)
	})

	RegisterScan(output.FormatText, func(w io.Writer, v interface{}) error {
		p := v.(ScanPayload)
		return output.WriteScanText(w, p.Hits, p.Header)
	})
	RegisterScan(output.FormatJSON, func(w io.Writer, v interface{}) error {
		return output.WriteScanJSON(w, v.(ScanPayload).Hits)
	})

	RegisterEnrich(output.FormatText, func(w io.Writer, v interface{}) error {
		p := v.(EnrichPayload)
		return output.WriteEnrichText(w, p.Enrichment, p.Header)
	})
	RegisterEnrich(output.FormatJSON, func(w io.Writer, v interface{}) error {
		return output.WriteEnrichJSON(w, v.(EnrichPayload).Enrichment)
	})
}
