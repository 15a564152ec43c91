// Package writers turns discovery, scan and enrichment results into
// serialized outputs.
//
// Design:
//   • Writers own all presentation dispatch (text/JSON/JSONL).
//   • core stays domain-only; the pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
