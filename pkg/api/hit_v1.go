// pkg/api/hit_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one motif-scan row.
type HitV1 struct {
	Gene       string `json:"gene"`
	Found      bool   `json:"found"`
	Mismatches int    `json:"mismatches"`
	Strand     string `json:"strand,omitempty"` // "+"/"-"
	Position   int    `json:"position"`
	BestMatch  string `json:"best_match,omitempty"`
}
