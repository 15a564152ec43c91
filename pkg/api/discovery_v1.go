// pkg/api/discovery_v1.go
package api

// MotifV1 is one gene's motif in a discovery report.
type MotifV1 struct {
	Gene     string `json:"gene"`
	Motif    string `json:"motif"`
	Position int    `json:"position"` // 0-based start within the gene's sequence
}

// DiscoveryV1 is the stable JSON schema for motif-find results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DiscoveryV1 struct {
	Strategy   string    `json:"strategy"`
	K          int       `json:"k"`
	Restarts   int       `json:"restarts"`
	Iterations int       `json:"iterations,omitempty"` // gibbs only
	Seed       int64     `json:"seed"`
	Score      int       `json:"score"`
	Consensus  string    `json:"consensus"`
	Motifs     []MotifV1 `json:"motifs"`
}
