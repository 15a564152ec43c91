// pkg/api/enrichment_v1.go
package api

import (
	"math"
	"strconv"
)

// Float encodes non-finite values that encoding/json rejects: +Inf becomes
// "Infinity" and NaN becomes null.
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte("null"), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// EnrichmentV1 is the stable JSON schema for motif-enrich results.
// Table rows are case then control; columns are strong then weak.
type EnrichmentV1 struct {
	Pattern         string    `json:"pattern"`
	StrongThreshold int       `json:"strong_threshold"`
	Table           [2][2]int `json:"table"`
	OddsRatio       Float     `json:"odds_ratio"`
	PValue          float64   `json:"p_value"`
}
