package api

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestFloatNonFinite(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, `2.5`},
		{math.Inf(1), `"Infinity"`},
		{math.NaN(), `null`},
	}
	for _, tc := range tests {
		b, err := json.Marshal(EnrichmentV1{OddsRatio: Float(tc.in)})
		if err != nil {
			t.Fatalf("marshal %v: %v", tc.in, err)
		}
		if !strings.Contains(string(b), `"odds_ratio":`+tc.want) {
			t.Errorf("%v encoded as %s", tc.in, b)
		}
	}
}
