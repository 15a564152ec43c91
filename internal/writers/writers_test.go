package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"isgmotif-core/isre"
	"isgmotif/pkg/api"
)

var sampleHits = []isre.Hit{
	{ID: "a", Found: true, Mismatches: 0, Strand: "+", Pos: 3, Window: "AGTTTCAATTTC"},
	{ID: "b", Found: true, Mismatches: 2, Strand: "-", Pos: 0, Window: "AGTTACAATTAC"},
}

func runScanWriter(t *testing.T, format string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartScanWriter(&buf, format, true, 1)
	for _, h := range sampleHits {
		in <- h
	}
	close(in)
	err := <-done
	return buf.String(), err
}

func TestScanWriterText(t *testing.T) {
	out, err := runScanWriter(t, "text")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || lines[1] != "a\t0\t+\t3\tAGTTTCAATTTC" {
		t.Fatalf("unexpected text output:\n%s", out)
	}
}

func TestScanWriterJSON(t *testing.T) {
	out, err := runScanWriter(t, "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []api.HitV1
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 2 || got[1].Strand != "-" {
		t.Fatalf("json: %v %+v", err, got)
	}
}

func TestScanWriterJSONLStreamsValidV1(t *testing.T) {
	out, err := runScanWriter(t, "jsonl")
	if err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	var n int
	for sc.Scan() {
		n++
		var v api.HitV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("bad json line %d: %v\n%s", n, err, sc.Text())
		}
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestUnknownFormatError(t *testing.T) {
	_, err := runScanWriter(t, "nope-format")
	if err == nil || !strings.Contains(err.Error(), "unknown scan format") {
		t.Fatalf("want 'unknown scan format' error, got: %v", err)
	}
	if err := WriteDiscovery("xml", io.Discard, DiscoveryPayload{}); err == nil || !strings.Contains(err.Error(), "unknown discovery format") {
		t.Fatalf("discovery: %v", err)
	}
	if err := WriteEnrich("xml", io.Discard, EnrichPayload{}); err == nil || !strings.Contains(err.Error(), "unknown enrichment format") {
		t.Fatalf("enrich: %v", err)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestFlushCode(t *testing.T) {
	var stderr bytes.Buffer
	bw := bufio.NewWriter(failWriter{io.ErrClosedPipe})
	_, _ = bw.WriteString("x")
	if code := FlushCode(bw, &stderr, 0); code != 0 {
		t.Fatalf("broken pipe should map to ok, got %d", code)
	}
	bw = bufio.NewWriter(failWriter{errors.New("disk full")})
	_, _ = bw.WriteString("x")
	if code := FlushCode(bw, &stderr, 0); code != 3 || !strings.Contains(stderr.String(), "disk full") {
		t.Fatalf("got %d, stderr %q", code, stderr.String())
	}
}
