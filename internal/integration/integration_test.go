package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isgmotif/internal/enrichapp"
	"isgmotif/internal/findapp"
	"isgmotif/internal/scanapp"
	"isgmotif/pkg/api"
)

const planted = "ACGTACGTACGT"

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func plantedFASTA(t *testing.T) string {
	return write(t, "planted.fa",
		">g1 first\nTT"+planted+"GG\n>g2\nC"+planted+"\nTTG\n>g3\nggta"+strings.ToLower(planted)+"\n")
}

type appRun func(argv []string, stdout, stderr io.Writer) int

func run(t *testing.T, app appRun, args ...string) (string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	if code := app(args, &out, &errBuf); code != 0 {
		t.Fatalf("%v: exit %d, stderr=%s", args, code, errBuf.String())
	}
	return out.String(), errBuf.String()
}

func TestFindRecoversPlantedMotif(t *testing.T) {
	fa := plantedFASTA(t)
	for _, strategy := range []string{"randomized", "gibbs"} {
		t.Run(strategy, func(t *testing.T) {
			out, _ := run(t, findapp.Run, "--strategy", strategy, "-k", "12", "--restarts", "100",
				"--iterations", "200", "--seed", "42", "-q", fa)
			want := "gene\tmotif\ng1\t" + planted + "\ng2\t" + planted + "\ng3\t" + planted +
				"\n\n# Best score: 0\n# Consensus: " + planted + "\n"
			if out != want {
				t.Fatalf("got:\n%s\nwant:\n%s", out, want)
			}
		})
	}
}

func TestFindJSONReportsPositionsAndThreadIndependence(t *testing.T) {
	fa := plantedFASTA(t)
	runJSON := func(threads int) api.DiscoveryV1 {
		out, _ := run(t, findapp.Run, "-o", "json", "--restarts", "100", "--threads", fmt.Sprint(threads), "-q", fa)
		var v api.DiscoveryV1
		if err := json.Unmarshal([]byte(out), &v); err != nil {
			t.Fatalf("json: %v\n%s", err, out)
		}
		return v
	}
	a, b := runJSON(2), runJSON(4)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Fatalf("thread count changed the result:\n%+v\n%+v", a, b)
	}
	if a.Seed != 42 || a.Restarts != 100 || a.Strategy != "randomized" || a.Iterations != 0 {
		t.Fatalf("bad parameters: %+v", a)
	}
	wantPos := []int{2, 1, 4}
	for i, m := range a.Motifs {
		if m.Position != wantPos[i] || m.Motif != planted {
			t.Fatalf("motif %d = %+v", i, m)
		}
	}
}

func TestFindSerialIsReproducible(t *testing.T) {
	fa := write(t, "mixed.fa", ">a\nACGGTTACGATCGATCGGATCG\n>b\nTTGACCGATGCATGCAGTCAGT\n>c\nGGATCCATGCAGTACGATGACA\n")
	args := []string{"-k", "6", "--restarts", "20", "--seed", "7", "-q", fa}
	first, _ := run(t, findapp.Run, args...)
	second, _ := run(t, findapp.Run, args...)
	if first != second {
		t.Fatalf("same seed gave different reports:\n%s\n%s", first, second)
	}
}

func TestFindConfigFileAndOutFile(t *testing.T) {
	fa := plantedFASTA(t)
	cfg := write(t, "motif.yaml", "restarts: 100\nstrategy: gibbs\niterations: 200\nquiet: true\n")
	dst := filepath.Join(t.TempDir(), "report.json")
	out, _ := run(t, findapp.Run, "--config", cfg, "-o", "json", "--out", dst, fa)
	if out != "" {
		t.Fatalf("stdout should be empty with --out, got %q", out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	var v api.DiscoveryV1
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatal(err)
	}
	if v.Strategy != "gibbs" || v.Restarts != 100 || v.Iterations != 200 || v.Score != 0 {
		t.Fatalf("config not applied: %+v", v)
	}
}

func TestFindRejectsShortSequence(t *testing.T) {
	fa := write(t, "short.fa", ">long\nACGTACGTACGTACGT\n>tiny\nACGT\n")
	var out, errBuf bytes.Buffer
	code := findapp.Run([]string{"-k", "8", fa}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "tiny") {
		t.Fatalf("error should name the record: %s", errBuf.String())
	}
}

func TestHelpVersionAndUsageErrors(t *testing.T) {
	apps := map[string]appRun{
		"motif-find":   findapp.Run,
		"motif-scan":   scanapp.Run,
		"motif-enrich": enrichapp.Run,
	}
	for name, app := range apps {
		var out, errBuf bytes.Buffer
		if code := app([]string{"-h"}, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "Usage:") {
			t.Errorf("%s -h: code %d out %q", name, code, out.String())
		}
		out.Reset()
		if code := app([]string{"--version"}, &out, &errBuf); code != 0 || !strings.HasPrefix(out.String(), name+" version ") {
			t.Errorf("%s --version: code %d out %q", name, code, out.String())
		}
		errBuf.Reset()
		if code := app([]string{"--bogus"}, &out, &errBuf); code != 2 || errBuf.Len() == 0 {
			t.Errorf("%s --bogus: code %d", name, code)
		}
	}
}

func TestFindCancelledExit130(t *testing.T) {
	fa := plantedFASTA(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := findapp.RunContext(ctx, []string{fa}, &out, &errBuf); code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}

func TestMissingInputIsIOError(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := scanapp.Run([]string{filepath.Join(t.TempDir(), "nope.fa")}, &out, &errBuf); code != 3 {
		t.Fatalf("want exit 3, got %d", code)
	}
}

func TestScanRankedTable(t *testing.T) {
	fa := write(t, "scan.fa",
		">weak\nCCCCCCCCCCCCCC\n>rev\nCCGAAATTGAAACTCC\n>short\nACGT\n>one\nAGTTTCAATTTA\n")
	out, _ := run(t, scanapp.Run, "-q", fa)
	want := "gene\tmismatches\tstrand\tposition\tbest_match\n" +
		"rev\t0\t-\t2\tAGTTTCAATTTC\n" +
		"one\t1\t+\t0\tAGTTTCAATTTA\n" +
		"weak\t8\t+\t0\tCCCCCCCCCCCC\n" +
		"short\tNA\t.\tNA\t\n"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}

	out, _ = run(t, scanapp.Run, "-q", "--max-mismatches", "1", "-o", "jsonl", "-t", "3", fa)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("filter should keep 2 rows, got:\n%s", out)
	}
	var h api.HitV1
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil || h.Gene != "rev" || h.Strand != "-" {
		t.Fatalf("first jsonl row: %v %+v", err, h)
	}
}

// enrichment fixture: case has 8 strong / 2 weak, control 1 strong / 5 weak.
func enrichSets(t *testing.T) (string, string) {
	var caseFA, ctrlFA strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&caseFA, ">isg%d\nCCAGTTTCGATTTCCC\n", i)
	}
	for i := 0; i < 2; i++ {
		fmt.Fprintf(&caseFA, ">isgw%d\nCCCCCCCCCCCCCCCC\n", i)
	}
	fmt.Fprintf(&ctrlFA, ">ctl0\nAGTTTCAATTTA\n")
	for i := 1; i < 6; i++ {
		fmt.Fprintf(&ctrlFA, ">ctl%d\nCCCCCCCCCCCCCCCC\n", i)
	}
	return write(t, "case.fa", caseFA.String()), write(t, "ctrl.fa", ctrlFA.String())
}

func TestEnrichFromFASTA(t *testing.T) {
	caseFA, ctrlFA := enrichSets(t)
	out, _ := run(t, enrichapp.Run, "-q", "--case", caseFA, "--control", ctrlFA)
	for _, want := range []string{"case\t8\t2\n", "control\t1\t5\n", "Odds ratio: 20\n", "P-value: 0.034965034965"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestEnrichFromScanTables(t *testing.T) {
	caseFA, ctrlFA := enrichSets(t)
	dir := t.TempDir()
	caseTSV := filepath.Join(dir, "case.tsv")
	ctrlTSV := filepath.Join(dir, "ctrl.tsv")
	run(t, scanapp.Run, "-q", "--out", caseTSV, caseFA)
	run(t, scanapp.Run, "-q", "--out", ctrlTSV, ctrlFA)

	out, _ := run(t, enrichapp.Run, "-q", "-o", "json", "--case", caseTSV, "--control", ctrlTSV)
	var v api.EnrichmentV1
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("json: %v\n%s", err, out)
	}
	if v.Table != [2][2]int{{8, 2}, {1, 5}} || float64(v.OddsRatio) != 20 {
		t.Fatalf("bad result: %+v", v)
	}
	if d := v.PValue - 0.03496503496503496; d > 1e-12 || d < -1e-12 {
		t.Fatalf("p = %v", v.PValue)
	}
}
