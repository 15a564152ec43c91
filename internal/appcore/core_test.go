package appcore

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"isgmotif-core/enrich"
	"isgmotif-core/fasta"
	"isgmotif-core/motif"
	"isgmotif-core/search"
	"isgmotif/internal/logging"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{context.Canceled, ExitCancelled},
		{fmt.Errorf("wrapped: %w", context.Canceled), ExitCancelled},
		{&motif.InputError{Index: 1, Reason: "short"}, ExitUsage},
		{fmt.Errorf("%w: k", search.ErrConfiguration), ExitUsage},
		{fmt.Errorf("x.fa: %w", fasta.ErrFormat), ExitUsage},
		{enrich.ErrEmptyTable, ExitUsage},
		{os.ErrNotExist, ExitIO},
	}
	for _, tc := range tests {
		if got := Code(tc.err); got != tc.want {
			t.Errorf("Code(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestLoadCorpusMergesFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">g1\nAAAA\n>g2\nCCCC\n"), 0o644)
	_ = os.WriteFile(b, []byte(">g3\nGGGG\n>g1\nTTTT\n"), 0o644)

	var logBuf bytes.Buffer
	lg, _ := logging.New(&logBuf, "test", "info", false)
	c, err := LoadCorpus(context.Background(), []string{a, b}, lg)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(c.IDs(), ","); got != "g1,g2,g3" {
		t.Fatalf("ids = %s", got)
	}
	if c.Records[0].Seq != "TTTT" {
		t.Fatalf("later sequence should win, got %s", c.Records[0].Seq)
	}
	if !strings.Contains(logBuf.String(), "g1") {
		t.Fatalf("duplicate not logged: %q", logBuf.String())
	}
}

func TestNamedInputError(t *testing.T) {
	err := NamedInputError(&motif.InputError{Index: 1, Reason: "too short"}, []string{"IFIT1", "MX1"})
	if !strings.Contains(err.Error(), `"MX1"`) || !errors.Is(err, motif.ErrMalformedInput) {
		t.Fatalf("got %v", err)
	}
}

func TestOpenOutputFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.tsv")
	outw := bufio.NewWriter(&bytes.Buffer{})
	w, closeFn, err := OpenOutput(fn, outw)
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprint(w, "hello\n")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(fn)
	if string(data) != "hello\n" {
		t.Fatalf("file = %q", data)
	}

	w, _, _ = OpenOutput("-", outw)
	if w != outw {
		t.Fatal("'-' should write to stdout buffer")
	}
}
