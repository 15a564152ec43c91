package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sliceFlag []string

func (s *sliceFlag) String() string     { return strings.Join(*s, ",") }
func (s *sliceFlag) Set(v string) error { *s = append(*s, v); return nil }

type opts struct {
	k, threads int
	seed       string
	strategy   string
	progress   bool
	files      sliceFlag
}

func newFS(o *opts) *flag.FlagSet {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.IntVar(&o.k, "k", 12, "")
	fs.IntVar(&o.threads, "threads", 1, "")
	fs.IntVar(&o.threads, "t", 1, "")
	fs.StringVar(&o.seed, "seed", "42", "")
	fs.StringVar(&o.strategy, "strategy", "randomized", "")
	fs.BoolVar(&o.progress, "progress", false, "")
	fs.Var(&o.files, "sequences", "")
	fs.String(FlagName, "", "")
	return fs
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestOverlayPrecedence(t *testing.T) {
	fn := writeConfig(t, "motif.yaml", "k: 8\nthreads: 3\nseed: 7\nprogress: true\nsequences:\n  - a.fa\n  - b.fa\n")
	t.Setenv("MOTIF_SEED", "9")

	var o opts
	fs := newFS(&o)
	if err := fs.Parse([]string{"-t", "2"}); err != nil {
		t.Fatal(err)
	}
	v, err := Load(fn, EnvPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if err := Overlay(v, fs, map[string]string{"t": "threads"}); err != nil {
		t.Fatal(err)
	}
	if o.k != 8 {
		t.Errorf("k = %d, want 8 from file", o.k)
	}
	if o.threads != 2 {
		t.Errorf("threads = %d, want 2 from alias flag", o.threads)
	}
	if o.seed != "9" {
		t.Errorf("seed = %q, want env value 9", o.seed)
	}
	if !o.progress {
		t.Error("progress should come from file")
	}
	if o.strategy != "randomized" {
		t.Errorf("strategy = %q, want default", o.strategy)
	}
	if len(o.files) != 2 || o.files[1] != "b.fa" {
		t.Errorf("sequences = %v", o.files)
	}
}

func TestOverlayEnvWithHyphen(t *testing.T) {
	t.Setenv("MOTIF_MAX_MISMATCHES", "3")
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	mm := fs.Int("max-mismatches", -1, "")
	_ = fs.Parse(nil)
	v, err := Load("", EnvPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if err := Overlay(v, fs, nil); err != nil {
		t.Fatal(err)
	}
	if *mm != 3 {
		t.Fatalf("max-mismatches = %d, want 3", *mm)
	}
}

func TestOverlayBadValue(t *testing.T) {
	t.Setenv("MOTIF_K", "twelve")
	var o opts
	fs := newFS(&o)
	_ = fs.Parse(nil)
	v, _ := Load("", EnvPrefix)
	if err := Overlay(v, fs, nil); err == nil || !strings.Contains(err.Error(), "--k") {
		t.Fatalf("want error naming --k, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), EnvPrefix); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
