// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"isgmotif-core/enrich"
	"isgmotif-core/fasta"
	"isgmotif-core/motif"
	"isgmotif-core/search"
	"isgmotif/internal/version"
	"isgmotif/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK        = 0
	ExitUsage     = 2 // bad flags, configuration or input data
	ExitIO        = 3 // read/write/runtime failure
	ExitCancelled = 130
)

// HandleParse deals with the outcomes of an option parser that end the
// run before any work: help, version, and parse errors. done is false when
// the caller should proceed.
func HandleParse(fs *flag.FlagSet, name string, showVersion bool, err error, outw *bufio.Writer, stderr io.Writer) (code int, done bool) {
	switch {
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return writers.FlushCode(outw, stderr, ExitOK), true
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		_, _ = fmt.Fprintf(stderr, "Run '%s -h' for usage.\n", name)
		return ExitUsage, true
	case showVersion:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return writers.FlushCode(outw, stderr, ExitOK), true
	}
	return ExitOK, false
}

// Code maps a run error to an exit code.
func Code(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ExitCancelled
	case errors.Is(err, motif.ErrMalformedInput),
		errors.Is(err, search.ErrConfiguration),
		errors.Is(err, fasta.ErrFormat),
		errors.Is(err, enrich.ErrEmptyTable):
		return ExitUsage
	}
	return ExitIO
}

// Fail logs err (unless it is a cancellation) and returns its exit code.
func Fail(lg *log.Logger, err error) int {
	code := Code(err)
	if code == ExitCancelled {
		lg.Warn("cancelled")
	} else {
		lg.Error(err.Error())
	}
	return code
}

// LoadCorpus reads every file into one corpus. Identifiers repeated within
// or across files keep their first position and take the last sequence.
func LoadCorpus(ctx context.Context, files []string, lg *log.Logger) (*fasta.Corpus, error) {
	merged := &fasta.Corpus{}
	for _, fn := range files {
		c, err := fasta.ReadPath(ctx, fn)
		if err != nil {
			return nil, err
		}
		for _, id := range c.Duplicates {
			lg.Warn("duplicate identifier; later sequence replaces earlier", "id", id, "file", fn)
		}
		before := len(merged.Duplicates)
		for _, r := range c.Records {
			merged.Add(r.ID, r.Seq)
		}
		for _, id := range merged.Duplicates[before:] {
			lg.Warn("identifier seen in an earlier file; later sequence replaces earlier", "id", id, "file", fn)
		}
		lg.Debug("read FASTA", "file", fn, "records", c.Len())
	}
	return merged, nil
}

// NamedInputError rewrites a motif.InputError that points at a sequence
// index so the message names the record instead.
func NamedInputError(err error, ids []string) error {
	var ie *motif.InputError
	if errors.As(err, &ie) && ie.Index >= 0 && ie.Index < len(ids) {
		return fmt.Errorf("record %q: %w", ids[ie.Index], err)
	}
	return err
}

// OpenOutput returns the destination for results: outw for "" or "-",
// otherwise a buffered file. The returned close func flushes and closes it.
func OpenOutput(path string, outw *bufio.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return outw, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	bw := bufio.NewWriter(f)
	return bw, func() error {
		if err := bw.Flush(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}, nil
}
