// internal/scanapp/app.go
package scanapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"isgmotif-core/dna"
	"isgmotif-core/isre"
	"isgmotif/internal/appcore"
	"isgmotif/internal/cli"
	"isgmotif/internal/logging"
	"isgmotif/internal/pipeline"
	"isgmotif/internal/scancli"
	"isgmotif/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := scancli.NewFlagSet()
	fs.SetOutput(io.Discard)
	opts, err := scancli.ParseArgs(fs, argv)
	if code, done := appcore.HandleParse(fs, scancli.Name, opts.Version, err, outw, stderr); done {
		return code
	}

	lg, err := logging.New(stderr, scancli.Name, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	corpus, err := appcore.LoadCorpus(parent, opts.SeqFiles, lg)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	for _, r := range corpus.Records {
		if err := dna.ValidateACGT(r.Seq); err != nil {
			lg.Warn("non-ACGT bases count as mismatches", "id", r.ID, "detail", err)
		}
	}
	threads := cli.EffectiveThreads(opts.Threads)
	lg.Info("scanning", "pattern", opts.Compiled.String(), "sequences", corpus.Len(), "threads", threads)

	hits, err := pipeline.ScanRecords(parent, pipeline.Config{Threads: threads, Pattern: opts.Compiled}, corpus.Records, nil)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	isre.Rank(hits)
	hits = Filter(hits, opts.MaxMismatches)

	dst, closeOut, err := appcore.OpenOutput(opts.OutFile, outw)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	in, done := writers.StartScanWriter(dst, opts.Output, opts.Header, threads*4)
	for _, h := range hits {
		in <- h
	}
	close(in)
	werr := <-done
	if cerr := closeOut(); werr == nil {
		werr = cerr
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		return appcore.Fail(lg, werr)
	}

	exact := 0
	for _, h := range hits {
		if h.Found && h.Mismatches == 0 {
			exact++
		}
	}
	lg.Info("scan finished", "reported", len(hits), "exact", exact)
	return writers.FlushCode(outw, stderr, appcore.ExitOK)
}

// Filter keeps hits with at most max mismatches; max < 0 keeps everything.
// Sequences without any window are dropped whenever a limit is set.
func Filter(hits []isre.Hit, max int) []isre.Hit {
	if max < 0 {
		return hits
	}
	out := hits[:0]
	for _, h := range hits {
		if h.Found && h.Mismatches <= max {
			out = append(out, h)
		}
	}
	return out
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
