// internal/findapp/app.go
package findapp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"isgmotif-core/search"
	"isgmotif/internal/appcore"
	"isgmotif/internal/findcli"
	"isgmotif/internal/logging"
	"isgmotif/internal/output"
	"isgmotif/internal/progress"
	"isgmotif/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := findcli.NewFlagSet()
	fs.SetOutput(io.Discard)
	opts, err := findcli.ParseArgs(fs, argv)
	if code, done := appcore.HandleParse(fs, findcli.Name, opts.Version, err, outw, stderr); done {
		return code
	}

	lg, err := logging.New(stderr, findcli.Name, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	cfg, err := opts.SearchConfig()
	if err != nil {
		return appcore.Fail(lg, err)
	}
	// Resolve now so a clock-derived seed is logged and reported.
	cfg = cfg.Resolve()

	corpus, err := appcore.LoadCorpus(parent, opts.SeqFiles, lg)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	ids := corpus.IDs()
	lg.Info("loaded corpus", "sequences", corpus.Len(), "files", len(opts.SeqFiles))
	lg.Info("searching",
		"strategy", cfg.Strategy, "k", cfg.K, "restarts", cfg.Restarts,
		"iterations", cfg.Iterations, "seed", cfg.Seed, "threads", cfg.Threads)

	bar := progress.New(stderr, cfg.Restarts, "restarts ", opts.Progress)
	start := time.Now()
	best, err := search.Optimize(parent, corpus.Seqs(), cfg, func(r int, res search.Result) {
		bar.Increment()
		lg.Debug("restart done", "restart", r+1, "score", res.Score)
	})
	bar.Finish()
	if err != nil {
		return appcore.Fail(lg, appcore.NamedInputError(err, ids))
	}
	lg.Info("search finished",
		"score", best.Score, "consensus", best.Consensus(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	dst, closeOut, err := appcore.OpenOutput(opts.OutFile, outw)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	werr := writers.WriteDiscovery(opts.Output, dst, writers.DiscoveryPayload{
		Discovery: output.Discovery{Config: cfg, Genes: ids, Result: best},
		Header:    opts.Header,
	})
	if cerr := closeOut(); werr == nil {
		werr = cerr
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		return appcore.Fail(lg, werr)
	}
	return writers.FlushCode(outw, stderr, appcore.ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
