// internal/enrichapp/app.go
package enrichapp

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"isgmotif-core/enrich"
	"isgmotif-core/fasta"
	"isgmotif-core/isre"
	"isgmotif/internal/appcore"
	"isgmotif/internal/cli"
	"isgmotif/internal/enrichcli"
	"isgmotif/internal/logging"
	"isgmotif/internal/output"
	"isgmotif/internal/pipeline"
	"isgmotif/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := enrichcli.NewFlagSet()
	fs.SetOutput(io.Discard)
	opts, err := enrichcli.ParseArgs(fs, argv)
	if code, done := appcore.HandleParse(fs, enrichcli.Name, opts.Version, err, outw, stderr); done {
		return code
	}

	lg, err := logging.New(stderr, enrichcli.Name, opts.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	l := loader{pattern: opts.Compiled, threads: cli.EffectiveThreads(opts.Threads), lg: lg}
	caseHits, err := l.loadSet(parent, opts.Case)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	ctrlHits, err := l.loadSet(parent, opts.Control)
	if err != nil {
		return appcore.Fail(lg, err)
	}

	res, err := enrich.FisherExact(enrich.NewTable(caseHits, ctrlHits, opts.StrongThreshold))
	if err != nil {
		return appcore.Fail(lg, err)
	}
	lg.Info("fisher exact test", "table", res.Table, "odds_ratio", res.OddsRatio, "p", res.PValue)

	dst, closeOut, err := appcore.OpenOutput(opts.OutFile, outw)
	if err != nil {
		return appcore.Fail(lg, err)
	}
	werr := writers.WriteEnrich(opts.Output, dst, writers.EnrichPayload{
		Enrichment: output.Enrichment{Pattern: opts.Compiled.String(), Threshold: opts.StrongThreshold, Result: res},
		Header:     opts.Header,
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

// loader turns case/control inputs into scan hits. A FASTA input is
// scanned with pattern; anything else is read as a motif-scan table.
type loader struct {
	pattern isre.Pattern
	threads int
	lg      *log.Logger
}

func (l loader) loadSet(ctx context.Context, files []string) ([]isre.Hit, error) {
	var all []isre.Hit
	for _, fn := range files {
		hits, err := l.loadFile(ctx, fn)
		if err != nil {
			return nil, err
		}
		all = append(all, hits...)
	}
	return all, nil
}

func (l loader) loadFile(ctx context.Context, fn string) ([]isre.Hit, error) {
	rc, err := fasta.Open(fn)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	first, err := firstNonSpace(br)
	if err == io.EOF {
		l.lg.Warn("empty input", "file", fn)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}

	if first != '>' {
		hits, err := output.ReadScanTSV(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
		l.lg.Debug("read scan table", "file", fn, "rows", len(hits))
		return hits, nil
	}

	c, err := fasta.Read(ctx, br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	for _, id := range c.Duplicates {
		l.lg.Warn("duplicate identifier; later sequence replaces earlier", "id", id, "file", fn)
	}
	l.lg.Debug("scanning FASTA", "file", fn, "records", c.Len())
	return pipeline.ScanRecords(ctx, pipeline.Config{Threads: l.threads, Pattern: l.pattern}, c.Records, nil)
}

// firstNonSpace peeks at the first byte that is not whitespace without
// consuming it.
func firstNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}
