// Package scancli parses motif-scan arguments.
package scancli

import (
	"errors"
	"flag"
	"fmt"

	"isgmotif-core/isre"
	"isgmotif/internal/cli"
)

const Name = "motif-scan"

var aliases = cli.MergeAliases(map[string]string{
	"s": "sequences",
	"p": "pattern",
	"m": "max-mismatches",
})

type Options struct {
	cli.Common

	Pattern       string
	MaxMismatches int // -1 = keep every sequence
	Compiled      isre.Pattern
}

func NewFlagSet() *flag.FlagSet {
	return cli.NewFlagSet(Name, "fixed-pattern (ISRE) scan of promoter sequences",
		"[options] promoters.fa",
		"--pattern GAAANNGAAA --max-mismatches 2 -o jsonl promoters.fa.gz",
	)
}

// ParseArgs registers and parses all flags and returns validated options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	formats := []string{cli.FormatText, cli.FormatJSON, cli.FormatJSONL}
	noHeader := cli.Register(fs, &o.Common, formats...)
	cli.RegisterSequences(fs, &o.SeqFiles)

	fs.StringVar(&o.Pattern, "pattern", isre.Consensus, "pattern over ACGT with N as wildcard ["+isre.Consensus+"]")
	fs.StringVar(&o.Pattern, "p", isre.Consensus, "alias of --pattern")
	fs.IntVar(&o.MaxMismatches, "max-mismatches", -1, "drop sequences whose best hit has more mismatches (-1 = keep all) [-1]")
	fs.IntVar(&o.MaxMismatches, "m", -1, "alias of --max-mismatches")

	posArgs, err := cli.Parse(fs, &o.Common, argv, aliases)
	if err != nil || o.Version {
		return o, err
	}
	if err := cli.AfterParse(&o.Common, noHeader, posArgs, formats...); err != nil {
		return o, err
	}
	if len(o.SeqFiles) == 0 {
		return o, errors.New("at least one FASTA input is required")
	}
	if o.MaxMismatches < -1 {
		return o, errors.New("--max-mismatches must be ≥ -1")
	}
	p, err := isre.Parse(o.Pattern)
	if err != nil {
		return o, fmt.Errorf("--pattern: %w", err)
	}
	o.Compiled = p
	return o, nil
}
