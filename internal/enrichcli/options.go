// Package enrichcli parses motif-enrich arguments.
package enrichcli

import (
	"errors"
	"flag"
	"fmt"

	"isgmotif-core/enrich"
	"isgmotif-core/isre"
	"isgmotif/internal/cli"
)

const Name = "motif-enrich"

var aliases = cli.MergeAliases(map[string]string{
	"p": "pattern",
})

type Options struct {
	cli.Common

	Case            []string
	Control         []string
	StrongThreshold int
	Pattern         string
	Compiled        isre.Pattern
}

func NewFlagSet() *flag.FlagSet {
	return cli.NewFlagSet(Name, "strong-hit enrichment of a gene set against a control set (Fisher exact test)",
		"--case isg_promoters.fa --control control_promoters.fa",
		"--case isg_scan.tsv --control control_scan.tsv --strong-threshold 0 -o json",
	)
}

// ParseArgs registers and parses all flags and returns validated options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	formats := []string{cli.FormatText, cli.FormatJSON}
	noHeader := cli.Register(fs, &o.Common, formats...)

	fs.Var((*cli.StringSlice)(&o.Case), "case", "case set: FASTA or motif-scan TSV (repeatable) [*]")
	fs.Var((*cli.StringSlice)(&o.Control), "control", "control set: FASTA or motif-scan TSV (repeatable) [*]")
	fs.IntVar(&o.StrongThreshold, "strong-threshold", enrich.DefaultStrongThreshold,
		fmt.Sprintf("hits with at most this many mismatches are strong [%d]", enrich.DefaultStrongThreshold))
	fs.StringVar(&o.Pattern, "pattern", isre.Consensus, "pattern used when scanning FASTA inputs ["+isre.Consensus+"]")
	fs.StringVar(&o.Pattern, "p", isre.Consensus, "alias of --pattern")

	posArgs, err := cli.Parse(fs, &o.Common, argv, aliases)
	if err != nil || o.Version {
		return o, err
	}
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q (use --case/--control)", posArgs[0])
	}
	if err := cli.AfterParse(&o.Common, noHeader, nil, formats...); err != nil {
		return o, err
	}
	switch {
	case len(o.Case) == 0:
		return o, errors.New("--case is required")
	case len(o.Control) == 0:
		return o, errors.New("--control is required")
	case o.StrongThreshold < 0:
		return o, errors.New("--strong-threshold must be ≥ 0")
	}
	if o.Case, err = cli.ExpandPositionals(o.Case); err != nil {
		return o, err
	}
	if o.Control, err = cli.ExpandPositionals(o.Control); err != nil {
		return o, err
	}
	p, err := isre.Parse(o.Pattern)
	if err != nil {
		return o, fmt.Errorf("--pattern: %w", err)
	}
	o.Compiled = p
	return o, nil
}
