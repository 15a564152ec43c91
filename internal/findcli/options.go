// Package findcli parses motif-find arguments.
package findcli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"isgmotif-core/search"
	"isgmotif/internal/cli"
)

const Name = "motif-find"

// SeedRandom asks for a clock-derived seed.
const SeedRandom = "random"

// Per-strategy restart counts used when --restarts is left at 0.
const (
	DefaultRandomizedRestarts = 1000
	DefaultGibbsRestarts      = 50
)

var aliases = cli.MergeAliases(map[string]string{
	"s": "sequences",
	"n": "iterations",
	"r": "restarts",
})

type Options struct {
	cli.Common

	Strategy   string
	K          int
	Iterations int
	Restarts   int // 0 = per-strategy default
	Seed       string
	Progress   bool
}

func NewFlagSet() *flag.FlagSet {
	return cli.NewFlagSet(Name, "de novo promoter motif discovery",
		"[options] promoters.fa",
		"--strategy gibbs -k 12 --restarts 50 --seed 7 promoters.fa.gz",
		"--seed random --threads 0 --output json promoters.fa",
	)
}

// ParseArgs registers and parses all flags and returns validated options.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader := cli.Register(fs, &o.Common, cli.FormatText, cli.FormatJSON)
	cli.RegisterSequences(fs, &o.SeqFiles)

	fs.StringVar(&o.Strategy, "strategy", string(search.StrategyRandomized), "search strategy: randomized | gibbs [randomized]")
	fs.IntVar(&o.K, "k", 12, "motif length [12]")
	fs.IntVar(&o.Iterations, "iterations", 2000, "Gibbs iterations per restart [2000]")
	fs.IntVar(&o.Iterations, "n", 2000, "alias of --iterations")
	fs.IntVar(&o.Restarts, "restarts", 0, "independent restarts (0 = 1000 randomized, 50 gibbs) [0]")
	fs.IntVar(&o.Restarts, "r", 0, "alias of --restarts")
	fs.StringVar(&o.Seed, "seed", "42", "integer seed, or 'random' for system entropy [42]")
	fs.BoolVar(&o.Progress, "progress", false, "draw a restart progress bar on stderr [false]")

	posArgs, err := cli.Parse(fs, &o.Common, argv, aliases)
	if err != nil || o.Version {
		return o, err
	}
	if err := cli.AfterParse(&o.Common, noHeader, posArgs, cli.FormatText, cli.FormatJSON); err != nil {
		return o, err
	}
	if len(o.SeqFiles) == 0 {
		return o, errors.New("at least one FASTA input is required")
	}
	o.Strategy = strings.ToLower(strings.TrimSpace(o.Strategy))
	if _, err := o.SearchConfig(); err != nil {
		return o, err
	}
	return o, nil
}

// EffectiveRestarts resolves --restarts 0 to the strategy default.
func (o Options) EffectiveRestarts() int {
	if o.Restarts != 0 {
		return o.Restarts
	}
	if search.Strategy(strings.ToLower(o.Strategy)) == search.StrategyGibbs {
		return DefaultGibbsRestarts
	}
	return DefaultRandomizedRestarts
}

// SearchConfig converts the options into a validated search.Config.
func (o Options) SearchConfig() (search.Config, error) {
	cfg := search.Config{
		Strategy:   search.Strategy(strings.ToLower(o.Strategy)),
		K:          o.K,
		Iterations: o.Iterations,
		Restarts:   o.EffectiveRestarts(),
		Threads:    cli.EffectiveThreads(o.Threads),
	}
	if strings.EqualFold(o.Seed, SeedRandom) {
		cfg.UseEntropy = true
	} else {
		seed, err := strconv.ParseInt(o.Seed, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid --seed %q (want an integer or %q)", o.Seed, SeedRandom)
		}
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
