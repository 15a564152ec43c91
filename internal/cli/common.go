// Package cli holds the flag plumbing shared by motif-find, motif-scan and
// motif-enrich.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"runtime"
	"strings"

	"isgmotif/internal/config"
	"isgmotif/internal/logging"
	"isgmotif/internal/output"
)

// Output formats, re-exported for option packages.
const (
	FormatText  = output.FormatText
	FormatJSON  = output.FormatJSON
	FormatJSONL = output.FormatJSONL
)

// Common holds the flags every tool accepts.
type Common struct {
	SeqFiles   []string
	Output     string
	OutFile    string // "" or "-" = stdout
	Header     bool   // true unless --no-header
	Threads    int
	ConfigFile string
	LogLevel   string
	Quiet      bool
	Version    bool
	Help       bool
}

// CommonAliases maps the short flags registered by Register to their long names.
var CommonAliases = map[string]string{
	"o": "output",
	"t": "threads",
	"q": "quiet",
	"v": "version",
}

// StringSlice is a repeatable string flag.
type StringSlice []string

func (s *StringSlice) String() string     { return strings.Join(*s, ",") }
func (s *StringSlice) Set(v string) error { *s = append(*s, v); return nil }

// Register wires shared flags onto fs and returns a pointer to the
// “no-header” bool; AfterParse turns it into Common.Header.
func Register(fs *flag.FlagSet, c *Common, formats ...string) *bool {
	fs.StringVar(&c.Output, "output", formats[0], "output: "+strings.Join(formats, " | ")+" ["+formats[0]+"]")
	fs.StringVar(&c.Output, "o", formats[0], "alias of --output")
	fs.StringVar(&c.OutFile, "out", "", "write results to FILE instead of stdout")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	fs.IntVar(&c.Threads, "threads", 1, "worker threads (0=all CPUs) [1]")
	fs.IntVar(&c.Threads, "t", 1, "alias of --threads")

	fs.StringVar(&c.ConfigFile, config.FlagName, "", "config file (yaml|json|toml); MOTIF_* env vars also apply")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: "+logging.Levels+" [info]")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit")
	fs.BoolVar(&c.Version, "v", false, "alias of --version")
	fs.BoolVar(&c.Help, "h", false, "show this help")
	fs.BoolVar(&c.Help, "help", false, "show this help")
	return &noHeader
}

// RegisterSequences adds the repeatable --sequences/-s input flag.
func RegisterSequences(fs *flag.FlagSet, dst *[]string) {
	v := (*StringSlice)(dst)
	fs.Var(v, "sequences", "FASTA file(s) (repeatable, .gz ok) or '-' for STDIN")
	fs.Var(v, "s", "alias of --sequences")
}

// Parse splits argv into flags and positionals, parses the flags and then
// fills every flag left unset from the config file and environment.
// It returns flag.ErrHelp when -h was given.
func Parse(fs *flag.FlagSet, c *Common, argv []string, aliases map[string]string) ([]string, error) {
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if c.Help {
		return nil, flag.ErrHelp
	}
	if c.Version {
		return posArgs, nil
	}
	v, err := config.Load(c.ConfigFile, config.EnvPrefix)
	if err != nil {
		return nil, err
	}
	if err := config.Overlay(v, fs, aliases); err != nil {
		return nil, err
	}
	return posArgs, nil
}

// MergeAliases returns CommonAliases plus extra.
func MergeAliases(extra map[string]string) map[string]string {
	out := make(map[string]string, len(CommonAliases)+len(extra))
	for k, v := range CommonAliases {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// AfterParse finalizes the header flag, appends positional inputs, and runs
// shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string, formats ...string) error {
	c.Header = !*noHeader
	if len(posArgs) > 0 {
		exp, err := ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	return Validate(c, formats...)
}

// Validate applies shared invariants. An empty formats list skips the
// --output check.
func Validate(c *Common, formats ...string) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(formats) == 0 {
		return nil
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
}

// EffectiveThreads resolves --threads 0 to the CPU count.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
