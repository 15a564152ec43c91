package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"isgmotif/internal/version"
)

// NewFlagSet returns a ContinueOnError flag set whose usage text starts with
// the tool banner followed by the given usage lines.
func NewFlagSet(name, summary string, usage ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		if len(usage) > 0 {
			fmt.Fprintln(out, "Usage:")
			for _, u := range usage {
				fmt.Fprintf(out, "  %s %s\n", name, u)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, "Options:")
		printFlags(out, fs)
		fmt.Fprintln(out, "\nLong options may also be set in --config FILE or as MOTIF_<NAME>")
		fmt.Fprintln(out, "environment variables (e.g. MOTIF_RESTARTS=200); flags win.")
	}
	return fs
}

// printFlags lists long flags with their short alias, skipping the alias
// entries themselves.
func printFlags(out io.Writer, fs *flag.FlagSet) {
	short := map[string]string{}
	fs.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Usage, "alias of --") {
			short[strings.TrimPrefix(f.Usage, "alias of --")] = f.Name
		}
	})
	fs.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Usage, "alias of --") || f.Name == "h" {
			return
		}
		names := "    --" + f.Name
		if s, ok := short[f.Name]; ok {
			names = "-" + s + ", --" + f.Name
		}
		fmt.Fprintf(out, "  %-24s %s\n", names, f.Usage)
	})
}
