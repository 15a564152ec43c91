// Package config overlays an optional config file and MOTIF_* environment
// variables onto a parsed flag set. Precedence is
// flag > environment > config file > flag default.
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to upper-cased flag names, with '-' mapped to '_'
// (e.g. --max-mismatches reads MOTIF_MAX_MISMATCHES).
const EnvPrefix = "MOTIF"

// FlagName is the flag that names the config file; it is never overlaid.
const FlagName = "config"

// Load returns a viper instance bound to the environment and, when path is
// not empty, to the config file at path (format from its extension).
func Load(path, envPrefix string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// Overlay assigns every flag of fs that was not set on the command line
// from v. aliases maps short flag names to the long name they share a
// variable with; aliases are never looked up themselves, and setting one on
// the command line counts as setting its long name.
func Overlay(v *viper.Viper, fs *flag.FlagSet, aliases map[string]string) error {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		explicit[name] = true
	})

	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if firstErr != nil || f.Name == FlagName || explicit[f.Name] {
			return
		}
		if _, isAlias := aliases[f.Name]; isAlias {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		for _, val := range values(v, f.Name) {
			if err := fs.Set(f.Name, val); err != nil {
				firstErr = fmt.Errorf("config value for --%s: %w", f.Name, err)
				return
			}
		}
	})
	return firstErr
}

// values flattens list-valued keys (repeatable flags in a config file).
func values(v *viper.Viper, key string) []string {
	switch x := v.Get(key).(type) {
	case []interface{}:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, fmt.Sprint(e))
		}
		return out
	case []string:
		return x
	}
	return []string{v.GetString(key)}
}
