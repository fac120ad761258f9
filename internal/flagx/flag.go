// Package flagx lets the config loaders of a binary share os.Args: each
// loader parses only the flags it owns.
package flagx

import (
	"flag"
	"io"
	"os"
	"slices"
	"strings"
)

// ConfigEnv names the config file when no -c/-config flag is given.
const ConfigEnv = "SHOP_CONFIG"

// FilterArgs keeps the allowed flags of args together with their values, in the
// order given. A flag written as "-name=value" is kept whole; a
// bare "-name" takes the next argument as its value unless that argument
// starts with '-'. The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, _, inline := strings.Cut(args[i], "=")
		if !strings.HasPrefix(name, "-") || !slices.Contains(allowed, name) {
			continue
		}
		out = append(out, args[i])
		if inline {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}

	return out
}

// ConfigFile returns the JSON config path given with -c or -config (the
// last one wins), falling back to $SHOP_CONFIG. It returns "" when neither
// is set.
func ConfigFile() string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(os.Args[1:], []string{"-c", "-config", "--config"}))

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	return path
}
