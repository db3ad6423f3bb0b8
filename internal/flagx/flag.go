// Package flagx helps several independent flag sets share one command line.
// Each consumer filters the arguments down to the flags it owns before
// parsing, so unknown flags of other consumers never trip flag.Parse.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags named in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognised. A flag listed
// in boolFlags never consumes the following argument.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		allowedSet[f] = struct{}{}
	}
	boolSet := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		boolSet[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowedSet[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowedSet[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if _, isBool := boolSet[arg]; isBool {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath returns the value of -c / -config in args, or "" when neither
// is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}
