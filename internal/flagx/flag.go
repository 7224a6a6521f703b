// Package flagx contains helpers for parsing a subset of the command line,
// so that each package can read only the flags it owns without tripping over
// flags registered elsewhere.
package flagx

import "strings"

// FilterArgs returns the subset of args that mentions one of allowedFlags.
//
// Two forms are recognized:
//  1. Flag and value as separate arguments:  -a http://host
//  2. Flag and value combined with '=':      --api-url=http://host
//
// For form 1 the following argument is treated as the flag's value unless it
// looks like another flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
