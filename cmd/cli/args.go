package main

import (
	"regexp"
	"strings"

	"github.com/spf13/pflag"
)

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// normalizeArgs lets a negative size such as "-5" be given as a plain
// positional argument. When one is present, flags are kept in front and every
// positional argument is moved behind a "--" terminator so the flag parser
// does not read "-5" as a shorthand.
func normalizeArgs(fs *pflag.FlagSet, args []string) []string {
	var flagArgs, positional []string
	hasNegative := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeNumber.MatchString(arg):
			positional = append(positional, arg)
			hasNegative = true
		case len(arg) > 1 && arg[0] == '-':
			flagArgs = append(flagArgs, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if !hasNegative {
		return args
	}
	out := append(flagArgs, "--")
	return append(out, positional...)
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(fs *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		if strings.Contains(name, "=") {
			return false
		}
		f = fs.Lookup(name)
	} else {
		if len(arg) != 2 {
			return false
		}
		f = fs.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
