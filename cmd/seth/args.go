package main

import (
	"strings"

	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/errors"

	"github.com/mattn/go-shellwords"
)

// EnvPrefix scopes the environment variables seth reads its own defaults from.
const EnvPrefix = "SETH"

// AppVariables are the variables, without EnvPrefix, that change seth's defaults.
var AppVariables = []string{"OPTIONS", "WIDTH", "INDENT", "ALIGN", "OUTPUT"}

// NormalizeArgs rewrites DOS-style help switches and the two-letter
// pause-at-end shorthand into flags cobra understands.
func NormalizeArgs(args []string) []string {
	normalized := make([]string, 0, len(args))

	for i, arg := range args {
		if arg == "--" {
			return append(normalized, args[i:]...)
		}

		switch strings.ToLower(arg) {
		case "/?", "/h", "-?":
			arg = "--help"
		case "-pp":
			arg = "--pause-at-end"
		}
		normalized = append(normalized, arg)
	}

	return normalized
}

// PrepareArgs prepends the options from SETH_OPTIONS to args and normalizes
// the result. Explicit arguments come last so that they win.
func PrepareArgs(vars *envvars.Vars, args []string) ([]string, error) {
	var all []string

	if options := vars.String("OPTIONS", ""); strings.TrimSpace(options) != "" {
		parsed, err := shellwords.Parse(options)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse %sOPTIONS", vars.Prefix())
		}
		all = append(all, parsed...)
	}

	return NormalizeArgs(append(all, args...)), nil
}
