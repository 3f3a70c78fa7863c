package cli

import (
	"strings"
	"time"

	"github.com/dostoys/seth/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

const regexFilterPrefix = "regex:"

// regexTimeout bounds a single match so that a pathological pattern cannot
// hang the listing.
const regexTimeout = time.Second

type filterMode string

const (
	filterNone     filterMode = "none"
	filterContains filterMode = "contains"
	filterRegex    filterMode = "regex"
	filterGlob     filterMode = "glob"
)

// matcher reports whether a variable should be shown.
type matcher func(name, value string) (bool, error)

func newMatcher(cfg ShowConfig) (matcher, filterMode, error) {
	pattern := cfg.Filter
	regex := cfg.Regex

	if len(pattern) >= len(regexFilterPrefix) && strings.EqualFold(pattern[:len(regexFilterPrefix)], regexFilterPrefix) {
		regex = true
		pattern = pattern[len(regexFilterPrefix):]
	}

	if pattern == "" {
		return func(string, string) (bool, error) { return true, nil }, filterNone, nil
	}

	var (
		match func(string) (bool, error)
		mode  filterMode
	)

	switch {
	case regex:
		re, err := regexp2.Compile(pattern, regexp2.IgnoreCase|regexp2.Singleline)
		if err != nil {
			return nil, filterRegex, errors.Wrapf(err, "invalid regular expression %q", pattern)
		}
		re.MatchTimeout = regexTimeout

		match = re.MatchString
		mode = filterRegex
	case cfg.Glob:
		folded := fold(pattern)
		if !doublestar.ValidatePattern(folded) {
			return nil, filterGlob, errors.Errorf("invalid glob pattern %q", pattern)
		}

		match = func(s string) (bool, error) {
			return doublestar.Match(folded, fold(s))
		}
		mode = filterGlob
	default:
		needle := fold(pattern)

		match = func(s string) (bool, error) {
			return strings.Contains(fold(s), needle), nil
		}
		mode = filterContains
	}

	by := cfg.FilterBy
	return func(name, value string) (bool, error) {
		switch by {
		case FilterByName:
			return match(name)
		case FilterByValue:
			return match(value)
		}

		if ok, err := match(name); ok || err != nil {
			return ok, err
		}
		return match(value)
	}, mode, nil
}

// fold case-folds s for case-insensitive comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}
