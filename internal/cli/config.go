package cli

import (
	"io"
	"strings"

	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/errors"

	"go.uber.org/zap"
)

const (
	// DefaultIndent caps the width of the name column.
	DefaultIndent = 16

	// MinimumWidth is the narrowest wrap width accepted from the command line.
	MinimumWidth = 20
)

type Config struct {
	Env            envvars.Backend
	Keys           KeyReader
	Logger         *zap.SugaredLogger
	Stdout         io.Writer
	StdoutIsTTY    bool
	Stderr         io.Writer
	TerminalWidth  int
	TerminalHeight int
}

func (c Config) Validate() error {
	if c.Env == nil {
		return errors.New("missing environment backend")
	}

	if c.Stdout == nil {
		return errors.New("missing Stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing Stderr")
	}

	return nil
}

type FilterBy int

const (
	FilterByBoth FilterBy = iota
	FilterByName
	FilterByValue
)

func ParseFilterBy(s string) (FilterBy, error) {
	switch strings.ToLower(s) {
	case "", "both":
		return FilterByBoth, nil
	case "name":
		return FilterByName, nil
	case "value":
		return FilterByValue, nil
	default:
		return FilterByBoth, errors.New("unknown filter target, expected one of: both, name, value")
	}
}

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// ParseAlignment accepts anything starting with "l" or "r", so "left",
// "right", "l" and "r" all work.
func ParseAlignment(s string) (Alignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "l"):
		return AlignLeft, nil
	case strings.HasPrefix(s, "r"):
		return AlignRight, nil
	default:
		return AlignLeft, errors.Errorf("invalid alignment %q, expected l or r", s)
	}
}

type KeyCase int

const (
	KeyCaseUnchanged KeyCase = iota
	KeyCaseLower
	KeyCaseUpper
)

type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
	OutputYAML
	OutputShell
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	case "yaml":
		return OutputYAML, nil
	case "shell", "sh":
		return OutputShell, nil
	default:
		return OutputText, errors.New("unknown output format, expected one of: text, json, yaml, shell")
	}
}

type ShowConfig struct {
	// Filter selects variables; empty shows everything. A "regex:" prefix
	// turns on Regex.
	Filter   string
	FilterBy FilterBy
	Regex    bool
	Glob     bool

	// Width is the wrap width; zero means the terminal width.
	Width  int
	Indent int
	Align  Alignment
	Case   KeyCase

	NoWrap       bool
	PausePerPage bool
	PauseAtEnd   bool

	Output OutputFormat

	// ListSeparator splits path-list values such as PATH. Defaults to the
	// platform's list separator.
	ListSeparator string
}

func (c ShowConfig) Validate() error {
	if c.Regex && c.Glob {
		return errors.New("--regex and --glob cannot be used together")
	}

	if c.Width < 0 {
		return errors.Errorf("invalid width %d", c.Width)
	}

	if c.Indent < 0 {
		return errors.Errorf("invalid indent %d", c.Indent)
	}

	return nil
}

type AppVariablesConfig struct {
	Vars  *envvars.Vars
	Keys  []string
	Width int
}

func (c AppVariablesConfig) Validate() error {
	if c.Vars == nil {
		return errors.New("missing application variables")
	}

	return nil
}

func ParseKeyCase(s string) (KeyCase, error) {
	switch strings.ToLower(s) {
	case "", "unchanged":
		return KeyCaseUnchanged, nil
	case "lower":
		return KeyCaseLower, nil
	case "upper":
		return KeyCaseUpper, nil
	default:
		return KeyCaseUnchanged, errors.New("unknown key case, expected one of: unchanged, lower, upper")
	}
}
