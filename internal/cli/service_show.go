package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dostoys/seth/internal/errors"
	"github.com/dostoys/seth/internal/text"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nameSeparator = " = "
	header        = " Environment Variables "
	notSet        = "<not set>"
)

// ShowVariables lists the environment, filtered and formatted per cfg.
func (s Service) ShowVariables(cfg ShowConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	match, mode, err := newMatcher(cfg)
	if err != nil {
		return err
	}

	env := s.Env.Environ()
	names := make([]string, 0, len(env))
	nameWidth := 0
	for name := range env {
		names = append(names, name)
		nameWidth = max(nameWidth, runewidth.StringWidth(name)+1)
	}
	slices.Sort(names)
	nameWidth = min(nameWidth, cfg.Indent)

	vars := make([]variable, 0, len(names))
	for _, name := range names {
		key := transformName(name, cfg.Case)
		value := env[name]

		ok, err := match(key, value)
		if err != nil {
			return errors.Wrapf(err, "unable to filter %q", name)
		}
		if ok {
			vars = append(vars, variable{Name: key, Value: value})
		}
	}

	s.Logger.Debugw("filtered environment", "mode", mode, "total", len(names), "shown", len(vars))

	switch cfg.Output {
	case OutputJSON:
		return s.writeJSON(s.Stdout, vars)
	case OutputYAML:
		return s.writeYAML(s.Stdout, vars)
	case OutputShell:
		return s.writeShell(s.Stdout, vars)
	}

	interactive := s.StdoutIsTTY && !cfg.NoWrap
	width := s.width(cfg.Width)
	s.Logger.Debugw("rendering text", "interactive", interactive, "width", width, "nameWidth", nameWidth)

	r := renderer{
		wrapper:       s.wrapper,
		wrap:          interactive,
		width:         width,
		nameWidth:     nameWidth,
		align:         cfg.Align,
		listSeparator: cfg.ListSeparator,
	}
	if r.listSeparator == "" {
		r.listSeparator = string(os.PathListSeparator)
	}

	var b strings.Builder
	if interactive {
		b.WriteString(text.CenteredLine(header, '-', width))
		b.WriteString("\n\n")
	}
	for _, v := range vars {
		r.render(&b, v)
	}

	return s.write(b.String(), cfg, interactive, width)
}

// ShowAppVariables lists the configuration variables seth itself reads,
// marking the ones that are not set.
func (s Service) ShowAppVariables(cfg AppVariablesConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	width := s.width(cfg.Width)
	nameWidth := 0
	for _, key := range cfg.Keys {
		nameWidth = max(nameWidth, runewidth.StringWidth(cfg.Vars.Prefix()+key)+1)
	}

	r := renderer{
		wrapper:   s.wrapper,
		wrap:      s.StdoutIsTTY,
		width:     width,
		nameWidth: nameWidth,
	}

	var b strings.Builder
	for _, key := range cfg.Keys {
		value, ok := cfg.Vars.Lookup(key)
		if !ok {
			value = notSet
		}
		r.renderPlain(&b, variable{Name: cfg.Vars.Prefix() + key, Value: value})
	}

	_, err := fmt.Fprint(s.Stdout, b.String())
	return err
}

func (s Service) write(out string, cfg ShowConfig, interactive bool, width int) error {
	if !interactive {
		_, err := fmt.Fprint(s.Stdout, out)
		return err
	}

	count := 0
	if cfg.PausePerPage {
		var err error
		if count, err = s.page(out, width); err != nil {
			return err
		}
	} else if _, err := fmt.Fprint(s.Stdout, out); err != nil {
		return err
	}

	if cfg.PauseAtEnd && (!cfg.PausePerPage || count > 0) {
		return s.pause(exitPrompt, width)
	}

	return nil
}

func transformName(name string, c KeyCase) string {
	switch c {
	case KeyCaseLower:
		return cases.Lower(language.Und).String(name)
	case KeyCaseUpper:
		return cases.Upper(language.Und).String(name)
	default:
		return name
	}
}

// splitPathList returns the entries of a PATH-like value, or nil when value
// does not look like a list of paths.
func splitPathList(value, sep string) []string {
	if !strings.Contains(value, sep) || !strings.ContainsAny(value, `/\`) || strings.Contains(value, "://") {
		return nil
	}

	var entries []string
	for _, entry := range strings.Split(value, sep) {
		if entry != "" {
			entries = append(entries, entry)
		}
	}

	if len(entries) < 2 {
		return nil
	}
	return entries
}
