package text

import (
	"slices"
	"strings"
	"unicode"
)

// Wrapper breaks text into lines following width and indentation schedules.
// It holds no mutable state and is safe for concurrent use.
type Wrapper struct {
	breaks        map[rune]struct{}
	overrides     [][]rune
	suffix        []rune
	showSuffix    bool
	terminalWidth func() int
}

type Option func(*Wrapper)

// WithTerminalWidth sets the width used when no width, a zero width, or a
// negative (terminal-relative) width is requested.
func WithTerminalWidth(fn func() int) Option {
	return func(w *Wrapper) {
		if fn != nil {
			w.terminalWidth = fn
		}
	}
}

func New(cfg Config, opts ...Option) *Wrapper {
	w := &Wrapper{
		breaks:        make(map[rune]struct{}, len(cfg.BreakChars)),
		overrides:     make([][]rune, 0, len(cfg.Overrides)),
		showSuffix:    cfg.ShowSuffix && cfg.Suffix != "",
		suffix:        []rune(cfg.Suffix),
		terminalWidth: TerminalWidth,
	}

	for _, r := range cfg.BreakChars {
		w.breaks[r] = struct{}{}
	}

	for _, o := range cfg.Overrides {
		if o != "" {
			w.overrides = append(w.overrides, []rune(o))
		}
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

var defaultWrapper = New(DefaultConfig())

// Wrap wraps s at width using the default configuration. See Wrapper.Wrap.
func Wrap(s string, width int, indents ...int) string {
	return defaultWrapper.WrapWidth(s, width, indents...)
}

// WrapWidth wraps s with a single width for every line.
func (w *Wrapper) WrapWidth(s string, width int, indents ...int) string {
	return w.Wrap(s, []int{width}, indents)
}

// Wrap splits s into paragraphs on "\n" and "\r\n" and wraps each of them.
//
// Line N of the output is given widths[N] columns and indented by indents[N]
// spaces; both schedules stick at their last value once exhausted. A width of
// zero means the terminal width and a negative width means the terminal width
// less that many columns. The output lines are joined with "\n".
func (w *Wrapper) Wrap(s string, widths, indents []int) string {
	if s == "" {
		return ""
	}

	widths = w.resolveWidths(widths)
	indents = resolveIndents(indents)

	prefixes := make([]string, len(indents))
	for i, n := range indents {
		prefixes[i] = strings.Repeat(" ", n)
	}

	var suffix string
	suffixLen := 0
	if w.showSuffix {
		suffix = string(w.suffix)
		if w.suffix[0] != ' ' {
			suffix = " " + suffix
		}
		suffixLen = len(w.suffix)
	}

	paragraphs := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(paragraphs))
	line := 0

	for _, paragraph := range paragraphs {
		rest := []rune(paragraph)

		budget := lineBudget(widths, indents, line)
		if len(rest) <= budget {
			lines = append(lines, prefixes[min(line, len(prefixes)-1)]+paragraph)
			line++
			continue
		}

		for len(rest) > 0 {
			budget = lineBudget(widths, indents, line)
			prefix := prefixes[min(line, len(prefixes)-1)]

			brk := len(rest)
			if len(rest) > budget {
				brk = w.breakPoint(rest, budget)
				if brk == 0 {
					brk = budget
				}
			}

			brk = w.checkOverrides(rest, brk)

			if w.showSuffix && brk < len(rest) && brk > budget-suffixLen && budget-suffixLen > 0 {
				brk = w.breakPoint(rest, budget-suffixLen)
				if brk == 0 {
					brk = budget - suffixLen
				}
			}

			out := prefix + string(rest[:brk])

			if brk < len(rest) && rest[brk] == ' ' {
				rest = rest[brk+1:]
			} else {
				rest = rest[brk:]
			}

			if w.showSuffix && len(rest) > 0 {
				if strings.HasSuffix(out, " ") {
					out += strings.TrimLeft(suffix, " ")
				} else {
					out += suffix
				}
			}

			lines = append(lines, strings.TrimRightFunc(out, unicode.IsSpace))
			line++
		}
	}

	return strings.Join(lines, "\n")
}

// breakPoint returns the index just past the last break character within the
// first width runes of s, or 0 when there is none.
func (w *Wrapper) breakPoint(s []rune, width int) int {
	for i := min(width, len(s)) - 1; i >= 0; i-- {
		if _, ok := w.breaks[s[i]]; ok {
			return i + 1
		}
	}
	return 0
}

// checkOverrides moves brk back to the start of any override pattern that it
// would otherwise split or directly follow. A correction that would leave an
// empty line is ignored so that every line makes progress.
func (w *Wrapper) checkOverrides(s []rune, brk int) int {
	if brk == len(s) {
		return brk
	}

	orig := brk
	for _, pattern := range w.overrides {
		n := len(pattern)
		for x := n; x >= 0; x-- {
			start := brk - x
			if start < 0 || start+n > len(s) {
				continue
			}
			if slices.Equal(s[start:start+n], pattern) {
				brk = start
				break
			}
		}
	}

	if brk <= 0 {
		return orig
	}
	return brk
}

func (w *Wrapper) resolveWidths(widths []int) []int {
	if len(widths) == 0 {
		return []int{max(w.terminalWidth(), 1)}
	}

	resolved := make([]int, len(widths))
	for i, width := range widths {
		switch {
		case width == 0:
			width = w.terminalWidth()
		case width < 0:
			width = w.terminalWidth() + width
		}
		resolved[i] = max(width, 1)
	}
	return resolved
}

func resolveIndents(indents []int) []int {
	if len(indents) == 0 {
		return []int{0}
	}

	resolved := make([]int, len(indents))
	for i, indent := range indents {
		resolved[i] = max(indent, 0)
	}
	return resolved
}

// lineBudget is the number of text columns available on output line n.
func lineBudget(widths, indents []int, n int) int {
	width := widths[min(n, len(widths)-1)]
	indent := indents[min(n, len(indents)-1)]
	return max(width-indent, 1)
}
