package text

import (
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

// CenteredLine pads content on both sides with fill so that it sits in the
// middle of width columns. Content wider than width gets no padding.
func CenteredLine(content string, fill rune, width int) string {
	n := (width-DisplayWidth(content))/2 - 1
	if n <= 0 {
		return content
	}

	pad := strings.Repeat(string(fill), n)
	return pad + content + pad
}

// CenteredLine centers content within the terminal width.
func (w *Wrapper) CenteredLine(content string, fill rune) string {
	return CenteredLine(content, fill, w.terminalWidth())
}

// DisplayWidth is the number of terminal columns s occupies, ignoring ANSI
// escape sequences.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(stripansi.Strip(s))
}
