package text

import (
	"os"

	tsize "github.com/kopoli/go-terminal-size"
	"golang.org/x/term"
)

const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

type Size struct {
	Width  int
	Height int
}

// TerminalSize reports the size of the controlling terminal, falling back to
// stdout's size and finally to 80x24 when neither can be determined.
func TerminalSize() Size {
	if size, err := tsize.GetSize(); err == nil && size.Width > 0 && size.Height > 0 {
		return Size{Width: size.Width, Height: size.Height}
	}

	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && height > 0 {
		return Size{Width: width, Height: height}
	}

	return Size{Width: DefaultTerminalWidth, Height: DefaultTerminalHeight}
}

func TerminalWidth() int {
	return TerminalSize().Width
}
