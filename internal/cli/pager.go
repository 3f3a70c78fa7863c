package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dostoys/seth/internal/errors"
	"github.com/dostoys/seth/internal/text"

	"golang.org/x/term"
)

const (
	continuePrompt = "Press any key to continue"
	exitPrompt     = "Press any key to exit"
)

// TerminalKeyReader reads a single key press from In, switching it to raw
// mode first when it is a terminal.
type TerminalKeyReader struct {
	In *os.File
}

func (r TerminalKeyReader) ReadKey() error {
	fd := int(r.In.Fd())

	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return errors.Wrap(err, "unable to switch terminal to raw mode")
		}
		defer func() {
			_ = term.Restore(fd, oldState)
		}()
	}

	buf := make([]byte, 1)
	if _, err := r.In.Read(buf); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "unable to read key press")
	}

	return nil
}

// page writes out one screenful at a time, prompting between screens. It
// returns the number of lines written since the last prompt.
func (s Service) page(out string, width int) (int, error) {
	height := s.TerminalHeight
	if height < 2 {
		height = text.DefaultTerminalHeight
	}

	count := 0
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}

		if count >= height-1 {
			if err := s.pause(continuePrompt, width); err != nil {
				return count, err
			}
			count = 0
		}

		if _, err := fmt.Fprintln(s.Stdout, strings.TrimRight(line, " ")); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// pause shows a centered prompt, waits for a key and then blanks the prompt
// line again.
func (s Service) pause(prompt string, width int) error {
	if s.Keys == nil {
		return errors.New("missing key reader")
	}

	fmt.Fprint(s.Stdout, strings.TrimRight(text.CenteredLine(" "+prompt+" ", '-', width), " "))

	if err := s.Keys.ReadKey(); err != nil {
		return err
	}

	fmt.Fprint(s.Stdout, "\r"+strings.Repeat(" ", width)+"\r")
	return nil
}
