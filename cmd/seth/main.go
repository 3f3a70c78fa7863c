package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dostoys/seth/internal/cli"
	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/text"

	"golang.org/x/term"
)

// A HandledError has already been handled in the called function,
// but should return a non-zero exit code.
var HandledError = cli.HandledError

func main() {
	size := text.TerminalSize()

	app := &App{
		Config: cli.Config{
			Env:            envvars.OSBackend{},
			Keys:           cli.TerminalKeyReader{In: os.Stdin},
			Stdout:         os.Stdout,
			StdoutIsTTY:    term.IsTerminal(int(os.Stdout.Fd())),
			Stderr:         os.Stderr,
			TerminalWidth:  size.Width,
			TerminalHeight: size.Height,
		},
	}

	err := app.Execute(os.Args[1:])
	if err == nil {
		return
	}

	if !errors.Is(err, HandledError) {
		if app.Verbose {
			// Enabling verbose output will print stacktraces
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
	}

	os.Exit(1)
}
