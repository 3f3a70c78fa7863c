package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dostoys/seth/cmd/seth/config"
	"github.com/dostoys/seth/internal/text"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Help lines start at column 2 and wrapped descriptions continue under the
// description column.
const (
	helpIndent       = 2
	helpColumn       = 18
	helpLabelColumns = helpColumn - helpIndent - 1
)

var environmentHelp = [][2]string{
	{EnvPrefix + "_OPTIONS", "options applied before the command line, e.g. \"--align r --no-wrap\""},
	{EnvPrefix + "_WIDTH", "default for --width"},
	{EnvPrefix + "_INDENT", "default for --indent"},
	{EnvPrefix + "_ALIGN", "default for --align"},
	{EnvPrefix + "_OUTPUT", "default for --output"},
}

func renderHelp(w io.Writer, cmd *cobra.Command, width int) error {
	var b strings.Builder

	fmt.Fprintf(&b, "seth v%s\n", config.Version)
	b.WriteString(text.Wrap(cmd.Long, width))
	b.WriteString("\n\nUsage:\n")
	b.WriteString(text.Wrap(cmd.UseLine(), width, helpIndent))
	b.WriteString("\n\nFlags:\n")

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		b.WriteString(helpEntry(flagLabel(f), flagUsage(f), width))
		b.WriteByte('\n')
	})

	if cmd.Example != "" {
		b.WriteString("\nExamples:\n")
		b.WriteString(cmd.Example)
		b.WriteByte('\n')
	}

	b.WriteString("\nEnvironment:\n")
	for _, e := range environmentHelp {
		b.WriteString(helpEntry(e[0], e[1], width))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(config.Copyright)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// helpEntry renders a label and its description as a hanging paragraph. Labels
// too long for the label column get a line of their own.
func helpEntry(label, description string, width int) string {
	if len(label) > helpLabelColumns {
		return text.Wrap(label, width, helpIndent) + "\n" +
			text.Wrap(strings.Repeat(" ", helpColumn-helpIndent)+description, width, helpIndent, helpColumn)
	}

	return text.Wrap(fmt.Sprintf("%-*s %s", helpLabelColumns, label, description), width, helpIndent, helpColumn)
}

func flagLabel(f *pflag.Flag) string {
	name, _ := pflag.UnquoteUsage(f)

	label := "    --" + f.Name
	if f.Shorthand != "" {
		label = "-" + f.Shorthand + ", --" + f.Name
	}
	if name != "" {
		label += " " + name
	}
	return label
}

func flagUsage(f *pflag.Flag) string {
	_, usage := pflag.UnquoteUsage(f)

	switch f.DefValue {
	case "", "false", "0", "[]":
		return usage
	}
	return fmt.Sprintf("%s (default %s)", usage, f.DefValue)
}
