package main

import (
	"strings"

	"github.com/dostoys/seth/cmd/seth/config"
	"github.com/dostoys/seth/internal/cli"
	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/errors"
	"github.com/dostoys/seth/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App wires the command line to a cli.Service.
type App struct {
	Config  cli.Config
	Verbose bool

	vars    *envvars.Vars
	service cli.Service

	pause      bool
	pauseAtEnd bool
	noWrap     bool
	width      int
	indent     int
	noIndent   bool
	align      string
	lower      bool
	upper      bool
	byName     bool
	byValue    bool
	regex      bool
	glob       bool
	output     string
	envars     bool
}

// Execute runs seth with args, which exclude the program name.
func (a *App) Execute(args []string) error {
	if a.Config.Env == nil {
		return errors.New("missing environment backend")
	}

	vars, err := envvars.New(a.Config.Env, EnvPrefix, "")
	if err != nil {
		return errors.Wrap(err, "unable to initialize CLI")
	}
	a.vars = vars

	args, err = PrepareArgs(vars, args)
	if err != nil {
		return err
	}

	cmd := a.Command()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// Command builds the root `seth` command. Flag defaults come from the SETH_
// variables in the configured environment.
func (a *App) Command() *cobra.Command {
	if a.vars == nil {
		env := a.Config.Env
		if env == nil {
			env = envvars.NewMemoryBackend(nil)
		}
		a.vars, _ = envvars.New(env, EnvPrefix, "")
	}

	cmd := &cobra.Command{
		Use:   "seth [flags] [filter...]",
		Short: "Shows environment variables",
		Long: "Shows the environment variables of the current process. Names and values are " +
			"matched against the filter, case-insensitively. Path lists such as PATH are shown " +
			"one entry per line.",
		Example: "  seth path\n  seth --name --glob 'go*'\n  seth regex:^(home|user)$\n  seth -o shell > env.sh",
		SilenceErrors:     true,
		SilenceUsage:      true,
		Version:           config.Version,
		PersistentPreRunE: a.setup,
		RunE:              a.run,
	}

	cmd.SetOut(a.Config.Stdout)
	cmd.SetErr(a.Config.Stderr)
	cmd.SetVersionTemplate("seth v{{.Version}}\n" + config.Copyright + "\n")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		width := a.Config.TerminalWidth
		if a.width > 0 {
			width = max(a.width, cli.MinimumWidth)
		}
		_ = renderHelp(c.OutOrStdout(), c, width)
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&a.pause, "pause", "p", false, "pause after every page of output, and at the end")
	flags.BoolVar(&a.pauseAtEnd, "pause-at-end", false, "pause at the end of the output (also -pp)")
	flags.BoolVar(&a.noWrap, "no-wrap", false, "do not wrap long values")
	flags.IntVar(&a.width, "width", a.vars.Int("WIDTH", 0), "wrap values at `N` columns instead of the terminal width (minimum 20)")
	flags.IntVar(&a.indent, "indent", a.vars.Int("INDENT", cli.DefaultIndent), "limit the name column to `N` columns")
	flags.BoolVar(&a.noIndent, "no-indent", false, "do not align values in a column")
	flags.StringVar(&a.align, "align", a.vars.String("ALIGN", "l"), "align names to the left (l) or right (r)")
	flags.BoolVar(&a.lower, "lower", false, "show names in lower case")
	flags.BoolVar(&a.upper, "upper", false, "show names in upper case")
	flags.BoolVar(&a.byName, "name", false, "match the filter against names only")
	flags.BoolVar(&a.byValue, "value", false, "match the filter against values only")
	flags.BoolVar(&a.regex, "regex", false, "treat the filter as a regular expression (or prefix it with regex:)")
	flags.BoolVar(&a.glob, "glob", false, "treat the filter as a glob pattern")
	flags.StringVarP(&a.output, "output", "o", a.vars.String("OUTPUT", "text"), "output format: text, json, yaml or shell")

	flags.BoolVar(&a.envars, "envars", false, "list the variables seth reads its defaults from")
	_ = flags.MarkHidden("envars")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "enable debug output")
	_ = cmd.PersistentFlags().MarkHidden("verbose")

	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "wrap" {
			name = "width"
		}
		return pflag.NormalizedName(name)
	})

	cmd.MarkFlagsMutuallyExclusive("lower", "upper")
	cmd.MarkFlagsMutuallyExclusive("regex", "glob")
	cmd.MarkFlagsMutuallyExclusive("width", "no-wrap")

	return cmd
}

func (a *App) setup(cmd *cobra.Command, args []string) error {
	cfg := a.Config
	cfg.Logger = logging.New(a.Verbose, a.Config.Stderr)

	service, err := cli.NewService(cfg)
	if err != nil {
		return errors.Wrap(err, "unable to initialize CLI")
	}
	a.service = service

	return nil
}

func (a *App) run(cmd *cobra.Command, args []string) error {
	if a.envars {
		return a.service.ShowAppVariables(cli.AppVariablesConfig{
			Vars:  a.vars,
			Keys:  AppVariables,
			Width: a.wrapWidth(),
		})
	}

	cfg, err := a.showConfig(args)
	if err != nil {
		return err
	}

	a.service.Logger.Debugw("resolved options", "filter", cfg.Filter, "width", cfg.Width, "indent", cfg.Indent)

	return a.service.ShowVariables(cfg)
}

func (a *App) showConfig(args []string) (cli.ShowConfig, error) {
	align, err := cli.ParseAlignment(a.align)
	if err != nil {
		return cli.ShowConfig{}, err
	}

	output, err := cli.ParseOutputFormat(a.output)
	if err != nil {
		return cli.ShowConfig{}, err
	}

	filterBy := cli.FilterByBoth
	switch {
	case a.byName && !a.byValue:
		filterBy = cli.FilterByName
	case a.byValue && !a.byName:
		filterBy = cli.FilterByValue
	}

	keyCase := cli.KeyCaseUnchanged
	switch {
	case a.lower:
		keyCase = cli.KeyCaseLower
	case a.upper:
		keyCase = cli.KeyCaseUpper
	}

	indent := max(a.indent, 0)
	if a.noIndent {
		indent = 0
	}

	return cli.ShowConfig{
		Filter:       strings.Join(args, " "),
		FilterBy:     filterBy,
		Regex:        a.regex,
		Glob:         a.glob,
		Width:        a.wrapWidth(),
		Indent:       indent,
		Align:        align,
		Case:         keyCase,
		NoWrap:       a.noWrap,
		PausePerPage: a.pause,
		PauseAtEnd:   a.pause || a.pauseAtEnd,
		Output:       output,
	}, nil
}

// wrapWidth returns the requested wrap width, raised to cli.MinimumWidth.
// Zero means the terminal width.
func (a *App) wrapWidth() int {
	if a.width == 0 {
		return 0
	}
	return max(a.width, cli.MinimumWidth)
}
