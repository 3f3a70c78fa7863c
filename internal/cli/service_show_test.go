package cli_test

import (
	"strings"
	"testing"

	"github.com/dostoys/seth/internal/cli"
	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/mocks"
	"github.com/stretchr/testify/require"
)

func showConfig(opts ...func(*cli.ShowConfig)) cli.ShowConfig {
	cfg := cli.ShowConfig{
		Indent:        cli.DefaultIndent,
		ListSeparator: ":",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func TestService_ShowVariables(t *testing.T) {
	t.Run("when stdout is redirected", func(t *testing.T) {
		t.Run("lists every variable without wrapping", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig())

			require.NoError(t, err)
			require.Equal(t, strings.Join([]string{
				"EDITOR  = vim",
				"HOME    = /home/seth",
				"PATH    = /usr/local/bin:",
				"          /usr/bin:",
				"          /bin:",
				"",
			}, "\n"), s.mockStdout.String())
		})

		t.Run("does not pause", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.PausePerPage = true
				c.PauseAtEnd = true
			}))

			require.NoError(t, err)
			require.Equal(t, 0, s.mockKeys.Presses)
			require.NotContains(t, s.mockStdout.String(), "Press any key")
		})
	})

	t.Run("when stdout is a terminal", func(t *testing.T) {
		t.Run("shows a header and renders path lists as a tree", func(t *testing.T) {
			s := setupTest(t, defaultEnv(), interactive)

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Width = 40
			}))

			require.NoError(t, err)
			require.Equal(t, strings.Join([]string{
				"------- Environment Variables -------",
				"",
				"EDITOR  = vim",
				"HOME    = /home/seth",
				"PATH    ╤ /usr/local/bin:",
				"        ├ /usr/bin:",
				"        └ /bin:",
				"",
			}, "\n"), s.mockStdout.String())
		})

		t.Run("wraps long values under the value column", func(t *testing.T) {
			s := setupTest(t, map[string]string{"MSG": "the quick brown fox jumps over the lazy dog"}, interactive)

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Width = 30
			}))

			require.NoError(t, err)
			require.Contains(t, s.mockStdout.String(), "MSG  = the quick brown fox\n       jumps over the lazy dog\n")
		})

		t.Run("when wrapping is disabled", func(t *testing.T) {
			s := setupTest(t, map[string]string{"MSG": "the quick brown fox jumps over the lazy dog"}, interactive)

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Width = 30
				c.NoWrap = true
			}))

			require.NoError(t, err)
			require.Equal(t, "MSG  = the quick brown fox jumps over the lazy dog\n", s.mockStdout.String())
		})

		t.Run("when pausing per page", func(t *testing.T) {
			s := setupTest(t, map[string]string{"A": "1", "B": "2", "C": "3"}, interactive, func(c *cli.Config) {
				c.TerminalHeight = 3
			})

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Width = 40
				c.PausePerPage = true
				c.PauseAtEnd = true
			}))

			require.NoError(t, err)
			require.Equal(t, 2, s.mockKeys.Presses)

			out := s.mockStdout.String()
			require.Equal(t, 1, strings.Count(out, "----- Press any key to continue -----"))
			require.Equal(t, 1, strings.Count(out, "Press any key to exit"))
			require.Less(t, strings.Index(out, "A  = 1"), strings.Index(out, "continue"))
			require.Greater(t, strings.Index(out, "B  = 2"), strings.Index(out, "continue"))
		})

		t.Run("when pausing at the end", func(t *testing.T) {
			s := setupTest(t, defaultEnv(), interactive)

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.PauseAtEnd = true
			}))

			require.NoError(t, err)
			require.Equal(t, 1, s.mockKeys.Presses)
			require.True(t, strings.HasSuffix(s.mockStdout.String(), "\r"+strings.Repeat(" ", 80)+"\r"))
		})

		t.Run("when the key press cannot be read", func(t *testing.T) {
			s := setupTest(t, defaultEnv(), interactive, func(c *cli.Config) {
				c.Keys = mocks.FailingKeys{}
			})

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.PauseAtEnd = true
			}))

			require.Error(t, err)
			require.Contains(t, err.Error(), "MockReadKey was not configured")
		})

		t.Run("when there is no key reader", func(t *testing.T) {
			s := setupTest(t, defaultEnv(), interactive, func(c *cli.Config) {
				c.Keys = nil
			})

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.PauseAtEnd = true
			}))

			require.Error(t, err)
			require.Contains(t, err.Error(), "missing key reader")
		})
	})

	t.Run("when filtering", func(t *testing.T) {
		t.Run("matches names and values case-insensitively", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "ed"
			}))

			require.NoError(t, err)
			require.Equal(t, "EDITOR  = vim\n", s.mockStdout.String())
		})

		t.Run("matches values", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "SETH"
			}))

			require.NoError(t, err)
			require.Equal(t, "HOME    = /home/seth\n", s.mockStdout.String())
		})

		t.Run("when restricted to names", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "bin"
				c.FilterBy = cli.FilterByName
			}))

			require.NoError(t, err)
			require.Empty(t, s.mockStdout.String())
		})

		t.Run("with a regex: prefix", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "REGEX:^h"
			}))

			require.NoError(t, err)
			require.Equal(t, "HOME    = /home/seth\n", s.mockStdout.String())
		})

		t.Run("with an invalid regular expression", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "("
				c.Regex = true
			}))

			require.Error(t, err)
			require.Contains(t, err.Error(), `invalid regular expression "("`)
		})

		t.Run("with a glob on values", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Filter = "/USR/**"
				c.Glob = true
				c.FilterBy = cli.FilterByValue
			}))

			require.NoError(t, err)
			require.True(t, strings.HasPrefix(s.mockStdout.String(), "PATH    = /usr/local/bin:\n"))
			require.NotContains(t, s.mockStdout.String(), "HOME")
		})

		t.Run("with both regex and glob", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Regex = true
				c.Glob = true
			}))

			require.Error(t, err)
			require.Contains(t, err.Error(), "validation failed")
		})
	})

	t.Run("when transforming names", func(t *testing.T) {
		t.Run("filters on the transformed name", func(t *testing.T) {
			s := setupTest(t, defaultEnv())

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Case = cli.KeyCaseLower
				c.Filter = "regex:^home$"
				c.FilterBy = cli.FilterByName
			}))

			require.NoError(t, err)
			require.Equal(t, "home    = /home/seth\n", s.mockStdout.String())
		})

		t.Run("upper-cases names", func(t *testing.T) {
			s := setupTest(t, map[string]string{"shell": "/bin/zsh"})

			err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
				c.Case = cli.KeyCaseUpper
			}))

			require.NoError(t, err)
			require.Equal(t, "SHELL  = /bin/zsh\n", s.mockStdout.String())
		})
	})

	t.Run("when aligning names to the right", func(t *testing.T) {
		s := setupTest(t, defaultEnv())

		err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
			c.Align = cli.AlignRight
			c.Filter = "home"
		}))

		require.NoError(t, err)
		require.Equal(t, "   HOME = /home/seth\n", s.mockStdout.String())
	})

	t.Run("when the indent is narrower than the names", func(t *testing.T) {
		s := setupTest(t, map[string]string{"A": "1", "LONGER_NAME": "2"})

		err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
			c.Indent = 4
		}))

		require.NoError(t, err)
		require.Equal(t, "A    = 1\nLONGER_NAME = 2\n", s.mockStdout.String())
	})

	t.Run("when outputting json", func(t *testing.T) {
		s := setupTest(t, defaultEnv(), interactive)

		err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
			c.Output = cli.OutputJSON
			c.PauseAtEnd = true
		}))

		require.NoError(t, err)
		require.Contains(t, s.mockStdout.String(), `"EDITOR": "vim"`)
		require.Contains(t, s.mockStdout.String(), `"PATH": "/usr/local/bin:/usr/bin:/bin"`)
		require.NotContains(t, s.mockStdout.String(), "Environment Variables")
		require.Equal(t, 0, s.mockKeys.Presses)
	})

	t.Run("when outputting yaml", func(t *testing.T) {
		s := setupTest(t, defaultEnv())

		err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
			c.Output = cli.OutputYAML
		}))

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(s.mockStdout.String(), "EDITOR: vim\nHOME: /home/seth\n"))
	})

	t.Run("when outputting shell", func(t *testing.T) {
		s := setupTest(t, map[string]string{
			"GREETING":      "hello world",
			"EDITOR":        "vim",
			"PROGRAM FILES": `C:\Program Files`,
		})

		err := s.service.ShowVariables(showConfig(func(c *cli.ShowConfig) {
			c.Output = cli.OutputShell
		}))

		require.NoError(t, err)
		require.Equal(t, "export EDITOR=vim\nexport GREETING='hello world'\n", s.mockStdout.String())
	})
}

func TestService_ShowAppVariables(t *testing.T) {
	t.Run("lists set and unset variables", func(t *testing.T) {
		s := setupTest(t, map[string]string{"SETH_WIDTH": "100", "HOME": "/home/seth"})

		vars, err := envvars.New(s.env, "SETH", "")
		require.NoError(t, err)

		err = s.service.ShowAppVariables(cli.AppVariablesConfig{
			Vars: vars,
			Keys: []string{"WIDTH", "OUTPUT"},
		})

		require.NoError(t, err)
		require.Equal(t, "SETH_WIDTH   = 100\nSETH_OUTPUT  = <not set>\n", s.mockStdout.String())
	})

	t.Run("when the variables are missing", func(t *testing.T) {
		s := setupTest(t, nil)

		err := s.service.ShowAppVariables(cli.AppVariablesConfig{})

		require.Error(t, err)
		require.Contains(t, err.Error(), "missing application variables")
	})
}
