package cli_test

import (
	"strings"
	"testing"

	"github.com/dostoys/seth/internal/cli"
	"github.com/dostoys/seth/internal/envvars"
	"github.com/dostoys/seth/internal/mocks"
	"github.com/stretchr/testify/require"
)

// testSetup contains common test setup data
type testSetup struct {
	config     cli.Config
	service    cli.Service
	env        *envvars.MemoryBackend
	mockKeys   *mocks.Keys
	mockStdout *strings.Builder
	mockStderr *strings.Builder
}

// setupTest creates a service over an in-memory environment. Options can
// adjust the configuration before the service is built.
func setupTest(t *testing.T, vars map[string]string, opts ...func(*cli.Config)) *testSetup {
	setup := &testSetup{
		env:        envvars.NewMemoryBackend(vars),
		mockKeys:   new(mocks.Keys),
		mockStdout: &strings.Builder{},
		mockStderr: &strings.Builder{},
	}

	setup.config = cli.Config{
		Env:            setup.env,
		Keys:           setup.mockKeys,
		Stdout:         setup.mockStdout,
		Stderr:         setup.mockStderr,
		TerminalWidth:  80,
		TerminalHeight: 24,
	}

	for _, opt := range opts {
		opt(&setup.config)
	}

	var err error
	setup.service, err = cli.NewService(setup.config)
	require.NoError(t, err)

	return setup
}

func interactive(c *cli.Config) {
	c.StdoutIsTTY = true
}

func defaultEnv() map[string]string {
	return map[string]string{
		"EDITOR": "vim",
		"HOME":   "/home/seth",
		"PATH":   "/usr/local/bin:/usr/bin:/bin",
	}
}
