package cli

import (
	"github.com/dostoys/seth/internal/errors"
	"github.com/dostoys/seth/internal/text"

	"go.uber.org/zap"
)

// HandledError has already been reported, but should still produce a
// non-zero exit code.
var HandledError = errors.HandledError

// Service holds the main business logic of the CLI.
type Service struct {
	Config
	wrapper *text.Wrapper
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	if cfg.TerminalWidth <= 0 {
		cfg.TerminalWidth = text.DefaultTerminalWidth
	}

	if cfg.TerminalHeight <= 0 {
		cfg.TerminalHeight = text.DefaultTerminalHeight
	}

	terminalWidth := cfg.TerminalWidth
	wrapper := text.New(text.DefaultConfig(), text.WithTerminalWidth(func() int { return terminalWidth }))

	return Service{Config: cfg, wrapper: wrapper}, nil
}

// width resolves a requested wrap width, where zero means the terminal width.
func (s Service) width(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.TerminalWidth
}
