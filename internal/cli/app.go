package cli

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"worktime/internal/api"
	"worktime/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the dependencies shared by all command handlers
type App struct {
	businessAPI  api.BusinessAPI
	config       *config.Config
	logger       *zap.Logger
	errorHandler *ErrorHandler
	prompts      PromptKit
	out          io.Writer
	interactive  func() bool
}

// NewAppWithConfig creates a new CLI application instance with dependency injection
func NewAppWithConfig(businessAPI api.BusinessAPI, cfg *config.Config, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	prompts := NewPromptKit()
	if !stdinIsTerminal() {
		// answers are read line by line from a pipe or file
		prompts = NewAccessiblePromptKit(os.Stdin, os.Stdout)
	}
	return &App{
		businessAPI:  businessAPI,
		config:       cfg,
		logger:       logger,
		errorHandler: NewErrorHandler(logger),
		prompts:      prompts,
		out:          os.Stdout,
		interactive:  stdinIsTerminal,
	}
}

// WithOutput redirects command output
func (a *App) WithOutput(out io.Writer) *App {
	a.out = out
	return a
}

// WithPrompts replaces the interactive prompts, e.g. with line based ones
func (a *App) WithPrompts(prompts PromptKit, interactive bool) *App {
	a.prompts = prompts
	a.interactive = func() bool { return interactive }
	return a
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
