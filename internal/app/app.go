package app

import (
	"io"
	"log/slog"
)

// App encapsulates the shared dependencies of the sweep tools: the output
// stream for human-readable messages and an isolated logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// New constructs an App with its own logger, configured from the CLI's
// logging flags.
func New(outW io.Writer, logLevel, logFormat string) *App {
	return &App{
		outW:   outW,
		logger: newLogger(logLevel, logFormat, outW),
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
