// Package logging provides structured logging for both CLI and GUI modes.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger wraps zerolog with mode-specific behavior.
type Logger struct {
	zlog   zerolog.Logger
	mode   string // "cli" or "gui"
	output io.Writer
}

// NewLogger creates a new logger for the specified mode.
// CLI logs go to stdout; GUI logs go to stderr plus the rotating log file
// when file logging is enabled.
func NewLogger(mode string) *Logger {
	l := &Logger{mode: mode}
	l.SetOutput(consoleOut(mode))
	return l
}

// NewDefaultCLILogger creates a default CLI logger.
func NewDefaultCLILogger() *Logger {
	return NewLogger("cli")
}

// NewNopLogger returns a logger that discards everything. Used in tests.
func NewNopLogger() *Logger {
	return &Logger{zlog: zerolog.Nop(), mode: "nop", output: io.Discard}
}

func consoleOut(mode string) io.Writer {
	if mode == "cli" {
		return os.Stdout
	}
	return os.Stderr
}

// Info returns an info level event.
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Error returns an error level event.
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// Debug returns a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Warn returns a warn level event.
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{
		zlog:   l.zlog.With().Str("component", name).Logger(),
		mode:   l.mode,
		output: l.output,
	}
}

// SetOutput changes the console writer for the logger. In GUI mode the
// rotating file sink is attached alongside it.
func (l *Logger) SetOutput(w io.Writer) {
	l.output = w
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}

	var out io.Writer = console
	if l.mode == "gui" {
		out = zerolog.MultiLevelWriter(console, fileSink{})
	}
	l.zlog = zerolog.New(out).With().Timestamp().Logger()
}

// Output returns the current console writer.
func (l *Logger) Output() io.Writer {
	return l.output
}

// SetGlobalLevel sets the global log level.
func SetGlobalLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// LevelFor returns Debug when debug is set and Warn otherwise.
func LevelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// GUILevelFor returns Debug when debug is set and Info otherwise, so the
// UI's own log lines reach the log file.
func GUILevelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}
