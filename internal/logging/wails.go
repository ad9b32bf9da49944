package logging

import (
	"strings"

	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes Wails runtime messages, including the frontend's
// LogInfo/LogError calls, into the shell log and its rotating file.
type WailsLogger struct {
	l *Logger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps l for options.App.Logger.
func NewWailsLogger(l *Logger) *WailsLogger {
	return &WailsLogger{l: l}
}

// WailsLevel maps the shell's debug switch onto the Wails log level. Wails
// filters before zerolog does, so it must pass at least what zerolog keeps.
func WailsLevel(debug bool) wailslogger.LogLevel {
	if debug {
		return wailslogger.DEBUG
	}
	return wailslogger.INFO
}

func (w *WailsLogger) Print(message string)   { w.write(zerolog.InfoLevel, message) }
func (w *WailsLogger) Trace(message string)   { w.write(zerolog.TraceLevel, message) }
func (w *WailsLogger) Debug(message string)   { w.write(zerolog.DebugLevel, message) }
func (w *WailsLogger) Info(message string)    { w.write(zerolog.InfoLevel, message) }
func (w *WailsLogger) Warning(message string) { w.write(zerolog.WarnLevel, message) }
func (w *WailsLogger) Error(message string)   { w.write(zerolog.ErrorLevel, message) }

// Fatal logs and exits with status 1, as the Wails default logger does.
func (w *WailsLogger) Fatal(message string) {
	w.l.zlog.Fatal().Msg(strings.TrimRight(message, "\n"))
}

func (w *WailsLogger) write(level zerolog.Level, message string) {
	w.l.zlog.WithLevel(level).Msg(strings.TrimRight(message, "\n"))
}
