package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/takma/takma-desktop/internal/constants"
)

var (
	// fileLogger is the rotating file logger
	fileLogger *lumberjack.Logger
	// fileLoggerMu protects fileLogger
	fileLoggerMu sync.RWMutex
)

// InitFileLogger opens the rotating log file in dir. Calling it again while a
// file logger is open is a no-op.
func InitFileLogger(dir string) error {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger != nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileLogger = &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.LogFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}
	return nil
}

// CloseFileLogger closes the file logger (call on shutdown).
func CloseFileLogger() {
	fileLoggerMu.Lock()
	defer fileLoggerMu.Unlock()

	if fileLogger != nil {
		fileLogger.Close()
		fileLogger = nil
	}
}

// GetLogFilePath returns the current log file path, or "" when file logging
// is off.
func GetLogFilePath() string {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()

	if fileLogger != nil {
		return fileLogger.Filename
	}
	return ""
}

// fileSink forwards JSON log lines to the rotating file when one is open.
// Resolving the file per write lets loggers be created before InitFileLogger.
type fileSink struct{}

var _ io.Writer = fileSink{}

func (fileSink) Write(p []byte) (int, error) {
	fileLoggerMu.RLock()
	defer fileLoggerMu.RUnlock()

	if fileLogger == nil {
		return len(p), nil
	}
	return fileLogger.Write(p)
}
