package util

import (
	"fmt"
	"os"
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerMu     sync.RWMutex
)

// LoggerOptions configures the global logger
type LoggerOptions struct {
	Level   string
	File    string
	Format  LogFormat
	Console bool // mirror entries to stderr
}

// InitLogger replaces the global logger. With neither a file nor console
// output configured, log calls become no-ops.
func InitLogger(opts LoggerOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	logger := NewLogger(opts.Level)
	if opts.Console {
		logger.AddOutput(NewConsoleOutput(os.Stderr, format))
	}
	if opts.File != "" {
		out, err := NewFileOutput(opts.File, format)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		logger.AddOutput(out)
	}

	SetLogger(logger)
	return nil
}

// SetLogger installs logger as the global logger, closing the previous one
func SetLogger(logger LoggerInterface) {
	loggerMu.Lock()
	prev := globalLogger
	globalLogger = logger
	loggerMu.Unlock()

	if prev != nil && prev != logger {
		_ = prev.Close()
	}
}

// GetLogger returns the global logger, or nil before InitLogger
func GetLogger() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// LogInfo convenience functions for logging
func LogInfo(msg string, fields ...Field) {
	if l := GetLogger(); l != nil {
		l.Info(msg, fields...)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := GetLogger(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if l := GetLogger(); l != nil {
		l.Debug(msg, fields...)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := GetLogger(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if l := GetLogger(); l != nil {
		l.Warn(msg, fields...)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := GetLogger(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string, fields ...Field) {
	if l := GetLogger(); l != nil {
		l.Error(msg, fields...)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := GetLogger(); l != nil {
		l.Errorf(format, args...)
	}
}
