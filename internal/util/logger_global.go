package util

import (
	"os"
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerOnce   sync.Once
)

// InitLogger initializes the global logger instance. Console output always;
// a file output is added when logFile is non-empty.
func InitLogger(logLevel, logFile string) error {
	var initErr error
	loggerOnce.Do(func() {
		logger := NewLogger(logLevel, NewConsoleOutput(os.Stderr, FormatText))
		if logFile != "" {
			fileOutput, err := NewFileOutput(logFile, FormatText)
			if err != nil {
				initErr = err
				return
			}
			logger.AddOutput(fileOutput)
		}
		globalLogger = logger
	})
	return initErr
}

// GetLogger returns the global logger, initializing a console-only logger
// if InitLogger has not been called (keeps tests simple).
func GetLogger() LoggerInterface {
	loggerOnce.Do(func() {
		globalLogger = NewLogger("info", NewConsoleOutput(os.Stderr, FormatText))
	})
	return globalLogger
}

// LogInfo convenience functions for logging
func LogInfo(msg string) {
	GetLogger().Info(msg)
}

func LogInfof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func LogDebug(msg string) {
	GetLogger().Debug(msg)
}

func LogDebugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func LogWarn(msg string) {
	GetLogger().Warn(msg)
}

func LogWarnf(format string, args ...interface{}) {
	GetLogger().Warnf(format, args...)
}

func LogError(msg string) {
	GetLogger().Error(msg)
}

func LogErrorf(format string, args ...interface{}) {
	GetLogger().Errorf(format, args...)
}
