package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

const maxLogSize = 10 * 1024 * 1024

var (
	log     = newLogger(os.Stderr)
	logFile *os.File
	logPath string
)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Init points the logger at dir/debug.log, rotating it once it grows past
// 10MB. An empty dir defaults to ~/.euchre.
func Init(dir, level string) error {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".euchre")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(dir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := f.Stat(); err == nil && info.Size() > maxLogSize {
		_ = f.Close()
		backupPath := filepath.Join(dir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
		f, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create new log file: %w", err)
		}
	}

	if err := SetLevel(level); err != nil {
		_ = f.Close()
		return err
	}
	logFile = f
	log.SetOutput(f)

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// SetLevel parses a logrus level name; an empty name keeps the current level.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Close closes the log file opened by Init.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	log.SetOutput(os.Stderr)
}

// WithGame returns an entry tagged with a game id.
func WithGame(id string) *logrus.Entry {
	return log.WithField("game", id)
}

// LogDebug logs a debug message
func LogDebug(format string, args ...any) {
	log.Debugf(format, args...)
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	log.Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	log.Errorf(format, args...)
}

// LogPanic logs a recovered panic with its stack trace
func LogPanic(r any) {
	log.Errorf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
