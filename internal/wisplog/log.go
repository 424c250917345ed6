// Package wisplog provides the process-wide structured logger, grounded
// on the teacher's cmd/hiveexplorer/logger package: a package-level
// *slog.Logger defaulting to discard, switched on by --verbose, writing
// JSON to a dated log file under the user's home directory rather than to
// stderr (so cmd/wispconsole's full-screen display isn't corrupted by
// interleaved log lines).
package wisplog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger instance, initialized to discard all output.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	logPrefix     = "wisp-"
	logSuffix     = ".log"
	retentionDays = 30
)

// Options configures Init.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	LogDir  string     // directory for log files; default ~/.wisp/logs
	Level   slog.Level // minimum log level; default LevelInfo when enabled
}

// Init (re)configures the package-level logger. Call once at startup,
// after parsing flags, before any other package logs.
func Init(opts Options) error {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	logDir := opts.LogDir
	if logDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		logDir = filepath.Join(home, ".wisp", "logs")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	cleanOldLogs(logDir)

	filename := filepath.Join(logDir, logPrefix+time.Now().Format("2006-01-02")+logSuffix)
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

func cleanOldLogs(logDir string) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
			continue
		}
		dateStr := strings.TrimPrefix(strings.TrimSuffix(name, logSuffix), logPrefix)
		logDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			continue
		}
		if logDate.Before(cutoff) {
			os.Remove(filepath.Join(logDir, name))
		}
	}
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
