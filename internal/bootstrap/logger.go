package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"senacheck/internal/config"
	"senacheck/internal/logger"
)

// SetupLogger wires the process logger to both stdout and a timestamped
// file under cfg.LogDir, pruning old files first. The returned handle is
// the caller's to close on shutdown.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}
	cleanupLogs(cfg.LogDir)

	logFile, err := openLogFile(cfg.LogDir)
	if err != nil {
		return nil, err
	}

	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)
	log := logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	log.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel())
	log.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", version)
	log.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"tickets_path", cfg.TicketsPath,
		"auth_enabled", cfg.AuthEnabled())

	return logFile, nil
}

func openLogFile(logDir string) (*os.File, error) {
	name := fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat))

	logFile, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}
	return logFile, nil
}

// cleanupLogs keeps the log directory from growing without bound.
// ReadDir sorts by name, and the timestamp prefix makes that age order,
// so the files to drop are simply the front of the slice.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), LogFileExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) < LogFileRetentionLimit {
		return
	}

	for _, name := range names[:len(names)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
