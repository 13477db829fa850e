package logger

import (
	"log/slog"
	"strings"
)

// Config controls handler selection and the attributes stamped on
// every record.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text", "pretty"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod"
	AddSource   bool   // Include source file/line in logs
}

// NewConfig creates a config from explicit values (recommended)
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig returns defaults (fallback when no config provided)
// Prefer using NewConfig with explicit values from your app config
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		AddSource:   false,
	}
}

// ProductionConfig returns production-ready defaults
func ProductionConfig() Config {
	cfg := DefaultConfig()
	cfg.Format = LogFormatJSON
	cfg.Version = ProductionVersion
	cfg.Environment = EnvironmentProduction
	return cfg
}

// DevelopmentConfig returns development-friendly defaults: colorized
// console output with source locations, at debug level.
func DevelopmentConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = LogLevelDebug
	cfg.Format = LogFormatPretty
	cfg.AddSource = true
	return cfg
}

var levelNames = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// LogLevel converts the configured level name to a slog.Level,
// defaulting to info for anything unrecognized.
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levelNames[strings.ToLower(c.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// IsPretty returns true if format is the colorized console format
func (c Config) IsPretty() bool {
	return strings.ToLower(c.Format) == LogFormatPretty
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
