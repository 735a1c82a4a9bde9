package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps zerolog.Logger with additional functionality
type Logger struct {
	zerolog.Logger
	file *lumberjack.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	LogDir     string // empty disables the log file
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	Console    bool      // Enable console output
	Out        io.Writer // console destination, stderr if nil
}

// New creates a new logger instance.
// Console output never goes to stdout, which carries the report.
func New(cfg Config) *Logger {
	if cfg.Filename == "" {
		cfg.Filename = "deeplog.log"
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}

	level := parseLogLevel(cfg.Level)

	var writers []io.Writer
	var fileWriter *lumberjack.Logger

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err == nil {
			fileWriter = &lumberjack.Logger{
				Filename:   filepath.Join(cfg.LogDir, cfg.Filename),
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     30, // days
				Compress:   false,
			}
			writers = append(writers, fileWriter)
		} else {
			// Fall back to console when the directory cannot be created
			cfg.Console = true
		}
	}

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        cfg.Out,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    false,
		})
	}

	if len(writers) == 0 {
		return &Logger{Logger: zerolog.Nop()}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{Logger: logger, file: fileWriter}
}

// parseLogLevel converts string log level to zerolog level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	newLogger := l.Logger.With().Interface(key, value).Logger()
	return &Logger{Logger: newLogger, file: l.file}
}
