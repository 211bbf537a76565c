package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Config holds logging settings
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // text or json

	// File enables rotated file output in addition to stderr when non-empty
	File       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "text",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Compress:   true,
	}
}

var (
	defaultLogger *logrus.Logger
	defaultMu     sync.Mutex
)

// New creates a logger from cfg. The returned closer releases the log file,
// if one was opened.
func New(cfg Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				s := strings.Split(f.Function, ".")
				return s[len(s)-1], fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
			},
		})
	}

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return log, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, fileWriter))

	return log, fileWriter, nil
}

// SetDefault replaces the logger returned by Default
func SetDefault(log *logrus.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = log
}

// Default returns the process-wide fallback logger, creating it on first use
func Default() *logrus.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		log, _, _ := New(DefaultConfig())
		defaultLogger = log
	}
	return defaultLogger
}

// OrDefault returns log, or the default logger when log is nil
func OrDefault(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return Default()
	}
	return log
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
