// Package log sets up the process-wide slog logger.
// The desktop owns stdout, so records go to a file.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu            sync.Mutex
	defaultLogger *slog.Logger
	closers       []io.Closer
)

// Init installs the default logger. A nil config reads the environment.
// Module loggers built before a later Init keep their output, which stays open until Close.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = NewConfigFromEnv()
	}

	w, c, err := openOutput(cfg.File)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", "gridos"),
	}))

	mu.Lock()
	defaultLogger = logger
	if c != nil {
		closers = append(closers, c)
	}
	mu.Unlock()

	slog.SetDefault(logger)
	return nil
}

func openOutput(path string) (io.Writer, io.Closer, error) {
	switch path {
	case "":
		return io.Discard, nil, nil
	case "-":
		return os.Stderr, nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

// Close closes every log file opened by Init
func Close() {
	mu.Lock()
	defer mu.Unlock()
	for _, c := range closers {
		_ = c.Close()
	}
	closers = nil
}

// GetLogger returns the default logger, initializing it from the environment if needed
func GetLogger() *slog.Logger {
	mu.Lock()
	l := defaultLogger
	mu.Unlock()
	if l != nil {
		return l
	}
	if err := Init(nil); err != nil {
		_ = Init(&Config{})
	}
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

// NewModuleLogger creates a logger tagged with module and component
func NewModuleLogger(module, component string) *slog.Logger {
	return GetLogger().With(
		slog.String("module", module),
		slog.String("component", component),
	)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
