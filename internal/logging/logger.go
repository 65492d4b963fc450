// Package logging provides config-driven categorized logging for tourdeck.
// Logs are written to <state dir>/logs/tourdeck.log as zap entries, one named
// logger per category. When debug_mode is false nothing is written.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config resolution
	CategoryCatalog  Category = "catalog"  // Catalog loading and file watching
	CategoryCarousel Category = "carousel" // Testimonial navigation
	CategoryTours    Category = "tours"    // Tour list removals, read-more toggles
	CategoryUI       Category = "ui"       // bubbletea program lifecycle
)

// Settings mirrors config.LoggingConfig to avoid an import cycle.
type Settings struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // json, console
	Categories map[string]bool
}

var (
	mu       sync.RWMutex
	settings Settings
	root     *zap.Logger
	file     *os.File
	loggers  = make(map[Category]*zap.Logger)
)

// Initialize opens the log file under dir/logs and builds the root logger.
// With DebugMode off it only records the settings; every Get returns a no-op.
func Initialize(s Settings, dir string) error {
	mu.Lock()
	defer mu.Unlock()

	closeLocked()
	settings = s
	if !s.DebugMode {
		return nil
	}
	if dir == "" {
		return fmt.Errorf("log directory required")
	}

	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logsDir, "tourdeck.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	file = f
	root = zap.New(zapcore.NewCore(encoder(s.Format), zapcore.AddSync(f), parseLevel(s.Level)))

	boot := getLocked(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("dir", logsDir),
		zap.String("level", s.Level),
		zap.Int("categories", len(s.Categories)))
	return nil
}

// NewForTest routes every category to l. Used by tests that assert on log output.
func NewForTest(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	settings = Settings{DebugMode: true}
	root = l
}

func encoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "console" || format == "text" {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories missing from the filter are enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabledLocked(category)
}

func enabledLocked(category Category) bool {
	if !settings.DebugMode {
		return false
	}
	enabled, exists := settings.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	return getLocked(category)
}

func getLocked(category Category) *zap.Logger {
	if l, ok := loggers[category]; ok {
		return l
	}
	var l *zap.Logger
	if root == nil || !enabledLocked(category) {
		l = zap.NewNop()
	} else {
		l = root.Named(string(category))
	}
	loggers[category] = l
	return l
}

// CloseAll flushes and closes the log file.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if root != nil {
		_ = root.Sync()
	}
	if file != nil {
		_ = file.Close()
	}
	root, file = nil, nil
	loggers = make(map[Category]*zap.Logger)
}

// Boot logs to the boot category.
func Boot(msg string, fields ...zap.Field) {
	Get(CategoryBoot).Info(msg, fields...)
}

// Catalog logs to the catalog category.
func Catalog(msg string, fields ...zap.Field) {
	Get(CategoryCatalog).Info(msg, fields...)
}

// CatalogDebug logs a debug entry to the catalog category.
func CatalogDebug(msg string, fields ...zap.Field) {
	Get(CategoryCatalog).Debug(msg, fields...)
}

// UI logs to the ui category.
func UI(msg string, fields ...zap.Field) {
	Get(CategoryUI).Info(msg, fields...)
}
