// Package logging provides config-driven categorized logging for trio.
// Each category is a named child of one zap logger. Logging is controlled by
// logging.debug_mode in the config file - when false, every category is a no-op.
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trio/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config loading
	CategoryMenu    Category = "menu"    // Selection and dispatch
	CategoryConsole Category = "console" // Line and integer reads
	CategoryTasks   Category = "tasks"   // Task inputs and outcomes
	CategoryUI      Category = "ui"      // Full-screen menu
	CategoryAudit   Category = "audit"   // Structured task events
)

var (
	mu      sync.RWMutex
	base    = zap.NewNop()
	cfg     config.LoggingConfig
	runID   = uuid.NewString()
	loggers = make(map[Category]*zap.Logger)
)

// Initialize builds the process logger from the logging config. It is safe to
// call again; later calls replace the earlier logger.
func Initialize(c config.LoggingConfig) error {
	if !c.DebugMode {
		InitializeWith(zap.NewNop(), c)
		return nil
	}

	level, err := ParseLevel(c.Level)
	if err != nil {
		return err
	}

	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	if c.File != "" {
		zc.OutputPaths = []string{c.File}
	} else {
		zc.OutputPaths = []string{"stderr"}
	}

	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	InitializeWith(l, c)

	Get(CategoryBoot).Debug("logging initialized",
		zap.String("level", level.String()),
		zap.String("format", c.Format),
		zap.String("file", c.File))
	return nil
}

// InitializeWith installs an already built logger. Tests use it with an
// observer core; the CLI uses it to honour --verbose.
func InitializeWith(l *zap.Logger, c config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()

	base = l.With(zap.String("run_id", runID))
	cfg = c
	loggers = make(map[Category]*zap.Logger)
}

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.ToLower(s)
	switch s {
	case "":
		return zapcore.InfoLevel, nil
	case "warning":
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// RunID returns the identifier attached to every line of this process.
func RunID() string {
	return runID
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.DebugMode
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or the category is disabled.
func Get(category Category) *zap.Logger {
	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	enabled := cfg.IsCategoryEnabled(string(category))
	mu.RUnlock()

	if !enabled {
		return zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Errors from syncing stderr on some
// platforms are not interesting and are dropped.
func Sync() {
	mu.RLock()
	l := base
	mu.RUnlock()
	_ = l.Sync()
}

// Reset restores the no-op logger and clears the registry.
func Reset() {
	InitializeWith(zap.NewNop(), config.LoggingConfig{})
}
