package kdtree2d

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Config controls tree construction and batch queries.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Logger receives debug events for construction and batch queries.
	// Default: a no-op logger.
	Logger *zap.Logger

	// Workers controls the number of goroutines used by NearestBatch and
	// NearestAll. 0 means use runtime.NumCPU(). Must be >= 0.
	// Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("kdtree2d: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}
