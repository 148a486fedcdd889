package emst

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config controls MST/DBSCAN construction behavior. Start with
// [DefaultConfig] and override the fields you need, matching the
// teacher's Config/DefaultConfig idiom.
type Config struct {
	// K is the number of nearest neighbors used for the mutual-reachability
	// core distance (spec §4.6). K <= 1 degenerates to plain Euclidean MST
	// and skips core-distance computation entirely. Must be >= 1.
	// Default: 1.
	K int

	// Workers controls the number of goroutines used by every
	// parallel-for stage. 0 means runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// StackMode selects the manual-stack traversal variant used by the
	// component nearest-neighbor kernel (spec §4.4). Default:
	// StackModeCached.
	StackMode StackMode

	// ProgressFunc, if set, is invoked once per completed Borůvka round
	// with the round number and the resulting component count. Used by
	// cmd/emstbench's --watch TUI; nil is a no-op.
	ProgressFunc func(round, numComponents int)

	// Logger receives structured debug messages about Borůvka round
	// progress, core distances and DBSCAN runs. Defaults to a package-level
	// charmbracelet/log logger if nil.
	Logger *log.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		K:         1,
		StackMode: StackModeCached,
	}
}

// validateConfig checks that cfg fields are valid, per spec §7's
// configuration-error class.
func validateConfig(cfg *Config) error {
	if cfg.K < 1 {
		return fmt.Errorf("emst: K must be >= 1, got %d", cfg.K)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
}
