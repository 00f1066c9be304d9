package search

import "fmt"

// Config carries the search driver's tunable options (§4.4.1).
type Config struct {
	DatasetPath     string
	MaxVars         int
	MaxBoolFuncSize int
	BoundsStep      int
	MaxFormulas     int
	MaxDepth        int
	// Workers bounds the evaluation worker pool; 0 means "all cores".
	Workers int
	// MaxUB bounds the [lb,ub] grid explored at every depth; 0 defaults
	// to one less than the longest positive training trace's length
	// (at least 1).
	MaxUB int
}

// ConfigError reports an invalid or conflicting option, detected before
// any search work begins (§7).
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("search config: %s: %s", e.Field, e.Msg)
}

// DefaultConfig returns the typical option values named in §4.4.1.
func DefaultConfig(datasetPath string) Config {
	return Config{
		DatasetPath:     datasetPath,
		MaxVars:         3,
		MaxBoolFuncSize: 6,
		BoundsStep:      1,
		MaxFormulas:     256,
		MaxDepth:        3,
		Workers:         0,
	}
}

// Validate reports a *ConfigError for any out-of-range or conflicting
// option.
func (c Config) Validate() error {
	if c.DatasetPath == "" {
		return &ConfigError{"DatasetPath", "must not be empty"}
	}
	if c.MaxVars <= 0 {
		return &ConfigError{"MaxVars", "must be > 0"}
	}
	if c.MaxVars > 5 {
		// Boolean-function generation walks 2^(2^MaxVars) truth tables
		// per variable subset (§4.4.2 step 3); beyond 5 variables that
		// count overflows a reasonable search budget (and a uint64 shift).
		return &ConfigError{"MaxVars", "must be <= 5"}
	}
	if c.MaxBoolFuncSize <= 0 {
		return &ConfigError{"MaxBoolFuncSize", "must be > 0"}
	}
	if c.BoundsStep <= 0 {
		return &ConfigError{"BoundsStep", "must be > 0"}
	}
	if c.MaxFormulas <= 0 {
		return &ConfigError{"MaxFormulas", "must be > 0"}
	}
	if c.MaxDepth <= 0 {
		return &ConfigError{"MaxDepth", "must be > 0"}
	}
	if c.Workers < 0 {
		return &ConfigError{"Workers", "must be >= 0"}
	}
	return nil
}
