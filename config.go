package rx

// Config controls compilation and matching.
//
// Example:
//
//	config := rx.DefaultConfig()
//	config.MaxSteps = 10_000 // fail fast on hostile input
//	re, err := rx.CompileWithConfig("(a*)*b", config)
type Config struct {
	// MaxSteps bounds the work of a single Match or Find call. A step is
	// one atom evaluation, one extra repetition or one backtrack. Exceeding
	// it fails the call with backtrack.ErrStepLimit.
	// Default: 5,000,000
	MaxSteps int

	// GroupAlternatives lets a group offer every length it can match, so a
	// later failure can retry with a shorter group match. `(a*)a` only
	// matches "aa" with this enabled.
	// Default: true
	GroupAlternatives bool

	// EnablePrefilter skips start positions that cannot begin a match
	// during Find, using the pattern's literal prefix.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxSteps:          5_000_000,
		GroupAlternatives: true,
		EnablePrefilter:   true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxSteps: 1 to 1,000,000,000
func (c Config) Validate() error {
	if c.MaxSteps < 1 || c.MaxSteps > 1_000_000_000 {
		return &ConfigError{
			Field:   "MaxSteps",
			Message: "must be between 1 and 1,000,000,000",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rx: invalid config: " + e.Field + ": " + e.Message
}
