package accum

// Config controls which element types an Accumulator accepts and how its
// kernels are selected.
type Config struct {
	// ExtendedTypes wires every element type into the dispatch table instead
	// of only int64 and float64.
	ExtendedTypes bool

	// ForceGeneric selects the pure Go kernels regardless of CPU features.
	ForceGeneric bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used by the package-level Sum.
func DefaultConfig() Config {
	return Config{}
}

// WithExtendedTypes accepts all ten element types.
func WithExtendedTypes() Option {
	return func(cfg *Config) {
		cfg.ExtendedTypes = true
	}
}

// WithForceGeneric disables CPU-specific kernel selection.
func WithForceGeneric() Option {
	return func(cfg *Config) {
		cfg.ForceGeneric = true
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
