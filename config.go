package wsp

import "fmt"

// DefaultOriginSeed seeds the generator that picks the first origin of a
// walk. It is independent of the seed used to generate points, so the same
// point set always starts its walk from the same origin.
const DefaultOriginSeed uint64 = 10

// Config controls point set construction and elimination.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Metric is the pairwise distance used for the distance matrix.
	// Default: ManhattanMetric.
	Metric DistanceMetric

	// OriginSeed seeds the origin choice of WSP. Zero is a valid seed; use
	// DefaultConfig to get DefaultOriginSeed. Default: 10.
	OriginSeed uint64

	// Logger receives walk and adaptive search progress. nil disables
	// logging, except that verbose adaptive searches then write to stderr.
	Logger *Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric:     ManhattanMetric{},
		OriginSeed: DefaultOriginSeed,
	}
}

// applyDefaults fills in nil config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = ManhattanMetric{}
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if m, ok := cfg.Metric.(MinkowskiMetric); ok && !(m.P >= 1) {
		return fmt.Errorf("wsp: MinkowskiMetric.P must be >= 1, got %f", m.P)
	}
	return nil
}
