package boost

import (
	"fmt"
	"runtime"
)

// Strategy defines how the weight distribution reaches the weak learners.
type Strategy string

const (
	// Weighted hands the weights to learners implementing WeightedLearner
	// and trains every other learner on a weighted bootstrap replica of the dataset.
	Weighted Strategy = "weighted"
	// Uniform trains every learner on the full unweighted dataset.
	Uniform Strategy = "uniform"
)

// Policy defines the reaction to a degenerate round.
type Policy string

const (
	// Fail aborts the training run.
	Fail Policy = "fail"
	// Stop ends the training run early with the hypotheses collected so far.
	Stop Policy = "stop"
)

// DefaultRounds is the default ensemble size.
const DefaultRounds = 5

// Config defines the boosting parameters.
// Rounds is the number of hypotheses K in the ensemble.
// Workers is the number of goroutines evaluating a round hypothesis on the dataset.
// Seed drives the bootstrap sampling of the Weighted strategy.
// PerfectWeight is the least voting weight given to a zero error hypothesis under the Stop policy.
// The hypothesis always gets more than the absolute weights of the earlier hypotheses together.
type Config struct {
	Rounds        int      `json:"rounds" yaml:"rounds"`
	Strategy      Strategy `json:"strategy" yaml:"strategy"`
	Degenerate    Policy   `json:"degenerate" yaml:"degenerate"`
	PerfectWeight float64  `json:"perfect_weight" yaml:"perfect_weight"`
	Workers       int      `json:"workers" yaml:"workers"`
	Seed          int64    `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the default boosting config.
func DefaultConfig() Config {
	return Config{
		Rounds:        DefaultRounds,
		Strategy:      Weighted,
		Degenerate:    Fail,
		PerfectWeight: 1,
		Workers:       runtime.NumCPU(),
		Seed:          1,
	}
}

// withDefaults fills the zero values of the optional fields.
func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = Weighted
	}
	if c.Degenerate == "" {
		c.Degenerate = Fail
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	return c
}

// Validate verifies the config is runnable.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be > 0 (got %d): %w", c.Rounds, ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d): %w", c.Workers, ErrInvalidConfig)
	}
	switch c.Strategy {
	case "", Weighted, Uniform:
	default:
		return fmt.Errorf("unknown strategy '%s': %w", c.Strategy, ErrInvalidConfig)
	}
	switch c.Degenerate {
	case "", Fail, Stop:
	default:
		return fmt.Errorf("unknown degenerate policy '%s': %w", c.Degenerate, ErrInvalidConfig)
	}
	if c.PerfectWeight < 0 {
		return fmt.Errorf("perfect weight must be >= 0 (got %v): %w", c.PerfectWeight, ErrInvalidConfig)
	}
	return nil
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Rounds     int
	Strategy   Strategy
	Degenerate Policy
	Workers    int
	Seed       int64
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Rounds > 0 {
		c.Rounds = o.Rounds
	}
	if o.Strategy != "" {
		c.Strategy = o.Strategy
	}
	if o.Degenerate != "" {
		c.Degenerate = o.Degenerate
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}
