package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	type test struct {
		cfg Config
		err bool
	}

	tests := map[string]test{
		"default": {
			cfg: DefaultConfig(),
		},
		"minimal": {
			cfg: Config{Rounds: 1},
		},
		"no-rounds": {
			cfg: Config{},
			err: true,
		},
		"negative-workers": {
			cfg: Config{Rounds: 1, Workers: -1},
			err: true,
		},
		"unknown-strategy": {
			cfg: Config{Rounds: 1, Strategy: "random"},
			err: true,
		},
		"unknown-policy": {
			cfg: Config{Rounds: 1, Degenerate: "retry"},
			err: true,
		},
		"negative-perfect-weight": {
			cfg: Config{Rounds: 1, PerfectWeight: -1},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Rounds: 3}.withDefaults()
	assert.Equal(t, Config{
		Rounds:     3,
		Strategy:   Weighted,
		Degenerate: Fail,
		Workers:    1,
	}, cfg)
}

func TestConfig_ApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.ApplyOverrides(Overrides{Rounds: 9, Strategy: Uniform, Seed: 5})
	assert.Equal(t, 9, cfg.Rounds)
	assert.Equal(t, Uniform, cfg.Strategy)
	assert.Equal(t, Fail, cfg.Degenerate)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(5), cfg.Seed)
}
