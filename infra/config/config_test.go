package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Rounds   int    `json:"rounds" yaml:"rounds"`
	Strategy string `json:"strategy" yaml:"strategy"`
}

func TestLoad(t *testing.T) {
	type test struct {
		file    string
		content string
		err     error
	}

	tests := map[string]test{
		"json": {
			file:    "boost.json",
			content: `{"rounds": 3, "strategy": "uniform"}`,
		},
		"yaml": {
			file:    "boost.yaml",
			content: "rounds: 3\nstrategy: uniform\n",
		},
		"yml": {
			file:    "boost.yml",
			content: "rounds: 3\nstrategy: uniform\n",
		},
		"unknown": {
			file:    "boost.toml",
			content: "rounds = 3",
			err:     ErrUnknownFormat,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(file, []byte(tt.content), 0o644))

			var s settings
			err := Load(file, &s)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, settings{Rounds: 3, Strategy: "uniform"}, s)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	file := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(file, []byte("{"), 0o644))
	var s settings
	assert.Error(t, Load(file, &s))
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.json"), &s))
}

func TestLoad_Sample(t *testing.T) {
	var s settings
	require.NoError(t, Load("boost.json", &s))
	assert.Equal(t, 5, s.Rounds)
	assert.Equal(t, "weighted", s.Strategy)
}
