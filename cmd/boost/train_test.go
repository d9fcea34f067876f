package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("x,y,class\n")
	for i := 0; i < 20; i++ {
		d := float64(i%5) / 10
		b.WriteString(fmt.Sprintf("%.1f,%.1f,low\n", 1+d, 5-d))
		b.WriteString(fmt.Sprintf("%.1f,%.1f,high\n", 8+d, 5+d))
	}
	file := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(file, []byte(b.String()), 0o644))
	return file
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTrain(t *testing.T) {
	type test struct {
		args []string
	}

	tests := map[string]test{
		"stump": {
			args: []string{"--learner", "stump", "--rounds", "3", "--degenerate", "stop"},
		},
		"tree": {
			args: []string{"--learner", "tree", "--rounds", "2", "--degenerate", "stop"},
		},
		"split": {
			args: []string{"--split", "0.7", "--rounds", "2", "--degenerate", "stop", "--seed", "3"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"train", "--data", writeDataset(t), "--headers", "--storage", dir}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Contains(t, out, "correct: ")
			assert.Contains(t, out, "accuracy: 1.0000")

			reports, err := filepath.Glob(filepath.Join(dir, "boost", "reports", "*_report.json"))
			assert.NoError(t, err)
			assert.Len(t, reports, 1)

			events, err := filepath.Glob(filepath.Join(dir, "boost", "events", "*", "rounds.events.log"))
			assert.NoError(t, err)
			assert.Len(t, events, 1)
		})
	}
}

func TestTrain_DryRun(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "train", "--data", writeDataset(t), "--headers", "--storage", dir, "--dry-run", "--degenerate", "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "accuracy: 1.0000")

	files, err := filepath.Glob(filepath.Join(dir, "*"))
	assert.NoError(t, err)
	assert.Empty(t, files)
}

func TestTrain_Config(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "boost.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("rounds: 4\ndegenerate: stop\n"), 0o644))

	out, err := execute(t, "train", "--data", writeDataset(t), "--headers", "--config", cfg, "--storage", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "round 0:")
}

func TestTrain_Errors(t *testing.T) {
	type test struct {
		args []string
	}

	tests := map[string]test{
		"missing-data": {
			args: []string{"train"},
		},
		"unknown-learner": {
			args: []string{"train", "--data", "data.csv", "--learner", "svm"},
		},
		"unknown-strategy": {
			args: []string{"train", "--data", "data.csv", "--strategy", "random"},
		},
		"missing-file": {
			args: []string{"train", "--data", filepath.Join(os.TempDir(), "no-such-dataset.csv")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
