package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/internal/cli"
)

func TestRun_WritesReport(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr,
		[]string{"-n", "40", "-m", "6", "-seed", "5", "-log-format", "json", "-retain"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, 40.0, got["n"])
	assert.Equal(t, 6.0, got["m"])
	assert.InDelta(t, 0.025, got["critical_probability"], 1e-12)
	assert.Len(t, got["probabilities"], 6)
	assert.Len(t, got["giant_component_diameter"], 6)
	assert.Len(t, got["giant_components"], 6)
	assert.Contains(t, got, "summary")
	assert.Contains(t, stderr.String(), "percolation sweep finished")
}

func TestRun_SingleInstanceNullSteepest(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &bytes.Buffer{}, []string{"-n", "10", "-m", "1"}))

	var got struct {
		Summary map[string]any `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Nil(t, got.Summary["steepest_growth_probability"])
	assert.NotNil(t, got.Summary["diameter_peak_probability"])
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("sweep {\n  nodes = 1\n  copies = 3\n}\nlog {\n  level = \"error\"\n}\n"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), &stdout, &stderr, []string{"-config", path}))
	assert.Empty(t, stderr.String())

	var got struct {
		Fraction []float64 `json:"giant_component_fraction"`
		Diameter []int     `json:"giant_component_diameter"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []float64{1, 1, 1}, got.Fraction)
	assert.Equal(t, []int{0, 0, 0}, got.Diameter)
}

func TestRun_UsageError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-n", "-3", "-m", "2"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}
