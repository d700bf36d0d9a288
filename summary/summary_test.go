package summary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/pipeline"
)

func series() pipeline.Series {
	return pipeline.Series{
		LinkCount:         []int{2, 4, 6, 8},
		NodesWithLinks:    []int{3, 6, 8, 9},
		AverageDegree:     []float64{0.4, 0.8, 1.2, 1.6},
		GiantFraction:     []float64{0.1, 0.2, 0.6, 0.7},
		GiantDiameter:     []int{1, 3, 5, 4},
		AveragePathLength: []float64{1, 1.5, 2.5, 2},
		Failed:            []bool{false, false, false, false},
	}
}

func TestSummarize_Basic(t *testing.T) {
	probs := []float64{0.05, 0.1, 0.15, 0.2}

	got, err := Summarize(probs, series())
	require.NoError(t, err)

	assert.InDelta(t, 5.0, got.LinkCount.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(20.0/3.0), got.LinkCount.StdDev, 1e-12)
	assert.Equal(t, 2.0, got.LinkCount.Min)
	assert.Equal(t, 8.0, got.LinkCount.Max)
	assert.InDelta(t, 0.4, got.GiantFraction.Mean, 1e-12)
	assert.Equal(t, 5.0, got.GiantDiameter.Max)
	assert.Equal(t, 0.15, got.DiameterPeak)
	assert.Equal(t, 0.1, got.SteepestGrowth)
	assert.Zero(t, got.Skipped)
}

func TestSummarize_SkipsFailed(t *testing.T) {
	probs := []float64{0.05, 0.1, 0.15, 0.2}
	s := series()
	s.Failed[2] = true
	s.GiantDiameter[2] = -1
	s.GiantFraction[2] = math.NaN()

	got, err := Summarize(probs, s)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Skipped)
	assert.Equal(t, 0.2, got.DiameterPeak)
	assert.Equal(t, 0.1, got.SteepestGrowth)
	assert.False(t, math.IsNaN(got.GiantFraction.Mean))
}

func TestSummarize_Single(t *testing.T) {
	s := pipeline.Series{
		LinkCount:         []int{3},
		NodesWithLinks:    []int{4},
		AverageDegree:     []float64{0.6},
		GiantFraction:     []float64{0.3},
		GiantDiameter:     []int{2},
		AveragePathLength: []float64{1.5},
		Failed:            []bool{false},
	}
	got, err := Summarize([]float64{0.25}, s)
	require.NoError(t, err)
	assert.Zero(t, got.LinkCount.StdDev)
	assert.Equal(t, 0.25, got.DiameterPeak)
	assert.True(t, math.IsNaN(got.SteepestGrowth))
}

func TestSummarize_Errors(t *testing.T) {
	_, err := Summarize(nil, pipeline.Series{})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	_, err = Summarize([]float64{0.1, 0.2}, series())
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	s := series()
	s.Failed = []bool{true, true, true, true}
	_, err = Summarize([]float64{0.05, 0.1, 0.15, 0.2}, s)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}
