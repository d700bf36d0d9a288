// SPDX-License-Identifier: MIT
// Package: percolate/summary
//
// summary.go - descriptive statistics over a gathered series.

package summary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/pipeline"
)

const methodSummarize = "Summarize"

// Stat describes one series.
type Stat struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary describes a whole sweep.
type Summary struct {
	LinkCount         Stat `json:"link_count"`
	NodesWithLinks    Stat `json:"node_with_link_count"`
	AverageDegree     Stat `json:"average_degree"`
	GiantFraction     Stat `json:"giant_component_fraction"`
	GiantDiameter     Stat `json:"giant_component_diameter"`
	AveragePathLength Stat `json:"average_path_length"`

	DiameterPeak   float64 `json:"diameter_peak_probability"`
	SteepestGrowth float64 `json:"steepest_growth_probability"`
	Skipped        int     `json:"skipped"`
}

// Summarize computes the statistics of s, whose entries are aligned with probs.
// SteepestGrowth is NaN when fewer than two instances succeeded.
func Summarize(probs []float64, s pipeline.Series) (Summary, error) {
	m := len(probs)
	if m == 0 || s.Len() != m || len(s.Failed) != m {
		return Summary{}, fmt.Errorf("%s: %d probabilities for %d instances: %w",
			methodSummarize, m, s.Len(), core.ErrInvalidParameter)
	}

	keep := make([]int, 0, m)
	for i := 0; i < m; i++ {
		if !s.Failed[i] {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return Summary{}, fmt.Errorf("%s: every instance failed: %w", methodSummarize, core.ErrInvalidParameter)
	}

	p := pick(probs, keep)
	diam := pick(ints(s.GiantDiameter), keep)
	frac := pick(s.GiantFraction, keep)

	out := Summary{
		LinkCount:         describe(pick(ints(s.LinkCount), keep)),
		NodesWithLinks:    describe(pick(ints(s.NodesWithLinks), keep)),
		AverageDegree:     describe(pick(s.AverageDegree, keep)),
		GiantFraction:     describe(frac),
		GiantDiameter:     describe(diam),
		AveragePathLength: describe(pick(s.AveragePathLength, keep)),
		DiameterPeak:      p[floats.MaxIdx(diam)],
		SteepestGrowth:    math.NaN(),
		Skipped:           m - len(keep),
	}
	if len(frac) > 1 {
		diffs := make([]float64, len(frac)-1)
		floats.SubTo(diffs, frac[1:], frac[:len(frac)-1])
		out.SteepestGrowth = p[floats.MaxIdx(diffs)]
	}

	return out, nil
}

func describe(x []float64) Stat {
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		std = 0
	}
	return Stat{Mean: mean, StdDev: std, Min: floats.Min(x), Max: floats.Max(x)}
}

func pick(x []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for k, i := range idx {
		out[k] = x[i]
	}
	return out
}

func ints(x []int) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
