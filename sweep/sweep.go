// SPDX-License-Identifier: MIT
// Package: percolate/sweep
//
// sweep.go - probability sequence around the critical point 1/n.

package sweep

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/core"
)

const methodPlan = "Plan"

// Sweep is the immutable output of Plan.
type Sweep struct {
	N             int       // node count
	M             int       // ensemble size
	Critical      float64   // 1/n
	Threshold     float64   // ln(n)/n
	Step          float64   // 2·Critical/M
	Probabilities []float64 // M strictly increasing values
}

// CriticalProbability returns 1/n. It does not validate n.
func CriticalProbability(n int) float64 {
	return 1 / float64(n)
}

// Threshold returns the connectivity threshold ln(n)/n. It does not validate n.
func Threshold(n int) float64 {
	return math.Log(float64(n)) / float64(n)
}

// Plan computes the probability sweep for n nodes and m ensemble members.
//
// Complexity: O(m) time and memory.
func Plan(n, m int) (Sweep, error) {
	if n <= 0 {
		return Sweep{}, fmt.Errorf("%s: n=%d must be positive: %w", methodPlan, n, core.ErrInvalidParameter)
	}
	if m <= 0 {
		return Sweep{}, fmt.Errorf("%s: m=%d must be positive: %w", methodPlan, m, core.ErrInvalidParameter)
	}

	c := CriticalProbability(n)
	step := 2 * c / float64(m)
	base := c / 2

	probs := make([]float64, m)
	for k := 1; k <= m; k++ {
		probs[k-1] = base + float64(k)*step
		if k > 1 && probs[k-1] <= probs[k-2] {
			return Sweep{}, fmt.Errorf("%s: m=%d collapses adjacent probabilities at index %d: %w",
				methodPlan, m, k-1, core.ErrInvalidParameter)
		}
	}

	return Sweep{
		N:             n,
		M:             m,
		Critical:      c,
		Threshold:     Threshold(n),
		Step:          step,
		Probabilities: probs,
	}, nil
}
