package analysis

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/components"
	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/ensemble"
)

func build(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)
	return g
}

// TestAnalyze_HandBuilt: a 4-cycle {0,1,2,3}, a pendant pair {5,6}, node 4 and 7 isolated.
func TestAnalyze_HandBuilt(t *testing.T) {
	g := build(t, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {5, 6}})

	rec, err := Analyze(context.Background(), 0.3, g)
	require.NoError(t, err)
	assert.Equal(t, 0.3, rec.Probability)
	assert.Equal(t, 5, rec.LinkCount)
	assert.Equal(t, 6, rec.NodesWithLinks)
	assert.Equal(t, 10.0/8.0, rec.AverageDegree)
	assert.Equal(t, 0.5, rec.GiantFraction)
	assert.Equal(t, 2, rec.GiantDiameter)
	assert.InDelta(t, 8.0/6.0, rec.AveragePathLength, 1e-12)
	assert.Equal(t, []int{0, 1, 3, 2}, rec.Giant.Nodes)
}

func TestLinks_Errors(t *testing.T) {
	_, err := Links(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)
	_, err = Links(&core.Graph{})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

// TestSingleNode covers n=1: trivial giant, zero diameter and path length.
func TestSingleNode(t *testing.T) {
	g := build(t, 1, nil)

	rec, err := Analyze(context.Background(), 0.5, g)
	require.NoError(t, err)
	assert.Zero(t, rec.LinkCount)
	assert.Zero(t, rec.NodesWithLinks)
	assert.Zero(t, rec.AverageDegree)
	assert.Equal(t, 1.0, rec.GiantFraction)
	assert.Zero(t, rec.GiantDiameter)
	assert.Zero(t, rec.AveragePathLength)
	assert.True(t, rec.Giant.Trivial())
}

func TestEdgeless(t *testing.T) {
	g := build(t, 6, nil)

	giant, err := Components(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, giant.Trivial())
	assert.Zero(t, giant.Diameter)

	apl, err := PathLength(context.Background(), giant)
	require.NoError(t, err)
	assert.Zero(t, apl)
}

// TestPathLength_RecomputesWithoutProfile feeds a Giant that did not come from Components.
func TestPathLength_RecomputesWithoutProfile(t *testing.T) {
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	comp, err := components.Giant(g)
	require.NoError(t, err)

	apl, err := PathLength(context.Background(), Giant{Component: comp, Diameter: 3})
	require.NoError(t, err)
	assert.InDelta(t, 10.0/6.0, apl, 1e-12)

	_, err = PathLength(context.Background(), Giant{})
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

func TestComponents_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := build(t, 3, [][2]int{{0, 1}, {1, 2}})

	_, err := Components(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestProperties checks the documented invariants across a sampled sweep.
func TestProperties(t *testing.T) {
	const n = 60
	probs := []float64{0.002, 0.01, 0.0167, 0.025, 0.04, 0.08}
	graphs, err := ensemble.Sample(context.Background(), n, probs, ensemble.WithSeed(3))
	require.NoError(t, err)

	for i, g := range graphs {
		rec, err := Analyze(context.Background(), probs[i], g)
		require.NoError(t, err)

		assert.Equal(t, g.EdgeCount(), rec.LinkCount, "instance %d", i)
		assert.Equal(t, 2*float64(rec.LinkCount)/float64(n), rec.AverageDegree, "instance %d", i)
		assert.Greater(t, rec.GiantFraction, 0.0)
		assert.LessOrEqual(t, rec.GiantFraction, 1.0)
		assert.LessOrEqual(t, rec.NodesWithLinks, n)

		comps, err := components.Connected(g)
		require.NoError(t, err)
		for _, c := range comps {
			assert.LessOrEqual(t, len(c), rec.Giant.Size(), "instance %d", i)
		}

		if rec.Giant.Trivial() {
			assert.Zero(t, rec.GiantDiameter)
			assert.Zero(t, rec.AveragePathLength)
		} else {
			assert.GreaterOrEqual(t, rec.GiantDiameter, 1)
			assert.LessOrEqual(t, rec.AveragePathLength, float64(rec.GiantDiameter))
			assert.GreaterOrEqual(t, rec.AveragePathLength, 1.0)
		}
	}
}

// TestAverageDegreeIdentity checks the exact identity on many random graphs.
func TestAverageDegreeIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(70)
		g, err := ensemble.SampleGraph(n, rng.Float64(), rng)
		require.NoError(t, err)
		links, err := Links(g)
		require.NoError(t, err)
		assert.Equal(t, 2*float64(links.LinkCount)/float64(n), links.AverageDegree)
	}
}
