// SPDX-License-Identifier: MIT
// Package: percolate/analysis
//
// analysis.go - per-instance link, component and path-length analyzers.

package analysis

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolate/bfs"
	"github.com/katalvlaran/percolate/components"
	"github.com/katalvlaran/percolate/core"
)

const (
	methodLinks      = "Links"
	methodComponents = "Components"
	methodPathLength = "PathLength"
	methodAnalyze    = "Analyze"
)

// LinkStats is the output of the degree and link analyzer.
type LinkStats struct {
	LinkCount      int     // present pairs i<j
	NodesWithLinks int     // nodes with degree ≥ 1
	AverageDegree  float64 // Σ degree / n
}

// Giant is the output of the component analyzer.
type Giant struct {
	components.Component
	// Diameter is the largest shortest-path distance inside the component.
	Diameter int
	// profile holds the all-roots BFS aggregates reused by PathLength.
	profile *bfs.DistanceProfile
}

// Record is the full metric set of one ensemble instance.
type Record struct {
	Probability       float64
	LinkCount         int
	NodesWithLinks    int
	AverageDegree     float64
	GiantFraction     float64
	GiantDiameter     int
	AveragePathLength float64
	// Giant is the extracted giant component (node subset and induced edges).
	Giant components.Component
}

// Links counts edges and linked nodes of g.
//
// Complexity: O(n²/64).
func Links(g *core.Graph) (LinkStats, error) {
	if g == nil {
		return LinkStats{}, fmt.Errorf("%s: %w", methodLinks, core.ErrGraphNil)
	}
	n := g.Order()
	if n <= 0 {
		return LinkStats{}, fmt.Errorf("%s: graph has no nodes: %w", methodLinks, core.ErrInvalidParameter)
	}

	degreeSum, linked := 0, 0
	for u := 0; u < n; u++ {
		d := g.Degree(u)
		degreeSum += d
		if d > 0 {
			linked++
		}
	}
	if degreeSum%2 != 0 {
		return LinkStats{}, fmt.Errorf("%s: odd degree sum %d: %w", methodLinks, degreeSum, core.ErrMalformedGraph)
	}

	return LinkStats{
		LinkCount:      degreeSum / 2,
		NodesWithLinks: linked,
		AverageDegree:  float64(degreeSum) / float64(n),
	}, nil
}

// Components extracts the giant component of g and its diameter.
// Cancellation is checked between BFS roots.
//
// Complexity: O(n + e) for the partition, O(S·(S+E_S)) for the diameter.
func Components(ctx context.Context, g *core.Graph) (Giant, error) {
	comp, err := components.Giant(g)
	if err != nil {
		return Giant{}, fmt.Errorf("%s: %w", methodComponents, err)
	}

	giant := Giant{Component: comp}
	if comp.Trivial() {
		giant.profile = &bfs.DistanceProfile{Nodes: 1, Connected: true}
		return giant, nil
	}

	prof, err := bfs.Profile(comp.Graph, bfs.WithContext(ctx))
	if err != nil {
		return Giant{}, fmt.Errorf("%s: %w", methodComponents, err)
	}
	if !prof.Connected {
		return Giant{}, fmt.Errorf("%s: giant component is not connected: %w", methodComponents, core.ErrMalformedGraph)
	}
	giant.Diameter = prof.Diameter
	giant.profile = &prof

	return giant, nil
}

// PathLength returns the mean shortest-path distance over unordered pairs of
// distinct nodes in the giant component, or 0 for a one-node component.
// Distances from Components are reused; a Giant built elsewhere without them
// is profiled here.
func PathLength(ctx context.Context, giant Giant) (float64, error) {
	if giant.Size() == 0 || giant.Graph == nil {
		return 0, fmt.Errorf("%s: empty giant component: %w", methodPathLength, core.ErrInvalidParameter)
	}
	if giant.Trivial() {
		return 0, nil
	}

	prof := giant.profile
	if prof == nil {
		p, err := bfs.Profile(giant.Graph, bfs.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", methodPathLength, err)
		}
		prof = &p
	}

	return prof.Mean(), nil
}

// Analyze runs the three analyzers on one instance in dependency order.
func Analyze(ctx context.Context, p float64, g *core.Graph) (Record, error) {
	links, err := Links(g)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}
	giant, err := Components(ctx, g)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}
	apl, err := PathLength(ctx, giant)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	return Record{
		Probability:       p,
		LinkCount:         links.LinkCount,
		NodesWithLinks:    links.NodesWithLinks,
		AverageDegree:     links.AverageDegree,
		GiantFraction:     giant.Fraction,
		GiantDiameter:     giant.Diameter,
		AveragePathLength: apl,
		Giant:             giant.Component,
	}, nil
}
