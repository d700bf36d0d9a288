// SPDX-License-Identifier: MIT
// Package: percolate/bfs
//
// types.go - results, options and sentinel errors for BFS.

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the root is not a node of g.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Unreachable marks nodes with no path from the root.
const Unreachable = -1

// Result holds the outcome of a single-root BFS.
type Result struct {
	// Root is the start node.
	Root int
	// Dist[v] is the hop distance root→v, or Unreachable.
	Dist []int
	// Order is the visit sequence, root first.
	Order []int
	// Eccentricity is the largest finite distance from Root.
	Eccentricity int
}

// DistanceProfile aggregates all-roots BFS over a graph.
type DistanceProfile struct {
	Nodes     int   // node count V
	Diameter  int   // max finite shortest-path distance
	Radius    int   // min eccentricity over all roots
	Sum       int64 // Σ d(u,v) over reachable unordered pairs
	Pairs     int64 // number of reachable unordered pairs
	Connected bool  // Pairs == V(V-1)/2
}

// Mean returns Sum/Pairs, or 0 when there are no pairs (a single node).
func (p DistanceProfile) Mean() float64 {
	if p.Pairs == 0 {
		return 0
	}
	return float64(p.Sum) / float64(p.Pairs)
}

// Option configures Profile.
type Option func(*Options)

// Options holds Profile parameters.
type Options struct {
	// Ctx allows cancellation between roots.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
