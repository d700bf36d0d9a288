// SPDX-License-Identifier: MIT
// Package: percolate/components
//
// components.go - connected components and giant selection.

package components

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

const (
	methodConnected = "Connected"
	methodGiant     = "Giant"
)

// Component is one connected component of a parent graph.
type Component struct {
	// Nodes lists the member node indices of the parent graph, the lowest
	// node first.
	Nodes []int
	// Graph is the subgraph induced by Nodes; Graph node i is Nodes[i].
	Graph *core.Graph
	// Fraction is len(Nodes) / n of the parent graph, in (0,1].
	Fraction float64
}

// Size returns the number of nodes in the component.
func (c Component) Size() int { return len(c.Nodes) }

// Trivial reports a single-node component.
func (c Component) Trivial() bool { return len(c.Nodes) == 1 }

// Lowest returns the smallest parent node index in the component, or -1
// for an empty Component.
func (c Component) Lowest() int {
	if len(c.Nodes) == 0 {
		return -1
	}
	return c.Nodes[0]
}

// Connected finds all maximal connected components of g.
// Each returned slice holds parent node indices, lowest node first.
func Connected(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodConnected, core.ErrGraphNil)
	}

	n := g.Order()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], start)
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			g.Neighbors(queue[qi], func(v int) bool {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
				return true
			})
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}

	return comps, nil
}

// Giant returns the maximum-size component of g, breaking ties by the
// lowest node index.
func Giant(g *core.Graph) (Component, error) {
	comps, err := Connected(g)
	if err != nil {
		return Component{}, fmt.Errorf("%s: %w", methodGiant, err)
	}
	if len(comps) == 0 {
		return Component{}, fmt.Errorf("%s: graph has no nodes: %w", methodGiant, core.ErrInvalidParameter)
	}

	best := 0
	for i := 1; i < len(comps); i++ {
		// strict > keeps the earliest, i.e. lowest-node, maximum
		if len(comps[i]) > len(comps[best]) {
			best = i
		}
	}

	nodes := comps[best]
	sub, err := g.Induced(nodes)
	if err != nil {
		return Component{}, fmt.Errorf("%s: %w", methodGiant, err)
	}

	return Component{
		Nodes:    nodes,
		Graph:    sub,
		Fraction: float64(len(nodes)) / float64(g.Order()),
	}, nil
}
