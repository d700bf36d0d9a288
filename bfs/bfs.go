// SPDX-License-Identifier: MIT
// Package: percolate/bfs
//
// bfs.go - single-root traversal and all-roots distance profiles.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/percolate/core"
)

// walker holds the reusable BFS buffers for one graph.
type walker struct {
	graph *core.Graph
	dist  []int
	queue []int
}

func newWalker(g *core.Graph) *walker {
	n := g.Order()
	return &walker{
		graph: g,
		dist:  make([]int, n),
		queue: make([]int, 0, n),
	}
}

// run fills w.dist from root and leaves the visit order in w.queue.
// Returns the eccentricity of root.
func (w *walker) run(root int) int {
	for i := range w.dist {
		w.dist[i] = Unreachable
	}
	w.queue = append(w.queue[:0], root)
	w.dist[root] = 0

	ecc := 0
	for head := 0; head < len(w.queue); head++ {
		u := w.queue[head]
		next := w.dist[u] + 1
		w.graph.Neighbors(u, func(v int) bool {
			if w.dist[v] == Unreachable {
				w.dist[v] = next
				if next > ecc {
					ecc = next
				}
				w.queue = append(w.queue, v)
			}
			return true
		})
	}

	return ecc
}

// BFS runs breadth-first search on g from root.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(g *core.Graph, root int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= g.Order() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, root, g.Order())
	}

	w := newWalker(g)
	ecc := w.run(root)
	order := make([]int, len(w.queue))
	copy(order, w.queue)

	return &Result{
		Root:         root,
		Dist:         w.dist,
		Order:        order,
		Eccentricity: ecc,
	}, nil
}

// Profile runs BFS from every node of g and aggregates the distance table
// without materializing it.
func Profile(g *core.Graph, opts ...Option) (DistanceProfile, error) {
	if g == nil {
		return DistanceProfile{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	w := newWalker(g)
	prof := DistanceProfile{Nodes: n, Radius: -1}
	for root := 0; root < n; root++ {
		select {
		case <-o.Ctx.Done():
			return DistanceProfile{}, o.Ctx.Err()
		default:
		}

		ecc := w.run(root)
		if ecc > prof.Diameter {
			prof.Diameter = ecc
		}
		if prof.Radius < 0 || ecc < prof.Radius {
			prof.Radius = ecc
		}
		// count each unordered pair once, from its lower endpoint
		for v := root + 1; v < n; v++ {
			if d := w.dist[v]; d != Unreachable {
				prof.Sum += int64(d)
				prof.Pairs++
			}
		}
	}
	if prof.Radius < 0 {
		prof.Radius = 0
	}
	prof.Connected = prof.Pairs == int64(n)*int64(n-1)/2

	return prof, nil
}
