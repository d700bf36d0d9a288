// SPDX-License-Identifier: MIT
// Package: percolate/core
//
// graph.go - dense bitset Graph on nodes 0..n-1.
//
// Invariants (held by every exported mutator):
//   • row[u].Bit(v) == row[v].Bit(u) for all u, v.
//   • row[u].Bit(u) == 0 for all u.
//   • Each unordered pair is stored once per row; re-adding is a no-op.

package core

import (
	"fmt"

	"github.com/soniakeys/bits"
)

// DefaultMaxNodes bounds n for New. At this size the adjacency rows take
// n² bits = 128 MiB. Callers that accept a different budget use NewBounded.
const DefaultMaxNodes = 1 << 15

const (
	methodNew      = "New"
	methodAddEdge  = "AddEdge"
	methodInduced  = "Induced"
	methodValidate = "Validate"
	methodFromEdge = "FromEdges"
)

// Graph is an undirected, unweighted simple graph stored as one bitset row
// per node.
type Graph struct {
	n    int
	rows []bits.Bits
}

// New returns an edgeless graph on nodes 0..n-1.
// Returns ErrInvalidParameter for n ≤ 0 and ErrResourceLimitExceeded for
// n > DefaultMaxNodes.
func New(n int) (*Graph, error) {
	return NewBounded(n, DefaultMaxNodes)
}

// NewBounded is New with an explicit node budget. A limit ≤ 0 disables the
// budget check.
func NewBounded(n, limit int) (*Graph, error) {
	if err := CheckOrder(n, limit); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	rows := make([]bits.Bits, n)
	for i := range rows {
		rows[i] = bits.New(n)
	}

	return &Graph{n: n, rows: rows}, nil
}

// CheckOrder validates a node count against a budget without allocating.
// A limit ≤ 0 disables the budget check.
func CheckOrder(n, limit int) error {
	if n <= 0 {
		return fmt.Errorf("n=%d must be positive: %w", n, ErrInvalidParameter)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("n=%d exceeds node budget %d: %w", n, limit, ErrResourceLimitExceeded)
	}

	return nil
}

// FromEdges builds a graph on n nodes with the given unordered pairs.
// Duplicate pairs collapse; self-loops and out-of-range nodes are rejected.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromEdge, err)
		}
	}

	return g, nil
}

// Order returns the node count n.
func (g *Graph) Order() int {
	return g.n
}

// AddEdge inserts the undirected edge {u,v}. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%s(%d,%d): n=%d: %w", methodAddEdge, u, v, g.n, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("%s(%d,%d): self-loop: %w", methodAddEdge, u, v, ErrMalformedGraph)
	}
	g.rows[u].SetBit(v, 1)
	g.rows[v].SetBit(u, 1)

	return nil
}

// setPair sets both bits of {u,v} without checks. Callers guarantee
// 0 ≤ u < v < n.
func (g *Graph) setPair(u, v int) {
	g.rows[u].SetBit(v, 1)
	g.rows[v].SetBit(u, 1)
}

// HasEdge reports whether {u,v} is present. Out-of-range nodes report false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.rows[u].Bit(v) == 1
}

// Degree returns the number of neighbors of u, or 0 when u is out of range.
func (g *Graph) Degree(u int) int {
	if !g.inRange(u) {
		return 0
	}

	return g.rows[u].OnesCount()
}

// Neighbors calls fn for each neighbor of u in ascending order until fn
// returns false. Out-of-range u visits nothing.
func (g *Graph) Neighbors(u int, fn func(v int) bool) {
	if !g.inRange(u) {
		return
	}
	g.rows[u].IterateOnes(fn)
}

// EdgeCount returns the number of unordered pairs present.
func (g *Graph) EdgeCount() int {
	total := 0
	for u := range g.rows {
		total += g.rows[u].OnesCount()
	}

	return total / 2
}

// Edges returns every present pair {u,v} with u < v, ordered by u then v.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.EdgeCount())
	for u := 0; u < g.n; u++ {
		g.rows[u].IterateOnes(func(v int) bool {
			if v > u {
				out = append(out, [2]int{u, v})
			}
			return true
		})
	}

	return out
}

// Validate checks the symmetric, loop-free invariants pair by pair and
// returns ErrMalformedGraph on the first violation.
func (g *Graph) Validate() error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodValidate, ErrGraphNil)
	}
	if len(g.rows) != g.n {
		return fmt.Errorf("%s: %d rows for n=%d: %w", methodValidate, len(g.rows), g.n, ErrMalformedGraph)
	}
	for u := 0; u < g.n; u++ {
		if g.rows[u].Num != g.n {
			return fmt.Errorf("%s: row %d has width %d: %w", methodValidate, u, g.rows[u].Num, ErrMalformedGraph)
		}
		if g.rows[u].Bit(u) != 0 {
			return fmt.Errorf("%s: self-loop at %d: %w", methodValidate, u, ErrMalformedGraph)
		}
		for v := u + 1; v < g.n; v++ {
			if g.rows[u].Bit(v) != g.rows[v].Bit(u) {
				return fmt.Errorf("%s: asymmetric pair (%d,%d): %w", methodValidate, u, v, ErrMalformedGraph)
			}
		}
	}

	return nil
}

// Induced returns the subgraph induced by nodes, relabelled so that
// nodes[i] becomes node i. Nodes must be distinct and in range.
func (g *Graph) Induced(nodes []int) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%s: empty node set: %w", methodInduced, ErrInvalidParameter)
	}
	index := make(map[int]int, len(nodes))
	for i, u := range nodes {
		if !g.inRange(u) {
			return nil, fmt.Errorf("%s: node %d: %w", methodInduced, u, ErrNodeOutOfRange)
		}
		if _, dup := index[u]; dup {
			return nil, fmt.Errorf("%s: duplicate node %d: %w", methodInduced, u, ErrInvalidParameter)
		}
		index[u] = i
	}

	sub, err := NewBounded(len(nodes), 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodInduced, err)
	}
	for i, u := range nodes {
		g.rows[u].IterateOnes(func(v int) bool {
			if j, ok := index[v]; ok && i < j {
				sub.setPair(i, j)
			}
			return true
		})
	}

	return sub, nil
}

func (g *Graph) inRange(u int) bool {
	return u >= 0 && u < g.n
}
