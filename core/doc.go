// Package core defines the dense, undirected, unweighted Graph used by every
// other percolate package, together with the shared sentinel error set.
//
// What:
//
//   - Graph holds node count n (nodes are the integers 0..n-1) and one
//     bitset row per node; bit v of row u is set iff the edge {u,v} exists.
//   - Both bits of an edge are always set together, so adjacency is
//     symmetric by construction; the diagonal is never set.
//   - Induced(nodes) extracts a relabelled subgraph (used for the giant
//     component).
//
// Why dense:
//
//	The Erdős–Rényi sampler evaluates every one of the n(n-1)/2 pairs, so a
//	sparse representation saves nothing while sampling and costs pointer
//	chasing afterwards. n² bits is 128 MiB at DefaultMaxNodes.
//
// Complexity:
//
//   - New:       O(n²/64) words.
//   - AddEdge:   O(1).
//   - HasEdge:   O(1).
//   - Degree:    O(n/64).
//   - Neighbors: O(n/64 + deg).
//   - EdgeCount: O(n²/64).
//   - Validate:  O(n²).
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. The samplers build each
//	Graph on a single goroutine and never mutate it afterwards; concurrent
//	reads of a finished Graph are safe.
//
// Errors:
//
//	ErrInvalidParameter       - n ≤ 0 or another argument outside its domain.
//	ErrResourceLimitExceeded  - n above the configured node budget.
//	ErrGraphNil               - nil *Graph passed to a function.
//	ErrNodeOutOfRange         - node index not in 0..n-1.
//	ErrMalformedGraph         - self-loop or asymmetric adjacency detected.
package core
