// Package bfs provides breadth-first search over a dense core.Graph,
// returning unweighted shortest-path distances from one root, or the
// aggregate distance profile over every root.
//
// What
//
//   - BFS(g, root) returns hop distances from root (−1 for unreachable
//     nodes) and the visit order.
//   - Profile(g) runs BFS from every node and aggregates:
//   - Diameter: the largest finite distance.
//   - Radius:   the smallest eccentricity.
//   - Sum, Pairs: total distance and count over reachable unordered pairs,
//     so Mean() is the average shortest-path length.
//   - Connected: every pair was reachable.
//
// Determinism
//
//	Neighbors are enqueued in ascending node order, so Order is fully
//	reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - BFS:     O(V + E) plus O(V²/64) for bitset row scans.
//   - Profile: V·BFS, i.e. O(V·(V+E)).
//   - Memory:  O(V) for the distance row and the queue, reused across roots.
//
// Cancellation
//
//	Profile checks the context supplied by WithContext once per root;
//	a single BFS is never interrupted.
//
// Errors
//
//   - ErrGraphNil:            g is nil.
//   - ErrStartVertexNotFound: root outside 0..n-1.
//   - ctx.Err():              Profile cancelled between roots.
package bfs
