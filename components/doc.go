// Package components partitions a core.Graph into maximal connected
// components and selects the giant (largest) component.
//
// What:
//
//   - Connected lists every component. Components appear in order of their
//     lowest node; nodes inside a component appear in BFS discovery order
//     from that lowest node.
//   - Giant returns the component of maximum node count together with its
//     induced, relabelled subgraph and its fraction of all nodes.
//
// Tie-break:
//
//	When several components share the maximum size, Giant returns the one
//	containing the lowest-indexed node among them. Because Connected emits
//	components by lowest node, this is the first maximum in that order.
//
// Trivial components:
//
//	A giant of exactly one node (every node isolated) is a valid result,
//	not an error; Component.Trivial reports it. Its diameter and average
//	path length are both 0.
//
// Complexity:
//
//   - Connected: O(V + E) plus O(V²/64) bitset scans. Memory O(V).
//   - Giant:     Connected + O(S²/64) for the induced subgraph of S nodes.
package components
