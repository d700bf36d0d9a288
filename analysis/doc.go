// Package analysis computes the per-instance observables of a percolation
// sweep: link statistics, the giant component with its diameter, and the
// average shortest-path length inside the giant component.
//
// Stages and their data dependencies:
//
//	Links(g)              ─┐
//	Components(g)  ─► Giant ├─► Record
//	PathLength(Giant)     ─┘
//
// PathLength takes the Giant value returned by Components, so it cannot run
// before the component stage: the ordering is carried by the argument, not by
// call discipline. Components keeps the all-roots BFS profile of the giant
// component, so PathLength reuses those distances instead of recomputing.
//
// Invariants:
//
//   - AverageDegree == 2·LinkCount/n exactly (integer degree sum over n).
//   - 0 < GiantFraction ≤ 1.
//   - Diameter == 0 iff the giant component has one node.
//   - AveragePathLength ≤ Diameter whenever the giant has two or more nodes.
package analysis
