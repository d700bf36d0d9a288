// Package percolate studies the percolation phase transition of
// Erdős–Rényi random graphs G(n,p).
//
// For a fixed node count n it sweeps p across the critical value 1/n,
// samples one independent graph per sweep point, and measures on each
// instance the edge count, the number of linked nodes, the average degree,
// the giant component fraction and diameter, and the average shortest-path
// length inside the giant component.
//
// Everything is organized under focused subpackages:
//
//	core/       - dense bitset Graph and the shared sentinel errors
//	sweep/      - probability sequence around 1/n, critical and threshold constants
//	ensemble/   - seeded, parallel G(n,p) sampling with injectable random sources
//	bfs/        - single-root BFS and all-roots distance profiles
//	components/ - connected components and giant component selection
//	analysis/   - per-instance link, component and path-length analyzers
//	pipeline/   - concurrent plan → sample → analyze → gather runner
//	summary/    - ensemble statistics over the metric series (gonum)
//	cmd/ersweep - command-line adapter writing the series as JSON
//
// Quick example:
//
//	res, err := pipeline.Run(ctx, 1000, 50, pipeline.WithSeed(42))
//	// res.Probabilities()[i] ↔ res.Series.GiantFraction[i]
package percolate
