// Package ensemble samples independent Erdős–Rényi graphs G(n,p), one per
// probability of a sweep.
//
// Model:
//
//	For every unordered pair {i,j}, i<j, one value u is drawn uniformly from
//	[0,1) and the edge is included iff u < p. Pairs are visited in the fixed
//	order i ascending, then j ascending, and a draw is consumed for every pair
//	even when p is 0 or 1, so a given stream always maps to the same graph.
//
// Randomness:
//
//   - Source is the injectable capability; *rand.Rand satisfies it.
//   - WithSeed (the default, seed 1) derives one independent stream per sweep
//     index by a SplitMix64 mix of (seed, index). Graph i depends only on
//     (seed, i), never on worker count or scheduling.
//   - WithSourceFactory lets callers hand out their own per-index sources.
//   - WithSource shares one Source across all instances; sampling is then
//     forced sequential in sweep order.
//
// Complexity:
//
//	O(n²) draws per instance, O(m·n²) for the ensemble; this is the dominant
//	cost of a percolation sweep. Memory is n² bits per retained graph.
//
// Concurrency:
//
//	Sample runs up to Workers instances at once (errgroup with SetLimit).
//	Each worker exclusively owns its Graph and its Source until the graph is
//	returned. The context is checked between instances only.
//
// Errors:
//
//   - core.ErrInvalidParameter: n ≤ 0, empty sweep, p negative or NaN.
//   - core.ErrResourceLimitExceeded: n above WithMaxNodes (default core.DefaultMaxNodes).
//   - ErrNeedSource: a nil Source reached SampleGraph or a factory returned nil.
package ensemble
