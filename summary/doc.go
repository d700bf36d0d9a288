// Package summary reduces the per-probability series of a sweep to
// ensemble statistics with gonum.
//
//   - Per series: mean, sample standard deviation, min and max.
//   - DiameterPeak: the probability at which the giant-component diameter is
//     largest. Diameter grows while the giant absorbs long tree-like chains
//     and shrinks once shortcuts appear, so its peak marks the critical window.
//   - SteepestGrowth: the probability at the start of the largest forward
//     increase of the giant fraction.
//
// Instances flagged in Series.Failed are skipped and counted in Skipped.
package summary
