// Package sweep plans the ordered edge-probability sequence used to scan the
// Erdős–Rényi percolation transition around its critical point.
//
// What:
//
//   - CriticalProbability(n) = 1/n, where the giant component emerges.
//   - Threshold(n) = ln(n)/n, above which G(n,p) is connected w.h.p.
//   - Plan(n, m) returns m strictly increasing probabilities
//     c/2 + k·step for k = 1..m, with c = 1/n and step = 2c/m, so the sweep
//     runs from c/2 + step up to 2.5c inclusive.
//
// Values are computed directly from k rather than by repeated addition, so
// the last entry is 2.5c up to a single rounding.
//
// Errors:
//
//   - core.ErrInvalidParameter: n ≤ 0, m ≤ 0, or m so large that adjacent
//     values collapse at float64 precision.
package sweep
