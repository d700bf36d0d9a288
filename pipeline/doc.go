// Package pipeline runs a complete percolation sweep:
//
//	sweep.Plan ─► per instance: ensemble.Sampler.Instance ─► analysis.Analyze ─► gather by index
//
// Instances are independent, so Run processes up to Workers of them at once
// (errgroup with SetLimit). Each worker owns its graph from sampling until
// its metrics are extracted; the graph is then dropped unless
// WithRetainGraphs is set. Results are written into index-addressed slots,
// so every output series stays aligned with Sweep.Probabilities.
//
// Failure policy:
//
//   - FailFast (default): the first per-instance error cancels the run and
//     Run returns it with no partial result.
//   - SubstituteNaN (opt-in): a failed instance records NaN in the float
//     series, -1 in the integer series and Failed[i] = true; the run goes on.
//     Cancellation still aborts the run under either policy.
//
// Parameter validation (n, m, node budget) happens before any worker starts.
//
// Observability: Run logs through the configured *slog.Logger, updates the
// percolate_* Prometheus collectors registered in metrics.go and opens an
// OpenTelemetry span named "pipeline.Run".
package pipeline
