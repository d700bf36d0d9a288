// SPDX-License-Identifier: MIT
// Package: percolate/pipeline
//
// run.go - plan, sample, analyze and gather for one sweep.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/analysis"
	"github.com/katalvlaran/percolate/components"
	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/ensemble"
	"github.com/katalvlaran/percolate/sweep"
)

const (
	methodRun     = "Run"
	methodAnalyze = "AnalyzeEnsemble"
)

var tracer = otel.Tracer("github.com/katalvlaran/percolate/pipeline")

// Series holds the per-probability observables, index-aligned with the sweep.
type Series struct {
	LinkCount         []int
	NodesWithLinks    []int
	AverageDegree     []float64
	GiantFraction     []float64
	GiantDiameter     []int
	AveragePathLength []float64
	// Failed[i] is true when instance i was replaced by sentinels under
	// SubstituteNaN.
	Failed []bool
}

func newSeries(m int) Series {
	return Series{
		LinkCount:         make([]int, m),
		NodesWithLinks:    make([]int, m),
		AverageDegree:     make([]float64, m),
		GiantFraction:     make([]float64, m),
		GiantDiameter:     make([]int, m),
		AveragePathLength: make([]float64, m),
		Failed:            make([]bool, m),
	}
}

// Len returns the number of instances in the series.
func (s Series) Len() int { return len(s.LinkCount) }

func (s Series) set(i int, r analysis.Record) {
	s.LinkCount[i] = r.LinkCount
	s.NodesWithLinks[i] = r.NodesWithLinks
	s.AverageDegree[i] = r.AverageDegree
	s.GiantFraction[i] = r.GiantFraction
	s.GiantDiameter[i] = r.GiantDiameter
	s.AveragePathLength[i] = r.AveragePathLength
}

func (s Series) fail(i int) {
	nan := math.NaN()
	s.LinkCount[i] = -1
	s.NodesWithLinks[i] = -1
	s.AverageDegree[i] = nan
	s.GiantFraction[i] = nan
	s.GiantDiameter[i] = -1
	s.AveragePathLength[i] = nan
	s.Failed[i] = true
}

// Result is the complete output of a sweep.
type Result struct {
	Sweep  sweep.Sweep
	Series Series
	// Graphs and Giants are populated only with WithRetainGraphs. Both are
	// the exact values the series were computed from and are read-only:
	// mutating a retained graph (AddEdge) desynchronizes it from Series.
	Graphs []*core.Graph
	Giants []components.Component
}

// CriticalProbability returns 1/n.
func (r *Result) CriticalProbability() float64 { return r.Sweep.Critical }

// Threshold returns ln(n)/n.
func (r *Result) Threshold() float64 { return r.Sweep.Threshold }

// Probabilities returns the sweep values the series are aligned with.
func (r *Result) Probabilities() []float64 { return r.Sweep.Probabilities }

// source yields the graph of instance i.
type source func(i int, p float64) (*core.Graph, error)

// Run plans the sweep for n nodes and m instances, samples and analyzes
// every instance, and gathers the series in sweep order.
func Run(ctx context.Context, n, m int, opts ...Option) (res *Result, err error) {
	cfg := newConfig(opts...)

	ctx, span := tracer.Start(ctx, "pipeline.Run", trace.WithAttributes(
		attribute.Int("percolate.n", n),
		attribute.Int("percolate.m", m),
		attribute.String("percolate.failure_policy", cfg.policy.String()),
	))
	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		runsTotal.WithLabelValues(status).Inc()
		span.End()
	}()

	plan, err := sweep.Plan(n, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	sampling := append(append([]ensemble.Option(nil), cfg.sampling...), ensemble.WithMaxNodes(cfg.maxNodes))
	sampler, err := ensemble.NewSampler(n, sampling...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}
	workers := cfg.workers
	if sampler.Sequential() {
		workers = 1
	}
	span.SetAttributes(attribute.Int("percolate.workers", workers))

	log := cfg.logger.With("n", n, "m", m)
	log.Info("percolation sweep started",
		"critical", plan.Critical, "threshold", plan.Threshold, "workers", workers)
	start := time.Now()

	res, err = gather(ctx, cfg, workers, plan, sampler.Instance)
	if err != nil {
		log.Error("percolation sweep failed", "error", err)
		return nil, fmt.Errorf("%s: %w", methodRun, err)
	}

	log.Info("percolation sweep finished", "elapsed", time.Since(start))
	return res, nil
}

// AnalyzeEnsemble analyzes an already sampled ensemble, graphs[i] having been
// drawn at probs[i]. Sampling options in opts are ignored.
func AnalyzeEnsemble(ctx context.Context, probs []float64, graphs []*core.Graph, opts ...Option) (*Result, error) {
	if len(probs) == 0 || len(probs) != len(graphs) {
		return nil, fmt.Errorf("%s: %d probabilities for %d graphs: %w",
			methodAnalyze, len(probs), len(graphs), core.ErrInvalidParameter)
	}
	cfg := newConfig(opts...)
	plan := sweep.Sweep{M: len(probs), Probabilities: probs}
	if g := graphs[0]; g != nil && g.Order() > 0 {
		plan.N = g.Order()
		plan.Critical = sweep.CriticalProbability(plan.N)
		plan.Threshold = sweep.Threshold(plan.N)
	}

	fetch := func(i int, _ float64) (*core.Graph, error) {
		if graphs[i] == nil {
			return nil, fmt.Errorf("instance %d: %w", i, core.ErrGraphNil)
		}
		return graphs[i], nil
	}
	res, err := gather(ctx, cfg, cfg.workers, plan, fetch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	return res, nil
}

// gather processes every instance on a bounded worker pool and writes
// results into slots keyed by sweep index.
func gather(ctx context.Context, cfg config, workers int, plan sweep.Sweep, fetch source) (*Result, error) {
	m := len(plan.Probabilities)
	res := &Result{Sweep: plan, Series: newSeries(m)}
	if cfg.retain {
		res.Graphs = make([]*core.Graph, m)
		res.Giants = make([]components.Component, m)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	var loopErr error
	for i, p := range plan.Probabilities {
		// coarse cancellation point between instances
		if loopErr = gctx.Err(); loopErr != nil {
			break
		}
		i, p := i, p // per-iteration copies (Go 1.22 loopvar semantics under go 1.21)
		eg.Go(func() error {
			rec, g, err := instance(gctx, i, p, fetch)
			if err == nil {
				res.Series.set(i, rec)
				if cfg.retain {
					res.Graphs[i] = g
					res.Giants[i] = rec.Giant
				}
				cfg.logger.Debug("instance analyzed", "index", i, "p", p,
					"links", rec.LinkCount, "giant_fraction", rec.GiantFraction,
					"diameter", rec.GiantDiameter)
				return nil
			}

			instanceFailures.WithLabelValues(cfg.policy.String()).Inc()
			if cfg.policy == SubstituteNaN && !isCancellation(err) {
				cfg.logger.Warn("instance failed, substituting sentinels", "index", i, "p", p, "error", err)
				res.Series.fail(i)
				return nil
			}
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if loopErr != nil {
		return nil, loopErr
	}

	return res, nil
}

// instance samples (or fetches) graph i and runs the analyzers on it.
func instance(ctx context.Context, i int, p float64, fetch source) (analysis.Record, *core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return analysis.Record{}, nil, err
	}

	t0 := time.Now()
	g, err := fetch(i, p)
	if err != nil {
		return analysis.Record{}, nil, err
	}
	stageDuration.WithLabelValues(stageSample).Observe(time.Since(t0).Seconds())
	instancesTotal.WithLabelValues(stageSample).Inc()

	t1 := time.Now()
	rec, err := analysis.Analyze(ctx, p, g)
	if err != nil {
		return analysis.Record{}, nil, fmt.Errorf("instance %d (p=%g): %w", i, p, err)
	}
	stageDuration.WithLabelValues(stageAnalyze).Observe(time.Since(t1).Seconds())
	instancesTotal.WithLabelValues(stageAnalyze).Inc()

	return rec, g, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
