// SPDX-License-Identifier: MIT
// Package: percolate/ensemble
//
// sample.go - G(n,p) sampling for single instances and whole sweeps.
//
// Determinism:
//   • Stable pair order: i asc, j asc with j>i.
//   • One draw per pair regardless of p.

package ensemble

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/percolate/core"
)

// ErrNeedSource indicates a nil Source where sampling needs one.
var ErrNeedSource = errors.New("ensemble: random source is required")

const (
	methodSampleGraph = "SampleGraph"
	methodSample      = "Sample"
	methodInstance    = "Instance"
	methodNewSampler  = "NewSampler"
)

// SampleGraph draws one G(n,p) from src with the default node budget.
// Pair {i,j} becomes an edge iff the draw is < p; p ≥ 1 yields the complete
// graph and p = 0 the empty one. p must be ≥ 0 and not NaN.
func SampleGraph(n int, p float64, src Source) (*core.Graph, error) {
	return sampleBounded(n, p, src, core.DefaultMaxNodes)
}

func sampleBounded(n int, p float64, src Source, limit int) (*core.Graph, error) {
	if err := checkProbability(p); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSampleGraph, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodSampleGraph, ErrNeedSource)
	}
	g, err := core.NewBounded(n, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSampleGraph, err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if src.Float64() < p {
				if err = g.AddEdge(i, j); err != nil {
					return nil, fmt.Errorf("%s: %w", methodSampleGraph, err)
				}
			}
		}
	}

	return g, nil
}

// checkProbability accepts any p ≥ 0. Values above 1 are legal and make
// every pair an edge, since draws lie in [0,1).
func checkProbability(p float64) error {
	// NaN fails the comparison, so test the accepted range positively.
	if !(p >= 0) {
		return fmt.Errorf("p=%g is negative or NaN: %w", p, core.ErrInvalidParameter)
	}
	return nil
}

// Sampler draws the instances of one sweep with a fixed n and randomness
// policy. It is safe for concurrent use; with WithSource its calls are
// serialized and must be issued in sweep order to be reproducible.
type Sampler struct {
	n   int
	cfg config
	mu  sync.Mutex
}

// NewSampler validates n against the node budget and resolves options.
func NewSampler(n int, opts ...Option) (*Sampler, error) {
	cfg := newConfig(opts...)
	if err := core.CheckOrder(n, cfg.maxNodes); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewSampler, err)
	}

	return &Sampler{n: n, cfg: cfg}, nil
}

// N returns the node count of every sampled graph.
func (s *Sampler) N() int { return s.n }

// Sequential reports whether instances share one Source.
func (s *Sampler) Sequential() bool { return s.cfg.shared != nil }

// Workers returns the effective parallelism: 1 when Sequential.
func (s *Sampler) Workers() int {
	if s.Sequential() {
		return 1
	}
	return s.cfg.workers
}

// Instance samples the graph for sweep index i at probability p.
func (s *Sampler) Instance(i int, p float64) (*core.Graph, error) {
	if i < 0 {
		return nil, fmt.Errorf("%s: index %d: %w", methodInstance, i, core.ErrInvalidParameter)
	}

	var src Source
	switch {
	case s.cfg.shared != nil:
		s.mu.Lock()
		defer s.mu.Unlock()
		src = s.cfg.shared
	case s.cfg.factory != nil:
		src = s.cfg.factory(i)
	default:
		src = streamFor(s.cfg.seed, i)
	}
	if src == nil {
		return nil, fmt.Errorf("%s(%d): %w", methodInstance, i, ErrNeedSource)
	}

	g, err := sampleBounded(s.n, p, src, s.cfg.maxNodes)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodInstance, i, err)
	}

	return g, nil
}

// Sample draws one graph per probability, index-aligned with probs.
// All probabilities are validated before the first draw.
func Sample(ctx context.Context, n int, probs []float64, opts ...Option) ([]*core.Graph, error) {
	if len(probs) == 0 {
		return nil, fmt.Errorf("%s: empty probability sequence: %w", methodSample, core.ErrInvalidParameter)
	}
	for i, p := range probs {
		if err := checkProbability(p); err != nil {
			return nil, fmt.Errorf("%s: index %d: %w", methodSample, i, err)
		}
	}
	s, err := NewSampler(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}

	out := make([]*core.Graph, len(probs))
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.Workers())
	for i, p := range probs {
		if err = gctx.Err(); err != nil {
			break
		}
		i, p := i, p // per-iteration copies (Go 1.22 loopvar semantics under go 1.21)
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			g, err := s.Instance(i, p)
			if err != nil {
				return err
			}
			out[i] = g
			return nil
		})
	}
	if werr := eg.Wait(); werr != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, werr)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}

	return out, nil
}
