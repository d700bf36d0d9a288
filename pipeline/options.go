// SPDX-License-Identifier: MIT
// Package: percolate/pipeline
//
// options.go - functional options and failure policies for Run.

package pipeline

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/percolate/core"
	"github.com/katalvlaran/percolate/ensemble"
)

// FailurePolicy selects how Run treats a failed instance.
type FailurePolicy int

const (
	// FailFast aborts the run on the first per-instance error.
	FailFast FailurePolicy = iota
	// SubstituteNaN records sentinels for the failed instance and continues.
	SubstituteNaN
)

// String returns the policy name used in logs and metric labels.
func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case SubstituteNaN:
		return "substitute_nan"
	default:
		return "unknown"
	}
}

// Option configures Run.
type Option func(*config)

type config struct {
	workers  int
	maxNodes int
	retain   bool
	policy   FailurePolicy
	logger   *slog.Logger
	sampling []ensemble.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers:  runtime.GOMAXPROCS(0),
		maxNodes: core.DefaultMaxNodes,
		policy:   FailFast,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers bounds the number of instances processed at once.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("pipeline: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithMaxNodes sets the node budget; 0 disables it.
func WithMaxNodes(limit int) Option {
	if limit < 0 {
		panic("pipeline: WithMaxNodes(limit<0)")
	}
	return func(c *config) {
		c.maxNodes = limit
	}
}

// WithRetainGraphs keeps every sampled graph and giant component in the
// Result. Memory grows to m·n² bits. Retained values are read-only.
func WithRetainGraphs() Option {
	return func(c *config) {
		c.retain = true
	}
}

// WithFailurePolicy selects FailFast or SubstituteNaN.
func WithFailurePolicy(p FailurePolicy) Option {
	if p != FailFast && p != SubstituteNaN {
		panic("pipeline: unknown FailurePolicy")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger sets the run logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed is shorthand for WithSampling(ensemble.WithSeed(seed)).
func WithSeed(seed int64) Option {
	return WithSampling(ensemble.WithSeed(seed))
}

// WithSampling forwards randomness options to the ensemble sampler.
func WithSampling(opts ...ensemble.Option) Option {
	return func(c *config) {
		c.sampling = append(c.sampling, opts...)
	}
}
