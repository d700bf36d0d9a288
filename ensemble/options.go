// SPDX-License-Identifier: MIT
// Package: percolate/ensemble
//
// options.go - functional options for Sample and NewSampler.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil sources, non-positive worker counts). Sampling never panics.
//   • Options apply in order; the last randomness option wins.

package ensemble

import (
	"runtime"

	"github.com/katalvlaran/percolate/core"
)

// Option customizes a sampler before any graph is drawn.
type Option func(*config)

// config aggregates every sampler knob. Passed by value after resolution.
type config struct {
	seed     int64
	shared   Source
	factory  func(index int) Source
	workers  int
	maxNodes int
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:     defaultSeed,
		workers:  runtime.GOMAXPROCS(0),
		maxNodes: core.DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed selects per-index streams derived from seed. Seed 0 means the
// default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.shared = nil
		c.factory = nil
	}
}

// WithSource shares src across every instance. Instances are then sampled
// one after another in sweep order, consuming n(n-1)/2 draws each.
func WithSource(src Source) Option {
	if src == nil {
		panic("ensemble: WithSource(nil)")
	}
	return func(c *config) {
		c.shared = src
		c.factory = nil
	}
}

// WithSourceFactory supplies one Source per sweep index. The factory is
// called once per instance, possibly from several goroutines, and each
// returned Source must not be shared with another index.
func WithSourceFactory(fn func(index int) Source) Option {
	if fn == nil {
		panic("ensemble: WithSourceFactory(nil)")
	}
	return func(c *config) {
		c.factory = fn
		c.shared = nil
	}
}

// WithWorkers bounds the number of instances sampled at once.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("ensemble: WithWorkers(k<1)")
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithMaxNodes sets the node budget. 0 disables the check.
func WithMaxNodes(limit int) Option {
	if limit < 0 {
		panic("ensemble: WithMaxNodes(limit<0)")
	}
	return func(c *config) {
		c.maxNodes = limit
	}
}
