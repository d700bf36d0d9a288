// SPDX-License-Identifier: MIT
// Package: percolate/ensemble
//
// source.go - random source capability and deterministic stream derivation.
//
// Goals:
//   • Determinism: same seed ⇒ identical graphs on every platform and for any
//     worker count.
//   • Independence: every sweep index gets its own stream; no stream is
//     shared across goroutines.

package ensemble

import "math/rand"

// Source yields uniform values in [0,1). *rand.Rand satisfies Source.
// A Source is owned by one goroutine at a time.
type Source interface {
	Float64() float64
}

// defaultSeed is used when callers do not pick a seed, and when they pass 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream index into a new seed using the
// SplitMix64 finalizer, so neighbouring indices yield uncorrelated streams.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamFor returns the independent stream for sweep index i under seed.
func streamFor(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rngFromSeed(deriveSeed(seed, uint64(i)))
}
