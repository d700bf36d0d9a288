// SPDX-License-Identifier: MIT
// Package: percolate/core
//
// errors.go - sentinel errors shared by every percolate package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("<Method>: ...: %w", ErrX).
//   • Algorithms never panic on user input; option constructors may.

package core

import "errors"

var (
	// ErrInvalidParameter indicates n ≤ 0, m ≤ 0, a negative or NaN probability
	// or any other argument outside its documented domain. Raised before any
	// sampling starts.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrResourceLimitExceeded indicates that n is too large for the O(n²)
	// adjacency budget. Raised instead of attempting the allocation.
	ErrResourceLimitExceeded = errors.New("core: resource limit exceeded")

	// ErrGraphNil indicates that a nil *Graph was passed in.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrNodeOutOfRange indicates a node index outside 0..n-1.
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrMalformedGraph indicates a self-loop or an asymmetric adjacency row.
	ErrMalformedGraph = errors.New("core: malformed adjacency")
)
