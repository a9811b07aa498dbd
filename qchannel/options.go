// SPDX-License-Identifier: MIT

// Package qchannel: functional configuration for numerical tolerances.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithEpsilon / WithRankEpsilon constructors with strong validation
//     (panic on nonsensical values — programmer error),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Explicit tolerances: every structural check compares against a
//     caller-visible eps, never an inline magic number.
//   - Deterministic behavior: options carry no randomness and no state
//     beyond the resolved values.
package qchannel

import "math"

// Tolerance defaults (single source of truth).
const (
	// DefaultEpsilon is the tolerance for algebraic identity checks
	// (Hermiticity, Kraus completeness, partial-trace identity).
	DefaultEpsilon = 1e-10

	// DefaultRankEpsilon is the eigenvalue cutoff for PSD and
	// numerical-rank decisions: |λ| below it counts as zero.
	DefaultRankEpsilon = 1e-8
)

const (
	panicEpsilonInvalid     = "qchannel: WithEpsilon: eps must be finite, non-negative"
	panicRankEpsilonInvalid = "qchannel: WithRankEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Applied in order, last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps     float64 // algebraic identity tolerance; DefaultEpsilon
	rankEps float64 // eigenvalue zero cutoff; DefaultRankEpsilon
}

// WithEpsilon sets the tolerance for algebraic identity checks.
// Panics on NaN/Inf/negative input (programmer error). Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRankEpsilon sets the eigenvalue cutoff for PSD and numerical-rank
// decisions. Panics on NaN/Inf/negative input. Complexity: O(1).
func WithRankEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicRankEpsilonInvalid)
	}

	return func(o *Options) { o.rankEps = eps }
}

// gatherOptions applies user setters on top of the documented defaults.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		rankEps: DefaultRankEpsilon,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
