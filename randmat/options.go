// SPDX-License-Identifier: MIT

// Package randmat: functional configuration for the generators.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithSeed / WithSource constructors,
//   - gatherOptions helper (internal) that resolves the effective source.
//
// Design goals:
//   - Deterministic behavior on request: no global state, no implicit
//     reuse of sources between calls.
//   - Safe by construction: panic only on nonsensical values
//     (programmer error); user-triggered failures return errors.
package randmat

const panicSourceNil = "randmat: WithSource: source must be non-nil"

// Option mutates internal options. Applied in order, last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	source *Source // nil ⇒ fresh entropy-seeded source per call
}

// WithSeed makes the call deterministic: the generator draws from a fresh
// Source seeded with the given value (seed==0 maps to the documented
// default seed, mirroring NewSource).
//
// Returns an Option; never panics. Complexity: O(1).
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.source = NewSource(seed) }
}

// WithSource makes the call draw from the supplied Source. The caller
// keeps ownership; consecutive calls with the same Source continue its
// stream, which is the way to generate sequences of independent objects
// reproducibly.
//
// Panics with a stable message when src is nil (programmer error).
// Complexity: O(1).
func WithSource(src *Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.source = src }
}

// ResolveSource resolves the effective Source for the given options under
// the same policy as the generators: an explicit source wins, then a
// seed, then a fresh entropy-seeded source. Intended for higher-level
// generators that need several correlated draws from one stream.
func ResolveSource(opts ...Option) *Source {
	return gatherOptions(opts...).source
}

// gatherOptions applies user setters and resolves the effective Source.
// When no seed or source was requested, every call owns a fresh
// entropy-seeded Source, so default calls stay statistically independent.
// Complexity: O(k) for k options.
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		set(&o)
	}
	if o.source == nil {
		o.source = NewRandomSource()
	}

	return o
}
