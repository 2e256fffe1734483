// SPDX-License-Identifier: MIT

// Package register: functional configuration.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, the single resolution point.
//
// A register keeps a pointer to its resolved Options and hands the same
// pointer to every register derived from it (Kron, Project, Derive, ...), so
// a pipeline configured once at construction logs and samples consistently.
package register

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// MaxExpandQubits is the hard ceiling for dense expansion. A 24-qubit
	// state already needs 2^24 complex128 values (256 MiB).
	MaxExpandQubits = 24

	// DefaultExpandLimit is the expansion ceiling used when no option lowers it.
	DefaultExpandLimit = MaxExpandQubits
)

// ---------- Internal panic messages ----------

const (
	panicExpandLimitInvalid = "register: WithExpandLimit: limit must be in [0, 24]"
	panicRandNil            = "register: WithRand: source must not be nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	log         zerolog.Logger // zerolog.Nop() by default
	rng         *rand.Rand     // nil ⇒ package-level math/rand source
	expandLimit int            // DefaultExpandLimit
}

// WithLogger routes register, gate and circuit events to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.log = log }
}

// WithRand sets the source sampled by Measure.
// Implementation:
//   - Stage 1: reject a nil source (programmer error).
//   - Stage 2: return a setter that stores r.
//
// Notes:
//   - A *rand.Rand is not safe for concurrent use; neither is a Register.
//   - Seed it (rand.New(rand.NewSource(seed))) for reproducible measurement.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithExpandLimit lowers the number of qubits Expand accepts.
// Panics when limit is negative or above MaxExpandQubits.
func WithExpandLimit(limit int) Option {
	if limit < 0 || limit > MaxExpandQubits {
		panic(panicExpandLimitInvalid)
	}

	return func(o *Options) { o.expandLimit = limit }
}

// defaultOptions is shared by registers built without options and by the
// zero Register value.
var defaultOptions = gatherOptions()

// gatherOptions applies setters on top of the documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) *Options {
	o := &Options{
		log:         zerolog.Nop(),
		expandLimit: DefaultExpandLimit,
	}
	for _, set := range user {
		set(o)
	}

	return o
}

// float64 draws from the configured source.
func (o *Options) float64() float64 {
	if o.rng != nil {
		return o.rng.Float64()
	}

	return rand.Float64()
}
