// SPDX-License-Identifier: MIT
// Package: healthnet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil functions, nil RNG).
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes construction by mutating a builderConfig before
// any constructor runs.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable-by-convention configuration
// handed to every Constructor.
type builderConfig struct {
	rng        *rand.Rand
	idOffset   int
	distanceFn func(r *rand.Rand) float64
	capacityFn func(idx int, r *rand.Rand) int
	nameFn     func(id int) string
}

// newBuilderConfig applies opts over the defaults:
//   - no RNG,
//   - IDs start at 0,
//   - distance 1 without RNG, an integer in [1,20] with one,
//   - capacity 10 without RNG, an integer in [5,54] with one,
//   - names "Center <id>".
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		distanceFn: defaultDistance,
		capacityFn: defaultCapacity,
		nameFn:     func(id int) string { return fmt.Sprintf("Center %d", id) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func defaultDistance(r *rand.Rand) float64 {
	if r == nil {
		return 1
	}
	// Integral values keep float sums exact, which keeps cross-checks exact.
	return float64(1 + r.Intn(20))
}

func defaultCapacity(_ int, r *rand.Rand) int {
	if r == nil {
		return 10
	}
	return 5 + r.Intn(50)
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithIDOffset shifts generated center IDs: index i becomes offset+i.
// Panics on a negative offset.
func WithIDOffset(offset int) BuilderOption {
	if offset < 0 {
		panic("builder: WithIDOffset(negative)")
	}
	return func(c *builderConfig) {
		c.idOffset = offset
	}
}

// WithDistanceFn sets the distance generator for new connections.
func WithDistanceFn(fn func(r *rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithCapacityFn sets the capacity generator for new centers.
func WithCapacityFn(fn func(idx int, r *rand.Rand) int) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capacityFn = fn
	}
}

// WithNameFn sets the naming scheme for new centers.
func WithNameFn(fn func(id int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameFn(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}
