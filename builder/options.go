// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   - Options validate and PANIC on meaningless input; constructors never do.
//   - Later options override earlier ones.
//   - Defaults: no RNG, constant weight DefaultEdgeWeight, undirected.

package builder

import "math/rand"

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn is set.
const DefaultEdgeWeight int64 = 1

// builderConfig is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG so stochastic constructors are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight gives every edge weight w (w >= 0).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [lo, hi].
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithDirected builds arcs instead of undirected edges.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) { c.directed = directed }
}
