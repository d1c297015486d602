// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Undirected: unordered pairs {i,j}, i<j. Directed: ordered pairs, i≠j.
//   - Trial order: i ascending, then j ascending. The weight is drawn only
//     for accepted edges.
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

const (
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes every admissible edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		// 1) Validate parameters in priority order.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Allocate the block.
		first := el.AddVertices(n)

		// 3) Bernoulli trials in fixed order.
		accept := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			j0 := i + 1
			if el.Directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !accept() {
					continue
				}
				if err := link(el, cfg, MethodRandomSparse, first+i, first+j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
