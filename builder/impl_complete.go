// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// impl_complete.go - Complete(n): the complete simple graph K_n.
//
// Contract:
//   - n ≥ 1 (K_1 has no edges).
//   - Pairs (i,j), i<j, in lexicographic order; directed mode adds j→i
//     right after i→j with the same weight.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		first := el.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(el, cfg, MethodComplete, first+i, first+j, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
