// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)→i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the path edges followed by the closing edge (n-1)→0.
//   - Directed mode emits forward arcs only.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

const (
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, minPathNodes, ErrTooFewVertices)
		}

		first := el.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := link(el, cfg, MethodPath, first+i-1, first+i, false); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		first := el.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := link(el, cfg, MethodCycle, first+i-1, first+i, false); err != nil {
				return err
			}
		}

		// close the ring
		return link(el, cfg, MethodCycle, first+n-1, first, false)
	}
}
