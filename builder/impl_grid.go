// SPDX-License-Identifier: MIT
// Package: lvlattice/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood orthogonal grid.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (a 1×1 grid has no edges).
//   - Vertex (r,c) has index first + r*cols + c (row-major).
//   - For each cell in row-major order: Right edge, then Bottom edge.
//   - Directed mode mirrors every arc so neighbourhoods stay symmetric.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

const minGridDim = 1

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(el *core.EdgeList, cfg builderConfig) error {
		// 1) Validate before allocating vertices.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Allocate the block; index(r,c) is row-major.
		first := el.AddVertices(rows * cols)
		index := func(r, c int) int { return first + r*cols + c }

		// 3) Right then Bottom neighbour per cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(el, cfg, MethodGrid, index(r, c), index(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(el, cfg, MethodGrid, index(r, c), index(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
