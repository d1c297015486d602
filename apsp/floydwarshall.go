package apsp

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

// FloydWarshall is the sequential reference.
//
// Loop order is fixed (k → i → j); only strict improvements are written.
// Time: O(V³). Extra space: the V×V result.
func FloydWarshall(el *core.EdgeList) (Matrix, error) {
	if el == nil {
		return Matrix{}, ErrNilGraph
	}
	if err := el.ValidateNonNegative(); err != nil {
		return Matrix{}, fmt.Errorf("apsp: %w", err)
	}

	d := arcMatrix(el)
	n := d.N
	for i := 0; i < n; i++ {
		d.D[i*n+i] = 0
	}
	for k := 0; k < n; k++ {
		rk := d.Row(k)
		for i := 0; i < n; i++ {
			ri := d.Row(i)
			if ri[k] == Inf {
				continue // no path via k
			}
			for j := 0; j < n; j++ {
				if c := add(ri[k], rk[j]); c < ri[j] {
					ri[j] = c
				}
			}
		}
	}

	return d, nil
}
