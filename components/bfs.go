package components

import (
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

// BFS is the sequential reference: vertices are scanned in ascending order
// and every unlabeled one floods its component with its own index.
//
// Time: O(V+E). Memory: O(V+E).
func BFS(el *core.EdgeList) (Labels, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.Validate(); err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}

	adj := el.Undirected().Adjacency()
	labels := make(Labels, el.VertexCount)
	seen := make([]bool, el.VertexCount)
	for root := range labels {
		if seen[root] {
			continue
		}
		seen[root] = true
		queue := []int{root}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			labels[u] = root
			for _, a := range adj[u] {
				if !seen[a.To] {
					seen[a.To] = true
					queue = append(queue, a.To)
				}
			}
		}
	}

	return labels, nil
}
