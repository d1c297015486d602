package sssp

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvlattice/core"
)

// Dijkstra is the sequential reference: lazy decrease-key over a binary
// heap, stale entries skipped on pop. Unreached vertices stay Inf.
//
// Time: O((V+E) log V). Memory: O(V+E).
func Dijkstra(el *core.EdgeList, source int) (Distances, error) {
	if el == nil {
		return nil, ErrNilGraph
	}
	if err := el.ValidateNonNegative(); err != nil {
		return nil, fmt.Errorf("sssp: %w", err)
	}
	if source < 0 || source >= el.VertexCount {
		return nil, fmt.Errorf("Dijkstra: source=%d with n=%d: %w", source, el.VertexCount, ErrSourceOutOfRange)
	}

	adj := el.Adjacency()
	dist := make(Distances, el.VertexCount)
	for v := range dist {
		dist[v] = Inf
	}
	done := make([]bool, el.VertexCount)

	dist[source] = 0
	pq := &itemPQ{{v: source}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(item)
		if done[it.v] {
			continue // stale
		}
		done[it.v] = true
		for _, a := range adj[it.v] {
			if nd := relax(it.d, a.Weight); nd < dist[a.To] {
				dist[a.To] = nd
				heap.Push(pq, item{v: a.To, d: nd})
			}
		}
	}

	return dist, nil
}

type item struct {
	v int
	d int64
}

// itemPQ is a min-heap on distance.
type itemPQ []item

func (pq itemPQ) Len() int           { return len(pq) }
func (pq itemPQ) Less(i, j int) bool { return pq[i].d < pq[j].d }
func (pq itemPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *itemPQ) Push(x any)        { *pq = append(*pq, x.(item)) }
func (pq *itemPQ) Pop() any {
	old := *pq
	it := old[len(old)-1]
	*pq = old[:len(old)-1]

	return it
}
