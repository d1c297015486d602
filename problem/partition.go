package problem

// Owns reports whether index belongs to workerID's round-robin partition.
// total must be positive.
func Owns(index, workerID, total int) bool {
	return index%total == workerID
}

// ForEachOwned calls fn for every index in [0, n) owned by workerID, in
// ascending order. It visits ceil((n-workerID)/total) indices.
func ForEachOwned(n, workerID, total int, fn func(i int)) {
	for i := workerID; i < n; i += total {
		fn(i)
	}
}
