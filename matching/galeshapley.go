package matching

// GaleShapley is the sequential reference: free men propose in index order
// until everyone is engaged. It returns the wife of every man.
//
// Time: O(n²). Memory: O(n).
func GaleShapley(men, women [][]int) ([]int, error) {
	p, err := New(men, women)
	if err != nil {
		return nil, err
	}

	next := make([]int, p.n)
	husband := make([]int, p.n)
	for w := range husband {
		husband[w] = -1
	}
	free := make([]int, 0, p.n)
	for m := p.n - 1; m >= 0; m-- {
		free = append(free, m)
	}

	for len(free) > 0 {
		m := free[len(free)-1]
		free = free[:len(free)-1]
		w := p.men[m][next[m]]
		next[m]++
		switch h := husband[w]; {
		case h < 0:
			husband[w] = m
		case p.rank[w][m] < p.rank[w][h]:
			husband[w] = m
			free = append(free, h)
		default:
			free = append(free, m)
		}
	}

	wife := make([]int, p.n)
	for w, m := range husband {
		wife[m] = w
	}

	return wife, nil
}
