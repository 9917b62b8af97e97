package lock

import "fmt"

// Sources returns, in index order, every candidate with no incoming locked edge.
// Complexity: O(n²).
func Sources(g *Graph) []int {
	if g == nil {
		return nil
	}

	out := make([]int, 0, 1)
	for v := 0; v < g.n; v++ {
		if g.InDegree(v) == 0 {
			out = append(out, v)
		}
	}

	return out
}

// Winner returns the unique candidate with in-degree zero.
// If there is no such candidate, or more than one, the graph does not
// describe a decided election and ErrNoUniqueWinner is returned with the
// list of sources; the first source is never picked silently.
// Complexity: O(n²).
func Winner(g *Graph) (int, error) {
	if g == nil {
		return -1, ErrInvalidSize
	}

	src := Sources(g)
	if len(src) != 1 {
		return -1, fmt.Errorf("%w: %d candidates without incoming edge %v", ErrNoUniqueWinner, len(src), src)
	}

	return src[0], nil
}
