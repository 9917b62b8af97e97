package lock

import "fmt"

// Graph is the locked preference graph over n candidates.
// An edge i→j means i's victory over j has been committed. Edges are only
// ever added; LockAll keeps the graph acyclic.
type Graph struct {
	n     int    // number of candidates
	edges []bool // row-major adjacency, length == n*n
}

// NewGraph returns an empty graph over n candidates.
// Complexity: O(n²).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Graph{n: n, edges: make([]bool, n*n)}, nil
}

// Size returns the number of candidates.
func (g *Graph) Size() int {
	return g.n
}

// Locked reports whether the edge from→to is locked.
// Out-of-range indices report false.
func (g *Graph) Locked(from, to int) bool {
	if !g.inRange(from) || !g.inRange(to) {
		return false
	}

	return g.edges[from*g.n+to]
}

// EdgeCount returns the number of locked edges.
// Complexity: O(n²).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, e := range g.edges {
		if e {
			count++
		}
	}

	return count
}

// InDegree returns the number of locked edges entering v.
// Complexity: O(n).
func (g *Graph) InDegree(v int) int {
	deg := 0
	for u := 0; u < g.n; u++ {
		if g.edges[u*g.n+v] {
			deg++
		}
	}

	return deg
}

// lock sets from→to. Callers have already range-checked both indices.
func (g *Graph) lock(from, to int) {
	g.edges[from*g.n+to] = true
}

func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < g.n
}

// checkPair verifies that both endpoints are valid candidates.
func (g *Graph) checkPair(from, to int) error {
	if !g.inRange(from) || !g.inRange(to) {
		return fmt.Errorf("%w: %d→%d with %d candidates", ErrOutOfRange, from, to, g.n)
	}

	return nil
}
