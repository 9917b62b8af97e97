package lock

// Order computes a topological ordering of the locked graph: for every locked
// edge u→v, u appears before v. The winner, when unique, comes first.
// Roots and successors are visited in descending index order, so after the
// final reversal the result is deterministic and favours lower indices among
// unordered candidates. If the graph contains a cycle, ErrCycleDetected is
// returned.
//
// Complexity:
//
//   - Time:   O(n²) (adjacency rows are scanned once per vertex)
//   - Memory: O(n)  (recursion stack and state)
func Order(g *Graph) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidSize
	}

	s := &orderer{
		graph: g,
		state: make([]int, g.n),
		order: make([]int, 0, g.n),
	}
	for v := g.n - 1; v >= 0; v-- {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// orderer encapsulates state for a topological sort traversal.
type orderer struct {
	graph *Graph
	state []int // White, Gray, Black per vertex
	order []int // post-order
}

// visit performs a DFS from id, marking states and detecting back-edges.
func (s *orderer) visit(id int) error {
	if s.state[id] == Gray {
		return ErrCycleDetected
	}
	if s.state[id] == Black {
		return nil
	}
	s.state[id] = Gray

	n := s.graph.n
	for next := n - 1; next >= 0; next-- {
		if !s.graph.edges[id*n+next] {
			continue
		}
		if err := s.visit(next); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
