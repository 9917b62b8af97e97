// Package lock implements the locking stage of ranked pairs: a reachability
// check that refuses any edge closing a cycle, and a single greedy pass that
// commits pairs in ranked order.
//
// Complexity:
//
//   - WouldCreateCycle: Time O(V + E), Memory O(V) (recursion stack + state).
//   - LockAll:          Time O(P·(V + E)) for P ranked pairs.
package lock

// WouldCreateCycle reports whether adding winner→loser to g would close a
// directed cycle, i.e. whether loser already reaches winner through locked
// edges. winner == loser counts as a cycle. Out-of-range indices report false.
// The graph is never modified.
func WouldCreateCycle(g *Graph, winner, loser int) bool {
	if g == nil || !g.inRange(winner) || !g.inRange(loser) {
		return false
	}
	if winner == loser {
		return true
	}

	state := make([]int, g.n) // all vertices start White
	return reaches(g, loser, winner, state)
}

// reaches performs a recursive DFS from id over outgoing locked edges and
// returns true as soon as target is discovered. Each vertex is expanded once.
func reaches(g *Graph, id, target int, state []int) bool {
	// 1. Target found
	if id == target {
		return true
	}
	// 2. Mark as in-progress
	state[id] = Gray

	// 3. Follow each outgoing locked edge to an unvisited vertex
	row := id * g.n
	for next := 0; next < g.n; next++ {
		if !g.edges[row+next] || state[next] != White {
			continue
		}
		if reaches(g, next, target, state) {
			return true
		}
	}

	// 4. Fully explored without reaching target
	state[id] = Black

	return false
}
