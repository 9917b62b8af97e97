package lock

import (
	"fmt"

	"github.com/katalvlaran/tideman/pairs"
)

// LockAll walks ranked exactly once, in order, over a fresh graph of n
// candidates. Each pair is locked unless WouldCreateCycle forbids it; a
// skipped pair is never reconsidered, even if later locks would have made it
// safe. The order of ranked therefore decides the outcome.
//
// Errors:
//
//   - ErrInvalidSize   if n <= 0.
//   - ErrOutOfRange    if a pair references a candidate outside [0, n).
//   - any error returned by the OnLock or OnSkip hooks.
func LockAll(n int, ranked []pairs.Pair, opts ...Option) (*Outcome, error) {
	// 1. Allocate the graph
	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}

	// 2. Apply options
	lopts := DefaultOptions()
	for _, fn := range opts {
		fn(&lopts)
	}

	out := &Outcome{
		Graph:   g,
		Locked:  make([]pairs.Pair, 0, len(ranked)),
		Skipped: make([]pairs.Pair, 0),
	}

	// 3. Single greedy pass
	for i, p := range ranked {
		if err = g.checkPair(p.Winner, p.Loser); err != nil {
			return nil, fmt.Errorf("lock: LockAll: pair %d: %w", i, err)
		}

		if WouldCreateCycle(g, p.Winner, p.Loser) {
			out.Skipped = append(out.Skipped, p)
			if lopts.OnSkip != nil {
				if err = lopts.OnSkip(p); err != nil {
					return nil, fmt.Errorf("lock: OnSkip hook for %v: %w", p, err)
				}
			}
			continue
		}

		g.lock(p.Winner, p.Loser)
		out.Locked = append(out.Locked, p)
		if lopts.OnLock != nil {
			if err = lopts.OnLock(p); err != nil {
				return nil, fmt.Errorf("lock: OnLock hook for %v: %w", p, err)
			}
		}
	}

	return out, nil
}
