// Package pairs derives and orders the head-to-head contests of an election.
//
// Build walks every unordered candidate pair of a tally once and emits the
// strict winner of each contest together with its margin of victory; tied
// contests produce nothing. Rank orders those pairs by descending margin so
// the strongest victories are considered first when locking.
//
// Tie-break: Rank is stable. Pairs with equal margins keep the order produced
// by Build, which enumerates unordered pairs {a, b} with a < b by ascending a,
// then ascending b. The contest between the lower-indexed candidates is
// therefore considered first.
//
// Complexity:
//
//   - Build: O(n²) for n candidates.
//   - Rank:  O(p log p) for p pairs.
package pairs

import (
	"fmt"
	"sort"
)

// Tally is the read-only view of pairwise preference counts Build needs.
// *preference.Matrix satisfies it.
type Tally interface {
	// Size returns the number of candidates.
	Size() int

	// At returns the number of ballots ranking i strictly above j.
	At(i, j int) (int, error)
}

// Pair is one decided contest: Winner beat Loser by Margin ballots.
type Pair struct {
	Winner int
	Loser  int
	Margin int
}

// String renders the pair as "winner>loser(+margin)".
func (p Pair) String() string {
	return fmt.Sprintf("%d>%d(+%d)", p.Winner, p.Loser, p.Margin)
}

// Build returns one Pair for every unordered candidate pair that is not tied.
// At most one direction is emitted per pair and every margin is > 0.
// Returns an error only if the tally rejects an index.
func Build(t Tally) ([]Pair, error) {
	n := t.Size()
	out := make([]Pair, 0, n*(n-1)/2)

	var a, b int
	for a = 0; a < n-1; a++ {
		for b = a + 1; b < n; b++ {
			ab, err := t.At(a, b)
			if err != nil {
				return nil, fmt.Errorf("pairs: Build: %w", err)
			}
			ba, err := t.At(b, a)
			if err != nil {
				return nil, fmt.Errorf("pairs: Build: %w", err)
			}

			switch {
			case ab > ba:
				out = append(out, Pair{Winner: a, Loser: b, Margin: ab - ba})
			case ba > ab:
				out = append(out, Pair{Winner: b, Loser: a, Margin: ba - ab})
			}
		}
	}

	return out, nil
}

// Rank returns a copy of ps ordered by descending margin.
// Equal margins keep their relative input order.
func Rank(ps []Pair) []Pair {
	out := append([]Pair(nil), ps...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Margin > out[j].Margin
	})

	return out
}

// IsRanked reports whether margins in ps never increase.
func IsRanked(ps []Pair) bool {
	for i := 1; i < len(ps); i++ {
		if ps[i].Margin > ps[i-1].Margin {
			return false
		}
	}

	return true
}
