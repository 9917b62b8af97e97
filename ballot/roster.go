package ballot

import "fmt"

// NewRoster validates names and builds a Roster from them.
// Stage 1 (Validate): 1 ≤ len(names) ≤ MaxCandidates.
// Stage 2 (Index): every name non-empty and unique.
// Complexity: O(n).
func NewRoster(names []string) (*Roster, error) {
	if len(names) == 0 {
		return nil, ErrNoCandidates
	}
	if len(names) > MaxCandidates {
		return nil, fmt.Errorf("%w: %d given, maximum is %d", ErrTooManyCandidates, len(names), MaxCandidates)
	}

	r := &Roster{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
		if prev, ok := r.index[name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateCandidate, name, prev, i)
		}
		r.names[i] = name
		r.index[name] = i
	}

	return r, nil
}

// Len returns the number of candidates.
func (r *Roster) Len() int {
	return len(r.names)
}

// Names returns a copy of the candidate names in index order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Candidate returns the candidate at index i. The index must be in range.
func (r *Roster) Candidate(i int) Candidate {
	return Candidate{Index: i, Name: r.names[i]}
}

// Candidates returns every candidate in index order.
func (r *Roster) Candidates() []Candidate {
	out := make([]Candidate, len(r.names))
	for i, name := range r.names {
		out[i] = Candidate{Index: i, Name: name}
	}

	return out
}

// Lookup returns the index of the candidate with the given name.
// Matching is exact and case-sensitive.
func (r *Roster) Lookup(name string) (int, bool) {
	i, ok := r.index[name]

	return i, ok
}

// Ballot checks that ranking is a permutation of the roster indices and
// returns it as a Ballot. The returned Ballot is a copy.
// Complexity: O(n).
func (r *Roster) Ballot(ranking []int) (Ballot, error) {
	n := len(r.names)
	if len(ranking) != n {
		return nil, fmt.Errorf("%w: %d ranks given, want %d", ErrInvalidBallot, len(ranking), n)
	}

	seen := make([]bool, n)
	out := make(Ballot, n)
	for rank, c := range ranking {
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: rank %d: candidate index %d out of range [0,%d)", ErrInvalidBallot, rank+1, c, n)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: rank %d: candidate %q ranked twice", ErrInvalidBallot, rank+1, r.names[c])
		}
		seen[c] = true
		out[rank] = c
	}

	return out, nil
}

// Parse resolves names to indices and validates the resulting ranking.
// Complexity: O(n).
func (r *Roster) Parse(names []string) (Ballot, error) {
	ranking := make([]int, len(names))
	for rank, name := range names {
		i, ok := r.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: rank %d: unknown candidate %q", ErrInvalidBallot, rank+1, name)
		}
		ranking[rank] = i
	}

	return r.Ballot(ranking)
}
