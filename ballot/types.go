// Package ballot defines candidates, rosters and ballots, and validates raw
// voter input before it is allowed anywhere near a preference tally.
//
// A Roster is the fixed, ordered candidate list of one election. Candidate
// indices are stable for the lifetime of the roster: the first name is index 0,
// the second index 1 and so on. A Ballot is one voter's complete strict
// ranking over those indices (most preferred first).
//
// Errors:
//
//   - ErrNoCandidates        if the roster is empty.
//   - ErrTooManyCandidates   if the roster exceeds MaxCandidates.
//   - ErrEmptyName           if a candidate name is empty.
//   - ErrDuplicateCandidate  if two candidates share a name.
//   - ErrInvalidBallot       if a ballot is not a permutation of the roster.
package ballot

import "errors"

// MaxCandidates bounds the roster size so tallies and lock graphs stay small
// and fixed-size per election.
const MaxCandidates = 9

// Sentinel errors for roster construction and ballot validation.
var (
	// ErrNoCandidates indicates an empty candidate list.
	ErrNoCandidates = errors.New("ballot: no candidates")

	// ErrTooManyCandidates indicates the candidate list exceeds MaxCandidates.
	ErrTooManyCandidates = errors.New("ballot: too many candidates")

	// ErrEmptyName indicates a candidate with an empty display name.
	ErrEmptyName = errors.New("ballot: candidate name is empty")

	// ErrDuplicateCandidate indicates the same name appears twice in a roster.
	ErrDuplicateCandidate = errors.New("ballot: duplicate candidate")

	// ErrInvalidBallot indicates a ballot that is not a complete strict ranking
	// of the roster: wrong length, unknown name, out-of-range index or repeat.
	ErrInvalidBallot = errors.New("ballot: invalid ballot")
)

// Candidate is one contestant, identified by its roster index.
type Candidate struct {
	// Index is the stable position of the candidate in its Roster.
	Index int

	// Name is the display name, unique within the Roster.
	Name string
}

// String returns the candidate's display name.
func (c Candidate) String() string {
	return c.Name
}

// Ballot is a complete strict ranking of candidate indices, most preferred first.
type Ballot []int

// Roster is the immutable, ordered candidate list of one election.
type Roster struct {
	names []string       // index → name
	index map[string]int // name → index
}
