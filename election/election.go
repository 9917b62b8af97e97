package election

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/tideman/ballot"
	"github.com/katalvlaran/tideman/lock"
	"github.com/katalvlaran/tideman/metrics"
	"github.com/katalvlaran/tideman/pairs"
	"github.com/katalvlaran/tideman/preference"
)

// Election holds the roster and running tally of one election.
type Election struct {
	opts   Options
	roster *ballot.Roster
	tally  *preference.Matrix
	frozen bool  // set by the first Resolve
	err    error // sticky rejection cause
}

// New validates the candidate names and returns an empty Election.
//
// Errors:
//
//   - ballot.ErrNoCandidates, ballot.ErrTooManyCandidates,
//     ballot.ErrEmptyName, ballot.ErrDuplicateCandidate.
func New(names []string, opts ...Option) (*Election, error) {
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	roster, err := ballot.NewRoster(names)
	if err != nil {
		eopts.Logger.Error("invalid candidate list", "candidates", len(names), "error", err)
		return nil, fmt.Errorf("election: New: %w", err)
	}

	tally, err := preference.NewMatrix(roster.Len())
	if err != nil {
		return nil, fmt.Errorf("election: New: %w", err)
	}

	return &Election{opts: eopts, roster: roster, tally: tally}, nil
}

// Candidates returns the roster in index order.
func (e *Election) Candidates() []ballot.Candidate {
	return e.roster.Candidates()
}

// Lookup returns the candidate with the given name. Matching is exact.
func (e *Election) Lookup(name string) (ballot.Candidate, bool) {
	i, ok := e.roster.Lookup(name)
	if !ok {
		return ballot.Candidate{Index: -1}, false
	}

	return e.roster.Candidate(i), true
}

// Ballots returns the number of ballots tallied so far.
func (e *Election) Ballots() int {
	return e.tally.Ballots()
}

// RecordBallot validates and tallies a ranking of candidate indices,
// most preferred first.
func (e *Election) RecordBallot(ranking []int) error {
	if err := e.accepting(); err != nil {
		return err
	}

	b, err := e.roster.Ballot(ranking)
	if err != nil {
		return e.reject(err)
	}
	e.record(b)

	return nil
}

// Vote validates and tallies a ranking of candidate names,
// most preferred first. Names must match the roster exactly.
func (e *Election) Vote(names []string) error {
	if err := e.accepting(); err != nil {
		return err
	}

	b, err := e.roster.Parse(names)
	if err != nil {
		return e.reject(err)
	}
	e.record(b)

	return nil
}

// accepting reports whether a new ballot may be tallied.
func (e *Election) accepting() error {
	if e.err != nil {
		return fmt.Errorf("%w: %w", ErrAborted, e.err)
	}
	if e.frozen {
		return ErrFrozen
	}

	return nil
}

// reject aborts the election with cause.
func (e *Election) reject(cause error) error {
	e.err = cause
	e.opts.Metrics.BallotRejected()
	e.opts.Logger.Warn("ballot rejected, election aborted",
		"ballot", e.tally.Ballots()+1, "error", cause)

	return fmt.Errorf("election: ballot %d: %w", e.tally.Ballots()+1, cause)
}

func (e *Election) record(b ballot.Ballot) {
	e.tally.Record(b)
	e.opts.Metrics.BallotRecorded()
}

// Resolve freezes the tally and runs the ranked-pairs pipeline:
// pairs.Build → pairs.Rank → lock.LockAll → lock.Winner.
//
// Errors:
//
//   - ErrAborted wrapping the ballot error, if a ballot was rejected.
//   - preference.ErrInconsistent if the tally invariant does not hold.
//   - lock.ErrNoUniqueWinner if the locked graph has zero or several sources,
//     e.g. when every contest between two leaders is tied.
func (e *Election) Resolve() (*Result, error) {
	if e.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAborted, e.err)
	}
	e.frozen = true

	runID := e.opts.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	log := e.opts.Logger.With("run_id", runID.String())

	res, err := e.resolve(runID, log)
	if err != nil {
		e.opts.Metrics.Resolved(metrics.OutcomeError)
		log.Error("resolution failed", "error", err)
		return nil, err
	}

	e.opts.Metrics.Resolved(metrics.OutcomeWinner)
	log.Info("winner elected",
		"winner", res.Winner.Name,
		"ballots", res.Ballots,
		"locked", len(res.Locked),
		"skipped", len(res.Skipped))

	return res, nil
}

func (e *Election) resolve(runID uuid.UUID, log *slog.Logger) (*Result, error) {
	// 1. Tally must satisfy the pairwise sum invariant
	if err := e.tally.Validate(); err != nil {
		return nil, fmt.Errorf("election: Resolve: %w", err)
	}

	// 2. Build and rank the pairs
	built, err := pairs.Build(e.tally)
	if err != nil {
		return nil, fmt.Errorf("election: Resolve: %w", err)
	}
	ranked := pairs.Rank(built)

	// 3. Lock in ranked order
	name := func(i int) string { return e.roster.Candidate(i).Name }
	out, err := lock.LockAll(e.roster.Len(), ranked,
		lock.WithOnLock(func(p pairs.Pair) error {
			e.opts.Metrics.PairLocked()
			log.Debug("pair locked", "winner", name(p.Winner), "loser", name(p.Loser), "margin", p.Margin)
			return nil
		}),
		lock.WithOnSkip(func(p pairs.Pair) error {
			e.opts.Metrics.PairSkipped()
			log.Debug("pair skipped", "winner", name(p.Winner), "loser", name(p.Loser), "margin", p.Margin)
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("election: Resolve: %w", err)
	}

	// 4. Extract the unique source and the full order
	w, err := lock.Winner(out.Graph)
	if err != nil {
		return nil, fmt.Errorf("election: Resolve: %w", err)
	}
	order, err := lock.Order(out.Graph)
	if err != nil {
		return nil, fmt.Errorf("election: Resolve: %w", err)
	}

	ranking := make([]ballot.Candidate, len(order))
	for i, c := range order {
		ranking[i] = e.roster.Candidate(c)
	}

	return &Result{
		RunID:      runID,
		Winner:     e.roster.Candidate(w),
		Ranking:    ranking,
		Candidates: e.roster.Candidates(),
		Ballots:    e.tally.Ballots(),
		Pairs:      ranked,
		Locked:     out.Locked,
		Skipped:    out.Skipped,
		Graph:      out.Graph,
	}, nil
}
