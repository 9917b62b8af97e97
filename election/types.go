// Package election runs a complete ranked-pairs (Tideman) election:
// ballots are validated against a roster and tallied, then Resolve builds the
// head-to-head pairs, ranks them by margin, locks them without cycles and
// reports the unique undefeated candidate.
//
// Lifecycle:
//
//	e, err := election.New([]string{"Alice", "Bob", "Charlie"})
//	err = e.Vote([]string{"Bob", "Alice", "Charlie"})   // by name
//	err = e.RecordBallot([]int{1, 0, 2})                // by index
//	res, err := e.Resolve()
//
// A malformed ballot aborts the election: the error is returned and every
// later call fails with ErrAborted, since a partial tally cannot be trusted.
// After the first Resolve the tally is frozen; Resolve may be repeated and
// always elects the same winner.
//
// An Election is owned by one goroutine. Separate Elections share no state
// and may run concurrently.
package election

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/tideman/ballot"
	"github.com/katalvlaran/tideman/lock"
	"github.com/katalvlaran/tideman/metrics"
	"github.com/katalvlaran/tideman/pairs"
)

var (
	// ErrAborted is returned by every call after a ballot has been rejected.
	ErrAborted = errors.New("election: aborted")

	// ErrFrozen is returned when a ballot is cast after Resolve.
	ErrFrozen = errors.New("election: tally is frozen")
)

// Option configures an Election.
type Option func(*Options)

// Options holds the ambient collaborators of an Election.
type Options struct {
	// Logger receives diagnostics. Defaults to a logger discarding output.
	Logger *slog.Logger

	// Metrics, if non-nil, counts ballots, locks and resolutions.
	Metrics *metrics.Collector

	// RunID tags every Result and log record. Defaults to a random UUID per Resolve.
	RunID uuid.UUID
}

// DefaultOptions returns Options with a discarding logger, no metrics and
// a nil RunID (a fresh UUID is generated per Resolve).
func DefaultOptions() Options {
	return Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: nil,
		RunID:   uuid.Nil,
	}
}

// WithLogger returns an Option that sets the logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics returns an Option that installs a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *Options) {
		o.Metrics = c
	}
}

// WithRunID returns an Option that fixes the run identifier, which makes
// logs and results reproducible.
func WithRunID(id uuid.UUID) Option {
	return func(o *Options) {
		o.RunID = id
	}
}

// Result is the outcome of one Resolve call.
type Result struct {
	// RunID identifies this resolution in logs.
	RunID uuid.UUID

	// Winner is the unique candidate left undefeated in the locked graph.
	Winner ballot.Candidate

	// Ranking lists every candidate in a topological order of the locked
	// graph, winner first.
	Ranking []ballot.Candidate

	// Candidates is the roster in index order.
	Candidates []ballot.Candidate

	// Ballots is the number of ballots tallied.
	Ballots int

	// Pairs holds every decided contest in the order it was considered.
	Pairs []pairs.Pair

	// Locked and Skipped partition Pairs by the locking decision.
	Locked  []pairs.Pair
	Skipped []pairs.Pair

	// Graph is the final locked graph.
	Graph *lock.Graph
}
