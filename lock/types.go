// Package lock defines the locked preference graph of a ranked-pairs
// election, together with the options and sentinel errors used when locking.
package lock

import (
	"errors"

	"github.com/katalvlaran/tideman/pairs"
)

// Visitation states used by the depth-first searches in this package.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrInvalidSize is returned when a graph is requested for a non-positive
	// number of candidates.
	ErrInvalidSize = errors.New("lock: candidate count must be > 0")

	// ErrOutOfRange indicates a pair references a candidate outside the graph.
	ErrOutOfRange = errors.New("lock: candidate index out of range")

	// ErrCycleDetected indicates the locked graph contains a directed cycle.
	// Locking never produces one; seeing it means the graph was corrupted.
	ErrCycleDetected = errors.New("lock: cycle detected")

	// ErrNoUniqueWinner indicates the locked graph has zero or several
	// candidates with no incoming edge.
	ErrNoUniqueWinner = errors.New("lock: no unique winner")
)

// Option configures optional behavior of LockAll.
type Option func(*Options)

// Options holds the hooks invoked while locking.
type Options struct {
	// OnLock, if non-nil, is invoked right after a pair is locked.
	// Returning an error aborts locking with that error.
	OnLock func(p pairs.Pair) error

	// OnSkip, if non-nil, is invoked when a pair is skipped because locking it
	// would close a cycle. Returning an error aborts locking with that error.
	OnSkip func(p pairs.Pair) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnLock: nil,
		OnSkip: nil,
	}
}

// WithOnLock returns an Option that installs fn as the lock hook.
func WithOnLock(fn func(p pairs.Pair) error) Option {
	return func(o *Options) {
		o.OnLock = fn
	}
}

// WithOnSkip returns an Option that installs fn as the skip hook.
func WithOnSkip(fn func(p pairs.Pair) error) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}

// Outcome captures the result of one locking pass.
type Outcome struct {
	// Graph is the final locked graph.
	Graph *Graph

	// Locked lists pairs in the order they were locked.
	Locked []pairs.Pair

	// Skipped lists pairs rejected because they would have closed a cycle.
	Skipped []pairs.Pair
}
