package lock_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tideman/lock"
	"github.com/katalvlaran/tideman/pairs"
	"github.com/katalvlaran/tideman/preference"
)

// TestLockAll_CondorcetCycle locks the first two equal-margin pairs and skips
// the one that closes the cycle.
func TestLockAll_CondorcetCycle(t *testing.T) {
	ranked := []pairs.Pair{
		{Winner: 0, Loser: 1, Margin: 1}, // A→B
		{Winner: 2, Loser: 0, Margin: 1}, // C→A
		{Winner: 1, Loser: 2, Margin: 1}, // B→C closes C→A→B→C
	}

	out, err := lock.LockAll(3, ranked)
	require.NoError(t, err)

	assert.Equal(t, ranked[:2], out.Locked)
	assert.Equal(t, ranked[2:], out.Skipped)
	assert.True(t, out.Graph.Locked(0, 1))
	assert.True(t, out.Graph.Locked(2, 0))
	assert.False(t, out.Graph.Locked(1, 2))

	w, err := lock.Winner(out.Graph)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
}

// TestLockAll_OrderMatters shows that the same pairs in a different order
// reject a different edge.
func TestLockAll_OrderMatters(t *testing.T) {
	ranked := []pairs.Pair{
		{Winner: 1, Loser: 2, Margin: 1},
		{Winner: 2, Loser: 0, Margin: 1},
		{Winner: 0, Loser: 1, Margin: 1},
	}

	out, err := lock.LockAll(3, ranked)
	require.NoError(t, err)
	assert.Equal(t, []pairs.Pair{{Winner: 0, Loser: 1, Margin: 1}}, out.Skipped)

	w, err := lock.Winner(out.Graph)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
}

// TestLockAll_SkippedNeverRetried checks single-pass semantics: once skipped
// a pair stays out even though nothing later would conflict with it again.
func TestLockAll_SkippedNeverRetried(t *testing.T) {
	ranked := []pairs.Pair{
		{Winner: 0, Loser: 1, Margin: 5},
		{Winner: 1, Loser: 0, Margin: 4},
		{Winner: 2, Loser: 3, Margin: 1},
	}

	out, err := lock.LockAll(4, ranked)
	require.NoError(t, err)
	assert.Len(t, out.Locked, 2)
	assert.Equal(t, []pairs.Pair{{Winner: 1, Loser: 0, Margin: 4}}, out.Skipped)
	assert.False(t, out.Graph.Locked(1, 0))
}

func TestLockAll_Errors(t *testing.T) {
	_, err := lock.LockAll(0, nil)
	assert.ErrorIs(t, err, lock.ErrInvalidSize)

	_, err = lock.LockAll(2, []pairs.Pair{{Winner: 0, Loser: 2, Margin: 1}})
	assert.ErrorIs(t, err, lock.ErrOutOfRange)
}

// TestLockAll_Hooks observes every decision and aborts on hook errors.
func TestLockAll_Hooks(t *testing.T) {
	ranked := []pairs.Pair{
		{Winner: 0, Loser: 1, Margin: 1},
		{Winner: 2, Loser: 0, Margin: 1},
		{Winner: 1, Loser: 2, Margin: 1},
	}

	var locked, skipped []pairs.Pair
	_, err := lock.LockAll(3, ranked,
		lock.WithOnLock(func(p pairs.Pair) error {
			locked = append(locked, p)
			return nil
		}),
		lock.WithOnSkip(func(p pairs.Pair) error {
			skipped = append(skipped, p)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Len(t, locked, 2)
	assert.Len(t, skipped, 1)

	errStop := errors.New("stop")
	out, err := lock.LockAll(3, ranked, lock.WithOnLock(func(pairs.Pair) error { return errStop }))
	assert.ErrorIs(t, err, errStop)
	assert.Nil(t, out)

	out, err = lock.LockAll(3, ranked, lock.WithOnSkip(func(pairs.Pair) error { return errStop }))
	assert.ErrorIs(t, err, errStop)
	assert.Nil(t, out)
}

// TestLockAll_RandomBallotsStayAcyclic runs the whole tally → rank → lock
// pipeline on random elections and checks the locked graph is a DAG with a
// single source whenever every contest is decided.
func TestLockAll_RandomBallotsStayAcyclic(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(9)
		m, err := preference.NewMatrix(n)
		require.NoError(t, err)
		voters := 1 + 2*rng.Intn(15) // odd count: no tied contests
		for v := 0; v < voters; v++ {
			m.Record(rng.Perm(n))
		}

		built, err := pairs.Build(m)
		require.NoError(t, err)
		require.Len(t, built, n*(n-1)/2)

		out, err := lock.LockAll(n, pairs.Rank(built))
		require.NoError(t, err)
		assert.Equal(t, len(built), len(out.Locked)+len(out.Skipped))

		order, err := lock.Order(out.Graph)
		require.NoError(t, err, "locked graph must be acyclic")
		require.Len(t, order, n)

		w, err := lock.Winner(out.Graph)
		require.NoError(t, err)
		assert.Equal(t, 0, out.Graph.InDegree(w))
		assert.Equal(t, []int{w}, lock.Sources(out.Graph))
		assert.Equal(t, w, order[0])
	}
}
