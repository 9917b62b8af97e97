package lock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tideman/lock"
	"github.com/katalvlaran/tideman/pairs"
)

// TestWinner_TwoCandidates locks X→Y and elects X.
func TestWinner_TwoCandidates(t *testing.T) {
	out, err := lock.LockAll(2, []pairs.Pair{{Winner: 0, Loser: 1, Margin: 3}})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Graph.EdgeCount())

	w, err := lock.Winner(out.Graph)
	require.NoError(t, err)
	assert.Equal(t, 0, w)
}

func TestWinner_SingleCandidate(t *testing.T) {
	g, err := lock.NewGraph(1)
	require.NoError(t, err)

	w, err := lock.Winner(g)
	require.NoError(t, err)
	assert.Equal(t, 0, w)
}

// TestWinner_MultipleSources reports an invariant violation rather than
// picking the lowest index.
func TestWinner_MultipleSources(t *testing.T) {
	g, err := lock.NewGraph(3)
	require.NoError(t, err)
	lock.ForceLock(g, 0, 2)

	assert.Equal(t, []int{0, 1}, lock.Sources(g))
	w, err := lock.Winner(g)
	assert.ErrorIs(t, err, lock.ErrNoUniqueWinner)
	assert.Equal(t, -1, w)
}

// TestWinner_NoSource covers a corrupted cyclic graph.
func TestWinner_NoSource(t *testing.T) {
	g, err := lock.NewGraph(2)
	require.NoError(t, err)
	lock.ForceLock(g, 0, 1)
	lock.ForceLock(g, 1, 0)

	assert.Empty(t, lock.Sources(g))
	_, err = lock.Winner(g)
	assert.ErrorIs(t, err, lock.ErrNoUniqueWinner)
}

func TestWinner_NilGraph(t *testing.T) {
	_, err := lock.Winner(nil)
	assert.ErrorIs(t, err, lock.ErrInvalidSize)
	assert.Nil(t, lock.Sources(nil))
}

// TestOrder_Chain returns the chain order regardless of index layout.
func TestOrder_Chain(t *testing.T) {
	// 2 → 0 → 3 → 1
	g, err := lock.NewGraph(4)
	require.NoError(t, err)
	lock.ForceLock(g, 2, 0)
	lock.ForceLock(g, 0, 3)
	lock.ForceLock(g, 3, 1)
	lock.ForceLock(g, 2, 1)

	order, err := lock.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 3, 1}, order)
}

// TestOrder_Unconnected favours lower indices among unordered candidates.
func TestOrder_Unconnected(t *testing.T) {
	g, err := lock.NewGraph(3)
	require.NoError(t, err)

	order, err := lock.Order(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestOrder_Cycle(t *testing.T) {
	g, err := lock.NewGraph(3)
	require.NoError(t, err)
	lock.ForceLock(g, 0, 1)
	lock.ForceLock(g, 1, 2)
	lock.ForceLock(g, 2, 0)

	order, err := lock.Order(g)
	assert.ErrorIs(t, err, lock.ErrCycleDetected)
	assert.Nil(t, order)
}

func TestOrder_NilGraph(t *testing.T) {
	_, err := lock.Order(nil)
	assert.ErrorIs(t, err, lock.ErrInvalidSize)
}
