package lock_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tideman/lock"
	"github.com/katalvlaran/tideman/pairs"
	"github.com/katalvlaran/tideman/preference"
)

// BenchmarkLockAll_MaxCandidates locks a random nine-candidate election.
// The tally and ranking are built once; only the locking pass is timed.
func BenchmarkLockAll_MaxCandidates(b *testing.B) {
	const n = 9
	rng := rand.New(rand.NewSource(1))
	m, _ := preference.NewMatrix(n)
	for v := 0; v < 101; v++ {
		m.Record(rng.Perm(n))
	}
	built, _ := pairs.Build(m)
	ranked := pairs.Rank(built)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lock.LockAll(n, ranked)
	}
}
