// Package tideman elects a single winner from ranked ballots using the
// ranked-pairs (Tideman) method.
//
// 🚀 What is tideman?
//
//	A small, deterministic, dependency-light library and CLI that:
//		• Tallies complete ranked ballots into a pairwise preference matrix
//		• Derives every decided head-to-head contest with its margin
//		• Orders contests by strength of victory (stable, documented tie-break)
//		• Locks contests into a preference graph, skipping any that close a cycle
//		• Elects the unique candidate left undefeated, plus a full ranking
//
// Under the hood, everything is organized into small packages:
//
//	ballot/       - candidate rosters, ballots and input validation
//	preference/   - the pairwise preference tally
//	pairs/        - contest derivation and margin ranking
//	lock/         - cycle check, greedy locking, winner and ranking extraction
//	election/     - the end-to-end pipeline with logging and metrics hooks
//	metrics/      - prometheus counters
//	electionfile/ - YAML / HCL election definitions
//	cmd/tideman/  - interactive and file-driven command line
//
// Quick ASCII example (a Condorcet cycle, every margin 1):
//
//	A ──► B
//	▲     ┆ skipped: would close C→A→B→C
//	└─ C ◄┘
//
// A→B and C→A are locked, B→C is skipped, so C is the only candidate
// without an incoming edge and wins.
//
//	go install github.com/katalvlaran/tideman/cmd/tideman@latest
package tideman
