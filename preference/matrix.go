// Package preference accumulates pairwise preference counts from ballots.
// Matrix is a square, row-major tally stored in a flat slice:
// At(i, j) is the number of recorded ballots ranking candidate i strictly
// above candidate j. Once every ballot is a total order the tally satisfies
// At(i, j) + At(j, i) == Ballots() for all i != j; Validate checks it.
package preference

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates that the requested candidate count is non-positive.
var ErrInvalidDimensions = errors.New("preference: dimensions must be > 0")

// ErrOutOfRange indicates that a row or column index is outside valid range.
var ErrOutOfRange = errors.New("preference: index out of range")

// ErrInconsistent indicates a tally whose pairwise counts do not add up to the
// number of recorded ballots.
var ErrInconsistent = errors.New("preference: inconsistent tally")

// matrixErrorf wraps an underlying error with Matrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an n×n tally of pairwise preferences.
type Matrix struct {
	n       int   // number of candidates
	ballots int   // number of recorded ballots
	data    []int // flat backing storage, length == n*n
}

// NewMatrix creates an empty n×n tally.
// Complexity: O(n²) time and memory.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{n: n, data: make([]int, n*n)}, nil
}

// Size returns the number of candidates.
func (m *Matrix) Size() int {
	return m.n
}

// Ballots returns the number of ballots recorded so far.
func (m *Matrix) Ballots() int {
	return m.ballots
}

// Record adds one ballot: for every pair of positions p < q,
// the count for (ballot[p], ballot[q]) is incremented.
// The ballot must be a complete strict ranking of 0..n-1; Record does not
// validate it.
// Complexity: O(n²).
func (m *Matrix) Record(ballot []int) {
	var p, q int
	for p = 0; p < len(ballot)-1; p++ {
		row := ballot[p] * m.n
		for q = p + 1; q < len(ballot); q++ {
			m.data[row+ballot[q]]++
		}
	}
	m.ballots++
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the number of ballots ranking row above col.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Margin returns At(a, b) - At(b, a). It is positive when a beats b.
// Complexity: O(1).
func (m *Matrix) Margin(a, b int) (int, error) {
	ab, err := m.indexOf("Margin", a, b)
	if err != nil {
		return 0, err
	}
	ba := b*m.n + a

	return m.data[ab] - m.data[ba], nil
}

// Validate checks the tally invariants: a zero diagonal, and for every
// distinct pair the two directed counts summing to Ballots().
// Complexity: O(n²).
func (m *Matrix) Validate() error {
	var i, j int
	for i = 0; i < m.n; i++ {
		if d := m.data[i*m.n+i]; d != 0 {
			return fmt.Errorf("%w: diagonal (%d,%d) = %d", ErrInconsistent, i, i, d)
		}
		for j = i + 1; j < m.n; j++ {
			sum := m.data[i*m.n+j] + m.data[j*m.n+i]
			if sum != m.ballots {
				return fmt.Errorf("%w: (%d,%d)+(%d,%d) = %d, want %d",
					ErrInconsistent, i, j, j, i, sum, m.ballots)
			}
		}
	}

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²).
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
