// Package distmat provides the dense Euclidean distance matrix shared by
// every MS-TOP component: Problem, the savings engine, the Mapper, and PJS.
//
// Matrix is a row-major, flat-backed float64 grid — the same contiguous-
// storage, O(1) At/Set, strict-bounds-checking idiom as a dense adjacency
// matrix, specialized to the one shape this domain needs: a square,
// symmetric, zero-diagonal distance matrix over (S+N+1) points.
package distmat

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimensions indicates a non-positive matrix size was requested.
var ErrInvalidDimensions = errors.New("distmat: size must be > 0")

// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
var ErrIndexOutOfBounds = errors.New("distmat: index out of bounds")

// Matrix is a square, row-major distance matrix of size n x n.
type Matrix struct {
	n    int
	data []float64 // flat backing storage, length == n*n
}

// New allocates an n x n Matrix initialized to zero.
//
// Complexity: O(n^2) time and memory.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Matrix{n: n, data: make([]float64, n*n)}, nil
}

// N returns the matrix order (both rows and columns, since Matrix is square).
//
// Complexity: O(1).
func (m *Matrix) N() int {
	return m.n
}

// index computes the flat offset for (i, j), or an error if out of bounds.
//
// Complexity: O(1).
func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("distmat: index (%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	return i*m.n + j, nil
}

// At retrieves dist[i][j].
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns dist[i][j] = v.
//
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v
	return nil
}

// Point is a 2D coordinate; FromCoordinates takes one per node id.
type Point struct {
	X, Y float64
}

// FromCoordinates builds the symmetric Euclidean distance matrix over pts,
// indexed by position. The diagonal
// is exactly zero; off-diagonal entries are mirrored in one pass since
// Euclidean distance is symmetric by construction.
//
// Complexity: O(n^2) time, O(n^2) memory.
func FromCoordinates(pts []Point) (*Matrix, error) {
	n := len(pts)
	m, err := New(n)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := pts[i].X - pts[j].X
			dy := pts[i].Y - pts[j].Y
			d := math.Hypot(dx, dy)
			_ = m.Set(i, j, d)
			_ = m.Set(j, i, d)
		}
	}

	return m, nil
}
