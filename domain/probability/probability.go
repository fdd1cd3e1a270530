// Package probability computes how often one die beats another.
package probability

import (
	"math"

	"github.com/luca-patrignani/mental-dice/domain/dice"
)

// WinProbability returns the probability that a roll of a is strictly
// greater than a roll of b. Ties count for neither die.
func WinProbability(a, b dice.Die) float64 {
	total := a.Size() * b.Size()
	if total == 0 {
		return 0
	}
	wins := 0
	for _, fa := range a.Faces() {
		for _, fb := range b.Faces() {
			if fa > fb {
				wins++
			}
		}
	}
	return float64(wins) / float64(total)
}

// Matrix holds WinProbability for every ordered pair of a dice set.
// Row i, column j is the probability that die i beats die j; the diagonal
// is NaN.
type Matrix [][]float64

// NewMatrix computes the matrix for set.
func NewMatrix(set []dice.Die) Matrix {
	m := make(Matrix, len(set))
	for i := range set {
		m[i] = make([]float64, len(set))
		for j := range set {
			if i == j {
				m[i][j] = math.NaN()
				continue
			}
			m[i][j] = WinProbability(set[i], set[j])
		}
	}
	return m
}

// Size returns the number of dice covered by the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// At returns the probability that die i beats die j, and false on the
// diagonal or outside the matrix.
func (m Matrix) At(i, j int) (float64, bool) {
	if i == j || i < 0 || j < 0 || i >= len(m) || j >= len(m) {
		return 0, false
	}
	return m[i][j], true
}

// IsNonTransitive reports whether every die of the set is beaten, with a
// probability above one half, by some other die of the set.
func IsNonTransitive(set []dice.Die) bool {
	if len(set) < 3 {
		return false
	}
	m := NewMatrix(set)
	for j := range set {
		beaten := false
		for i := range set {
			if p, ok := m.At(i, j); ok && p > 0.5 {
				beaten = true
				break
			}
		}
		if !beaten {
			return false
		}
	}
	return true
}
