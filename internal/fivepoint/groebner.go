package fivepoint

import (
	"github.com/MeKo-Tech/fivepoint/internal/poly"
)

// groebnerBasis arranges the ten constraint polynomials into a 10x20
// coefficient matrix under the canonical monomial ordering, brings it to
// reduced row echelon form, and returns the right 10x10 block.
//
// For generic input the ten degree-3 monomials occupy the leading columns,
// the reduction leaves an identity block there, and the returned block
// expresses each degree-3 monomial in terms of the ten lower-order ones.
// Rank-deficient systems (degenerate point configurations) reduce as far as
// possible instead of failing; the resulting candidates are numerically
// poor and are left for downstream scoring to reject.
func groebnerBasis(constraints [10]poly.Poly) [10][10]float64 {
	// A Poly already stores its coefficients in the canonical monomial
	// ordering, so each constraint is one row verbatim.
	var m [10][poly.Size]float64
	for i, c := range constraints {
		m[i] = c
	}

	reduceRowEchelon(&m)

	var g [10][10]float64
	for i := range g {
		copy(g[i][:], m[i][10:])
	}
	return g
}

// reduceRowEchelon performs in-place Gauss-Jordan elimination with partial
// pivoting. Columns without a usable pivot are skipped, so rank-deficient
// input reduces without error.
func reduceRowEchelon(m *[10][poly.Size]float64) {
	row := 0
	for col := 0; col < poly.Size && row < len(m); col++ {
		pivot := findPivotRow(m, row, col)
		if pivot < 0 {
			continue
		}
		if pivot != row {
			m[row], m[pivot] = m[pivot], m[row]
		}
		normalizeRow(m, row, col)
		eliminateColumn(m, row, col)
		row++
	}
}

// findPivotRow returns the row at or below start with the largest absolute
// value in col, or -1 if the column is all zero there.
func findPivotRow(m *[10][poly.Size]float64, start, col int) int {
	pivot := -1
	maxAbs := 0.0
	for r := start; r < len(m); r++ {
		if a := abs(m[r][col]); a > maxAbs {
			maxAbs = a
			pivot = r
		}
	}
	return pivot
}

func normalizeRow(m *[10][poly.Size]float64, row, col int) {
	div := m[row][col]
	for c := col; c < poly.Size; c++ {
		m[row][c] /= div
	}
}

func eliminateColumn(m *[10][poly.Size]float64, row, col int) {
	for r := range m {
		if r == row {
			continue
		}
		factor := m[r][col]
		if factor == 0 {
			continue
		}
		for c := col; c < poly.Size; c++ {
			m[r][c] -= factor * m[row][c]
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
