// Package analyze implements the row sign-run analysis and the
// global-minimum scan. Everything here is a pure function of the grid:
// results are recomputed from a snapshot on every pass and never cached.
package analyze

import "gridlens/internal/grid"

// MinReplacements returns the minimum number of single-cell
// replacements needed so that no run of three or more consecutive
// same-signed cells remains in the row.
//
// The row is partitioned into maximal runs of cells sharing the same
// non-neutral sign. Neutral cells (zero, NaN, absent) break runs and
// contribute nothing. One replacement breaks exactly one full group of
// three, so a run of length L costs floor(L/3): a remainder of one or
// two cells needs no replacement.
func MinReplacements(row grid.Row) int {
	total := 0
	runSign := grid.Neutral
	runLen := 0

	flush := func() {
		if runSign != grid.Neutral {
			total += runLen / 3
		}
		runLen = 0
	}

	for _, cell := range row {
		s := cell.Sign()
		if s == runSign && s != grid.Neutral {
			runLen++
			continue
		}
		flush()
		runSign = s
		if s != grid.Neutral {
			runLen = 1
		}
	}
	flush()
	return total
}

// MinPositive returns the smallest strictly-positive numeric value in
// the row, or an absent cell when the row has none.
func MinPositive(row grid.Row) grid.Cell {
	best := grid.Absent()
	for _, cell := range row {
		v, ok := cell.Value()
		if !ok || v <= 0 {
			continue
		}
		if cur, found := best.Value(); !found || v < cur {
			best = grid.Of(v)
		}
	}
	return best
}
