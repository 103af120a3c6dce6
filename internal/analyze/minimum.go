package analyze

import "gridlens/internal/grid"

// GlobalMin is the result of one minimum scan over a grid snapshot.
// It is never mutated after construction.
type GlobalMin struct {
	// Found is false when the grid contains no numeric cell.
	Found bool
	// Value is the smallest numeric value; meaningless unless Found.
	Value float64
	// Positions lists every cell attaining Value, in row-major
	// discovery order. The order is part of the contract: it drives
	// the position list in the rendered report.
	Positions []grid.Position
	// RowSet holds the distinct row indices that contain at least one
	// minimum position, for row marking in the renderer.
	RowSet map[int]bool
}

// InRow reports whether row r holds at least one global-minimum cell.
func (m GlobalMin) InRow(r int) bool {
	return m.RowSet[r]
}

// FindGlobalMin scans every cell once in row-major order. A strictly
// smaller value resets the position list; an equal value appends, so
// ties keep all occurrences in discovery order. Absent and NaN cells
// are not candidates.
func FindGlobalMin(g grid.Grid) GlobalMin {
	result := GlobalMin{RowSet: make(map[int]bool)}

	for r, row := range g {
		for c, cell := range row {
			v, ok := cell.Value()
			if !ok {
				continue
			}
			switch {
			case !result.Found || v < result.Value:
				result.Found = true
				result.Value = v
				result.Positions = result.Positions[:0]
				result.Positions = append(result.Positions, grid.Position{Row: r, Col: c})
			case v == result.Value:
				result.Positions = append(result.Positions, grid.Position{Row: r, Col: c})
			}
		}
	}

	for _, p := range result.Positions {
		result.RowSet[p.Row] = true
	}
	return result
}
