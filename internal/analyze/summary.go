package analyze

import "gridlens/internal/grid"

// RowStats carries the per-row analysis consumed by the renderer.
type RowStats struct {
	// Replacements is the sign-run replacement count for the row.
	Replacements int
	// MinPositive is the row's smallest strictly-positive value, or
	// absent when the row has none.
	MinPositive grid.Cell
}

// Summary bundles one full analysis pass over a grid. The renderer
// takes it as plain input; it performs no analysis of its own.
type Summary struct {
	Min  GlobalMin
	Rows []RowStats
}

// Summarize runs the minimum scan and the per-row analyses over g.
func Summarize(g grid.Grid) Summary {
	s := Summary{
		Min:  FindGlobalMin(g),
		Rows: make([]RowStats, len(g)),
	}
	for i, row := range g {
		s.Rows[i] = RowStats{
			Replacements: MinReplacements(row),
			MinPositive:  MinPositive(row),
		}
	}
	return s
}
