package grid

// Row is an ordered sequence of cells. Rows in the same grid may have
// different lengths.
type Row []Cell

// Grid is an ordered sequence of rows.
type Grid []Row

// Position identifies one cell by 0-based row and column index.
type Position struct {
	Row int
	Col int
}

// IsEmpty reports whether the grid has no rows.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}

// MaxRowLen returns the length of the longest row, 0 for an empty grid.
func (g Grid) MaxRowLen() int {
	longest := 0
	for _, row := range g {
		if len(row) > longest {
			longest = len(row)
		}
	}
	return longest
}

// FromInts builds a grid from integer rows. Handy for tests and for
// callers that have no missing cells.
func FromInts(rows [][]int) Grid {
	g := make(Grid, 0, len(rows))
	for _, r := range rows {
		row := make(Row, 0, len(r))
		for _, v := range r {
			row = append(row, OfInt(v))
		}
		g = append(g, row)
	}
	return g
}
