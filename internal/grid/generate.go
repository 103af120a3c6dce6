package grid

import (
	"fmt"
	"math/rand"
	"time"
)

// InvalidDimensionError reports a non-positive row or column count.
// Generation aborts entirely; no partial grid is returned.
type InvalidDimensionError struct {
	Dim   string
	Value int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("invalid grid dimension: %s must be a positive integer, got %d", e.Dim, e.Value)
}

// Generator produces grids of uniform random integers from its own
// PRNG stream.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed picks
// a time-derived seed, so successive runs differ.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a rows x cols grid of integers drawn independently
// and uniformly from the inclusive range [min, max]. Inverted bounds
// are swapped before sampling; that is a normalization, not an error.
func (g *Generator) Generate(rows, cols, min, max int) (Grid, error) {
	if rows <= 0 {
		return nil, &InvalidDimensionError{Dim: "rows", Value: rows}
	}
	if cols <= 0 {
		return nil, &InvalidDimensionError{Dim: "cols", Value: cols}
	}
	if min > max {
		min, max = max, min
	}

	out := make(Grid, rows)
	span := max - min + 1
	for r := range out {
		row := make(Row, cols)
		for c := range row {
			row[c] = OfInt(min + g.rng.Intn(span))
		}
		out[r] = row
	}
	return out, nil
}
