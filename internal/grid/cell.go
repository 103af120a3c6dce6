// Package grid defines the cell and grid data model plus the random
// grid generator. Cells are optional values: a cell is either present
// with a numeric value or absent, so ragged rows and missing data are
// representable without overloading zero.
package grid

import (
	"math"
	"strconv"
)

// Sign is the three-state classification used by the run analyzer and
// the renderer's highlight matching. Zero, NaN and absent cells are all
// Neutral: they never start or extend a run.
type Sign int

const (
	Neutral Sign = iota
	Positive
	Negative
)

// String returns a short human-readable name for the sign.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "neutral"
	}
}

// Cell is an optional numeric value. The zero Cell is absent.
type Cell struct {
	value   float64
	present bool
}

// Of returns a present cell holding v. NaN is allowed; it stays
// present but classifies as Neutral and is never a minimum candidate.
func Of(v float64) Cell {
	return Cell{value: v, present: true}
}

// OfInt returns a present cell holding an integer value.
func OfInt(v int) Cell {
	return Of(float64(v))
}

// Absent returns the missing-cell marker.
func Absent() Cell {
	return Cell{}
}

// Present reports whether the cell holds any value, including NaN.
func (c Cell) Present() bool {
	return c.present
}

// Numeric reports whether the cell is a candidate for value
// comparisons: present and not NaN.
func (c Cell) Numeric() bool {
	return c.present && !math.IsNaN(c.value)
}

// Value returns the cell's value and whether it is numeric.
func (c Cell) Value() (float64, bool) {
	if !c.Numeric() {
		return 0, false
	}
	return c.value, true
}

// Sign classifies the cell once; callers should reuse the result
// rather than re-deriving it from the raw value.
func (c Cell) Sign() Sign {
	v, ok := c.Value()
	switch {
	case !ok || v == 0:
		return Neutral
	case v > 0:
		return Positive
	default:
		return Negative
	}
}

// String renders the cell's value without a fixed width. Absent cells
// render as an empty string; the renderer substitutes its own marker.
func (c Cell) String() string {
	if !c.present {
		return ""
	}
	return strconv.FormatFloat(c.value, 'g', -1, 64)
}
