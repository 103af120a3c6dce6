package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridlens/internal/analyze"
	"gridlens/internal/grid"
)

// emptyCellMarker stands in for absent cells so ragged rows still
// render as a rectangular table.
const emptyCellMarker = "·"

// markerGlyph flags rows that contain at least one global-minimum cell.
const markerGlyph = "»"

// minCellWidth keeps very narrow grids readable.
const minCellWidth = 4

// Options controls rendering. UseColors is decided by the caller,
// typically from a terminal interactivity query; the renderer itself
// never inspects the environment.
type Options struct {
	UseColors bool
}

// Renderer writes the analysis table for one grid snapshot.
type Renderer struct {
	w      io.Writer
	styles Styles
	opts   Options
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles(), opts: opts}
}

// Render writes the full report: header, one line per grid row, and
// the global-minimum trailer. An empty grid produces a single notice
// and no table.
func (r *Renderer) Render(g grid.Grid, s analyze.Summary) {
	if g.IsEmpty() {
		fmt.Fprintln(r.w, "empty grid: nothing to render")
		return
	}

	totalCols := g.MaxRowLen()
	cellW := cellWidth(g)
	rowW := rowLabelWidth(len(g))

	var b strings.Builder
	b.WriteString("\n")

	header := r.headerLine(totalCols, cellW, rowW)
	sep := strings.Repeat("-", lipgloss.Width(header))

	b.WriteString(r.styled(r.styles.Header, header))
	b.WriteString("\n")
	b.WriteString(r.styled(r.styles.Muted, sep))
	b.WriteString("\n")

	for i, row := range g {
		b.WriteString(r.rowLine(i, row, totalCols, cellW, rowW, s))
		b.WriteString("\n")
	}

	b.WriteString(r.styled(r.styles.Muted, sep))
	b.WriteString("\n")
	b.WriteString(r.trailerLine(s.Min))
	b.WriteString("\n\n")

	fmt.Fprint(r.w, b.String())
}

// headerLine is built unstyled; the caller styles the whole line so
// padding is never affected by ANSI sequences.
func (r *Renderer) headerLine(totalCols, cellW, rowW int) string {
	var b strings.Builder
	b.WriteString("  ") // marker column
	b.WriteString(pad("row", rowW))
	for c := 0; c < totalCols; c++ {
		b.WriteString(pad("c"+strconv.Itoa(c), cellW))
	}
	b.WriteString(pad("min+", cellW))
	b.WriteString(pad("repl", cellW))
	return b.String()
}

func (r *Renderer) rowLine(i int, row grid.Row, totalCols, cellW, rowW int, s analyze.Summary) string {
	var b strings.Builder

	if s.Min.InRow(i) {
		b.WriteString(r.styled(r.styles.Marker, markerGlyph))
		b.WriteString(" ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(pad(strconv.Itoa(i), rowW))

	for c := 0; c < totalCols; c++ {
		var cell grid.Cell
		if c < len(row) {
			cell = row[c]
		}
		b.WriteString(r.cellText(cell, cellW, s.Min))
	}

	b.WriteString(r.cellText(s.Rows[i].MinPositive, cellW, analyze.GlobalMin{}))
	b.WriteString(pad(strconv.Itoa(s.Rows[i].Replacements), cellW))
	return b.String()
}

// cellText right-aligns one cell to width w. A cell holding the global
// minimum is styled after padding, so the highlight never shifts the
// column.
func (r *Renderer) cellText(cell grid.Cell, w int, min analyze.GlobalMin) string {
	text := cell.String()
	if !cell.Present() {
		text = emptyCellMarker
	}
	gap := w - lipgloss.Width(text)
	if gap < 0 {
		gap = 0
	}
	if v, ok := cell.Value(); ok && min.Found && v == min.Value {
		text = r.styled(r.styles.Highlight, text)
	}
	return strings.Repeat(" ", gap) + text
}

func (r *Renderer) trailerLine(min analyze.GlobalMin) string {
	if !min.Found {
		return "no global minimum found"
	}
	coords := make([]string, len(min.Positions))
	for i, p := range min.Positions {
		coords[i] = fmt.Sprintf("(r%d,c%d)", p.Row, p.Col)
	}
	value := strconv.FormatFloat(min.Value, 'g', -1, 64)
	return fmt.Sprintf("global minimum %s at %s",
		r.styled(r.styles.Summary, value), strings.Join(coords, ", "))
}

func (r *Renderer) styled(style lipgloss.Style, s string) string {
	if !r.opts.UseColors {
		return s
	}
	return style.Render(s)
}

// cellWidth is uniform across all columns: max(4, longest cell string)
// plus one space of separation.
func cellWidth(g grid.Grid) int {
	longest := minCellWidth
	for _, row := range g {
		for _, cell := range row {
			if w := lipgloss.Width(cell.String()); w > longest {
				longest = w
			}
		}
	}
	return longest + 1
}

func rowLabelWidth(rows int) int {
	w := len("row")
	if d := len(strconv.Itoa(rows - 1)); d > w {
		w = d
	}
	return w
}

func pad(s string, w int) string {
	gap := w - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	return strings.Repeat(" ", gap) + s
}
