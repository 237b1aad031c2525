// Package grid implements the fixed-size character buffer diagrams are drawn on.
package grid

import (
	"fmt"
	"strings"

	"github.com/mcncl/jsonsketch/internal/errors"
)

// Blank is the initial content of every cell.
const Blank = ' '

// Step is the column distance between nesting levels. Top-level keys start
// one Step in so their connector and icon fit to the left.
const Step = 3

// wideTail marks the second cell of a two-cell rune; it is skipped on output.
const wideTail rune = 0

// Grid is a rows × cols buffer of runes with per-row layout metadata.
// It is owned by a single render and is not safe for concurrent use.
type Grid struct {
	rows      int
	cols      int
	cells     [][]rune
	indent    []int
	end       []int
	marks     map[int][]rune // zero-width runes trailing a cell, keyed by row*cols+col
	cellWidth func(rune) int
}

// New allocates a blank grid. cellWidth reports how many cells a rune
// occupies (0, 1 or 2); nil treats every rune as one cell. Zero-width runes
// such as combining marks are stored with the cell before them.
func New(rows, cols int, cellWidth func(rune) int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if cellWidth == nil {
		cellWidth = func(rune) int { return 1 }
	}
	g := &Grid{
		rows:      rows,
		cols:      cols,
		cells:     make([][]rune, rows),
		indent:    make([]int, rows),
		end:       make([]int, rows),
		cellWidth: cellWidth,
	}
	for i := range g.cells {
		row := make([]rune, cols)
		for j := range row {
			row[j] = Blank
		}
		g.cells[i] = row
		g.indent[i] = -1
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) overflow(row, col int) error {
	return errors.NewInternalError(
		fmt.Sprintf("cell (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols),
		errors.ErrGridOverflow,
	)
}

// At returns the rune at (row, col); cells outside the grid read as Blank.
func (g *Grid) At(row, col int) rune {
	if !g.inBounds(row, col) {
		return Blank
	}
	return g.cells[row][col]
}

// IsBlank reports whether (row, col) holds Blank.
func (g *Grid) IsBlank(row, col int) bool {
	return g.At(row, col) == Blank
}

// Set stores ch at (row, col).
func (g *Grid) Set(row, col int, ch rune) error {
	if !g.inBounds(row, col) {
		return g.overflow(row, col)
	}
	g.cells[row][col] = ch
	return nil
}

// WriteText writes s starting at (row, col) and returns the column after
// its last cell. Content written this way extends the row's End.
func (g *Grid) WriteText(row, col int, s string) (int, error) {
	start := col
	for _, r := range s {
		w := g.cellWidth(r)
		if w == 0 {
			if col > start && g.inBounds(row, col-1) {
				g.addMark(row, col-1, r)
				continue
			}
			w = 1
		}
		if !g.inBounds(row, col+w-1) || col < 0 {
			return col, g.overflow(row, col+w-1)
		}
		g.cells[row][col] = r
		if w == 2 {
			g.cells[row][col+1] = wideTail
		}
		col += w
	}
	if g.inBounds(row, 0) && col > g.end[row] {
		g.end[row] = col
	}
	return col, nil
}

func (g *Grid) addMark(row, col int, r rune) {
	if g.marks == nil {
		g.marks = make(map[int][]rune)
	}
	key := row*g.cols + col
	g.marks[key] = append(g.marks[key], r)
}

// SetIndent records the column where row's key text begins.
func (g *Grid) SetIndent(row, col int) error {
	if !g.inBounds(row, col) {
		return g.overflow(row, col)
	}
	g.indent[row] = col
	return nil
}

// Indent returns the column where row's key text begins. Rows without a
// recorded indent fall back to their first non-blank cell, or -1.
func (g *Grid) Indent(row int) int {
	if row < 0 || row >= g.rows {
		return -1
	}
	if g.indent[row] >= 0 {
		return g.indent[row]
	}
	for c, r := range g.cells[row] {
		if r != Blank {
			return c
		}
	}
	return -1
}

// End returns the column after the last text written to row.
func (g *Grid) End(row int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	return g.end[row]
}

// Lines serialises the grid one string per row. trim drops trailing blanks.
func (g *Grid) Lines(trim bool) []string {
	lines := make([]string, g.rows)
	var b strings.Builder
	for i, row := range g.cells {
		b.Reset()
		for j, r := range row {
			if r != wideTail {
				b.WriteRune(r)
			}
			for _, m := range g.marks[i*g.cols+j] {
				b.WriteRune(m)
			}
		}
		line := b.String()
		if trim {
			line = strings.TrimRight(line, string(Blank))
		}
		lines[i] = line
	}
	return lines
}
