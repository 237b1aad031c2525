package connector

import (
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/icons"
)

// Rectangle draws every key with a `├─` stem, pads rows with `─` to the
// right edge and closes the whole diagram in a box frame.
type Rectangle struct{}

// Name implements Decorator.
func (Rectangle) Name() string { return StyleRectangle }

// Margin implements Decorator: one blank, at least one fill cell, and the border.
func (Rectangle) Margin() int { return 3 }

// Decorate implements Decorator.
func (Rectangle) Decorate(g *grid.Grid, pair icons.Pair) error {
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}
	if err := placeIcons(g, pair); err != nil {
		return err
	}

	for row := 0; row < rows; row++ {
		if col := stem(g, row); col >= 0 {
			if err := drawStem(g, row, col, glyphBranch); err != nil {
				return err
			}
		}
	}

	// Vertical lines run both ways from each stem until a row that is not
	// nested below the stem's parent.
	for row := 0; row < rows; row++ {
		col := stem(g, row)
		if col < 0 {
			continue
		}
		for _, dir := range []int{1, -1} {
			for r := row + dir; r >= 0 && r < rows && g.Indent(r) > col; r += dir {
				if g.IsBlank(r, col) {
					if err := g.Set(r, col, glyphVertical); err != nil {
						return err
					}
				}
			}
		}
	}

	for row := 0; row < rows; row++ {
		for col := g.End(row) + 1; col < cols; col++ {
			if err := g.Set(row, col, glyphHorizontal); err != nil {
				return err
			}
		}
	}

	return frame(g)
}

// frame draws the corners and right-edge tees. The bottom edge is closed
// along the last row itself, so the frame adds no row below the content.
func frame(g *grid.Grid) error {
	rows, cols := g.Rows(), g.Cols()
	last, right := rows-1, cols-1

	for row := 1; row < last; row++ {
		if g.At(row, right) == glyphHorizontal {
			if err := g.Set(row, right, glyphRightTee); err != nil {
				return err
			}
		}
	}

	if err := g.Set(0, 0, glyphTopLeft); err != nil {
		return err
	}
	if err := g.Set(0, right, glyphTopRight); err != nil {
		return err
	}
	// A single row keeps its top corners; there is no separate bottom edge.
	if last == 0 {
		return nil
	}
	if err := g.Set(last, 0, glyphBottomLeft); err != nil {
		return err
	}
	if err := g.Set(last, right, glyphBottomRgt); err != nil {
		return err
	}

	// Close the bottom edge left of the last row's stem.
	for col := 1; col <= stem(g, last); col++ {
		switch g.At(last, col) {
		case grid.Blank:
			if err := g.Set(last, col, glyphHorizontal); err != nil {
				return err
			}
		case glyphVertical, glyphBranch:
			if err := g.Set(last, col, glyphBottomTee); err != nil {
				return err
			}
		}
	}
	return nil
}
