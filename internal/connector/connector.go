// Package connector draws icons, connector lines and frames onto a filled grid.
package connector

import (
	"strings"

	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/icons"
)

// Style names accepted by ForStyle.
const (
	StyleTree      = "tree"
	StyleRectangle = "rectangle"
)

// DefaultStyle is used when no style is requested.
const DefaultStyle = StyleTree

// Box-drawing glyphs.
const (
	glyphVertical   = '│'
	glyphHorizontal = '─'
	glyphBranch     = '├'
	glyphCorner     = '└'
	glyphTopLeft    = '┌'
	glyphTopRight   = '┐'
	glyphBottomLeft = '└'
	glyphBottomRgt  = '┘'
	glyphRightTee   = '┤'
	glyphBottomTee  = '┴'
)

// Decorator post-processes a grid filled by the node writer.
type Decorator interface {
	// Name returns the style name.
	Name() string
	// Margin is the number of columns the style needs right of the widest row.
	Margin() int
	// Decorate draws onto g in place.
	Decorate(g *grid.Grid, pair icons.Pair) error
}

// Styles lists the supported style names.
func Styles() []string {
	return []string{StyleTree, StyleRectangle}
}

// ForStyle returns the decorator for a style name. An empty name selects
// DefaultStyle.
func ForStyle(name string) (Decorator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StyleTree:
		return Tree{}, nil
	case StyleRectangle:
		return Rectangle{}, nil
	default:
		return nil, errors.NewStyleError(name)
	}
}

// stem returns the column left of row's icon where connectors go, or -1
// when the row has no room for one.
func stem(g *grid.Grid, row int) int {
	first := g.Indent(row)
	if first < grid.Step {
		return -1
	}
	return first - grid.Step
}

// placeIcons puts the branch glyph before every key whose next row is
// indented deeper, and the leaf glyph before every other key.
func placeIcons(g *grid.Grid, pair icons.Pair) error {
	for row := 0; row < g.Rows(); row++ {
		first := g.Indent(row)
		if first < 1 {
			continue
		}
		glyph := pair.Leaf
		if row+1 < g.Rows() && g.Indent(row+1) > first {
			glyph = pair.Branch
		}
		if err := g.Set(row, first-1, glyph); err != nil {
			return err
		}
	}
	return nil
}

func drawStem(g *grid.Grid, row, col int, head rune) error {
	if err := g.Set(row, col, head); err != nil {
		return err
	}
	return g.Set(row, col+1, glyphHorizontal)
}

func isConnector(r rune) bool {
	return r == glyphCorner || r == glyphBranch || r == glyphVertical
}
