package connector

import (
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/icons"
)

// Tree draws an indented tree: `├─` before every sibling but the last,
// `└─` before the last, and `│` linking siblings across nested rows.
type Tree struct{}

// Name implements Decorator.
func (Tree) Name() string { return StyleTree }

// Margin implements Decorator.
func (Tree) Margin() int { return 0 }

// Decorate implements Decorator. Rows are visited bottom to top so a blank
// stem cell means no later sibling has drawn through it yet.
func (Tree) Decorate(g *grid.Grid, pair icons.Pair) error {
	if err := placeIcons(g, pair); err != nil {
		return err
	}

	for row := g.Rows() - 1; row >= 0; row-- {
		col := stem(g, row)
		if col < 0 {
			continue
		}
		if !g.IsBlank(row, col) {
			if err := drawStem(g, row, col, glyphBranch); err != nil {
				return err
			}
			continue
		}

		if err := drawStem(g, row, col, glyphCorner); err != nil {
			return err
		}
		for up := row - 1; up >= 0; up-- {
			if g.Indent(up) <= col || !g.IsBlank(up, col) || !isConnector(g.At(up+1, col)) {
				break
			}
			if err := g.Set(up, col, glyphVertical); err != nil {
				return err
			}
		}
	}
	return nil
}
