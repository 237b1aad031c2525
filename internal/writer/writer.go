// Package writer fills a grid with the keys and values of a document.
package writer

import (
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/models"
)

// Cursor is the fill position threaded through the walk.
type Cursor struct {
	// Row is the next unused row.
	Row int
	// Col is where keys at the current level start.
	Col int
	// Owner is the row inline values attach to, or -1 for none.
	Owner int
}

// NodeWriter writes key and value labels into a grid sized by the sizer.
type NodeWriter struct {
	grid   *grid.Grid
	format *formatter.Formatter
	valued []bool
}

// NewNodeWriter creates a writer for g. f must be the formatter g was sized with.
func NewNodeWriter(g *grid.Grid, f *formatter.Formatter) *NodeWriter {
	return &NodeWriter{
		grid:   g,
		format: f,
		valued: make([]bool, g.Rows()),
	}
}

// Write fills the grid from root and returns the final cursor. The returned
// Row equals the number of keys written.
func (w *NodeWriter) Write(root *models.JSONObject) (Cursor, error) {
	return w.write(root, Cursor{Row: 0, Col: grid.Step, Owner: -1})
}

// write places v at cur and returns cur advanced by one row per object key
// written beneath it. Col and Owner are returned unchanged.
func (w *NodeWriter) write(v models.JSONValue, cur Cursor) (Cursor, error) {
	if text, ok := w.format.Inline(v); ok {
		return cur, w.attach(cur.Owner, text)
	}

	switch val := v.(type) {
	case *models.JSONObject:
		for _, key := range val.Keys() {
			row := cur.Row
			if err := w.grid.SetIndent(row, cur.Col); err != nil {
				return cur, err
			}
			if _, err := w.grid.WriteText(row, cur.Col, w.format.Key(key)); err != nil {
				return cur, err
			}
			child, _ := val.Get(key)
			next, err := w.write(child, Cursor{Row: row + 1, Col: cur.Col + grid.Step, Owner: row})
			if err != nil {
				return cur, err
			}
			cur.Row = next.Row
		}
	case models.JSONArray:
		for _, elem := range val {
			next, err := w.write(elem, cur)
			if err != nil {
				return cur, err
			}
			cur.Row = next.Row
		}
	}
	return cur, nil
}

// attach appends text to row's content, after ": " for the first value and
// ", " for later ones.
func (w *NodeWriter) attach(row int, text string) error {
	if row < 0 {
		return nil
	}
	sep := ", "
	if row < len(w.valued) && !w.valued[row] {
		sep = ": "
		w.valued[row] = true
	}
	_, err := w.grid.WriteText(row, w.grid.End(row), sep+text)
	return err
}
