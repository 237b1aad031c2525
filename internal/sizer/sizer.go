// Package sizer computes the grid capacity a document needs before any
// content is written.
package sizer

import (
	"fmt"

	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/models"
)

// Capacity is the grid size a document needs.
type Capacity struct {
	// Rows is the number of object keys reachable with arrays flattened.
	Rows int
	// Cols is the width of the widest row the fill pass writes.
	Cols int
	// Depth is the deepest key nesting level, starting at 1.
	Depth int
}

type pending struct {
	value models.JSONValue
	col   int
	level int
	owner int // row the value's inline text attaches to; -1 for the root
}

// Size walks root breadth-first and counts exactly the rows and columns
// the fill pass will use, following the same rules: every object key takes
// a row, arrays are transparent, and scalars extend their owning key's row.
func Size(root models.JSONValue, f *formatter.Formatter) (Capacity, error) {
	if _, err := RootObject(root); err != nil {
		return Capacity{}, err
	}

	var (
		widths []int
		size   Capacity
	)
	attach := func(owner int, text string) {
		if owner < 0 {
			return
		}
		// ": " and ", " are the same width, so order does not matter here.
		widths[owner] += 2 + f.Width(text)
	}

	queue := []pending{{value: root, col: grid.Step, level: 1, owner: -1}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if text, ok := f.Inline(item.value); ok {
			attach(item.owner, text)
			continue
		}

		switch v := item.value.(type) {
		case *models.JSONObject:
			if item.level > size.Depth {
				size.Depth = item.level
			}
			v.Each(func(key string, child models.JSONValue) {
				row := len(widths)
				widths = append(widths, item.col+f.Width(f.Key(key)))
				queue = append(queue, pending{value: child, col: item.col + grid.Step, level: item.level + 1, owner: row})
			})
		case models.JSONArray:
			for _, elem := range v {
				queue = append(queue, pending{value: elem, col: item.col, level: item.level, owner: item.owner})
			}
		}
	}

	size.Rows = len(widths)
	for _, w := range widths {
		if w > size.Cols {
			size.Cols = w
		}
	}
	return size, nil
}

// RootObject returns root as an object, or an error naming why a document
// with that root cannot be drawn.
func RootObject(root models.JSONValue) (*models.JSONObject, error) {
	switch v := root.(type) {
	case *models.JSONObject:
		return v, nil
	case models.JSONArray:
		return nil, errors.NewRootError("root value is an array; only objects have keys to attach rows to")
	case nil:
		return nil, errors.NewRootError("root value is null; only objects have keys to attach rows to")
	default:
		return nil, errors.NewRootError(fmt.Sprintf("root value is a scalar (%T); only objects have keys to attach rows to", v))
	}
}
