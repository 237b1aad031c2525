package sizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/parser"
)

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Capacity
	}{
		{name: "single leaf", json: `{"a":1}`, want: Capacity{Rows: 1, Cols: 7, Depth: 1}},
		{name: "nested", json: `{"a":{"b":2}}`, want: Capacity{Rows: 2, Cols: 10, Depth: 2}},
		{name: "scalar array joins owner row", json: `{"a":[1,2]}`, want: Capacity{Rows: 1, Cols: 10, Depth: 1}},
		{name: "array of objects is flattened", json: `{"users":[{"id":1},{"id":2}]}`, want: Capacity{Rows: 3, Cols: 11, Depth: 2}},
		{name: "empty containers", json: `{"o":{},"a":[]}`, want: Capacity{Rows: 2, Cols: 8, Depth: 1}},
		{name: "empty root", json: `{}`, want: Capacity{}},
		{name: "wide key", json: `{"日本":true}`, want: Capacity{Rows: 1, Cols: 13, Depth: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ir, err := parser.ParseString(tt.json)
			require.NoError(t, err)

			got, err := Size(ir.Root, formatter.NewFormatter(formatter.KeyCaseNone))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSize_UnrenderableRoots(t *testing.T) {
	for _, doc := range []string{`[1,2]`, `[{"a":1}]`, `"text"`, `42`, `true`, `null`} {
		t.Run(doc, func(t *testing.T) {
			ir, err := parser.ParseString(doc)
			require.NoError(t, err)

			_, err = Size(ir.Root, formatter.NewFormatter(""))
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrUnrenderableRoot)
		})
	}
}

func TestSize_KeyCaseChangesWidth(t *testing.T) {
	ir, err := parser.ParseString(`{"userName":1}`)
	require.NoError(t, err)

	plain, err := Size(ir.Root, formatter.NewFormatter(formatter.KeyCaseNone))
	require.NoError(t, err)
	snake, err := Size(ir.Root, formatter.NewFormatter(formatter.KeyCaseSnake))
	require.NoError(t, err)

	assert.Equal(t, plain.Cols+1, snake.Cols)
}
