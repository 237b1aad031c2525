package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonsketch/internal/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		family string
		want   Pair
	}{
		{name: "pokerface", family: "pokerface", want: Pair{Branch: '♢', Leaf: '♤'}},
		{name: "heart", family: "heart", want: Pair{Branch: '♥', Leaf: '♦'}},
		{name: "star", family: "star", want: Pair{Branch: '★', Leaf: '☆'}},
		{name: "ascii", family: "ascii", want: Pair{Branch: '+', Leaf: '-'}},
		{name: "case insensitive", family: " Heart ", want: Pair{Branch: '♥', Leaf: '♦'}},
		{name: "empty selects default", family: "", want: Pair{Branch: '♢', Leaf: '♤'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.family)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_UnknownFamily(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := Resolve("unknown_family")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownIconFamily)
		assert.Contains(t, err.Error(), "unknown_family")
	})
}

func TestFamily_String(t *testing.T) {
	assert.Equal(t, "pokerface", PokerFace.String())
	assert.Equal(t, "ascii", ASCII.String())
	assert.Equal(t, "unknown", Family(99).String())
	assert.Equal(t, PokerFace.Pair(), Family(-1).Pair())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"pokerface", "heart", "star", "ascii"}, Names())
}
