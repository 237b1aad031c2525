// Package icons maps icon family names to the glyph pair drawn beside keys.
package icons

import (
	"strings"

	"github.com/mcncl/jsonsketch/internal/errors"
)

// Family identifies a registered icon family.
type Family int

const (
	PokerFace Family = iota
	Heart
	Star
	ASCII
)

// DefaultFamily is used when no icon family is requested.
const DefaultFamily = PokerFace

// Pair holds the glyph drawn left of a key with nested rows (Branch) and
// the one drawn left of a key without (Leaf).
type Pair struct {
	Branch rune
	Leaf   rune
}

var families = [...]struct {
	name string
	pair Pair
}{
	PokerFace: {"pokerface", Pair{Branch: '♢', Leaf: '♤'}},
	Heart:     {"heart", Pair{Branch: '♥', Leaf: '♦'}},
	Star:      {"star", Pair{Branch: '★', Leaf: '☆'}},
	ASCII:     {"ascii", Pair{Branch: '+', Leaf: '-'}},
}

// String returns the family's registered name.
func (f Family) String() string {
	if f < 0 || int(f) >= len(families) {
		return "unknown"
	}
	return families[f].name
}

// Pair returns the family's glyphs.
func (f Family) Pair() Pair {
	if f < 0 || int(f) >= len(families) {
		return families[DefaultFamily].pair
	}
	return families[f].pair
}

// Names lists the registered family names in declaration order.
func Names() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// Lookup finds a family by name, ignoring case and surrounding space.
// An empty name selects DefaultFamily.
func Lookup(name string) (Family, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultFamily, nil
	}
	for i, f := range families {
		if f.name == key {
			return Family(i), nil
		}
	}
	return 0, errors.NewIconError(name, Names())
}

// Resolve returns the glyph pair registered for name.
func Resolve(name string) (Pair, error) {
	f, err := Lookup(name)
	if err != nil {
		return Pair{}, err
	}
	return f.Pair(), nil
}
