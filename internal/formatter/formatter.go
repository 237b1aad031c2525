package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"github.com/mattn/go-runewidth"

	"github.com/mcncl/jsonsketch/internal/models"
)

// KeyCase selects how object keys are re-cased for display.
type KeyCase string

const (
	KeyCaseNone           KeyCase = "none"
	KeyCaseSnake          KeyCase = "snake"
	KeyCaseCamel          KeyCase = "camel"
	KeyCaseLowerCamel     KeyCase = "lower-camel"
	KeyCaseKebab          KeyCase = "kebab"
	KeyCaseScreamingSnake KeyCase = "screaming-snake"
)

// ValidKeyCases contains all valid key case values.
var ValidKeyCases = []KeyCase{KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCaseLowerCamel, KeyCaseKebab, KeyCaseScreamingSnake}

// ValidateKeyCase returns an error if the key case is not recognised.
func ValidateKeyCase(kc string) error {
	if kc == "" {
		return nil // empty means use default
	}
	for _, valid := range ValidKeyCases {
		if KeyCase(kc) == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid key-case %q: valid values are none, snake, camel, lower-camel, kebab, screaming-snake", kc)
}

// Formatter turns keys and scalar values into the labels written into the
// diagram and measures them in grid cells. The sizing and fill passes must
// share one Formatter so their widths agree.
type Formatter struct {
	keyCase KeyCase
	width   *runewidth.Condition
}

// NewFormatter creates a new Formatter instance
func NewFormatter(keyCase KeyCase) *Formatter {
	if keyCase == "" {
		keyCase = KeyCaseNone
	}
	cond := runewidth.NewCondition()
	// Ambiguous-width glyphs count as one cell regardless of locale so output is reproducible.
	cond.EastAsianWidth = false
	return &Formatter{keyCase: keyCase, width: cond}
}

// Key returns the display label for an object key.
func (f *Formatter) Key(key string) string {
	switch f.keyCase {
	case KeyCaseSnake:
		key = strcase.ToSnake(key)
	case KeyCaseCamel:
		key = strcase.ToCamel(key)
	case KeyCaseLowerCamel:
		key = strcase.ToLowerCamel(key)
	case KeyCaseKebab:
		key = strcase.ToKebab(key)
	case KeyCaseScreamingSnake:
		key = strcase.ToScreamingSnake(key)
	}
	if key == "" {
		return `""`
	}
	return escape(key)
}

// Inline returns the text a value contributes to its key's row: scalars
// and empty containers. Non-empty containers return false.
func (f *Formatter) Inline(v models.JSONValue) (string, bool) {
	switch val := v.(type) {
	case *models.JSONObject:
		if val.Len() == 0 {
			return "{}", true
		}
		return "", false
	case models.JSONArray:
		if len(val) == 0 {
			return "[]", true
		}
		return "", false
	default:
		return f.Scalar(v), true
	}
}

// Scalar converts a scalar to its canonical text: strings without quotes,
// numbers as written, booleans and null as literals.
func (f *Formatter) Scalar(v models.JSONValue) string {
	if v == nil {
		return "null"
	}
	switch val := v.(type) {
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return escape(val)
	case models.Number:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CellWidth returns how many grid cells r occupies: 2 for wide runes, 0 for
// zero-width runes such as combining marks, 1 otherwise.
func (f *Formatter) CellWidth(r rune) int {
	switch f.width.RuneWidth(r) {
	case 2:
		return 2
	case 0:
		return 0
	}
	return 1
}

// Width returns the number of grid cells s occupies. A zero-width rune at
// the start of s has nothing to combine with and takes a cell of its own.
func (f *Formatter) Width(s string) int {
	n := 0
	for i, r := range s {
		w := f.CellWidth(r)
		if w == 0 && i == 0 {
			w = 1
		}
		n += w
	}
	return n
}

// escape keeps labels on a single line by quoting control characters.
func escape(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
