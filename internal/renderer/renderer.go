// Package renderer turns a parsed JSON document into diagram lines.
package renderer

import (
	"strings"

	"github.com/go-logr/logr"

	"github.com/mcncl/jsonsketch/internal/connector"
	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/grid"
	"github.com/mcncl/jsonsketch/internal/icons"
	"github.com/mcncl/jsonsketch/internal/models"
	"github.com/mcncl/jsonsketch/internal/sizer"
	"github.com/mcncl/jsonsketch/internal/writer"
)

// Options controls how documents are drawn.
type Options struct {
	// Style is a connector style name ("tree" or "rectangle").
	Style string
	// Icon is an icon family name.
	Icon string
	// KeyCase re-cases keys before drawing.
	KeyCase formatter.KeyCase
	// KeepPadding keeps the blank cells at the end of each row.
	KeepPadding bool
	// Logger receives debug traces; the zero value discards them.
	Logger logr.Logger
}

// Renderer draws documents with a fixed style and icon family. It holds no
// per-document state, so one Renderer can draw any number of documents.
type Renderer struct {
	decorator connector.Decorator
	icons     icons.Pair
	format    *formatter.Formatter
	opts      Options
	log       logr.Logger
}

// NewRenderer validates opts and returns a Renderer. Unknown styles and
// icon families are reported here, before anything is drawn.
func NewRenderer(opts Options) (*Renderer, error) {
	decorator, err := connector.ForStyle(opts.Style)
	if err != nil {
		return nil, err
	}
	pair, err := icons.Resolve(opts.Icon)
	if err != nil {
		return nil, err
	}
	if err := formatter.ValidateKeyCase(string(opts.KeyCase)); err != nil {
		return nil, errors.NewConfigError("invalid key case", err)
	}

	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	return &Renderer{
		decorator: decorator,
		icons:     pair,
		format:    formatter.NewFormatter(opts.KeyCase),
		opts:      opts,
		log:       log.WithName("renderer").WithValues("style", decorator.Name()),
	}, nil
}

// Style returns the name of the connector style in use.
func (r *Renderer) Style() string {
	return r.decorator.Name()
}

// Render draws root and returns one line per object key.
func (r *Renderer) Render(root models.JSONValue) ([]string, error) {
	obj, err := sizer.RootObject(root)
	if err != nil {
		return nil, err
	}

	capacity, err := sizer.Size(obj, r.format)
	if err != nil {
		return nil, err
	}
	r.log.V(1).Info("sized document", "rows", capacity.Rows, "cols", capacity.Cols, "depth", capacity.Depth)
	if capacity.Rows == 0 {
		return []string{}, nil
	}

	g := grid.New(capacity.Rows, capacity.Cols+r.decorator.Margin(), r.format.CellWidth)
	cur, err := writer.NewNodeWriter(g, r.format).Write(obj)
	if err != nil {
		return nil, err
	}
	if cur.Row != capacity.Rows {
		return nil, errors.NewInternalError("fill pass used a different number of rows than sized", errors.ErrGridOverflow)
	}

	if err := r.decorator.Decorate(g, r.icons); err != nil {
		return nil, err
	}
	r.log.V(1).Info("decorated grid", "rows", g.Rows(), "cols", g.Cols())

	return g.Lines(!r.opts.KeepPadding), nil
}

// RenderString draws root as a newline-separated string without a trailing newline.
func (r *Renderer) RenderString(root models.JSONValue) (string, error) {
	lines, err := r.Render(root)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
