package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-logr/logr"

	"github.com/mcncl/jsonsketch/internal/config"
	"github.com/mcncl/jsonsketch/internal/connector"
	"github.com/mcncl/jsonsketch/internal/errors"
	"github.com/mcncl/jsonsketch/internal/formatter"
	"github.com/mcncl/jsonsketch/internal/icons"
	"github.com/mcncl/jsonsketch/internal/logger"
	"github.com/mcncl/jsonsketch/internal/parser"
	"github.com/mcncl/jsonsketch/internal/renderer"
)

// CLI defines the command-line interface
var CLI struct {
	File        string           `help:"Path to input JSON file, or - to read from stdin." short:"f" required:"" placeholder:"PATH"`
	Style       string           `help:"Connector style: ${styles} (default: tree)." short:"s"`
	Icon        string           `help:"Icon family for branch and leaf markers: ${icons} (default: pokerface)." short:"i"`
	KeyCase     string           `help:"Re-case keys before drawing: none, snake, camel, lower-camel, kebab, screaming-snake." short:"k"`
	Config      string           `help:"Path to a config file. Defaults to the nearest .jsonsketch.{yml,yaml,toml}." short:"c" type:"path"`
	KeepPadding bool             `help:"Keep trailing padding on every line." aliases:"no-trim"`
	Debug       bool             `help:"Enable debug logging to stderr." short:"d"`
	Version     kong.VersionFlag `help:"Show version information." short:"v"`
	ListIcons   listIconsFlag    `help:"List the available icon families and exit."`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger logr.Logger
	Out    io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

// listIconsFlag prints every icon family and exits before required flags are checked.
type listIconsFlag bool

func (l listIconsFlag) BeforeReset(app *kong.Kong) error {
	for _, name := range icons.Names() {
		family, _ := icons.Lookup(name)
		pair := family.Pair()
		fmt.Fprintf(app.Stdout, "%-10s branch %c  leaf %c\n", name, pair.Branch, pair.Leaf)
	}
	app.Exit(errors.ExitOK)
	return nil
}

func main() {
	// Parse CLI arguments with Kong
	cli := kong.Must(&CLI,
		kong.Name("jsonsketch"),
		kong.Description("Draw a JSON document as a Unicode tree or box diagram"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("jsonsketch version %s", Version),
			"styles":  strings.Join(connector.Styles(), ", "),
			"icons":   strings.Join(icons.Names(), ", "),
		},
	)

	if _, err := cli.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "jsonsketch: %v\n", err)
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsonsketch --help\n")
		os.Exit(errors.ExitUsage)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(errors.ExitCode(err))
	}

	level := logger.LevelError
	if cfg.Dev.Debug {
		level = logger.LevelDebug
	}
	logger.Version = Version
	log := logger.Get(level)

	code := errors.ExitOK
	if err := run(&Context{Debug: cfg.Dev.Debug, Config: cfg, Logger: *log, Out: os.Stdout}); err != nil {
		log.V(1).Info("run failed", "error", err.Error())
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		code = errors.ExitCode(err)
	}

	logger.Sync()
	os.Exit(code)
}

// loadConfig resolves the config file and layers the command-line flags over it.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile("")
	}
	return config.LoadConfigWithCLI(path, config.Overrides{
		Style:       CLI.Style,
		Icon:        CLI.Icon,
		KeyCase:     CLI.KeyCase,
		KeepPadding: CLI.KeepPadding,
		Debug:       CLI.Debug,
	})
}

// run executes the main program logic
func run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.NewConfig()
	}
	log := ctx.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	// 1. Validate style and icon family before touching the input
	r, err := renderer.NewRenderer(renderer.Options{
		Style:       ctx.Config.Style,
		Icon:        ctx.Config.Icon,
		KeyCase:     formatter.KeyCase(ctx.Config.KeyCase),
		KeepPadding: ctx.Config.Output.KeepPadding,
		Logger:      log,
	})
	if err != nil {
		return err
	}

	// 2. Parse JSON input
	ir, err := parser.ParseFile(CLI.File)
	if err != nil {
		return err
	}
	log.V(1).Info("parsed input", "file", CLI.File, "rootIsArray", ir.RootIsArray)

	// 3. Render the whole diagram before writing anything
	lines, err := r.Render(ir.Root)
	if err != nil {
		return err
	}

	// 4. Output the result
	out := ctx.Out
	if out == nil {
		out = os.Stdout
	}
	return writeOutput(out, lines)
}

// writeOutput writes one line per entry in a single write.
func writeOutput(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.NewOutputError("failed to write diagram", err)
	}
	return nil
}
