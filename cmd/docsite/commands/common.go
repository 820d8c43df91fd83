package commands

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/marzneshin/docsite/internal/config"
	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/markdown"
)

// Global context passed to subcommands. Out receives command output and Err receives logs.
type Global struct {
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml" env:"DOCSITE_CONFIG"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Serve  ServeCmd  `cmd:"" help:"Serve the documentation site"`
	Search SearchCmd `cmd:"" help:"Search documentation pages and print JSON results"`
	Nav    NavCmd    `cmd:"" help:"Print the navigation tree as JSON"`
	Page   PageCmd   `cmd:"" help:"Render one documentation page"`
	Check  CheckCmd  `cmd:"" help:"Check documentation for dead links"`
	Init   InitCmd   `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// setup loads the configuration and replaces the bootstrap logger with the configured
// one. The default config path may be absent; an explicit one must exist.
func (c *CLI) setup(g *Global) (*config.Config, error) {
	g.defaults()
	cfg, err := config.Load(c.Config, c.Config == config.DefaultPath)
	if err != nil {
		return nil, err
	}
	g.Logger = cfg.Logging.NewLogger(g.Err, c.Verbose)
	slog.SetDefault(g.Logger)
	return cfg, nil
}

func (g *Global) defaults() {
	if g.Out == nil {
		g.Out = os.Stdout
	}
	if g.Err == nil {
		g.Err = os.Stderr
	}
	if g.Logger == nil {
		g.Logger = slog.Default()
	}
}

// buildService wires the docs service for cfg.
func buildService(cfg *config.Config, logger *slog.Logger) *docs.Service {
	renderer := markdown.NewRenderer(markdown.Options{HighlightStyle: cfg.Content.HighlightStyle})
	loader := docs.NewLoader(cfg.Content.Root, renderer, logger)
	return docs.NewService(loader, i18n.DefaultCatalog(), docs.WithLogger(logger))
}

// language converts a kong-validated flag value.
func language(code string) i18n.Language {
	if l, ok := i18n.Parse(code); ok {
		return l
	}
	return i18n.Default
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
