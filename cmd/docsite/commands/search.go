package commands

import (
	"github.com/marzneshin/docsite/internal/docs"
)

// SearchCmd implements the 'search' command.
type SearchCmd struct {
	Query string `arg:"" help:"Text to look for (case-insensitive)"`
	Lang  string `short:"l" enum:"en,fa" default:"en" help:"Display language (en, fa)"`
}

func (s *SearchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.setup(g)
	if err != nil {
		return err
	}
	results := buildService(cfg, g.Logger).Search(s.Query, language(s.Lang))
	return printJSON(g.Out, results)
}

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Lang string `short:"l" enum:"en,fa" default:"en" help:"Display language (en, fa)"`
	Flat bool   `help:"Print the flattened reading order instead of sections"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.setup(g)
	if err != nil {
		return err
	}
	tree := buildService(cfg, g.Logger).Tree(language(n.Lang))
	if n.Flat {
		return printJSON(g.Out, docs.Flatten(tree))
	}
	return printJSON(g.Out, tree)
}
