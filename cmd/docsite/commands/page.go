package commands

import "fmt"

// PageCmd implements the 'page' command.
type PageCmd struct {
	Slug   string `arg:"" help:"Page slug, e.g. installation"`
	Lang   string `short:"l" enum:"en,fa" default:"en" help:"Display language (en, fa)"`
	Format string `short:"f" enum:"json,html" default:"json" help:"Output format (json, html)"`
}

func (p *PageCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.setup(g)
	if err != nil {
		return err
	}
	page, err := buildService(cfg, g.Logger).Resolve(p.Slug, language(p.Lang))
	if err != nil {
		return err
	}
	if p.Format == "html" {
		_, err := fmt.Fprintln(g.Out, page.Content)
		return err
	}
	return printJSON(g.Out, page)
}
