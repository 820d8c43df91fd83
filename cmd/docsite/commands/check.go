package commands

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/linkcheck"
	"github.com/marzneshin/docsite/internal/logfields"
	"github.com/marzneshin/docsite/internal/watch"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Format string `short:"f" enum:"text,json" default:"text" help:"Report format (text, json)"`
	Watch  bool   `short:"w" help:"Re-run the check whenever markdown files change"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return c.run(sigctx, g, root)
}

func (c *CheckCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.setup(g)
	if err != nil {
		return err
	}
	checker := linkcheck.NewChecker(buildService(cfg, g.Logger), g.Logger)

	if !c.Watch {
		return c.once(g, checker)
	}

	if err := c.once(g, checker); err != nil && !foundationerrors.HasCategory(err, foundationerrors.CategoryContent) {
		return err
	}
	w, err := watch.New(cfg.Content.Root, func(context.Context) {
		if err := c.once(g, checker); err != nil {
			g.Logger.Warn("Link check failed", logfields.Error(err))
		}
	}, watch.WithLogger(g.Logger))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to watch content root").Build()
	}
	<-ctx.Done()
	return w.Stop()
}

// once runs one check and prints the report. Dead links are reported as a content error
// so the process exits non-zero.
func (c *CheckCmd) once(g *Global, checker *linkcheck.Checker) error {
	report, err := checker.Run()
	if err != nil {
		return err
	}
	if c.Format == "json" {
		if err := printJSON(g.Out, report); err != nil {
			return err
		}
	} else if err := printReport(g.Out, report); err != nil {
		return err
	}

	if report.HasDeadLinks() {
		return foundationerrors.ContentError("dead links found").
			WithContext("issues", len(report.Issues)).
			Build()
	}
	return nil
}

func printReport(w io.Writer, report *linkcheck.Report) error {
	if len(report.Issues) == 0 {
		_, err := fmt.Fprintf(w, "checked %d pages, no issues\n", report.Checked)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tPAGE\tTARGET\tDETAIL")
	for _, is := range report.Issues {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", is.Kind, is.Slug, is.Target, is.Detail)
	}
	fmt.Fprintf(tw, "\nchecked %d pages, %d issues\n", report.Checked, len(report.Issues))
	return tw.Flush()
}
