package commands

import (
	"context"
	"log/slog"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/logfields"
	"github.com/marzneshin/docsite/internal/server/httpserver"
	"github.com/marzneshin/docsite/internal/version"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr string `short:"a" placeholder:"HOST:PORT" help:"Override server.host and server.port"`
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return s.run(sigctx, g, root)
}

func (s *ServeCmd) run(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.setup(g)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		host, port, err := net.SplitHostPort(s.Addr)
		if err != nil {
			return foundationerrors.WrapError(err, foundationerrors.CategoryValidation, "invalid --addr").Build()
		}
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return foundationerrors.ValidationError("invalid --addr port").WithContext("addr", s.Addr).Build()
		}
		cfg.Server.Host, cfg.Server.Port = host, p
	}

	srv, err := httpserver.New(cfg, httpserver.Options{
		Service: buildService(cfg, g.Logger),
		Logger:  g.Logger,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}
	g.Logger.Info("Serving documentation",
		logfields.Addr(srv.Addr()),
		logfields.Path(cfg.Content.Root),
		slog.String("version", version.Version))

	<-ctx.Done()
	g.Logger.Info("Shutdown signal received, stopping server...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stopCancel()
	return srv.Stop(stopCtx)
}
