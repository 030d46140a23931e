package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/subcommands"

	httpRouter "github.com/jhoicas/inventario-console/internal/interfaces/http"
)

// serveCmd implementa el comando "serve".
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "expone las operaciones de stock por HTTP" }
func (*serveCmd) Usage() string {
	return `serve [-addr host:port]

Levanta la API HTTP (catálogo, movimientos, reportes, /health y /metrics) sobre un
almacén en memoria compartido por todas las peticiones.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "dirección de escucha (por defecto HTTP_HOST:HTTP_PORT)")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	addr := c.addr
	if addr == "" {
		addr = a.cfg.HTTP.Addr()
	}
	a.log.Info().
		Str("env", a.cfg.App.Env).
		Str("app", a.cfg.App.Name).
		Str("addr", addr).
		Msg("iniciando servidor HTTP")

	app := fiber.New(fiber.Config{
		AppName:               a.cfg.App.Name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        a.products,
		RegisterMovement: a.stock,
		ReportUC:         a.reports,
		Gatherer:         a.registry,
		ServiceName:      a.cfg.App.Name,
	})

	go func() {
		if err := app.Listen(addr); err != nil {
			a.log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	a.log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("apagado del servidor")
		return subcommands.ExitFailure
	}

	a.log.Info().Msg("aplicación detenida")
	return subcommands.ExitSuccess
}
