package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/jhoicas/inventario-console/internal/interfaces/console"
)

// shellCmd implementa el comando "shell" (por defecto).
type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "abre el menú interactivo de stock" }
func (*shellCmd) Usage() string {
	return `shell

Abre el menú interactivo sobre la entrada estándar. Los datos viven solo en memoria
y se pierden al salir.
`
}

func (*shellCmd) SetFlags(*flag.FlagSet) {}

func (*shellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp("warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shell := console.NewShell(console.Deps{
		Products: a.products,
		Stock:    a.stock,
		Reports:  a.reports,
		Log:      a.log,
	}, console.Options{
		Currency: a.cfg.App.Currency,
		PDFPath:  a.cfg.Report.PDFPath,
	}, os.Stdin, os.Stdout)

	if err := shell.Run(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stdout, "\nSaliendo del sistema...")
			return subcommands.ExitSuccess
		}
		a.log.Error().Err(err).Msg("shell finalizado con error")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
