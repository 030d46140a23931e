package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/inventario-console/internal/interfaces/console"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/currency"
)

// selftestCmd implementa el comando "selftest".
type selftestCmd struct {
	currency string
}

func (*selftestCmd) Name() string     { return "selftest" }
func (*selftestCmd) Synopsis() string { return "ejecuta la autoverificación sobre un almacén temporal" }
func (*selftestCmd) Usage() string {
	return `selftest [-currency BRL]

Ejecuta el escenario de autoverificación (registro, movimientos, búsquedas y reportes)
y termina con estado 1 si alguna verificación falla.
`
}

func (c *selftestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "moneda para mostrar importes (por defecto APP_CURRENCY)")
}

func (c *selftestCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	code := c.currency
	if code == "" {
		code = currency.Default
		if cfg, err := config.Load(); err == nil {
			code = cfg.App.Currency
		}
	}
	if !console.SelfCheck(os.Stdout, code) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
