package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/application/report"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-console/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/currency"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// app agrupa la configuración y los casos de uso sobre un único almacén en memoria.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	registry *prometheus.Registry
	products *usecase.ProductUseCase
	stock    *inventory.RegisterMovementUseCase
	reports  *report.ReportUseCase
}

// newApp carga la configuración y arma las dependencias. defaultLevel aplica si LOG_LEVEL no está definido.
func newApp(defaultLevel string) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !currency.Known(cfg.App.Currency) {
		return nil, fmt.Errorf("config: APP_CURRENCY desconocida: %s", cfg.App.Currency)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.LogLevelFor(defaultLevel),
		Out:   os.Stderr,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry, cfg.Metrics.Prefix)

	txRunner := memory.NewTxRunner(memory.NewStore())
	clock := inventory.SystemClock{}
	pdfGenerator := infrapdf.NewMarotoPDFGenerator("Reporte de Stock", cfg.App.Currency)

	return &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		products: usecase.NewProductUseCase(txRunner, clock, collector, log),
		stock:    inventory.NewRegisterMovementUseCase(txRunner, clock, collector, log),
		reports:  report.NewReportUseCase(txRunner, clock, pdfGenerator),
	}, nil
}
