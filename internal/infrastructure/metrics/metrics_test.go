package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/infrastructure/metrics"
)

func TestCollector(t *testing.T) {
	c := metrics.NewCollector(prometheus.NewRegistry(), "test")

	c.ProductRegistered(10)
	c.ProductRegistered(0)
	c.MovementApplied(entity.MovementExit, 7, domaininv.AlertLowStock)
	c.MovementApplied(entity.MovementExit, 3, domaininv.AlertOutOfStock)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.ProductsRegistered))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.MovementsTotal.WithLabelValues("ENTRADA")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.MovementsTotal.WithLabelValues("SALIDA")))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.MovedUnitsTotal.WithLabelValues("SALIDA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StockAlertsTotal.WithLabelValues("LOW_STOCK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StockAlertsTotal.WithLabelValues("OUT_OF_STOCK")))
}
