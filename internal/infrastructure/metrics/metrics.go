// Package metrics expone contadores Prometheus de la actividad de stock.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
)

var _ inventory.Observer = (*Collector)(nil)

// Collector implementa inventory.Observer registrando métricas en un Registerer.
type Collector struct {
	ProductsRegistered prometheus.Counter
	MovementsTotal     *prometheus.CounterVec // label kind: ENTRADA, SALIDA
	MovedUnitsTotal    *prometheus.CounterVec // label kind
	StockAlertsTotal   *prometheus.CounterVec // label level: LOW_STOCK, OUT_OF_STOCK
}

// NewCollector crea y registra las métricas con el prefijo indicado.
func NewCollector(reg prometheus.Registerer, prefix string) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		ProductsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: prefix + "_products_registered_total",
			Help: "Total number of registered products",
		}),
		MovementsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_movements_total",
			Help: "Total number of stock movements",
		}, []string{"kind"}),
		MovedUnitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_moved_units_total",
			Help: "Total units moved by stock movements",
		}, []string{"kind"}),
		StockAlertsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_stock_alerts_total",
			Help: "Stock alerts raised after exits",
		}, []string{"level"}),
	}
}

// ProductRegistered cuenta el registro; el stock inicial cuenta como ENTRADA.
func (c *Collector) ProductRegistered(quantity int) {
	c.ProductsRegistered.Inc()
	if quantity > 0 {
		c.MovementApplied(entity.MovementEntry, quantity, domaininv.AlertNone)
	}
}

// MovementApplied cuenta el movimiento y la alerta resultante.
func (c *Collector) MovementApplied(kind entity.MovementKind, quantity int, alert domaininv.AlertLevel) {
	c.MovementsTotal.WithLabelValues(kind.String()).Inc()
	c.MovedUnitsTotal.WithLabelValues(kind.String()).Add(float64(quantity))
	if alert != domaininv.AlertNone {
		c.StockAlertsTotal.WithLabelValues(string(alert)).Inc()
	}
}
