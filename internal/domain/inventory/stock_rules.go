package inventory

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// AlertThreshold umbral fijo del aviso de stock bajo tras una salida.
// El reporte de stock bajo recibe su propio umbral.
const AlertThreshold = 5

// AlertLevel señal derivada (no almacenada) del nivel de stock.
type AlertLevel string

// Niveles de alerta.
const (
	AlertNone       AlertLevel = ""
	AlertLowStock   AlertLevel = "LOW_STOCK"
	AlertOutOfStock AlertLevel = "OUT_OF_STOCK"
)

// StockAlert clasifica una cantidad: 0 ⇒ sin stock; 0 < q ≤ AlertThreshold ⇒ stock bajo.
func StockAlert(quantity int) AlertLevel {
	switch {
	case quantity <= 0:
		return AlertOutOfStock
	case quantity <= AlertThreshold:
		return AlertLowStock
	default:
		return AlertNone
	}
}

// AddCapped suma cantidades no negativas; si el resultado desborda devuelve math.MaxInt.
func AddCapped(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// NormalizeCode recorta espacios y pliega mayúsculas para comparar códigos.
func NormalizeCode(code string) string {
	return Fold(strings.TrimSpace(code))
}

// Fold pliega mayúsculas/minúsculas (case folding Unicode).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold búsqueda por subcadena sin distinguir mayúsculas.
func ContainsFold(s, term string) bool {
	return strings.Contains(Fold(s), Fold(term))
}
