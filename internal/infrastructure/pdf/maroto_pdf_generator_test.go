package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
)

func TestGenerateStockReportPDF(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("estoque", "BRL")
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	stock := dto.StockListReport{
		Products: []dto.ProductResponse{
			{Code: "P1", Name: "Widget", Category: "Tools", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50"), StockValue: decimal.RequireFromString("7.50")},
			{Code: "P2", Name: "Mouse", Category: "Periféricos", Quantity: 0, UnitPrice: decimal.NewFromInt(30), StockValue: decimal.Zero},
		},
		TotalQuantity: 3,
		TotalValue:    decimal.RequireFromString("7.50"),
	}
	movements := dto.MovementReport{
		Movements: []dto.MovementResponse{{ProductCode: "P1", Kind: "ENTRADA", Quantity: 3, Note: "Registro inicial con stock", Date: at}},
		Total:     1, EntryCount: 1, EntryQty: 3, NetQty: 3,
	}

	b, err := gen.GenerateStockReportPDF(context.Background(), stock, movements, at)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe producir un documento PDF")
}

func TestGenerateStockReportPDF_SinMovimientos(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("estoque", "BRL")
	b, err := gen.GenerateStockReportPDF(context.Background(), dto.StockListReport{TotalValue: decimal.Zero}, dto.MovementReport{Empty: true}, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
