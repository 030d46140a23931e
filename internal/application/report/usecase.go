// Package report contiene los reportes de solo lectura sobre catálogo y movimientos.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

// PDFGenerator genera la representación PDF del reporte de stock.
type PDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, stock dto.StockListReport, movements dto.MovementReport, generatedAt time.Time) ([]byte, error)
}

// ReportUseCase agregaciones sobre el catálogo y el libro de movimientos.
type ReportUseCase struct {
	txRunner inventory.TxRunner
	clock    inventory.Clock
	pdf      PDFGenerator
}

// NewReportUseCase construye el caso de uso; pdf puede ser nil si no se exporta.
func NewReportUseCase(txRunner inventory.TxRunner, clock inventory.Clock, pdf PDFGenerator) *ReportUseCase {
	if clock == nil {
		clock = inventory.SystemClock{}
	}
	return &ReportUseCase{txRunner: txRunner, clock: clock, pdf: pdf}
}

// ListAll todos los productos con cantidad total y valor total (Σ precio × cantidad).
// Las sumas de cantidades se saturan en math.MaxInt.
func (uc *ReportUseCase) ListAll(ctx context.Context) (*dto.StockListReport, error) {
	var out *dto.StockListReport
	err := uc.txRunner.View(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		list, err := productRepo.List()
		if err != nil {
			return err
		}
		out = &dto.StockListReport{Products: dto.FromProducts(list), TotalValue: decimal.Zero}
		for _, p := range list {
			out.TotalQuantity = domaininv.AddCapped(out.TotalQuantity, p.Quantity)
			out.TotalValue = out.TotalValue.Add(p.StockValue())
		}
		return nil
	})
	return out, err
}

// LowStock productos con cantidad ≤ threshold, en orden del catálogo.
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int) (*dto.LowStockReport, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: umbral %d", domain.ErrNegativeValue, threshold)
	}
	var out *dto.LowStockReport
	err := uc.txRunner.View(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		list, err := productRepo.List()
		if err != nil {
			return err
		}
		out = &dto.LowStockReport{Threshold: threshold, Matches: []dto.ProductResponse{}, TotalValue: decimal.Zero}
		for _, p := range list {
			if p.Quantity > threshold {
				continue
			}
			out.Matches = append(out.Matches, dto.FromProduct(p))
			out.TotalValue = out.TotalValue.Add(p.StockValue())
		}
		out.Count = len(out.Matches)
		return nil
	})
	return out, err
}

// MovementReport historial completo con estadísticas. Libro vacío ⇒ Empty=true, sin error.
func (uc *ReportUseCase) MovementReport(ctx context.Context) (*dto.MovementReport, error) {
	var out *dto.MovementReport
	err := uc.txRunner.View(ctx, func(movRepo repository.MovementRepository, _ repository.ProductRepository) error {
		list, err := movRepo.List()
		if err != nil {
			return err
		}
		out = &dto.MovementReport{Movements: make([]dto.MovementResponse, 0, len(list))}
		if len(list) == 0 {
			out.Empty = true
			return nil
		}
		for _, m := range list {
			out.Movements = append(out.Movements, dto.FromMovement(m))
			switch m.Kind {
			case entity.MovementEntry:
				out.EntryCount++
				out.EntryQty = domaininv.AddCapped(out.EntryQty, m.Quantity)
			case entity.MovementExit:
				out.ExitCount++
				out.ExitQty = domaininv.AddCapped(out.ExitQty, m.Quantity)
			}
		}
		out.Total = len(list)
		out.NetQty = out.EntryQty - out.ExitQty
		return nil
	})
	return out, err
}

// ExportPDF genera el PDF con el listado de stock y el reporte de movimientos.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("report: generador PDF no configurado")
	}
	stock, err := uc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	movements, err := uc.MovementReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReportPDF(ctx, *stock, *movements, uc.clock.Now())
}
