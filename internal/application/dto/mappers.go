package dto

import "github.com/jhoicas/inventario-console/internal/domain/entity"

// FromProduct copia un producto del catálogo a su DTO.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		Code:       p.Code,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		StockValue: p.StockValue(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromProducts copia una lista conservando el orden.
func FromProducts(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProduct(p))
	}
	return out
}

// FromMovement copia un movimiento del libro a su DTO.
func FromMovement(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductCode: m.ProductCode,
		Kind:        m.Kind.String(),
		Quantity:    m.Quantity,
		Note:        m.Note,
		Date:        m.Date,
	}
}
