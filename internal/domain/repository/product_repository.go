package repository

import (
	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// SearchField campo sobre el que se busca por subcadena.
type SearchField string

// Campos de búsqueda.
const (
	SearchByCode     SearchField = "code"
	SearchByName     SearchField = "name"
	SearchByCategory SearchField = "category"
)

// Valid indica si el campo es uno de los soportados.
func (f SearchField) Valid() bool {
	return f == SearchByCode || f == SearchByName || f == SearchByCategory
}

// ProductRepository define el puerto del catálogo de productos (DIP).
// Las implementaciones conservan el orden de inserción.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByCode busca sin distinguir mayúsculas ni espacios; devuelve nil, nil si no existe.
	GetByCode(code string) (*entity.Product, error)
	UpdateQuantity(code string, quantity int) error
	Search(field SearchField, term string) ([]*entity.Product, error)
	List() ([]*entity.Product, error)
	Count() (int, error)
}
