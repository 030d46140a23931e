package memory

import (
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre Store.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador del catálogo.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create agrega el producto al final del catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	if r.find(product.Code) != nil {
		return domain.ErrDuplicateCode
	}
	r.s.products = append(r.s.products, product)
	return nil
}

// GetByCode recorre el catálogo; el primer código igual (sin mayúsculas ni espacios) gana.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.find(code), nil
}

func (r *ProductRepo) find(code string) *entity.Product {
	key := inventory.NormalizeCode(code)
	if key == "" {
		return nil
	}
	for _, p := range r.s.products {
		if inventory.NormalizeCode(p.Code) == key {
			return p
		}
	}
	return nil
}

// UpdateQuantity fija la cantidad en stock del producto.
func (r *ProductRepo) UpdateQuantity(code string, quantity int) error {
	p := r.find(code)
	if p == nil {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

// Search filtra por subcadena sobre el campo indicado, en orden de inserción.
func (r *ProductRepo) Search(field repository.SearchField, term string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.s.products {
		var value string
		switch field {
		case repository.SearchByCode:
			value = p.Code
		case repository.SearchByName:
			value = p.Name
		case repository.SearchByCategory:
			value = p.Category
		default:
			return nil, domain.ErrInvalidField
		}
		if inventory.ContainsFold(value, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.s.products))
	copy(out, r.s.products)
	return out, nil
}

// Count número de productos registrados.
func (r *ProductRepo) Count() (int, error) {
	return len(r.s.products), nil
}
