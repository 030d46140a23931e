package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// ProductUseCase operaciones del catálogo: registro, consulta y búsqueda.
// La cantidad solo cambia vía RegisterMovementUseCase (salvo el stock inicial).
type ProductUseCase struct {
	txRunner inventory.TxRunner
	clock    inventory.Clock
	observer inventory.Observer
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso. observer y log pueden ser nil.
func NewProductUseCase(txRunner inventory.TxRunner, clock inventory.Clock, observer inventory.Observer, log *logger.Logger) *ProductUseCase {
	if clock == nil {
		clock = inventory.SystemClock{}
	}
	if observer == nil {
		observer = inventory.NopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{txRunner: txRunner, clock: clock, observer: observer, log: log.Component("catalog")}
}

// Register valida y agrega un producto. Si la cantidad inicial es > 0 registra además
// un movimiento ENTRADA con la observación de registro inicial.
func (uc *ProductUseCase) Register(ctx context.Context, in dto.CreateProductRequest) (*dto.RegisterProductResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)

	var out *dto.RegisterProductResponse
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		if code == "" {
			return fmt.Errorf("%w: código", domain.ErrInvalidField)
		}
		existing, err := productRepo.GetByCode(code)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, existing.Code)
		}
		if name == "" {
			return fmt.Errorf("%w: nombre", domain.ErrInvalidField)
		}
		if category == "" {
			return fmt.Errorf("%w: categoría", domain.ErrInvalidField)
		}
		if in.Quantity < 0 {
			return fmt.Errorf("%w: %w: cantidad %d", domain.ErrInvalidField, domain.ErrNegativeValue, in.Quantity)
		}
		if in.UnitPrice.LessThan(decimal.Zero) {
			return fmt.Errorf("%w: %w: precio %s", domain.ErrInvalidField, domain.ErrNegativeValue, in.UnitPrice.String())
		}

		now := uc.clock.Now()
		product := &entity.Product{
			Code:      code,
			Name:      name,
			Category:  category,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		out = &dto.RegisterProductResponse{Product: dto.FromProduct(product)}
		if product.Quantity > 0 {
			mov := inventory.NewMovement(uc.clock, product.Code, entity.MovementEntry, product.Quantity, "", inventory.DefaultInitialNote)
			if err := movRepo.Append(mov); err != nil {
				return err
			}
			m := dto.FromMovement(mov)
			out.InitialMovement = &m
		}
		out.TotalProducts, err = productRepo.Count()
		return err
	})
	if err != nil {
		uc.log.Info().Err(err).Str("code", code).Msg("registro rechazado")
		return nil, err
	}
	uc.observer.ProductRegistered(in.Quantity)
	uc.log.Debug().Str("code", code).Int("quantity", in.Quantity).Msg("producto registrado")
	return out, nil
}

// Find busca por código sin distinguir mayúsculas ni espacios. Devuelve nil, nil si no existe.
func (uc *ProductUseCase) Find(ctx context.Context, code string) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.View(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetByCode(code)
		if err != nil || p == nil {
			return err
		}
		r := dto.FromProduct(p)
		out = &r
		return nil
	})
	return out, err
}

// Search búsqueda por subcadena sobre code, name o category. Término vacío ⇒ ErrInvalidField.
func (uc *ProductUseCase) Search(ctx context.Context, field repository.SearchField, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: término de búsqueda", domain.ErrInvalidField)
	}
	if !field.Valid() {
		return nil, fmt.Errorf("%w: campo de búsqueda %q", domain.ErrInvalidField, string(field))
	}
	var out []dto.ProductResponse
	err := uc.txRunner.View(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		list, err := productRepo.Search(field, term)
		if err != nil {
			return err
		}
		out = dto.FromProducts(list)
		return nil
	})
	return out, err
}

// List todos los productos en orden de registro.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	err := uc.txRunner.View(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		list, err := productRepo.List()
		if err != nil {
			return err
		}
		out = dto.FromProducts(list)
		return nil
	})
	return out, err
}
