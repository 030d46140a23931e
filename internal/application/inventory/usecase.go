package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-console/internal/domain/inventory"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Observaciones por defecto cuando el usuario no indica ninguna.
const (
	DefaultInitialNote = "Registro inicial con stock"
	DefaultEntryNote   = "Reposición de stock"
	DefaultExitNote    = "Salida de productos"
)

// RegisterMovementUseCase aplica entradas y salidas de stock: valida, muta la cantidad del
// producto y anexa exactamente un movimiento, todo dentro de TxRunner.Run.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	clock    Clock
	observer Observer
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso. observer y log pueden ser nil.
func NewRegisterMovementUseCase(txRunner TxRunner, clock Clock, observer Observer, log *logger.Logger) *RegisterMovementUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	if observer == nil {
		observer = NopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		clock:    clock,
		observer: observer,
		log:      log.Component("inventory"),
	}
}

// NewMovement crea un movimiento con ID y fecha de captura; nota vacía ⇒ defaultNote.
func NewMovement(clock Clock, code string, kind entity.MovementKind, quantity int, note, defaultNote string) *entity.Movement {
	note = strings.TrimSpace(note)
	if note == "" {
		note = defaultNote
	}
	return &entity.Movement{
		ID:          uuid.New().String(),
		ProductCode: code,
		Kind:        kind,
		Quantity:    quantity,
		Note:        note,
		Date:        clock.Now(),
	}
}

// ApplyEntry suma quantity al stock del producto y registra un movimiento ENTRADA.
func (uc *RegisterMovementUseCase) ApplyEntry(ctx context.Context, in dto.StockMovementRequest) (*dto.StockChangeResponse, error) {
	var out *dto.StockChangeResponse
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := lookup(productRepo, in.Code)
		if err != nil {
			return err
		}
		if in.Quantity <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
		}
		if in.Quantity > math.MaxInt-product.Quantity {
			return fmt.Errorf("%w: %d excede el máximo admitido para el stock actual (%d)", domain.ErrInvalidQuantity, in.Quantity, product.Quantity)
		}
		out, err = uc.apply(movRepo, productRepo, product, entity.MovementEntry, in.Quantity, in.Note)
		return err
	})
	if err != nil {
		uc.log.Info().Err(err).Str("code", in.Code).Int("quantity", in.Quantity).Msg("entrada rechazada")
		return nil, err
	}
	return out, nil
}

// ApplyExit resta quantity del stock. Orden de validación: sin stock, cantidad no positiva,
// stock insuficiente. Un fallo deja la cantidad intacta.
func (uc *RegisterMovementUseCase) ApplyExit(ctx context.Context, in dto.StockMovementRequest) (*dto.StockChangeResponse, error) {
	var out *dto.StockChangeResponse
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		product, err := lookup(productRepo, in.Code)
		if err != nil {
			return err
		}
		if product.Quantity == 0 {
			return domain.ErrEmptyStock
		}
		if in.Quantity <= 0 {
			return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, in.Quantity)
		}
		if in.Quantity > product.Quantity {
			return fmt.Errorf("%w: disponible %d unidades", domain.ErrInsufficientStock, product.Quantity)
		}
		out, err = uc.apply(movRepo, productRepo, product, entity.MovementExit, in.Quantity, in.Note)
		return err
	})
	if err != nil {
		uc.log.Info().Err(err).Str("code", in.Code).Int("quantity", in.Quantity).Msg("salida rechazada")
		return nil, err
	}
	return out, nil
}

func lookup(productRepo repository.ProductRepository, code string) (*entity.Product, error) {
	product, err := productRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func (uc *RegisterMovementUseCase) apply(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	product *entity.Product,
	kind entity.MovementKind,
	quantity int,
	note string,
) (*dto.StockChangeResponse, error) {
	previous := product.Quantity
	current := previous + quantity
	defaultNote := DefaultEntryNote
	if kind == entity.MovementExit {
		current = previous - quantity
		defaultNote = DefaultExitNote
	}

	mov := NewMovement(uc.clock, product.Code, kind, quantity, note, defaultNote)
	if err := productRepo.UpdateQuantity(product.Code, current); err != nil {
		return nil, err
	}
	product.UpdatedAt = mov.Date
	if err := movRepo.Append(mov); err != nil {
		return nil, err
	}

	out := &dto.StockChangeResponse{
		Movement:      dto.FromMovement(mov),
		ProductName:   product.Name,
		PreviousStock: previous,
		CurrentStock:  current,
	}
	alert := domaininv.AlertNone
	if kind == entity.MovementExit {
		alert = domaininv.StockAlert(current)
		out.Alert = string(alert)
	}
	uc.observer.MovementApplied(kind, quantity, alert)
	uc.log.Debug().
		Str("code", product.Code).
		Str("kind", kind.String()).
		Int("quantity", quantity).
		Int("stock", current).
		Msg("movimiento registrado")
	return out, nil
}
