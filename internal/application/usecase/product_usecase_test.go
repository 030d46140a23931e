package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/inventory"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/internal/infrastructure/memory"
)

func newProductUC() *usecase.ProductUseCase {
	clock := inventory.ClockFunc(func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) })
	return usecase.NewProductUseCase(memory.NewTxRunner(memory.NewStore()), clock, nil, nil)
}

func req(code string, qty int, price string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code: code, Name: "Notebook", Category: "Eletrônicos", Quantity: qty, UnitPrice: decimal.RequireFromString(price),
	}
}

func TestRegister_Exitoso(t *testing.T) {
	uc := newProductUC()
	out, err := uc.Register(context.Background(), req(" 001 ", 10, "2500.00"))
	require.NoError(t, err)

	assert.Equal(t, "001", out.Product.Code, "el código se guarda recortado")
	assert.Equal(t, 10, out.Product.Quantity)
	assert.True(t, out.Product.StockValue.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 1, out.TotalProducts)
	require.NotNil(t, out.InitialMovement)
	assert.Equal(t, "ENTRADA", out.InitialMovement.Kind)
	assert.Equal(t, inventory.DefaultInitialNote, out.InitialMovement.Note)
}

func TestRegister_SinStockNoGeneraMovimiento(t *testing.T) {
	uc := newProductUC()
	out, err := uc.Register(context.Background(), req("002", 0, "0.01"))
	require.NoError(t, err)
	assert.Nil(t, out.InitialMovement)
}

// Registrar el mismo código dos veces (cualquier variante) siempre falla la segunda.
func TestRegister_CodigoDuplicado(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Register(context.Background(), req("abc", 1, "1"))
	require.NoError(t, err)

	for _, variant := range []string{"abc", "ABC", "  aBc  "} {
		_, err := uc.Register(context.Background(), req(variant, 1, "1"))
		assert.ErrorIs(t, err, domain.ErrDuplicateCode, "variante %q", variant)
	}
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRegister_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateProductRequest
		want error
	}{
		{"código vacío", dto.CreateProductRequest{Code: "  ", Name: "n", Category: "c"}, domain.ErrInvalidField},
		{"nombre vacío", dto.CreateProductRequest{Code: "X", Name: "", Category: "c"}, domain.ErrInvalidField},
		{"categoría vacía", dto.CreateProductRequest{Code: "X", Name: "n", Category: " "}, domain.ErrInvalidField},
		{"cantidad negativa", dto.CreateProductRequest{Code: "X", Name: "n", Category: "c", Quantity: -1}, domain.ErrNegativeValue},
		{"precio negativo", dto.CreateProductRequest{Code: "X", Name: "n", Category: "c", UnitPrice: decimal.NewFromInt(-1)}, domain.ErrNegativeValue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newProductUC().Register(context.Background(), c.in)
			assert.ErrorIs(t, err, c.want)
			assert.ErrorIs(t, err, domain.ErrInvalidField)
		})
	}
}

func TestFind_IgnoraMayusculasYEspacios(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Register(context.Background(), req("abc", 1, "1"))
	require.NoError(t, err)

	for _, in := range []string{" abc ", "ABC", "abc"} {
		p, err := uc.Find(context.Background(), in)
		require.NoError(t, err)
		require.NotNil(t, p, in)
		assert.Equal(t, "abc", p.Code)
	}

	p, err := uc.Find(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = uc.Find(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSearch(t *testing.T) {
	uc := newProductUC()
	ctx := context.Background()
	_, _ = uc.Register(ctx, dto.CreateProductRequest{Code: "T1", Name: "Teclado", Category: "Periféricos"})
	_, _ = uc.Register(ctx, dto.CreateProductRequest{Code: "M1", Name: "Mouse", Category: "Periféricos"})
	_, _ = uc.Register(ctx, dto.CreateProductRequest{Code: "N1", Name: "Notebook", Category: "Eletrônicos"})

	got, err := uc.Search(ctx, repository.SearchByCategory, "PERIF")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T1", got[0].Code)
	assert.Equal(t, "M1", got[1].Code)

	got, err = uc.Search(ctx, repository.SearchByName, "xyz")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = uc.Search(ctx, repository.SearchByName, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidField)

	_, err = uc.Search(ctx, repository.SearchField("price"), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}
