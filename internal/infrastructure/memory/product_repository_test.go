package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/internal/domain/repository"
	"github.com/jhoicas/inventario-console/internal/infrastructure/memory"
)

func seed(t *testing.T, repo *memory.ProductRepo, codes ...string) {
	t.Helper()
	for _, c := range codes {
		require.NoError(t, repo.Create(&entity.Product{
			Code: c, Name: "Producto " + c, Category: "Cat", UnitPrice: decimal.NewFromInt(1),
		}))
	}
}

func TestProductRepo_GetByCode_IgnoraMayusculasYEspacios(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seed(t, repo, "abc")

	for _, in := range []string{"abc", "ABC", " abc ", "\tAbC\n"} {
		p, err := repo.GetByCode(in)
		require.NoError(t, err)
		require.NotNil(t, p, "entrada %q", in)
		assert.Equal(t, "abc", p.Code)
	}

	p, err := repo.GetByCode("   ")
	require.NoError(t, err)
	assert.Nil(t, p, "código vacío no debe encontrar nada")

	p, err = repo.GetByCode("zzz")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductRepo_Create_Duplicado(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seed(t, repo, "P1")

	err := repo.Create(&entity.Product{Code: " p1 ", Name: "otro", Category: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	n, _ := repo.Count()
	assert.Equal(t, 1, n)
}

func TestProductRepo_Search_ConservaOrden(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	require.NoError(t, repo.Create(&entity.Product{Code: "N1", Name: "Notebook", Category: "Eletrônicos"}))
	require.NoError(t, repo.Create(&entity.Product{Code: "M1", Name: "Mouse", Category: "Periféricos"}))
	require.NoError(t, repo.Create(&entity.Product{Code: "N2", Name: "Netbook", Category: "Eletrônicos"}))

	got, err := repo.Search(repository.SearchByCategory, "eletr")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "N1", got[0].Code)
	assert.Equal(t, "N2", got[1].Code)

	got, err = repo.Search(repository.SearchByName, "BOOK")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.Search(repository.SearchByCode, "m")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "M1", got[0].Code)

	_, err = repo.Search(repository.SearchField("precio"), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}

func TestMovementRepo_AppendEnOrden(t *testing.T) {
	repo := memory.NewMovementRepository(memory.NewStore())
	require.NoError(t, repo.Append(&entity.Movement{ID: "1", Kind: entity.MovementEntry, Quantity: 3}))
	require.NoError(t, repo.Append(&entity.Movement{ID: "2", Kind: entity.MovementExit, Quantity: 1}))

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "2", list[1].ID)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	runner := memory.NewTxRunner(memory.NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := runner.Run(ctx, func(repository.MovementRepository, repository.ProductRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
