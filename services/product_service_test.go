package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-hogar/models"
)

func TestProductList(t *testing.T) {
	svc := NewProductService(testStore())
	ctx := context.Background()

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byName, err := svc.List(ctx, "SART", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Sartén", byName[0].Name)

	byCategory, err := svc.List(ctx, "", "Limpieza")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Lavandina", byCategory[0].Name)

	none, err := svc.List(ctx, "sartén", "Baño")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductCreateAssignsMaxPlusOne(t *testing.T) {
	store := testStore()
	svc := NewProductService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.ProductRequest{
		Name: "Velador", Price: 9500, Stock: 3, Category: "Decoración", Weight: 0.8,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	// delete the highest id, then create again: ids must not be reissued
	// from a stale tail position
	require.NoError(t, svc.Delete(ctx, 2))
	again, err := svc.Create(ctx, models.ProductRequest{
		Name: "Espejo", Price: 20000, Stock: 1, Category: "Decoración", Weight: 2,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, 5, again.ID)
}

func TestProductCreateInvalidCategory(t *testing.T) {
	svc := NewProductService(testStore())

	_, err := svc.Create(context.Background(), models.ProductRequest{
		Name: "Algo", Category: "Jardín",
	}, "")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestProductUpdate(t *testing.T) {
	store := testStore()
	svc := NewProductService(store)
	ctx := context.Background()

	updated, err := svc.Update(ctx, 1, models.ProductRequest{
		Name: "Sartén grande", Price: 15000, Stock: 4, Code: "COC-001b", Category: "Cocina", Weight: 1.5,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "Sartén grande", updated.Name)
	assert.Equal(t, 15000, updated.Price)
	assert.Equal(t, "sarten.jpg", updated.Image, "empty image keeps the stored one")

	replaced, err := svc.Update(ctx, 1, models.ProductRequest{
		Name: "Sartén grande", Price: 15000, Stock: 4, Code: "COC-001b", Category: "Cocina", Weight: 1.5,
	}, "nueva.jpg")
	require.NoError(t, err)
	assert.Equal(t, "nueva.jpg", replaced.Image)

	_, err = svc.Update(ctx, 99, models.ProductRequest{Name: "X", Category: "Cocina"}, "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	svc := NewProductService(testStore())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	_, err := svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrProductNotFound)
}

func TestAdjustStock(t *testing.T) {
	svc := NewProductService(testStore())
	ctx := context.Background()

	up, err := svc.AdjustStock(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, up.Stock)

	down, err := svc.AdjustStock(ctx, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, down.Stock)

	_, err = svc.AdjustStock(ctx, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAdjustStockFloorsAtZero(t *testing.T) {
	svc := NewProductService(testStore())
	ctx := context.Background()

	// product 2 starts at zero stock
	p, err := svc.AdjustStock(ctx, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)
}
