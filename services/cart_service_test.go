package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-hogar/models"
)

// memStore is an in-memory ProductStore for service tests.
type memStore struct {
	products []models.Product
}

func (s *memStore) Load(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *memStore) Save(ctx context.Context, products []models.Product) error {
	s.products = make([]models.Product, len(products))
	copy(s.products, products)
	return nil
}

func testStore() *memStore {
	return &memStore{products: []models.Product{
		{ID: 1, Name: "Sartén", Price: 12000, Stock: 2, Code: "COC-001", Category: "Cocina", Weight: 1.2, Image: "sarten.jpg"},
		{ID: 2, Name: "Toallón", Price: 8000, Stock: 0, Code: "BAN-001", Category: "Baño", Weight: 0.6},
		{ID: 3, Name: "Lavandina", Price: 1500, Stock: 10, Code: "LIM-001", Category: "Limpieza", Weight: 1},
	}}
}

func TestCartAddSnapshotsProduct(t *testing.T) {
	svc := NewCartService(testStore())

	cart, err := svc.Add(context.Background(), nil, 1)
	require.NoError(t, err)
	require.Len(t, cart, 1)

	item := cart[0]
	assert.Equal(t, 1, item.ID)
	assert.Equal(t, "Sartén", item.Name)
	assert.Equal(t, 12000, item.Price)
	assert.Equal(t, 1.2, item.Weight)
	assert.Equal(t, "COC-001", item.Code)
	assert.Equal(t, "sarten.jpg", item.Image)
	assert.Equal(t, 1, item.Quantity)
}

func TestCartAddMissingProduct(t *testing.T) {
	svc := NewCartService(testStore())

	cart, err := svc.Add(context.Background(), nil, 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, cart)
}

func TestCartAddOutOfStock(t *testing.T) {
	svc := NewCartService(testStore())

	cart, err := svc.Add(context.Background(), nil, 2)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Empty(t, cart)
}

func TestCartIncreaseBoundedByStock(t *testing.T) {
	svc := NewCartService(testStore())
	ctx := context.Background()

	cart, err := svc.Add(ctx, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	cart, err = svc.Increase(ctx, cart, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, cart[0].Quantity)

	// stock is 2, a third unit must be rejected without changing the cart
	cart, err = svc.Increase(ctx, cart, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartIncreaseReadsLiveStock(t *testing.T) {
	store := testStore()
	svc := NewCartService(store)
	ctx := context.Background()

	cart, err := svc.Add(ctx, nil, 1)
	require.NoError(t, err)
	cart, err = svc.Increase(ctx, cart, 1)
	require.NoError(t, err)

	// admin restocks after the snapshot was taken
	store.products[0].Stock = 5

	cart, err = svc.Increase(ctx, cart, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCartIncreaseAbsentLine(t *testing.T) {
	svc := NewCartService(testStore())

	_, err := svc.Increase(context.Background(), nil, 1)
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCartDecreaseRemovesAtOne(t *testing.T) {
	svc := NewCartService(testStore())
	ctx := context.Background()

	cart, err := svc.Add(ctx, nil, 1)
	require.NoError(t, err)

	cart, err = svc.Decrease(cart, 1)
	require.NoError(t, err)
	assert.Empty(t, cart, "decreasing a quantity-1 line removes it entirely")
}

func TestCartDecrease(t *testing.T) {
	svc := NewCartService(testStore())
	ctx := context.Background()

	cart, _ := svc.Add(ctx, nil, 3)
	cart, _ = svc.Increase(ctx, cart, 3)
	require.Equal(t, 2, cart[0].Quantity)

	cart, err := svc.Decrease(cart, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartRemoveIdempotent(t *testing.T) {
	svc := NewCartService(testStore())
	ctx := context.Background()

	cart, _ := svc.Add(ctx, nil, 1)
	cart, _ = svc.Add(ctx, cart, 3)
	require.Len(t, cart, 2)

	cart = svc.Remove(cart, 1)
	assert.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].ID)

	cart = svc.Remove(cart, 1)
	assert.Len(t, cart, 1, "second remove is a no-op")
}

func TestCartQuantityNeverExceedsStock(t *testing.T) {
	store := testStore()
	svc := NewCartService(store)
	ctx := context.Background()

	var cart []models.CartItem
	for i := 0; i < 20; i++ {
		for _, id := range []int{1, 3} {
			next, addErr := svc.Add(ctx, cart, id)
			if addErr == nil {
				cart = next
			}
		}
	}

	products, _ := store.Load(ctx)
	byID := map[int]models.Product{}
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, item := range cart {
		assert.LessOrEqual(t, item.Quantity, byID[item.ID].Stock, "line %d", item.ID)
	}
}
