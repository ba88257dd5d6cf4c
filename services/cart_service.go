package services

import (
	"context"

	"tienda-hogar/models"
	"tienda-hogar/repositories"
)

// CartService mutates a session's line items against the live catalog.
// The caller owns the slice (it lives in the session cookie); every method
// returns the new cart and leaves it untouched on error.
type CartService struct {
	store repositories.ProductStore
}

func NewCartService(store repositories.ProductStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) findProduct(ctx context.Context, id int) (*models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Add puts one unit of a product in the cart. An existing line grows by one
// as long as it stays within current stock; a new line needs stock > 0.
func (s *CartService) Add(ctx context.Context, cart []models.CartItem, id int) ([]models.CartItem, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return cart, err
	}

	for i := range cart {
		if cart[i].ID == id {
			if cart[i].Quantity >= product.Stock {
				return cart, ErrOutOfStock
			}
			cart[i].Quantity++
			return cart, nil
		}
	}

	if product.Stock < 1 {
		return cart, ErrOutOfStock
	}

	return append(cart, models.CartItem{
		ID:       product.ID,
		Code:     product.Code,
		Name:     product.Name,
		Price:    product.Price,
		Weight:   product.Weight,
		Image:    product.Image,
		Quantity: 1,
	}), nil
}

// Increase bumps an existing line by one, re-checking current stock from
// the store rather than the cart snapshot.
func (s *CartService) Increase(ctx context.Context, cart []models.CartItem, id int) ([]models.CartItem, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return cart, err
	}

	for i := range cart {
		if cart[i].ID == id {
			if cart[i].Quantity >= product.Stock {
				return cart, ErrOutOfStock
			}
			cart[i].Quantity++
			return cart, nil
		}
	}
	return cart, ErrItemNotInCart
}

// Decrease drops a line's quantity by one; at quantity 1 the whole line is
// removed instead of leaving a zero-quantity entry behind.
func (s *CartService) Decrease(cart []models.CartItem, id int) ([]models.CartItem, error) {
	for i := range cart {
		if cart[i].ID == id {
			if cart[i].Quantity <= 1 {
				return append(cart[:i], cart[i+1:]...), nil
			}
			cart[i].Quantity--
			return cart, nil
		}
	}
	return cart, ErrItemNotInCart
}

// Remove deletes a line unconditionally. Removing an absent line is a no-op
// so the operation is idempotent.
func (s *CartService) Remove(cart []models.CartItem, id int) []models.CartItem {
	kept := cart[:0]
	for _, item := range cart {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}
