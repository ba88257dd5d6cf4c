package services

import (
	"context"
	"strings"

	"tienda-hogar/models"
	"tienda-hogar/repositories"
)

// ProductService carries the catalog queries and the admin mutations over
// the injected store.
type ProductService struct {
	store repositories.ProductStore
}

func NewProductService(store repositories.ProductStore) *ProductService {
	return &ProductService{store: store}
}

// List filters the catalog by a case-insensitive substring on the name and
// an exact category match. Empty filters pass everything through.
func (s *ProductService) List(ctx context.Context, query, category string) ([]models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" && category == "" {
		return products, nil
	}

	query = strings.ToLower(query)
	filtered := []models.Product{}
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*models.Product, error) {
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

// nextID assigns max(id)+1. The legacy store used last-element+1, which
// reissues ids after out-of-order deletions.
func nextID(products []models.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest, image string) (*models.Product, error) {
	if !models.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:       nextID(products),
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Code:     req.Code,
		Category: req.Category,
		Weight:   req.Weight,
		Image:    image,
	}

	products = append(products, product)
	if err := s.store.Save(ctx, products); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update overwrites every mutable field of the product. An empty image
// keeps the stored one.
func (s *ProductService) Update(ctx context.Context, id int, req models.ProductRequest, image string) (*models.Product, error) {
	if !models.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i].Name = req.Name
		products[i].Price = req.Price
		products[i].Stock = req.Stock
		products[i].Code = req.Code
		products[i].Category = req.Category
		products[i].Weight = req.Weight
		if image != "" {
			products[i].Image = image
		}
		if err := s.store.Save(ctx, products); err != nil {
			return nil, err
		}
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	products, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := []models.Product{}
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrProductNotFound
	}
	return s.store.Save(ctx, kept)
}

// AdjustStock moves stock by delta. Decrements floor at zero; an adjustment
// at the floor is a no-op, matching the panel's minus button.
func (s *ProductService) AdjustStock(ctx context.Context, id, delta int) (*models.Product, error) {
	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID != id {
			continue
		}
		next := products[i].Stock + delta
		if next >= 0 {
			products[i].Stock = next
			if err := s.store.Save(ctx, products); err != nil {
				return nil, err
			}
		}
		return &products[i], nil
	}
	return nil, ErrProductNotFound
}
