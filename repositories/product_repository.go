package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tienda-hogar/models"
)

// ProductStore is the single source of truth for the catalog. Load returns
// the full product sequence; Save overwrites it completely.
type ProductStore interface {
	Load(ctx context.Context) ([]models.Product, error)
	Save(ctx context.Context, products []models.Product) error
}

// JSONProductStore keeps the catalog in one indented UTF-8 JSON file, the
// format the store has always used. A missing file is an empty catalog,
// never an error.
type JSONProductStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONProductStore(path string) *JSONProductStore {
	return &JSONProductStore{path: path}
}

func (s *JSONProductStore) Load(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.Product{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	products := []models.Product{}
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return products, nil
}

// Save writes the whole catalog through a temp file plus rename so readers
// never see a half-written file.
func (s *JSONProductStore) Save(ctx context.Context, products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []models.Product{}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".productos-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(products); err != nil {
		tmp.Close()
		return fmt.Errorf("encode products: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
