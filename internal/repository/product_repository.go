package repository

import (
	_ "embed"
	"fmt"
	"marketplace-service/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/products.yaml
var defaultFixture []byte

type productFixture struct {
	Products []models.Product `yaml:"products"`
}

// ProductRepository serves the immutable product fixture. It is safe for
// concurrent reads because nothing mutates it after construction.
type ProductRepository struct {
	products []models.Product
	byID     map[int]int
}

// NewProductRepository loads the embedded seed listings.
func NewProductRepository() (*ProductRepository, error) {
	return NewProductRepositoryFromYAML(defaultFixture)
}

func NewProductRepositoryFromYAML(data []byte) (*ProductRepository, error) {
	var fixture productFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("failed to decode product fixture: %w", err)
	}
	return NewProductRepositoryFromSlice(fixture.Products)
}

func NewProductRepositoryFromSlice(products []models.Product) (*ProductRepository, error) {
	repo := &ProductRepository{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := repo.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price", p.ID)
		}
		if p.Category == "" || p.Category == models.CategoryAll {
			return nil, fmt.Errorf("product %d has no concrete category", p.ID)
		}
		if _, err := models.ParseCategory(string(p.Category)); err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		repo.byID[p.ID] = len(repo.products)
		repo.products = append(repo.products, p)
	}
	return repo, nil
}

// GetAll returns a copy in fixture order.
func (r *ProductRepository) GetAll() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

func (r *ProductRepository) GetByID(id int) (models.Product, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return r.products[idx], true
}
