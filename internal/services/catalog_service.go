package services

import (
	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"
	"strings"
)

type CatalogService struct {
	productRepository *repository.ProductRepository
}

func NewCatalogService(productRepo *repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepository: productRepo}
}

// Filter returns the products in fixture order that match both the category
// and the search term. The term matches name, farmer or location, ignoring case.
func (s *CatalogService) Filter(category models.Category, searchTerm string) []models.Product {
	term := strings.ToLower(searchTerm)
	result := make([]models.Product, 0)
	for _, p := range s.productRepository.GetAll() {
		if category != models.CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Farmer), term) &&
			!strings.Contains(strings.ToLower(p.Location), term) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func (s *CatalogService) GetProduct(id int) (models.Product, bool) {
	return s.productRepository.GetByID(id)
}

// ListByFarmer returns the listings owned by the named farmer.
func (s *CatalogService) ListByFarmer(farmer string) []models.Product {
	result := make([]models.Product, 0)
	for _, p := range s.productRepository.GetAll() {
		if p.Farmer == farmer {
			result = append(result, p)
		}
	}
	return result
}
