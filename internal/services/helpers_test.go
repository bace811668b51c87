package services

import (
	"context"
	"marketplace-service/internal/models"
	"marketplace-service/internal/repository"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	repo, err := repository.NewProductRepository()
	require.NoError(t, err)
	return NewCatalogService(repo)
}

func product(id int, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price, Unit: "kg", Category: models.CategoryVegetable}
}

// fakeGenerator returns a canned reply and records every prompt it receives.
type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return f.reply, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

const threeCropsFenced = "```json\n" + `{"weather_summary":"Hot and dry","crop_suggestions":[
{"name":"Bajra","sowing_season":"June","water_requirements":"Low","soil_suitability":"Sandy","potential_yield":"1.5 t/ha","common_pests_diseases":"Downy mildew"},
{"name":"Jowar","sowing_season":"July","water_requirements":"Low","soil_suitability":"Loamy","potential_yield":"2 t/ha","common_pests_diseases":"Shoot fly"},
{"name":"Moong","sowing_season":"June","water_requirements":"Medium","soil_suitability":"Loamy","potential_yield":"1 t/ha","common_pests_diseases":"Yellow mosaic"}
]}` + "\n```"
