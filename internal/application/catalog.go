package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

// CatalogService serves the mock product listing shown on the home screen.
type CatalogService struct {
	source driven.ProductSource
}

// NewCatalogService creates a CatalogService over source.
func NewCatalogService(source driven.ProductSource) *CatalogService {
	return &CatalogService{source: source}
}

// List returns every product in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search returns the products whose name contains query, ignoring case and
// surrounding whitespace. An empty query matches everything.
func (s *CatalogService) Search(ctx context.Context, query string) ([]model.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, query), nil
}

// FilterProducts is the pure filter behind Search.
func FilterProducts(products []model.Product, query string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	matched := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
