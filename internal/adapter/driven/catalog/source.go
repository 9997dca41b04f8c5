// Package catalog loads the store's product catalog from YAML.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
	"github.com/ericfisherdev/shopfront/internal/domain/port/driven"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Compile-time interface satisfaction check.
var _ driven.ProductSource = (*Source)(nil)

type fileFormat struct {
	Products []productEntry `yaml:"products"`
}

type productEntry struct {
	Name        string `yaml:"name"`
	Price       int    `yaml:"price"`
	Description string `yaml:"description"`
}

// Source is a ProductSource over a catalog parsed once at construction.
type Source struct {
	products []model.Product
}

// NewDefaultSource returns the catalog compiled into the binary.
func NewDefaultSource() (*Source, error) {
	return Parse(defaultCatalog)
}

// NewFileSource reads and parses the catalog at path.
func NewFileSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return src, nil
}

// Parse decodes a YAML catalog. Every product needs a name and a
// non-negative price.
func Parse(data []byte) (*Source, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]model.Product, 0, len(f.Products))
	for i, p := range f.Products {
		if p.Name == "" {
			return nil, fmt.Errorf("product %d: missing name", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: negative price %d", p.Name, p.Price)
		}
		products = append(products, model.Product{
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
		})
	}

	return &Source{products: products}, nil
}

// ListProducts returns a copy of the catalog in file order.
func (s *Source) ListProducts(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
