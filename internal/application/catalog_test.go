package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

type mockProductSource struct {
	products []model.Product
	err      error
}

func (m *mockProductSource) ListProducts(_ context.Context) ([]model.Product, error) {
	return m.products, m.err
}

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Product 0", Price: 10},
		{Name: "Product 1", Price: 20},
		{Name: "Coffee Mug", Price: 12},
		{Name: "Product 10", Price: 110},
	}
}

func TestCatalogService_List(t *testing.T) {
	svc := application.NewCatalogService(&mockProductSource{products: sampleProducts()})

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleProducts(), got)
}

func TestCatalogService_ListError(t *testing.T) {
	srcErr := errors.New("unreadable")
	svc := application.NewCatalogService(&mockProductSource{err: srcErr})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, srcErr)

	_, err = svc.Search(context.Background(), "mug")
	assert.ErrorIs(t, err, srcErr)
}

func TestCatalogService_Search(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: []string{"Product 0", "Product 1", "Coffee Mug", "Product 10"}},
		{name: "whitespace query returns all", query: "   ", want: []string{"Product 0", "Product 1", "Coffee Mug", "Product 10"}},
		{name: "case insensitive", query: "MUG", want: []string{"Coffee Mug"}},
		{name: "substring keeps order", query: "product 1", want: []string{"Product 1", "Product 10"}},
		{name: "no match", query: "laptop", want: []string{}},
	}

	svc := application.NewCatalogService(&mockProductSource{products: sampleProducts()})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.query)
			require.NoError(t, err)

			names := make([]string, 0, len(got))
			for _, p := range got {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
