package driven

import (
	"context"

	"github.com/ericfisherdev/shopfront/internal/domain/model"
)

// ProductSource defines the driven port for the store catalog.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}
