package catalog

import (
	"context"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kietsocola/foodorder/services/catalog CatalogUC

// CatalogUC represents the venue catalog usecase interface
type CatalogUC interface {
	// GetVenues returns the venue catalog, falling back to the fixed
	// local catalog when the boundary is unavailable
	GetVenues(ctx context.Context) (*models.Catalog, error)
}

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/kietsocola/foodorder/services/catalog CatalogGW

// CatalogGW defines the catalog boundary gateway interface
type CatalogGW interface {
	FetchVenues(ctx context.Context) ([]models.Venue, error)
}
