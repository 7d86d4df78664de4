package usecase

import (
	"context"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/circuitbreaker"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/catalog"
)

// fallbackDelay simulates boundary latency when serving the local catalog
const fallbackDelay = 500 * time.Millisecond

// CatalogUC implements the catalog.CatalogUC interface
type CatalogUC struct {
	gw      catalog.CatalogGW
	breaker *circuitbreaker.CircuitBreaker
}

// NewCatalogUC creates a new catalog use case
func NewCatalogUC(gw catalog.CatalogGW) *CatalogUC {
	return &CatalogUC{
		gw:      gw,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("catalog")),
	}
}

// GetVenues fetches the venue catalog from the boundary. Any failure
// (non-2xx, timeout, network error, open breaker) is recovered locally
// by serving the fixed fallback catalog, never surfaced to the caller.
func (uc *CatalogUC) GetVenues(ctx context.Context) (*models.Catalog, error) {
	var venues []models.Venue

	err := uc.breaker.Execute(ctx, func(ctx context.Context) error {
		fetched, err := uc.gw.FetchVenues(ctx)
		if err != nil {
			return err
		}
		venues = fetched
		return nil
	})
	if err != nil {
		logger.Warn("Failed to fetch venues from API, using fallback catalog",
			logger.Err(err))

		select {
		case <-time.After(fallbackDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		return &models.Catalog{Venues: FallbackVenues(), Fallback: true}, nil
	}

	logger.Info("Fetched venues from catalog boundary",
		logger.Int("venues", len(venues)))

	return &models.Catalog{Venues: venues, Fallback: false}, nil
}
