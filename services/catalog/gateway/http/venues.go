package gateway_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	httpclient "github.com/kietsocola/foodorder/internal/pkg/http"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// VenueClient is an HTTP client for the venue catalog boundary
type VenueClient struct {
	client *httpclient.Client
}

// NewVenueClient creates a new venue catalog HTTP client
func NewVenueClient(baseURL string, timeout time.Duration) *VenueClient {
	return &VenueClient{
		client: httpclient.NewClient(baseURL, timeout),
	}
}

// FetchVenues requests the ordered venue list from the catalog boundary
func (g *VenueClient) FetchVenues(ctx context.Context) ([]models.Venue, error) {
	url := fmt.Sprintf("%s/venues", g.client.BaseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: (status: %d, body: %s)", errs.ErrCatalogUnavailable, resp.StatusCode, string(respBody))
	}

	var venues []models.Venue
	if err := json.Unmarshal(respBody, &venues); err != nil {
		return nil, fmt.Errorf("failed to parse venues response: %w", err)
	}

	return venues, nil
}
