package gateway_http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	httpclient "github.com/kietsocola/foodorder/internal/pkg/http"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// OrderClient is an HTTP client for the order boundary
type OrderClient struct {
	client *httpclient.Client
}

// NewOrderClient creates a new order HTTP client
func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		client: httpclient.NewClient(baseURL, timeout),
	}
}

// CreateOrder posts an order request to the boundary
func (g *OrderClient) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.OrderResponse, error) {
	url := fmt.Sprintf("%s/orders/create", g.client.BaseURL)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("order request failed: (status: %d, body: %s)", resp.StatusCode, string(respBody))
	}

	var response models.OrderResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return &response, nil
}
