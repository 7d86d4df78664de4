package gateway_http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

func TestOrderClient_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		mockResponse   *models.OrderResponse
		mockStatusCode int
		expectError    bool
	}{
		{
			name:           "successful order creation",
			mockResponse:   &models.OrderResponse{OrderID: "order-123", Status: "created"},
			mockStatusCode: http.StatusCreated,
			expectError:    false,
		},
		{
			name:           "server error",
			mockStatusCode: http.StatusInternalServerError,
			expectError:    true,
		},
		{
			name:           "validation rejected",
			mockStatusCode: http.StatusBadRequest,
			expectError:    true,
		},
	}

	req := &models.OrderRequest{
		CustomerID: "customer-1",
		VenueID:    "venue-2",
		Address:    "123 Nguyen Trai, Ha Noi",
		OrderItems: []models.OrderItem{
			{OrderItemID: "item-1", ProductID: "product-6", ProductName: "Phở Bò Tái", Quantity: 1, Price: 45000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Contains(t, r.URL.Path, "/orders/create")
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var received models.OrderRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				assert.Equal(t, req.VenueID, received.VenueID)

				w.WriteHeader(tt.mockStatusCode)
				if tt.mockResponse != nil {
					json.NewEncoder(w).Encode(tt.mockResponse)
				}
			}))
			defer server.Close()

			client := NewOrderClient(server.URL, 5*time.Second)
			resp, err := client.CreateOrder(context.Background(), req)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.mockResponse.OrderID, resp.OrderID)
			}
		})
	}
}
