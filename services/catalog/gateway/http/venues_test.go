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

	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

func TestVenueClient_FetchVenues(t *testing.T) {
	tests := []struct {
		name           string
		mockResponse   []models.Venue
		mockStatusCode int
		expectError    bool
	}{
		{
			name: "successful venue fetch",
			mockResponse: []models.Venue{
				{
					ID:           "venue-1",
					VenueName:    "Quán Test",
					VenueAddress: "Quận 1, TP HCM",
					Products: []models.Product{
						{ID: "product-1", Name: "Phở", VenueID: "venue-1", Price: 45000},
					},
				},
			},
			mockStatusCode: http.StatusOK,
			expectError:    false,
		},
		{
			name:           "server error",
			mockStatusCode: http.StatusInternalServerError,
			expectError:    true,
		},
		{
			name:           "not found",
			mockStatusCode: http.StatusNotFound,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Contains(t, r.URL.Path, "/venues")

				w.WriteHeader(tt.mockStatusCode)
				if tt.mockResponse != nil {
					json.NewEncoder(w).Encode(tt.mockResponse)
				}
			}))
			defer server.Close()

			client := NewVenueClient(server.URL, 5*time.Second)
			venues, err := client.FetchVenues(context.Background())

			if tt.expectError {
				assert.ErrorIs(t, err, errs.ErrCatalogUnavailable)
				assert.Nil(t, venues)
			} else {
				assert.NoError(t, err)
				require.Len(t, venues, len(tt.mockResponse))
				assert.Equal(t, tt.mockResponse[0].ID, venues[0].ID)
				assert.Equal(t, tt.mockResponse[0].VenueName, venues[0].VenueName)
			}
		})
	}
}

func TestVenueClient_FetchVenues_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewVenueClient(server.URL, 50*time.Millisecond)
	venues, err := client.FetchVenues(context.Background())

	assert.Error(t, err)
	assert.Nil(t, venues)
}
