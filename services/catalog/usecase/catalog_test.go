package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/catalog/mocks"
)

func TestCatalogUC_GetVenues_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockCatalogGW(ctrl)
	uc := NewCatalogUC(mockGW)

	expected := []models.Venue{
		{ID: "venue-live", VenueName: "Live Venue", Products: []models.Product{
			{ID: "p-1", Name: "Item", VenueID: "venue-live", Price: 30000},
		}},
	}

	mockGW.EXPECT().
		FetchVenues(gomock.Any()).
		Return(expected, nil)

	// Act
	result, err := uc.GetVenues(context.Background())

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Fallback)
	assert.Equal(t, expected, result.Venues)
}

func TestCatalogUC_GetVenues_BoundaryFailureServesFallback(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockCatalogGW(ctrl)
	uc := NewCatalogUC(mockGW)

	mockGW.EXPECT().
		FetchVenues(gomock.Any()).
		Return(nil, errors.New("venues request failed: (status: 500)"))

	// Act
	result, err := uc.GetVenues(context.Background())

	// Assert
	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Fallback)
	require.Len(t, result.Venues, 3)

	// The fallback is detectable via the known first venue id
	assert.Equal(t, FallbackVenueID, result.Venues[0].ID)

	products := 0
	for _, venue := range result.Venues {
		products += len(venue.Products)
	}
	assert.Equal(t, 12, products)
}

func TestCatalogUC_GetVenues_CancelledContext(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockCatalogGW(ctrl)
	uc := NewCatalogUC(mockGW)

	mockGW.EXPECT().
		FetchVenues(gomock.Any()).
		Return(nil, errors.New("network error"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	result, err := uc.GetVenues(ctx)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestFallbackVenues_CopyIsIsolated(t *testing.T) {
	first := FallbackVenues()
	first[0].VenueName = "mutated"
	first[0].Products[0].Name = "mutated"
	first[0].Products[0].Price = 1

	second := FallbackVenues()
	assert.Equal(t, "Tuấn Kiệt của Tuyết Mai", second[0].VenueName)
	assert.Equal(t, "Một cái ôm", second[0].Products[0].Name)
	assert.Equal(t, int64(10500), second[0].Products[0].Price)
}
