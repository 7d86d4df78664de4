package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    models.Coordinate
		point2    models.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    models.Coordinate{Latitude: 10.7769, Longitude: 106.6955},
			point2:    models.Coordinate{Latitude: 10.7769, Longitude: 106.6955},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "Ho Chi Minh City to Hanoi (approximately)",
			point1:    models.Coordinate{Latitude: 10.7769, Longitude: 106.6955},
			point2:    models.Coordinate{Latitude: 21.0278, Longitude: 105.8342},
			expected:  1140.0, // Approximately 1140 km
			tolerance: 30.0,
		},
		{
			name:      "Short hop within a district",
			point1:    models.Coordinate{Latitude: 10.7769, Longitude: 106.6955},
			point2:    models.Coordinate{Latitude: 10.7809, Longitude: 106.6995},
			expected:  0.62, // Approximately 620 m
			tolerance: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestEncodeCoordinate(t *testing.T) {
	coord := models.Coordinate{Latitude: 10.7769, Longitude: 106.6955}

	hash := EncodeCoordinate(coord, 6)
	assert.Len(t, hash, 6)

	// Decoding the cell must land near the original point
	decoded := DecodeGeohash(hash)
	assert.InDelta(t, coord.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, coord.Longitude, decoded.Longitude, 0.01)
}
