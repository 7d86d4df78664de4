package usecase

import (
	"fmt"

	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/internal/utils"
)

// Marker names used by the map rendering boundary
const (
	MarkerCustomer = "customer"
	MarkerDelivery = "delivery"
)

// boundsPadding widens the fitted bounds so markers don't sit on the edge
const boundsPadding = 0.002

// MapMarker is one named coordinate handed to the map boundary
type MapMarker struct {
	Name       string            `json:"name"`
	Coordinate models.Coordinate `json:"coordinate"`
}

// MapBounds is the south-west / north-east box fitted around all markers
type MapBounds struct {
	SouthWest models.Coordinate `json:"southWest"`
	NorthEast models.Coordinate `json:"northEast"`
}

// MapView is the render model for the map boundary: zero, one, or two
// named coordinates plus the order they belong to. The map recenters
// whenever either coordinate changes; with no markers it renders
// non-interactive.
type MapView struct {
	OrderID     string            `json:"orderId"`
	Markers     []MapMarker       `json:"markers"`
	Center      models.Coordinate `json:"center"`
	Bounds      *MapBounds        `json:"bounds,omitempty"`
	Interactive bool              `json:"interactive"`
	// DistanceKm is the remaining courier-to-customer distance, zero
	// unless both markers are present
	DistanceKm float64 `json:"distanceKm"`
}

// BuildMapView assembles the map render model from the current customer
// and delivery coordinates; either may be nil.
func BuildMapView(orderID string, customer, delivery *models.Coordinate) MapView {
	view := MapView{OrderID: orderID}

	if customer != nil {
		view.Markers = append(view.Markers, MapMarker{Name: MarkerCustomer, Coordinate: *customer})
	}
	if delivery != nil {
		view.Markers = append(view.Markers, MapMarker{Name: MarkerDelivery, Coordinate: *delivery})
	}

	switch len(view.Markers) {
	case 0:
		return view
	case 1:
		view.Interactive = true
		view.Center = view.Markers[0].Coordinate
		return view
	}

	view.Interactive = true
	view.DistanceKm = utils.CalculateDistance(*customer, *delivery)
	view.Center = models.Coordinate{
		Latitude:  (customer.Latitude + delivery.Latitude) / 2,
		Longitude: (customer.Longitude + delivery.Longitude) / 2,
	}
	view.Bounds = &MapBounds{
		SouthWest: models.Coordinate{
			Latitude:  min(customer.Latitude, delivery.Latitude) - boundsPadding,
			Longitude: min(customer.Longitude, delivery.Longitude) - boundsPadding,
		},
		NorthEast: models.Coordinate{
			Latitude:  max(customer.Latitude, delivery.Latitude) + boundsPadding,
			Longitude: max(customer.Longitude, delivery.Longitude) + boundsPadding,
		},
	}
	return view
}

// FormatCoordinate renders a coordinate the way the location status line
// shows it: six decimal places
func FormatCoordinate(c models.Coordinate) string {
	return fmt.Sprintf("%.6f, %.6f", c.Latitude, c.Longitude)
}
