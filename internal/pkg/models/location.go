package models

import "time"

// Coordinate represents a geographical point with latitude and longitude
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is within the WGS84 range
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// LocationSample represents an outbound position reading from the customer device
type LocationSample struct {
	OrderID   string    `json:"orderId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinate returns the sample position as a Coordinate
func (s LocationSample) Coordinate() Coordinate {
	return Coordinate{Latitude: s.Latitude, Longitude: s.Longitude}
}

// DeliveryEvent represents an inbound courier position update for an order.
// Timestamp is unix milliseconds, matching the wire format of the delivery topic.
type DeliveryEvent struct {
	OrderID   string  `json:"orderId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
	Status    string  `json:"status,omitempty"`
}

// Coordinate returns the event position as a Coordinate
func (e DeliveryEvent) Coordinate() Coordinate {
	return Coordinate{Latitude: e.Latitude, Longitude: e.Longitude}
}

// Valid reports whether the event carries an order id and an in-range coordinate
func (e DeliveryEvent) Valid() bool {
	return e.OrderID != "" && e.Coordinate().Valid()
}
