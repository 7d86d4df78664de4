package models

// Product represents a single menu item offered by a venue
type Product struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VenueID     string `json:"venueId"`
	Price       int64  `json:"price"`
}

// Venue represents a restaurant with its product catalog.
// Field names match the catalog boundary payload exactly.
type Venue struct {
	ID           string    `json:"id"`
	VenueName    string    `json:"venueName"`
	VenueAddress string    `json:"venueAddress"`
	Products     []Product `json:"products"`
}

// Catalog is the result of a venue listing, including whether the
// data came from the local fallback instead of the live boundary
type Catalog struct {
	Venues   []Venue `json:"venues"`
	Fallback bool    `json:"fallback"`
}
