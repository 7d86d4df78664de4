// Package tracking owns the realtime delivery-tracking session: one
// session per order, live over a realtime channel or degraded to a
// deterministic local simulation, never both at once.
package tracking

import (
	"context"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// Observer receives delivery events for the session it is registered on.
// At most one observer is registered at a time; a later registration
// replaces the earlier one. Observers must not call back into the session.
type Observer func(event models.DeliveryEvent)

// PositionOptions mirror the geolocation boundary hints: a fresh,
// high-accuracy fix is requested for every sample.
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// PositionCallback receives one coordinate sample from the source
type PositionCallback func(coord models.Coordinate, at time.Time)

// PositionErrorCallback receives per-fix source errors; the watch stays
// active after an error
type PositionErrorCallback func(err error)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/kietsocola/foodorder/services/tracking PositionSource

// PositionSource yields periodic coordinate samples at a cadence the
// source controls
type PositionSource interface {
	Watch(ctx context.Context, opts PositionOptions, onSample PositionCallback, onError PositionErrorCallback) (WatchHandle, error)
}

// WatchHandle cancels a running position watch
type WatchHandle interface {
	Stop()
}
