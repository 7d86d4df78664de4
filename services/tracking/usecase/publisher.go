package usecase

import (
	"context"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/internal/utils"
	"github.com/kietsocola/foodorder/services/tracking"
)

// Publisher forwards device position samples into a tracking session at
// the source's natural cadence
type Publisher struct {
	source tracking.PositionSource
	opts   tracking.PositionOptions
}

// NewPublisher creates a publisher over the given position source
func NewPublisher(source tracking.PositionSource, cfg models.PositionConfig) *Publisher {
	return &Publisher{
		source: source,
		opts: tracking.PositionOptions{
			HighAccuracy: cfg.HighAccuracy,
			Timeout:      time.Duration(cfg.TimeoutSeconds) * time.Second,
			MaximumAge:   time.Duration(cfg.MaximumAgeSeconds) * time.Second,
		},
	}
}

// Start begins watching the position source and publishing each sample
// to the session. Source errors are logged and skip the tick; the watch
// stays active until the returned handle is stopped.
func (p *Publisher) Start(ctx context.Context, session *Session) (tracking.WatchHandle, error) {
	orderID := session.OrderID()

	onSample := func(coord models.Coordinate, at time.Time) {
		if !coord.Valid() {
			logger.Warn("Dropping out-of-range position sample",
				logger.String("order_id", orderID),
				logger.Float64("latitude", coord.Latitude),
				logger.Float64("longitude", coord.Longitude))
			return
		}

		sample := models.LocationSample{
			OrderID:   orderID,
			Latitude:  coord.Latitude,
			Longitude: coord.Longitude,
			Timestamp: at,
		}

		logger.Debug("Publishing location sample",
			logger.String("order_id", orderID),
			logger.String("cell", utils.EncodeCoordinate(sample.Coordinate(), 7)))

		if err := session.Publish(sample); err != nil {
			logger.Warn("Failed to publish location sample",
				logger.String("order_id", orderID),
				logger.Err(err))
		}
	}

	onError := func(err error) {
		// Position errors do not stop future attempts
		logger.Warn("Position source error",
			logger.String("order_id", orderID),
			logger.Err(err))
	}

	handle, err := p.source.Watch(ctx, p.opts, onSample, onError)
	if err != nil {
		return nil, err
	}

	logger.Info("Location publishing started",
		logger.String("order_id", orderID))
	return handle, nil
}

// Stop cancels a running watch. Safe on a nil handle.
func (p *Publisher) Stop(handle tracking.WatchHandle) {
	if handle != nil {
		handle.Stop()
	}
}
