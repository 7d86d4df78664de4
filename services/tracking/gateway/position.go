// Package gateway holds the tracking service's boundary adapters.
package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/services/tracking"
)

// SimulatedSource is a deterministic position source: a fixed-step walk
// north-east from a seed coordinate at a fixed cadence. It stands in for
// device GPS in environments without one.
type SimulatedSource struct {
	start    models.Coordinate
	interval time.Duration
}

// step is the per-tick coordinate delta of the simulated walk
const step = 0.001

// NewSimulatedSource creates a simulated position source
func NewSimulatedSource(cfg models.PositionConfig) *SimulatedSource {
	interval := time.Duration(cfg.IntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SimulatedSource{
		start:    models.Coordinate{Latitude: cfg.StartLatitude, Longitude: cfg.StartLongitude},
		interval: interval,
	}
}

type simulatedWatch struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (w *simulatedWatch) Stop() {
	w.once.Do(w.cancel)
}

// Watch emits one sample per tick until the handle is stopped or ctx is
// done. The options are accepted for interface parity; the simulated
// source always produces a fresh fix.
func (s *SimulatedSource) Watch(ctx context.Context, opts tracking.PositionOptions, onSample tracking.PositionCallback, onError tracking.PositionErrorCallback) (tracking.WatchHandle, error) {
	watchCtx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		tick := 0
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
			}

			coord := models.Coordinate{
				Latitude:  s.start.Latitude + float64(tick)*step,
				Longitude: s.start.Longitude + float64(tick)*step,
			}
			onSample(coord, models.Now())
			tick++
		}
	}()

	return &simulatedWatch{cancel: cancel}, nil
}
