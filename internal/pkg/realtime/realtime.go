// Package realtime provides the channel boundary used for delivery
// tracking: one connection per session, one per-order inbound topic and
// a fixed outbound destination for customer position samples.
package realtime

import (
	"context"
	"fmt"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// EventHandler receives raw inbound payloads from the per-order delivery topic
type EventHandler func(data []byte)

//go:generate mockgen -destination=../../../services/tracking/mocks/mock_channel.go -package=mocks github.com/kietsocola/foodorder/internal/pkg/realtime Channel

// Channel is a realtime connection scoped to a single order
type Channel interface {
	// Connect dials the endpoint and subscribes to the per-order delivery
	// topic. It returns once the handshake completes or fails; inbound
	// payloads are delivered to handler in arrival order.
	Connect(ctx context.Context, orderID string, handler EventHandler) error

	// Publish sends a payload to the fixed outbound destination.
	// Fire-and-forget: no acknowledgement is awaited.
	Publish(data []byte) error

	// Closed is closed when the underlying connection is lost or torn down
	Closed() <-chan struct{}

	// Close tears down the connection. Idempotent.
	Close() error
}

// NewChannel builds a Channel for the configured transport
func NewChannel(cfg models.RealtimeConfig) (Channel, error) {
	switch cfg.Transport {
	case "websocket", "":
		return NewWebSocketChannel(cfg), nil
	case "nats":
		return NewNATSChannel(cfg), nil
	default:
		return nil, fmt.Errorf("unknown realtime transport %q", cfg.Transport)
	}
}
