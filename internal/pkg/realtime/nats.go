package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/kietsocola/foodorder/internal/pkg/constants"
	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// NATSChannel implements Channel over a NATS connection: the per-order
// delivery topic maps to a subject subscription and outbound samples go
// to the fixed location.update subject.
type NATSChannel struct {
	cfg models.RealtimeConfig

	mu     sync.Mutex
	conn   *nats.Conn
	sub    *nats.Subscription
	closed chan struct{}
}

// NewNATSChannel creates an unconnected NATS channel
func NewNATSChannel(cfg models.RealtimeConfig) *NATSChannel {
	if cfg.ReconnectSeconds <= 0 {
		cfg.ReconnectSeconds = 5
	}
	return &NATSChannel{
		cfg:    cfg,
		closed: make(chan struct{}),
	}
}

// Connect dials the NATS server and subscribes to the per-order subject.
// A dial attempt may follow a torn-down earlier one on the same instance
// (a failed subscribe closes the connection, firing the closed handler),
// so the closed signal is re-armed before connecting.
func (c *NATSChannel) Connect(ctx context.Context, orderID string, handler EventHandler) error {
	c.mu.Lock()
	select {
	case <-c.closed:
		c.closed = make(chan struct{})
	default:
	}
	closed := c.closed
	c.mu.Unlock()

	conn, err := nats.Connect(c.cfg.NATSURL,
		nats.ReconnectWait(time.Duration(c.cfg.ReconnectSeconds)*time.Second),
		nats.ClosedHandler(func(*nats.Conn) {
			c.markClosed(closed)
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: connect %s: %v", errs.ErrChannelUnavailable, c.cfg.NATSURL, err)
	}

	subject := constants.DeliverySubject(orderID)
	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		if handler != nil {
			handler(msg.Data)
		}
	})
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: subscribe %s: %v", errs.ErrChannelUnavailable, subject, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.sub = sub
	c.mu.Unlock()

	logger.Info("NATS channel connected",
		logger.String("order_id", orderID),
		logger.String("subject", subject))

	return nil
}

// Publish sends a payload to the fixed location.update subject
func (c *NATSChannel) Publish(data []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return errs.ErrChannelUnavailable
	}
	if err := conn.Publish(constants.SubjectLocationUpdate, data); err != nil {
		return fmt.Errorf("failed to publish location sample: %w", err)
	}
	return nil
}

// Closed reports connection loss or teardown
func (c *NATSChannel) Closed() <-chan struct{} {
	return c.closed
}

// Close tears down the subscription and connection. Idempotent.
func (c *NATSChannel) Close() error {
	c.mu.Lock()
	sub := c.sub
	conn := c.conn
	closed := c.closed
	c.sub = nil
	c.conn = nil
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	if conn != nil {
		conn.Close()
	}
	c.markClosed(closed)
	return nil
}

// markClosed fires a specific closed signal, so a handler left over from
// a torn-down connection cannot close a re-armed one
func (c *NATSChannel) markClosed(closed chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-closed:
	default:
		close(closed)
	}
}
