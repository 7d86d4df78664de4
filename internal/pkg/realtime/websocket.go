package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kietsocola/foodorder/internal/pkg/constants"
	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// WebSocketChannel implements Channel over a gorilla/websocket connection.
// Messages are framed as models.WSMessage envelopes; a heartbeat ping runs
// in both directions at the configured interval.
type WebSocketChannel struct {
	cfg models.RealtimeConfig

	mu      sync.Mutex
	conn    *websocket.Conn
	closed  chan struct{}
	orderID string
}

// NewWebSocketChannel creates an unconnected websocket channel
func NewWebSocketChannel(cfg models.RealtimeConfig) *WebSocketChannel {
	if cfg.HeartbeatSeconds <= 0 {
		cfg.HeartbeatSeconds = 4
	}
	return &WebSocketChannel{
		cfg:    cfg,
		closed: make(chan struct{}),
	}
}

// Connect dials the websocket endpoint and subscribes to the per-order
// topic. A dial attempt may follow a torn-down earlier one on the same
// instance, so the closed signal is re-armed before connecting.
func (c *WebSocketChannel) Connect(ctx context.Context, orderID string, handler EventHandler) error {
	c.mu.Lock()
	select {
	case <-c.closed:
		c.closed = make(chan struct{})
	default:
	}
	closed := c.closed
	c.mu.Unlock()

	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, c.cfg.WebSocketURL, nil)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", errs.ErrChannelUnavailable, c.cfg.WebSocketURL, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.orderID = orderID
	c.mu.Unlock()

	if err := c.subscribe(orderID); err != nil {
		c.Close()
		return err
	}

	heartbeat := time.Duration(c.cfg.HeartbeatSeconds) * time.Second
	conn.SetReadDeadline(time.Now().Add(2 * heartbeat))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(2 * heartbeat))
	})

	go c.pingLoop(heartbeat, closed)
	go c.readLoop(handler, heartbeat, closed)

	logger.Info("WebSocket channel connected",
		logger.String("order_id", orderID),
		logger.String("url", c.cfg.WebSocketURL))

	return nil
}

// subscribe routes the per-order delivery topic onto this connection
func (c *WebSocketChannel) subscribe(orderID string) error {
	req, err := json.Marshal(models.WSSubscribeRequest{
		Topic: constants.DeliverySubject(orderID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal subscribe request: %w", err)
	}
	return c.writeMessage(models.WSMessage{
		Event: constants.EventSubscribe,
		Data:  req,
	})
}

// Publish sends a payload to the fixed outbound destination
func (c *WebSocketChannel) Publish(data []byte) error {
	return c.writeMessage(models.WSMessage{
		Event: constants.EventLocationUpdate,
		Data:  data,
	})
}

func (c *WebSocketChannel) writeMessage(msg models.WSMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errs.ErrChannelUnavailable
	}
	return c.conn.WriteJSON(msg)
}

// pingLoop sends heartbeat pings at the configured interval until the
// channel is torn down
func (c *WebSocketChannel) pingLoop(heartbeat time.Duration, closed <-chan struct{}) {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			c.mu.Lock()
			conn := c.conn
			if conn != nil {
				conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(heartbeat))
			}
			c.mu.Unlock()
		}
	}
}

// readLoop delivers inbound delivery payloads to the handler in arrival
// order until the connection drops
func (c *WebSocketChannel) readLoop(handler EventHandler, heartbeat time.Duration, closed <-chan struct{}) {
	defer c.teardown()

	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn == nil {
			return
		}

		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			select {
			case <-closed:
				// Expected during Close
			default:
				logger.Warn("WebSocket read failed",
					logger.String("order_id", c.orderID),
					logger.Err(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(2 * heartbeat))

		switch msg.Event {
		case constants.EventDeliveryUpdate:
			if handler != nil {
				handler(msg.Data)
			}
		case constants.EventPing:
			c.writeMessage(models.WSMessage{Event: constants.EventPong})
		case constants.EventPong, constants.EventSubscribe:
			// Acknowledgements carry no payload for us
		case constants.EventError:
			var wsErr models.WSErrorMessage
			if err := json.Unmarshal(msg.Data, &wsErr); err != nil {
				wsErr.Message = string(msg.Data)
			}
			logger.Warn("WebSocket endpoint reported an error",
				logger.String("order_id", c.orderID),
				logger.String("code", wsErr.Code),
				logger.String("message", wsErr.Message))
		default:
			logger.Debug("Ignoring unknown websocket event",
				logger.String("event", msg.Event))
		}
	}
}

// Closed reports connection loss or teardown
func (c *WebSocketChannel) Closed() <-chan struct{} {
	return c.closed
}

// Close tears down the connection. Idempotent.
func (c *WebSocketChannel) Close() error {
	c.teardown()
	return nil
}

func (c *WebSocketChannel) teardown() {
	c.mu.Lock()
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		conn.Close()
	}
}
