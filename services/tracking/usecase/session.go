package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/kietsocola/foodorder/internal/pkg/constants"
	"github.com/kietsocola/foodorder/internal/pkg/errs"
	"github.com/kietsocola/foodorder/internal/pkg/logger"
	"github.com/kietsocola/foodorder/internal/pkg/models"
	"github.com/kietsocola/foodorder/internal/pkg/realtime"
	"github.com/kietsocola/foodorder/internal/pkg/retry"
	"github.com/kietsocola/foodorder/services/tracking"
)

// State is the connection mode of a tracking session
type State int

const (
	// StateIdle is the state before Open
	StateIdle State = iota
	// StateConnecting covers the live handshake attempt
	StateConnecting
	// StateLive is a session backed by an actual realtime channel
	StateLive
	// StateSimulated is a session backed by the local event script
	StateSimulated
	// StateClosed is terminal
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateLive:
		return "live"
	case StateSimulated:
		return "simulated"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// SessionConfig holds the tunable timing of a session
type SessionConfig struct {
	// ConnectTimeout is the live handshake deadline before degrading
	ConnectTimeout time.Duration
	// ReconnectDelay is the fixed delay between dial attempts while connecting
	ReconnectDelay time.Duration
	// SimulateInterval is the cadence of synthetic events
	SimulateInterval time.Duration
	// Script overrides the default synthetic event sequence (tests)
	Script []ScriptEntry
}

// DefaultSessionConfig returns the production timings from the
// realtime boundary contract
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ConnectTimeout:   3 * time.Second,
		ReconnectDelay:   5 * time.Second,
		SimulateInterval: 5 * time.Second,
	}
}

// Session is the lifetime-bounded tracking context for one order.
// All state transitions happen under mu; only the first of {handshake
// completed, dial failed, deadline elapsed} takes effect, and no
// observer invocation can begin after Close returns.
type Session struct {
	orderID string
	channel realtime.Channel
	cfg     SessionConfig

	mu            sync.Mutex
	state         State
	observer      tracking.Observer
	lastEvent     *models.DeliveryEvent
	lastTimestamp int64
	connectCancel context.CancelFunc
	simDone       chan struct{}
}

// NewSession creates an idle session bound to one order and one channel
func NewSession(orderID string, channel realtime.Channel, cfg SessionConfig) *Session {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 3 * time.Second
	}
	if cfg.SimulateInterval <= 0 {
		cfg.SimulateInterval = 5 * time.Second
	}
	if len(cfg.Script) == 0 {
		cfg.Script = DefaultScript()
	}
	return &Session{
		orderID: orderID,
		channel: channel,
		cfg:     cfg,
		state:   StateIdle,
	}
}

// OrderID returns the order this session tracks
func (s *Session) OrderID() string {
	return s.orderID
}

// State returns the current connection mode
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Phase maps the connection mode onto the single user-visible status line
func (s *Session) Phase() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		return constants.PhaseCreating
	case StateConnecting:
		return constants.PhaseConnecting
	case StateLive:
		return constants.PhaseTracking
	case StateSimulated:
		return constants.PhaseDegraded
	default:
		return constants.PhaseClosed
	}
}

// LastEvent returns the most recently applied delivery event, the
// last-known state shown after a finite simulation completes
func (s *Session) LastEvent() *models.DeliveryEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastEvent == nil {
		return nil
	}
	ev := *s.lastEvent
	return &ev
}

// SubscribeObserver registers the single observer; a later registration
// replaces the earlier one
func (s *Session) SubscribeObserver(observer tracking.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return
	}
	s.observer = observer
}

// Open starts the live handshake. The session degrades to simulation if
// the channel errors or the connect deadline elapses, whichever is first.
func (s *Session) Open() error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return fmt.Errorf("order %s: %w", s.orderID, errs.ErrSessionClosed)
	}
	if s.state != StateIdle {
		s.mu.Unlock()
		return fmt.Errorf("session for order %s already opened (state %s)", s.orderID, s.state)
	}
	s.state = StateConnecting

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ConnectTimeout)
	s.connectCancel = cancel
	s.mu.Unlock()

	go s.connect(ctx)
	return nil
}

// connect races the handshake against the connect deadline. Dial
// attempts repeat at the fixed reconnect delay for as long as the
// deadline allows.
func (s *Session) connect(ctx context.Context) {
	retrier := retry.New(retry.FixedDelayConfig(3, s.cfg.ReconnectDelay))
	err := retrier.Execute(ctx, func(ctx context.Context) error {
		return s.channel.Connect(ctx, s.orderID, s.handleInbound)
	})

	s.mu.Lock()
	if s.state != StateConnecting {
		s.mu.Unlock()
		// Closed (or superseded) while dialing; tear down a late handshake
		if err == nil {
			s.channel.Close()
		}
		return
	}

	if err != nil {
		logger.Warn("Live channel unavailable, enabling simulated tracking",
			logger.String("order_id", s.orderID),
			logger.Err(err))
		s.startSimulationLocked()
		s.mu.Unlock()
		return
	}

	closed := s.channel.Closed()
	s.state = StateLive
	s.mu.Unlock()

	logger.Info("Tracking session live",
		logger.String("order_id", s.orderID))

	go s.watchChannel(closed)
}

// watchChannel degrades a live session to simulation when the channel
// drops mid-session; tracking never terminates on network failure
func (s *Session) watchChannel(closed <-chan struct{}) {
	<-closed

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLive {
		return
	}

	logger.Warn("Live channel lost mid-session, enabling simulated tracking",
		logger.String("order_id", s.orderID))
	s.startSimulationLocked()
}

// handleInbound parses a raw channel payload into a DeliveryEvent and
// hands it to the observer. Malformed payloads are logged and dropped;
// they never change session state.
func (s *Session) handleInbound(data []byte) {
	var event models.DeliveryEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.Warn("Dropping malformed delivery payload",
			logger.String("order_id", s.orderID),
			logger.String("error_code", constants.ErrorInvalidFormat),
			logger.Err(fmt.Errorf("%w: %v", errs.ErrMalformedDeliveryPayload, err)))
		return
	}
	if !event.Valid() {
		logger.Warn("Dropping delivery payload with out-of-range coordinates",
			logger.String("order_id", s.orderID),
			logger.String("error_code", constants.ErrorInvalidLocation),
			logger.Float64("latitude", event.Latitude),
			logger.Float64("longitude", event.Longitude))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLive {
		return
	}
	if event.OrderID != s.orderID {
		return
	}
	s.applyEventLocked(event)
}

// applyEventLocked applies one event with last-write-wins semantics per
// order: anything at or before the applied timestamp is a stale
// redelivery and is skipped.
func (s *Session) applyEventLocked(event models.DeliveryEvent) {
	if s.lastTimestamp != 0 && event.Timestamp <= s.lastTimestamp {
		return
	}
	s.lastTimestamp = event.Timestamp
	s.lastEvent = &event

	if s.observer != nil {
		s.observer(event)
	}
}

// startSimulationLocked enters simulated mode and starts the finite
// synthetic event sequence. Callers hold mu.
func (s *Session) startSimulationLocked() {
	if s.state == StateClosed || s.state == StateSimulated {
		return
	}
	s.state = StateSimulated

	done := make(chan struct{})
	s.simDone = done
	go s.runSimulation(done)
}

// runSimulation walks the script once at the configured cadence. After
// the final entry the ticker stops and the session remains Simulated so
// the last-known state stays visible.
func (s *Session) runSimulation(done chan struct{}) {
	ticker := time.NewTicker(s.cfg.SimulateInterval)
	defer ticker.Stop()

	for _, entry := range s.cfg.Script {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		if s.state != StateSimulated {
			s.mu.Unlock()
			return
		}
		event := models.DeliveryEvent{
			OrderID:   s.orderID,
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			Timestamp: models.UnixMilli(models.Now()),
			Status:    entry.Status,
		}
		s.applyEventLocked(event)
		s.mu.Unlock()
	}

	logger.Info("Simulated delivery sequence completed",
		logger.String("order_id", s.orderID),
		logger.Int("events", len(s.cfg.Script)))
}

// Publish sends a location sample over the live channel. Outside Live
// this is an expected no-op, never an error: publishing before or
// without a live channel is a normal condition.
func (s *Session) Publish(sample models.LocationSample) error {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	if state != StateLive {
		return nil
	}

	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal location sample: %w", err)
	}

	// Fire-and-forget: a failed send is logged, not surfaced; a dead
	// connection degrades via watchChannel
	if err := s.channel.Publish(data); err != nil {
		logger.Warn("Failed to publish location sample",
			logger.String("order_id", s.orderID),
			logger.Err(err))
	}
	return nil
}

// Close tears the session down from any state: the connect race and the
// simulation ticker are cancelled, the channel is closed, the observer
// is cleared. Idempotent; no observer invocation happens after it returns.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return nil
	}
	s.state = StateClosed
	s.observer = nil

	if s.connectCancel != nil {
		s.connectCancel()
		s.connectCancel = nil
	}
	if s.simDone != nil {
		close(s.simDone)
		s.simDone = nil
	}
	s.mu.Unlock()

	if err := s.channel.Close(); err != nil {
		logger.Warn("Error closing realtime channel",
			logger.String("order_id", s.orderID),
			logger.Err(err))
	}

	logger.Info("Tracking session closed",
		logger.String("order_id", s.orderID))
	return nil
}
