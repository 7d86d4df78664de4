package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	API      APIConfig
	Realtime RealtimeConfig
	Tracking TrackingConfig
	Order    OrderConfig
	Position PositionConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig contains the catalog/order HTTP boundary configuration
type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// RealtimeConfig contains the realtime channel boundary configuration
type RealtimeConfig struct {
	// Transport selects the channel implementation: "websocket" or "nats"
	Transport string
	// WebSocketURL is the realtime websocket endpoint
	WebSocketURL string
	// NATSURL is the NATS server URL
	NATSURL string
	// HeartbeatSeconds is the ping interval in both directions
	HeartbeatSeconds int
	// ReconnectSeconds is the fixed delay between dial attempts while connecting
	ReconnectSeconds int
}

// TrackingConfig contains delivery tracking session configuration
type TrackingConfig struct {
	// ConnectTimeoutMs is the live handshake deadline before degrading to simulation
	ConnectTimeoutMs int
	// SimulateIntervalMs is the cadence of synthetic delivery events
	SimulateIntervalMs int
}

// OrderConfig contains order submission configuration
type OrderConfig struct {
	// AllowFallback enables the locally synthesized order response when
	// the order boundary is unreachable
	AllowFallback bool
	// FallbackDelayMs is the simulated latency of the synthesized response
	FallbackDelayMs int
	// DefaultAddress is used when the caller provides no shipping address
	DefaultAddress string
}

// PositionConfig contains geolocation source configuration
type PositionConfig struct {
	// HighAccuracy requests a precise fix from the position source
	HighAccuracy bool
	// TimeoutSeconds is the per-fix timeout
	TimeoutSeconds int
	// MaximumAgeSeconds is the oldest acceptable cached fix; zero demands a fresh fix
	MaximumAgeSeconds int
	// IntervalMs is the sample cadence of the simulated source
	IntervalMs int
	// StartLatitude/StartLongitude seed the simulated source
	StartLatitude  float64
	StartLongitude float64
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
