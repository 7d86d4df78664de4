package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local environments)
// and then from environment variables.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "foodorder-client")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// API boundary config
	configs.API.BaseURL = GetEnv("API_BASE_URL", "http://localhost:8080/api/v1")
	configs.API.TimeoutSeconds = GetEnvAsInt("API_TIMEOUT_SECONDS", 5)

	// Realtime channel config
	configs.Realtime.Transport = GetEnv("REALTIME_TRANSPORT", "websocket")
	configs.Realtime.WebSocketURL = GetEnv("REALTIME_WS_URL", "ws://localhost:8080/api/ws")
	configs.Realtime.NATSURL = GetEnv("REALTIME_NATS_URL", "nats://localhost:4222")
	configs.Realtime.HeartbeatSeconds = GetEnvAsInt("REALTIME_HEARTBEAT_SECONDS", 4)
	configs.Realtime.ReconnectSeconds = GetEnvAsInt("REALTIME_RECONNECT_SECONDS", 5)

	// Tracking session config
	configs.Tracking.ConnectTimeoutMs = GetEnvAsInt("TRACKING_CONNECT_TIMEOUT_MS", 3000)
	configs.Tracking.SimulateIntervalMs = GetEnvAsInt("TRACKING_SIMULATE_INTERVAL_MS", 5000)

	// Order config
	configs.Order.AllowFallback = GetEnvAsBool("ORDER_ALLOW_FALLBACK", true)
	configs.Order.FallbackDelayMs = GetEnvAsInt("ORDER_FALLBACK_DELAY_MS", 1000)
	configs.Order.DefaultAddress = GetEnv("ORDER_DEFAULT_ADDRESS", "123 Nguyen Trai, Ha Noi")

	// Geolocation source config
	configs.Position.HighAccuracy = GetEnvAsBool("POSITION_HIGH_ACCURACY", true)
	configs.Position.TimeoutSeconds = GetEnvAsInt("POSITION_TIMEOUT_SECONDS", 5)
	configs.Position.MaximumAgeSeconds = GetEnvAsInt("POSITION_MAX_AGE_SECONDS", 0)
	configs.Position.IntervalMs = GetEnvAsInt("POSITION_INTERVAL_MS", 5000)
	configs.Position.StartLatitude = GetEnvAsFloat("POSITION_START_LATITUDE", 21.0278)
	configs.Position.StartLongitude = GetEnvAsFloat("POSITION_START_LONGITUDE", 105.8342)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "foodorder-client")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
