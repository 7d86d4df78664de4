package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kietsocola/foodorder/internal/pkg/models"
)

func TestDefaultScript(t *testing.T) {
	script := DefaultScript()
	require.Len(t, script, 5)

	for _, entry := range script {
		coord := models.Coordinate{Latitude: entry.Latitude, Longitude: entry.Longitude}
		assert.True(t, coord.Valid())
		assert.NotEmpty(t, entry.Status)
	}
	assert.Equal(t, "Đã nhận đơn hàng", script[0].Status)
	assert.Equal(t, "Sắp đến nơi", script[4].Status)

	// Callers get a copy, not the shared backing array
	script[0].Status = "mutated"
	assert.Equal(t, "Đã nhận đơn hàng", DefaultScript()[0].Status)
}

func TestDefaultSessionConfig(t *testing.T) {
	cfg := DefaultSessionConfig()
	assert.Equal(t, 3*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.ReconnectDelay)
	assert.Equal(t, 5*time.Second, cfg.SimulateInterval)
}
