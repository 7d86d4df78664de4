package constants

// Tracking phases shown as the single user-visible status line
const (
	PhaseCreating   = "creating"
	PhaseConnecting = "connecting"
	PhaseTracking   = "tracking"
	PhaseDegraded   = "degraded"
	PhaseClosed     = "closed"
)

// Error codes attached to dropped or rejected payloads
const (
	ErrorInvalidFormat   = "invalid_format"
	ErrorInvalidLocation = "invalid_location"
	ErrorInvalidCart     = "invalid_cart"
)
