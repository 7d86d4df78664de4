package constants

import "fmt"

// Realtime subjects
const (
	// SubjectLocationUpdate is the fixed outbound destination for
	// customer position samples
	SubjectLocationUpdate = "location.update"

	// SubjectDeliveryPrefix prefixes per-order delivery topics
	SubjectDeliveryPrefix = "delivery."
)

// DeliverySubject returns the per-order delivery topic
func DeliverySubject(orderID string) string {
	return fmt.Sprintf("%s%s", SubjectDeliveryPrefix, orderID)
}

// WebSocket event types
const (
	EventError          = "error"
	EventPing           = "ping"
	EventPong           = "pong"
	EventSubscribe      = "subscribe"
	EventLocationUpdate = "location_update"
	EventDeliveryUpdate = "delivery_update"
)
