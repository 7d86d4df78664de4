package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSSubscribeRequest asks the realtime endpoint to route the
// per-order delivery topic onto this connection
type WSSubscribeRequest struct {
	Topic string `json:"topic"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
