// Package errs defines the error kinds shared across service boundaries.
// Callers wrap them with fmt.Errorf("...: %w", err) and match with errors.Is.
package errs

import "errors"

var (
	// ErrCatalogUnavailable indicates the venue boundary failed; recovered
	// locally via the fallback catalog
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrOrderSubmissionFailed indicates the order boundary rejected or
	// never received the submission
	ErrOrderSubmissionFailed = errors.New("order submission failed")

	// ErrChannelUnavailable indicates the realtime channel could not be
	// established; recovered locally via simulation
	ErrChannelUnavailable = errors.New("realtime channel unavailable")

	// ErrMalformedDeliveryPayload indicates an inbound delivery event that
	// could not be decoded or carried out-of-range coordinates
	ErrMalformedDeliveryPayload = errors.New("malformed delivery payload")

	// ErrPositionUnavailable indicates the position source could not
	// produce a fix for this tick
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrInvalidCart indicates an empty cart, a zero quantity, or a
	// cross-venue mix; the one user-facing, blocking error
	ErrInvalidCart = errors.New("invalid cart")

	// ErrSessionClosed indicates an operation on a closed tracking session
	ErrSessionClosed = errors.New("tracking session closed")
)
