package booking

import "errors"

var (
	// ErrSessionNotFound means the booking session is unknown or its TTL expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrStepIncomplete means the current step's completion gate does not
	// hold; the step index is left unchanged.
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrWrongStep means a step's data was submitted while the wizard is
	// on a different step.
	ErrWrongStep = errors.New("operation does not match the current step")

	// ErrConfirmInFlight guards against double submission: a confirm is
	// already being processed for the session.
	ErrConfirmInFlight = errors.New("booking confirmation already in progress")
)
