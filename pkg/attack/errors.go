package attack

import "errors"

var (
	// ErrNilConfig is returned when Run is called without a configuration
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNotEnoughMessages is returned when fewer than two messages are
	// supplied; one signature pair is the minimum input for recovery
	ErrNotEnoughMessages = errors.New("at least two messages are required")

	// ErrNilCurve is returned when a curve is missing
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNoMatch is returned when no signature pair yields a verified key
	ErrNoMatch = errors.New("no signature pair yielded the private key")

	// ErrVerificationFailed is returned when the recovered scalar does not
	// reproduce the target public key
	ErrVerificationFailed = errors.New("recovered key does not match public key")
)
