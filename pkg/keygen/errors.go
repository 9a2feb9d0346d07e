package keygen

import "errors"

var (
	// ErrNilCurve is returned when no curve is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNilSource is returned when no random source is provided
	ErrNilSource = errors.New("random source cannot be nil")

	// ErrInvalidPrivateKey is returned when a supplied private scalar is
	// outside [1, n)
	ErrInvalidPrivateKey = errors.New("private key out of range")
)
