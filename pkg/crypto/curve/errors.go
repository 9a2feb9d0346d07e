package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned for an unknown curve type
	ErrUnsupportedCurve = errors.New("unsupported curve type")

	// ErrInvalidScalar is returned when a scalar is nil or negative
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrScalarZero is returned when a scalar reduces to zero where a
	// non-zero value is required
	ErrScalarZero = errors.New("scalar is zero mod curve order")

	// ErrInvalidPublicKey is returned when public key bytes do not decode
	// to a valid point
	ErrInvalidPublicKey = errors.New("invalid public key encoding")
)
