package field

import "errors"

var (
	// ErrInvalidOrder is returned when the field order is nil or not positive
	ErrInvalidOrder = errors.New("field order must be a positive prime")

	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("scalar cannot be nil")

	// ErrNoInverse is returned when a value has no multiplicative inverse,
	// i.e. it is congruent to zero mod the field order
	ErrNoInverse = errors.New("value has no modular inverse")
)
