package rand

import "errors"

var (
	// ErrInvalidLength is returned when a non-positive byte length is requested
	ErrInvalidLength = errors.New("length must be positive")

	// ErrNilMax is returned when the scalar bound is nil
	ErrNilMax = errors.New("max cannot be nil")

	// ErrInvalidMax is returned when the scalar bound is not positive
	ErrInvalidMax = errors.New("max must be positive")

	// ErrEmptySeed is returned when a seeded source is built from an empty seed
	ErrEmptySeed = errors.New("seed cannot be empty")
)
