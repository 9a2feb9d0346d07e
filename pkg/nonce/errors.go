package nonce

import "errors"

var (
	// ErrNilField is returned when no scalar field is provided
	ErrNilField = errors.New("field cannot be nil")

	// ErrNilStart is returned when no start nonce is provided
	ErrNilStart = errors.New("start nonce cannot be nil")

	// ErrNilSource is returned when no random source is provided
	ErrNilSource = errors.New("random source cannot be nil")

	// ErrInvalidRelation is returned when a relation has nil coefficients
	ErrInvalidRelation = errors.New("relation coefficients cannot be nil")
)
