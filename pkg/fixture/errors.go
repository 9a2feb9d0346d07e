package fixture

import "errors"

var (
	// ErrNilSignature is returned when a nil signature is offered for encoding
	ErrNilSignature = errors.New("signature cannot be nil")

	// ErrWrongScheme is returned when a signature is encoded with the codec of
	// the other scheme
	ErrWrongScheme = errors.New("signature scheme does not match record type")

	// ErrInvalidInteger is returned when a decimal field does not parse
	ErrInvalidInteger = errors.New("invalid decimal integer")

	// ErrInvalidHex is returned when a hex field does not parse
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrMissingField is returned when a required record field is absent
	ErrMissingField = errors.New("missing record field")

	// ErrNilKeyPair is returned when a nil key pair is offered for encoding
	ErrNilKeyPair = errors.New("key pair cannot be nil")
)
