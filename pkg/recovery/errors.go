package recovery

import "errors"

var (
	// ErrNilSignature is returned when either signature is missing
	ErrNilSignature = errors.New("signature cannot be nil")

	// ErrSchemeMismatch is returned when the two signatures were produced
	// under different schemes
	ErrSchemeMismatch = errors.New("signatures use different schemes")

	// ErrMismatchedKeys is returned when the two signatures carry different
	// public keys: the affine relation is meaningless across signing
	// identities, so no arithmetic is attempted
	ErrMismatchedKeys = errors.New("signatures use different public keys")

	// ErrUnsupportedScheme is returned for a scheme tag the engine does not
	// know
	ErrUnsupportedScheme = errors.New("unsupported signature scheme")
)
