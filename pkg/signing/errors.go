package signing

import "errors"

var (
	// ErrNilKeyPair is returned when no key pair is provided
	ErrNilKeyPair = errors.New("key pair cannot be nil")

	// ErrNilField is returned when no scalar field is provided
	ErrNilField = errors.New("field cannot be nil")

	// ErrNilSchedule is returned when no nonce schedule is provided
	ErrNilSchedule = errors.New("nonce schedule cannot be nil")

	// ErrNoMessages is returned when an empty message batch is provided
	ErrNoMessages = errors.New("message batch cannot be empty")

	// ErrInvalidPrivateKey is returned when the private scalar is outside [1, n)
	ErrInvalidPrivateKey = errors.New("private key out of range")

	// ErrEmptyPublicKey is returned when the public key bytes are missing
	ErrEmptyPublicKey = errors.New("public key cannot be empty")

	// ErrDegenerateNonce is returned when an ECDSA-style nonce yields k = 0
	// or r = 0. The signer does not retry with a fresh nonce: retrying would
	// silently change the schedule under study, so the whole call fails.
	ErrDegenerateNonce = errors.New("degenerate nonce: k or r is zero mod n")
)
