// Package curve provides the per-scheme elliptic curve capability used by
// forward signing and key generation: scalar-field order, public-key
// encoding, and the nonce commitment carried in a signature.
package curve

import "math/big"

// Type selects one of the supported curves
type Type int

const (
	// Secp256k1 is the short-Weierstrass curve of the ECDSA-style scheme
	Secp256k1 Type = iota
	// Edwards25519 is the curve of the EdDSA-style scheme
	Edwards25519
)

// Curve is the capability interface the signers and keygen consume. The two
// schemes share no state; they differ only in encoding and in whether a real
// curve point underlies the nonce.
type Curve interface {
	// Name returns the curve name
	Name() string

	// Order returns the scalar-field order n
	Order() *big.Int

	// PublicKeyBytes returns the scheme's fixed-size encoding of priv*G:
	// a 33-byte compressed SEC point for secp256k1, a 32-byte encoded
	// Edwards point for Edwards25519
	PublicKeyBytes(priv *big.Int) ([]byte, error)

	// NonceCommitment maps a nonce to the value the signature carries.
	// For secp256k1 this is the x-coordinate of k*G mod n. For the
	// EdDSA-style scheme in this system it is the bare scalar k mod n:
	// R is deliberately a scalar, not a point, so that the affine-relation
	// algebra and the existing fixtures round-trip (see package signing).
	NonceCommitment(k *big.Int) (*big.Int, error)
}

// New creates a curve instance for the given type
func New(t Type) (Curve, error) {
	switch t {
	case Secp256k1:
		return newSecp256k1(), nil
	case Edwards25519:
		return newEdwards25519(), nil
	default:
		return nil, ErrUnsupportedCurve
	}
}

// paddedBytes returns the big-endian bytes of v left-padded to length
func paddedBytes(v *big.Int, length int) []byte {
	b := v.Bytes()
	if len(b) >= length {
		return b
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}
