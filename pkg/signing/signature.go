// Package signing synthesizes signatures under a chosen, deliberately flawed
// nonce schedule. It simulates the vulnerable implementations this module's
// recovery engine breaks; the two sides are exact algebraic inverses and
// must round-trip bit-for-bit.
package signing

import "math/big"

// Scheme tags which signature equation produced a Signature
type Scheme int

const (
	// SchemeECDSA is the ECDSA-style scheme over secp256k1
	SchemeECDSA Scheme = iota
	// SchemeEdDSA is the EdDSA-style scheme with a scalar-valued R
	SchemeEdDSA
)

func (s Scheme) String() string {
	switch s {
	case SchemeECDSA:
		return "ecdsa"
	case SchemeEdDSA:
		return "eddsa"
	default:
		return "unknown"
	}
}

// Signature is the immutable output of one forward-signing step.
type Signature struct {
	// Scheme tags the signature equation
	Scheme Scheme

	// R is the nonce commitment: x(k*G) mod n for ECDSA, the nonce scalar
	// itself for the EdDSA-style scheme
	R *big.Int

	// S is the signature scalar
	S *big.Int

	// Challenge is the hash-derived scalar (z or h). It is recomputable
	// from R, PublicKey and Message and is carried for traceability only;
	// recovery never trusts it.
	Challenge *big.Int

	// Message is the signed message
	Message []byte

	// PublicKey is the signer's public key encoding. Two signatures are
	// jointly attackable only when these bytes are identical.
	PublicKey []byte
}
