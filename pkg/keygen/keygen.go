// Package keygen produces the signing identities of an attack scenario: a
// private scalar in [1, n) and the scheme's public-key encoding of it. Key
// serialization beyond scalar plus public point is out of scope.
package keygen

import (
	"math/big"

	"github.com/Caqil/affine-nonce/internal/security"
	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
)

// KeyPair holds one scenario's signing identity. The private scalar is owned
// by whichever signer the pair is handed to; the public bytes are immutable
// once derived.
type KeyPair struct {
	// Private is the signing secret, a scalar in [1, n)
	Private *big.Int

	// Public is the scheme's fixed-size public key encoding
	Public []byte

	// Curve is the curve the pair lives on
	Curve curve.Curve
}

// Generate draws a uniform non-zero private scalar from src and derives the
// public key
func Generate(c curve.Curve, src rand.Source) (*KeyPair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if src == nil {
		return nil, ErrNilSource
	}

	priv, err := rand.NonZeroScalar(src, c.Order())
	if err != nil {
		return nil, err
	}

	return FromPrivate(c, priv)
}

// FromPrivate builds a key pair around a caller-supplied private scalar
func FromPrivate(c curve.Curve, priv *big.Int) (*KeyPair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if err := security.ValidateScalarInRange(priv, c.Order()); err != nil {
		return nil, ErrInvalidPrivateKey
	}

	pub, err := c.PublicKeyBytes(priv)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		Private: new(big.Int).Set(priv),
		Public:  pub,
		Curve:   c,
	}, nil
}

// Zeroize clears the private scalar. The pair is unusable for signing
// afterwards.
func (kp *KeyPair) Zeroize() {
	security.ZeroScalar(kp.Private)
}
