package curve

import (
	"math/big"

	"filippo.io/edwards25519"
)

// edwards25519Curve implements Curve over filippo.io/edwards25519
type edwards25519Curve struct {
	order *big.Int
}

// ed25519GroupOrder is L = 2^252 + 27742317777372353535851937790883648493
var ed25519GroupOrder, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED", 16)

func newEdwards25519() Curve {
	return &edwards25519Curve{
		order: new(big.Int).Set(ed25519GroupOrder),
	}
}

func (c *edwards25519Curve) Name() string {
	return "ed25519"
}

func (c *edwards25519Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

func (c *edwards25519Curve) PublicKeyBytes(priv *big.Int) ([]byte, error) {
	if priv == nil || priv.Sign() < 0 {
		return nil, ErrInvalidScalar
	}

	reduced := new(big.Int).Mod(priv, c.order)
	if reduced.Sign() == 0 {
		return nil, ErrScalarZero
	}

	s, err := new(edwards25519.Scalar).SetCanonicalBytes(scalarLE32(reduced))
	if err != nil {
		return nil, err
	}

	point := new(edwards25519.Point).ScalarBaseMult(s)
	return point.Bytes(), nil
}

// NonceCommitment returns k mod n unchanged. In this system the EdDSA "R"
// is the raw nonce scalar rather than the point k*B; the scalar form is what
// feeds the challenge transform and what the fixtures encode. A faithful
// protocol implementation would commit to the point instead.
func (c *edwards25519Curve) NonceCommitment(k *big.Int) (*big.Int, error) {
	if k == nil || k.Sign() < 0 {
		return nil, ErrInvalidScalar
	}
	return new(big.Int).Mod(k, c.order), nil
}

// scalarLE32 encodes a reduced scalar as the 32 little-endian bytes
// edwards25519 expects
func scalarLE32(v *big.Int) []byte {
	out := make([]byte, 32)
	be := v.Bytes()
	for i := 0; i < len(be); i++ {
		out[i] = be[len(be)-1-i]
	}
	return out
}
