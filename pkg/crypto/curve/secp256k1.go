package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// secp256k1Curve implements Curve over the decred secp256k1 backend
type secp256k1Curve struct {
	order *big.Int
}

func newSecp256k1() Curve {
	return &secp256k1Curve{
		order: new(big.Int).Set(secp256k1.S256().N),
	}
}

func (c *secp256k1Curve) Name() string {
	return "secp256k1"
}

func (c *secp256k1Curve) Order() *big.Int {
	return new(big.Int).Set(c.order)
}

func (c *secp256k1Curve) PublicKeyBytes(priv *big.Int) ([]byte, error) {
	k, err := c.reduceNonZero(priv)
	if err != nil {
		return nil, err
	}

	privKey := secp256k1.PrivKeyFromBytes(paddedBytes(k, 32))
	return privKey.PubKey().SerializeCompressed(), nil
}

// NonceCommitment computes r = x(k*G) mod n. A zero result is possible in
// principle and left to the caller: the forward signer treats it as a
// degenerate signature.
func (c *secp256k1Curve) NonceCommitment(k *big.Int) (*big.Int, error) {
	kr, err := c.reduceNonZero(k)
	if err != nil {
		return nil, err
	}

	nonceKey := secp256k1.PrivKeyFromBytes(paddedBytes(kr, 32))
	r := new(big.Int).Set(nonceKey.PubKey().X())
	return r.Mod(r, c.order), nil
}

func (c *secp256k1Curve) reduceNonZero(v *big.Int) (*big.Int, error) {
	if v == nil || v.Sign() < 0 {
		return nil, ErrInvalidScalar
	}
	r := new(big.Int).Mod(v, c.order)
	if r.Sign() == 0 {
		return nil, ErrScalarZero
	}
	return r, nil
}

// ParsePublicKey decodes a compressed or uncompressed SEC point encoding
func ParsePublicKey(data []byte) (*big.Int, *big.Int, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, nil, ErrInvalidPublicKey
	}
	return pub.X(), pub.Y(), nil
}
