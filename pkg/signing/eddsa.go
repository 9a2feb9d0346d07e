package signing

import (
	"math/big"

	"github.com/Caqil/affine-nonce/internal/security"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/hash"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/nonce"
)

// EdDSASigner produces EdDSA-style signatures, one per message:
//
//	R = k mod n                       (the nonce scalar itself)
//	h = SHA-512(R || A || M) mod n    (little-endian, R as 32 LE bytes)
//	s = (k + h*a) mod n
//
// R is a scalar, not a curve point: the simplification keeps the
// affine-relation algebra and the fixture records in pure field arithmetic.
// Standard EdDSA derives nonces deterministically; random or related nonces
// here simulate the broken implementations under study.
type EdDSASigner struct {
	field  *field.Field
	oracle hash.EdDSAOracle
	priv   *big.Int
	pub    []byte
}

// NewEdDSASigner builds a signer around an Edwards25519 key pair
func NewEdDSASigner(kp *keygen.KeyPair) (*EdDSASigner, error) {
	if kp == nil || kp.Curve == nil {
		return nil, ErrNilKeyPair
	}

	f, err := field.New(kp.Curve.Order())
	if err != nil {
		return nil, err
	}
	return NewEdDSASignerWithField(f, kp.Private, kp.Public)
}

// NewEdDSASignerWithField builds a signer over an explicit scalar field and
// public-key bytes. This is how the small-modulus unit scenarios are built;
// the algebra is identical at any prime order.
func NewEdDSASignerWithField(f *field.Field, priv *big.Int, publicKey []byte) (*EdDSASigner, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := security.ValidateScalarInRange(priv, f.Order()); err != nil {
		return nil, ErrInvalidPrivateKey
	}
	if len(publicKey) == 0 {
		return nil, ErrEmptyPublicKey
	}

	return &EdDSASigner{
		field:  f,
		oracle: hash.EdDSAOracle{Order: f.Order()},
		priv:   new(big.Int).Set(priv),
		pub:    append([]byte(nil), publicKey...),
	}, nil
}

// PublicKey returns the signer's public key encoding
func (s *EdDSASigner) PublicKey() []byte {
	return s.pub
}

// Sign produces one signature per message, in message order
func (s *EdDSASigner) Sign(sched *nonce.Schedule, messages [][]byte) ([]*Signature, error) {
	if sched == nil {
		return nil, ErrNilSchedule
	}
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	sigs := make([]*Signature, 0, len(messages))
	for _, msg := range messages {
		k := s.field.Reduce(sched.Next())
		h := s.oracle.Challenge(k, s.pub, msg)

		sig := &Signature{
			Scheme:    SchemeEdDSA,
			R:         k,
			S:         s.field.Add(k, s.field.Mul(h, s.priv)),
			Challenge: h,
			Message:   append([]byte(nil), msg...),
			PublicKey: s.pub,
		}
		sigs = append(sigs, sig)
	}

	return sigs, nil
}

// Close zeroizes the signer's private scalar
func (s *EdDSASigner) Close() {
	security.ZeroScalar(s.priv)
}
