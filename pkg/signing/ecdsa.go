package signing

import (
	"fmt"
	"math/big"

	"github.com/Caqil/affine-nonce/internal/security"
	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/hash"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/nonce"
)

// ECDSASigner produces ECDSA-style signatures, one per message, consuming
// the next nonce from a schedule for each:
//
//	r = x(k*G) mod n
//	z = SHA-256(message) mod n
//	s = k⁻¹ (z + r*a) mod n
type ECDSASigner struct {
	field  *field.Field
	curve  curve.Curve
	oracle hash.ECDSAOracle
	priv   *big.Int
	pub    []byte
}

// NewECDSASigner builds a signer around a key pair. The signer owns its copy
// of the private scalar; call Close when done with it.
func NewECDSASigner(kp *keygen.KeyPair) (*ECDSASigner, error) {
	if kp == nil || kp.Curve == nil {
		return nil, ErrNilKeyPair
	}

	f, err := field.New(kp.Curve.Order())
	if err != nil {
		return nil, err
	}
	if err := security.ValidateScalarInRange(kp.Private, kp.Curve.Order()); err != nil {
		return nil, ErrInvalidPrivateKey
	}
	if len(kp.Public) == 0 {
		return nil, ErrEmptyPublicKey
	}

	return &ECDSASigner{
		field:  f,
		curve:  kp.Curve,
		oracle: hash.ECDSAOracle{Order: f.Order()},
		priv:   new(big.Int).Set(kp.Private),
		pub:    kp.Public,
	}, nil
}

// PublicKey returns the signer's public key encoding
func (s *ECDSASigner) PublicKey() []byte {
	return s.pub
}

// Sign produces one signature per message, in message order. A nonce that
// yields k = 0 or r = 0 fails the whole call with ErrDegenerateNonce; there
// is no retry.
func (s *ECDSASigner) Sign(sched *nonce.Schedule, messages [][]byte) ([]*Signature, error) {
	if sched == nil {
		return nil, ErrNilSchedule
	}
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}

	sigs := make([]*Signature, 0, len(messages))
	for i, msg := range messages {
		k := sched.Next()
		if s.field.IsZero(k) {
			return nil, fmt.Errorf("message %d: %w", i, ErrDegenerateNonce)
		}

		r, err := s.curve.NonceCommitment(k)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		if s.field.IsZero(r) {
			return nil, fmt.Errorf("message %d: %w", i, ErrDegenerateNonce)
		}

		z := s.oracle.Challenge(nil, nil, msg)

		kInv, err := s.field.Inverse(k)
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}

		sig := &Signature{
			Scheme:    SchemeECDSA,
			R:         r,
			S:         s.field.Mul(kInv, s.field.Add(z, s.field.Mul(r, s.priv))),
			Challenge: z,
			Message:   append([]byte(nil), msg...),
			PublicKey: s.pub,
		}
		sigs = append(sigs, sig)
	}

	return sigs, nil
}

// Close zeroizes the signer's private scalar
func (s *ECDSASigner) Close() {
	security.ZeroScalar(s.priv)
}
