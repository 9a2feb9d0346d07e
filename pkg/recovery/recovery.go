// Package recovery solves for the private scalar given two signatures whose
// nonces satisfy a known affine relation k2 = alpha*k1 + beta (mod n). It is
// the algebraic inverse of package signing: a closed-form modular linear
// equation with one unknown, plus one singular case.
//
// The engine is a pure function of its inputs. It never verifies a recovered
// scalar against the public key; that is the caller's job (see pkg/attack).
package recovery

import (
	"math/big"

	"github.com/Caqil/affine-nonce/internal/security"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/hash"
	"github.com/Caqil/affine-nonce/pkg/nonce"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

// Result is the outcome of one recovery attempt. Indeterminate is an
// expected, legal outcome, not a failure: it means the two equations are
// linearly dependent under the given relation and this pair cannot pin down
// the scalar. Over uniformly random nonces its probability is 1/n, but it
// becomes common when (alpha, beta) does not match the actual generation
// policy.
type Result struct {
	// PrivateKey is the recovered scalar; nil when Indeterminate
	PrivateKey *big.Int

	// Indeterminate reports that the linear system is singular for this
	// signature pair and relation
	Indeterminate bool
}

// Recover solves for the private scalar over the scheme's own field order
func Recover(sig1, sig2 *signing.Signature, rel nonce.Relation) (*Result, error) {
	if sig1 == nil || sig2 == nil {
		return nil, ErrNilSignature
	}

	var f *field.Field
	switch sig1.Scheme {
	case signing.SchemeECDSA:
		f = field.Secp256k1()
	case signing.SchemeEdDSA:
		f = field.Ed25519()
	default:
		return nil, ErrUnsupportedScheme
	}

	return RecoverWithField(f, sig1, sig2, rel)
}

// RecoverWithField solves over an explicit field, allowing the small prime
// orders used in unit scenarios
func RecoverWithField(f *field.Field, sig1, sig2 *signing.Signature, rel nonce.Relation) (*Result, error) {
	if f == nil {
		return nil, field.ErrInvalidOrder
	}
	if sig1 == nil || sig2 == nil {
		return nil, ErrNilSignature
	}
	if err := rel.Validate(); err != nil {
		return nil, err
	}
	if sig1.Scheme != sig2.Scheme {
		return nil, ErrSchemeMismatch
	}
	if !security.ConstantTimeCompare(sig1.PublicKey, sig2.PublicKey) {
		return nil, ErrMismatchedKeys
	}

	switch sig1.Scheme {
	case signing.SchemeEdDSA:
		return recoverEdDSA(f, sig1, sig2, rel), nil
	case signing.SchemeECDSA:
		return recoverECDSA(f, sig1, sig2, rel), nil
	default:
		return nil, ErrUnsupportedScheme
	}
}

// recoverEdDSA solves the EdDSA-style system
//
//	s1 = k1 + h1*a
//	s2 = k2 + h2*a,  k2 = alpha*k1 + beta
//	=> a = (s2 - alpha*s1 - beta) / (h2 - alpha*h1)  (mod n)
//
// Challenges are recomputed from (R, A, M); the redundant Challenge field on
// the signatures is never trusted.
func recoverEdDSA(f *field.Field, sig1, sig2 *signing.Signature, rel nonce.Relation) *Result {
	h1 := hash.ChallengeScalar(sig1.R, sig1.PublicKey, sig1.Message, f.Order())
	h2 := hash.ChallengeScalar(sig2.R, sig2.PublicKey, sig2.Message, f.Order())

	num := f.Sub(f.Sub(sig2.S, f.Mul(rel.Alpha, sig1.S)), rel.Beta)
	den := f.Sub(h2, f.Mul(rel.Alpha, h1))

	return solve(f, num, den)
}

// recoverECDSA solves the ECDSA-style system. Substituting
// k_i = s_i⁻¹(z_i + r_i*a) into k2 = alpha*k1 + beta and clearing
// denominators gives
//
//	a = (alpha*s2*z1 - s1*z2 + beta*s1*s2) / (r2*s1 - alpha*r1*s2)  (mod n)
func recoverECDSA(f *field.Field, sig1, sig2 *signing.Signature, rel nonce.Relation) *Result {
	z1 := hash.MessageScalar(sig1.Message, f.Order())
	z2 := hash.MessageScalar(sig2.Message, f.Order())

	num := f.Mul(f.Mul(rel.Alpha, sig2.S), z1)
	num = f.Sub(num, f.Mul(sig1.S, z2))
	num = f.Add(num, f.Mul(rel.Beta, f.Mul(sig1.S, sig2.S)))

	den := f.Sub(f.Mul(sig2.R, sig1.S), f.Mul(rel.Alpha, f.Mul(sig1.R, sig2.S)))

	return solve(f, num, den)
}

func solve(f *field.Field, num, den *big.Int) *Result {
	if f.IsZero(den) {
		return &Result{Indeterminate: true}
	}

	inv, err := f.Inverse(den)
	if err != nil {
		// unreachable after the zero check on a prime field
		return &Result{Indeterminate: true}
	}

	return &Result{PrivateKey: f.Mul(num, inv)}
}
