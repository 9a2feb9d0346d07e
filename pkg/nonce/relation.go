// Package nonce models flawed per-signature nonce generation. Every policy
// this module studies is one recurrence over the scalar field:
//
//	nonce_{i+1} = alpha*nonce_i + beta  (mod n)
//
// Nonce reuse, counters and hardcoded steps are special cases of the same
// affine relation, which is exactly what makes them jointly breakable.
package nonce

import (
	"fmt"
	"math/big"

	"github.com/Caqil/affine-nonce/pkg/crypto/field"
)

// Relation is the (alpha, beta) pair relating consecutive nonces
type Relation struct {
	Alpha *big.Int
	Beta  *big.Int
}

// Reuse is the degenerate relation (1, 0): every nonce equals the first
func Reuse() Relation {
	return Relation{Alpha: big.NewInt(1), Beta: big.NewInt(0)}
}

// Counter is the relation (1, 1): nonces increment by one per signature
func Counter() Relation {
	return Relation{Alpha: big.NewInt(1), Beta: big.NewInt(1)}
}

// FixedStep is the relation (1, step) for a caller-supplied step
func FixedStep(step *big.Int) Relation {
	return Relation{Alpha: big.NewInt(1), Beta: new(big.Int).Set(step)}
}

// Affine is the general relation (alpha, beta)
func Affine(alpha, beta *big.Int) Relation {
	return Relation{Alpha: new(big.Int).Set(alpha), Beta: new(big.Int).Set(beta)}
}

// Validate checks that both coefficients are present
func (r Relation) Validate() error {
	if r.Alpha == nil || r.Beta == nil {
		return ErrInvalidRelation
	}
	return nil
}

// Apply computes alpha*k + beta mod n
func (r Relation) Apply(f *field.Field, k *big.Int) *big.Int {
	return f.Add(f.Mul(r.Alpha, k), r.Beta)
}

// String renders the recurrence for logs and reports
func (r Relation) String() string {
	return fmt.Sprintf("k' = %s*k + %s", r.Alpha, r.Beta)
}
