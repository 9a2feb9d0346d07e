// Package field provides modular arithmetic over a prime-order scalar field.
// All nonce and private-key algebra in this module runs over a Field, so the
// same code serves the real curve orders and the small prime moduli used in
// unit scenarios.
package field

import "math/big"

// Scheme scalar-field orders.
var (
	// Secp256k1Order is the order of the secp256k1 base point group
	Secp256k1Order, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	// Ed25519Order is the order of the Ed25519 scalar field (the group order L)
	Ed25519Order, _ = new(big.Int).SetString(
		"1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED", 16)
)

// Field represents the prime field Z_n. Operations return fresh big.Ints and
// never mutate their operands.
type Field struct {
	order *big.Int
}

// New creates a field with the given prime order
func New(order *big.Int) (*Field, error) {
	if order == nil || order.Sign() <= 0 {
		return nil, ErrInvalidOrder
	}
	return &Field{order: new(big.Int).Set(order)}, nil
}

// Secp256k1 returns the secp256k1 scalar field
func Secp256k1() *Field {
	return &Field{order: new(big.Int).Set(Secp256k1Order)}
}

// Ed25519 returns the Ed25519 scalar field
func Ed25519() *Field {
	return &Field{order: new(big.Int).Set(Ed25519Order)}
}

// Order returns a copy of the field order
func (f *Field) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// Reduce maps x into [0, n)
func (f *Field) Reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, f.order)
}

// Add computes x + y mod n
func (f *Field) Add(x, y *big.Int) *big.Int {
	r := new(big.Int).Add(x, y)
	return r.Mod(r, f.order)
}

// Sub computes x - y mod n
func (f *Field) Sub(x, y *big.Int) *big.Int {
	r := new(big.Int).Sub(x, y)
	return r.Mod(r, f.order)
}

// Mul computes x * y mod n
func (f *Field) Mul(x, y *big.Int) *big.Int {
	r := new(big.Int).Mul(x, y)
	return r.Mod(r, f.order)
}

// Inverse computes x^-1 mod n. It fails with ErrNoInverse when x is
// congruent to zero, the only non-invertible residue of a prime field.
func (f *Field) Inverse(x *big.Int) (*big.Int, error) {
	if x == nil {
		return nil, ErrNilScalar
	}
	if f.IsZero(x) {
		return nil, ErrNoInverse
	}
	inv := new(big.Int).ModInverse(x, f.order)
	if inv == nil {
		return nil, ErrNoInverse
	}
	return inv, nil
}

// IsZero reports whether x is congruent to zero mod n
func (f *Field) IsZero(x *big.Int) bool {
	if x == nil {
		return true
	}
	return new(big.Int).Mod(x, f.order).Sign() == 0
}

// Contains reports whether x is already reduced, i.e. in [0, n)
func (f *Field) Contains(x *big.Int) bool {
	return x != nil && x.Sign() >= 0 && x.Cmp(f.order) < 0
}
