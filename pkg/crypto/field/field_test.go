package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadOrder(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = New(big.NewInt(0))
	require.ErrorIs(t, err, ErrInvalidOrder)

	_, err = New(big.NewInt(-7))
	require.ErrorIs(t, err, ErrInvalidOrder)
}

func TestArithmetic(t *testing.T) {
	f, err := New(big.NewInt(97))
	require.NoError(t, err)

	require.Equal(t, int64(2), f.Add(big.NewInt(96), big.NewInt(3)).Int64())
	require.Equal(t, int64(94), f.Sub(big.NewInt(3), big.NewInt(6)).Int64())
	require.Equal(t, int64(23), f.Mul(big.NewInt(12), big.NewInt(10)).Int64())
	require.Equal(t, int64(5), f.Reduce(big.NewInt(97*4+5)).Int64())
}

func TestInverse(t *testing.T) {
	f, err := New(big.NewInt(97))
	require.NoError(t, err)

	inv, err := f.Inverse(big.NewInt(13))
	require.NoError(t, err)

	prod := f.Mul(big.NewInt(13), inv)
	require.Equal(t, int64(1), prod.Int64())

	// Inverse also accepts unreduced operands
	inv2, err := f.Inverse(big.NewInt(13 + 97))
	require.NoError(t, err)
	require.Equal(t, inv, inv2)
}

func TestInverseOfZero(t *testing.T) {
	f := Ed25519()

	_, err := f.Inverse(big.NewInt(0))
	require.ErrorIs(t, err, ErrNoInverse)

	// Zero mod n, not literally zero
	_, err = f.Inverse(f.Order())
	require.ErrorIs(t, err, ErrNoInverse)

	_, err = f.Inverse(nil)
	require.ErrorIs(t, err, ErrNilScalar)
}

func TestIsZero(t *testing.T) {
	f := Secp256k1()

	require.True(t, f.IsZero(big.NewInt(0)))
	require.True(t, f.IsZero(f.Order()))
	require.True(t, f.IsZero(nil))
	require.False(t, f.IsZero(big.NewInt(1)))
}

func TestSchemeOrders(t *testing.T) {
	// secp256k1 group order, decimal form
	n, ok := new(big.Int).SetString(
		"115792089237316195423570985008687907852837564279074904382605163141518161494337", 10)
	require.True(t, ok)
	require.Equal(t, 0, Secp256k1().Order().Cmp(n))

	// Ed25519 L = 2^252 + 27742317777372353535851937790883648493
	l := new(big.Int).Lsh(big.NewInt(1), 252)
	tail, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	require.True(t, ok)
	l.Add(l, tail)
	require.Equal(t, 0, Ed25519().Order().Cmp(l))
}

func TestOperandsNotMutated(t *testing.T) {
	f := Ed25519()
	x := big.NewInt(41)
	y := big.NewInt(59)

	f.Add(x, y)
	f.Sub(x, y)
	f.Mul(x, y)

	require.Equal(t, int64(41), x.Int64())
	require.Equal(t, int64(59), y.Int64())
}
