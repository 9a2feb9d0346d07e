package nonce

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
)

func tinyField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.New(big.NewInt(97))
	require.NoError(t, err)
	return f
}

func TestReuseYieldsConstantSequence(t *testing.T) {
	s, err := NewSchedule(tinyField(t), Reuse(), big.NewInt(13))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.Equal(t, int64(13), s.Next().Int64())
	}
}

func TestCounterIncrements(t *testing.T) {
	s, err := NewSchedule(tinyField(t), Counter(), big.NewInt(95))
	require.NoError(t, err)

	require.Equal(t, int64(95), s.Next().Int64())
	require.Equal(t, int64(96), s.Next().Int64())
	// wraps at the field order
	require.Equal(t, int64(0), s.Next().Int64())
	require.Equal(t, int64(1), s.Next().Int64())
}

func TestFixedStep(t *testing.T) {
	s, err := NewSchedule(tinyField(t), FixedStep(big.NewInt(10)), big.NewInt(3))
	require.NoError(t, err)

	require.Equal(t, int64(3), s.Next().Int64())
	require.Equal(t, int64(13), s.Next().Int64())
	require.Equal(t, int64(23), s.Next().Int64())
}

func TestGeneralAffine(t *testing.T) {
	// k' = 2k + 1 mod 97 starting from 5: 5, 11, 23, 47
	s, err := NewSchedule(tinyField(t), Affine(big.NewInt(2), big.NewInt(1)), big.NewInt(5))
	require.NoError(t, err)

	for _, want := range []int64{5, 11, 23, 47} {
		require.Equal(t, want, s.Next().Int64())
	}
}

func TestStartIsReduced(t *testing.T) {
	s, err := NewSchedule(tinyField(t), Reuse(), big.NewInt(97+13))
	require.NoError(t, err)
	require.Equal(t, int64(13), s.Next().Int64())
}

func TestNextReturnsCopies(t *testing.T) {
	s, err := NewSchedule(tinyField(t), Counter(), big.NewInt(1))
	require.NoError(t, err)

	first := s.Next()
	first.SetInt64(77)
	require.Equal(t, int64(2), s.Next().Int64())
}

func TestRandomScheduleDeterministicUnderSeed(t *testing.T) {
	f := field.Ed25519()

	src1, err := rand.NewSeededSource([]byte("drift"))
	require.NoError(t, err)
	src2, err := rand.NewSeededSource([]byte("drift"))
	require.NoError(t, err)

	s1, err := NewRandomSchedule(f, Counter(), src1)
	require.NoError(t, err)
	s2, err := NewRandomSchedule(f, Counter(), src2)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.Equal(t, 0, s1.Next().Cmp(s2.Next()))
	}
}

func TestConstructorErrors(t *testing.T) {
	f := tinyField(t)

	_, err := NewSchedule(nil, Reuse(), big.NewInt(1))
	require.ErrorIs(t, err, ErrNilField)

	_, err = NewSchedule(f, Reuse(), nil)
	require.ErrorIs(t, err, ErrNilStart)

	_, err = NewSchedule(f, Relation{}, big.NewInt(1))
	require.ErrorIs(t, err, ErrInvalidRelation)

	_, err = NewRandomSchedule(f, Reuse(), nil)
	require.ErrorIs(t, err, ErrNilSource)
}

func TestRelationString(t *testing.T) {
	require.Equal(t, "k' = 1*k + 0", Reuse().String())
	require.Equal(t, "k' = 2*k + 5", Affine(big.NewInt(2), big.NewInt(5)).String())
}
