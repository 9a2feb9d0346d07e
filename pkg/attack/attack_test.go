package attack

import (
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/logger"
	"github.com/Caqil/affine-nonce/pkg/nonce"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

func quietLogger() *logger.Logger {
	return logger.New(&logger.Config{Level: "error", Output: io.Discard})
}

func seeded(t *testing.T, seed string) rand.Source {
	t.Helper()
	src, err := rand.NewSeededSource([]byte(seed))
	require.NoError(t, err)
	return src
}

func TestRunECDSAReuse(t *testing.T) {
	report, err := Run(&Config{
		Curve:    curve.Secp256k1,
		Relation: nonce.Reuse(),
		Messages: [][]byte{[]byte("tx 1"), []byte("tx 2")},
		Rand:     seeded(t, "run-ecdsa-reuse"),
		Log:      quietLogger(),
	})
	require.NoError(t, err)
	require.True(t, report.Verified)
	require.Len(t, report.Signatures, 2)
	require.Equal(t, 0, report.Recovered.Cmp(report.KeyPair.Private))
}

func TestRunEdDSAAffineDrift(t *testing.T) {
	report, err := Run(&Config{
		Curve:    curve.Edwards25519,
		Relation: nonce.Affine(big.NewInt(3), big.NewInt(17)),
		Messages: [][]byte{[]byte("msg a"), []byte("msg b"), []byte("msg c")},
		Rand:     seeded(t, "run-eddsa-affine"),
		Log:      quietLogger(),
	})
	require.NoError(t, err)
	require.True(t, report.Verified)
	require.Len(t, report.Signatures, 3)
	require.Equal(t, 0, report.Recovered.Cmp(report.KeyPair.Private))
}

func TestRunIsReproducibleWithSameSeed(t *testing.T) {
	cfg := func() *Config {
		return &Config{
			Curve:    curve.Secp256k1,
			Relation: nonce.Counter(),
			Messages: [][]byte{[]byte("m1"), []byte("m2")},
			Rand:     seeded(t, "fixed-seed"),
			Log:      quietLogger(),
		}
	}

	r1, err := Run(cfg())
	require.NoError(t, err)
	r2, err := Run(cfg())
	require.NoError(t, err)
	require.Equal(t, 0, r1.KeyPair.Private.Cmp(r2.KeyPair.Private))
	require.Equal(t, 0, r1.Signatures[0].S.Cmp(r2.Signatures[0].S))
}

func TestRunInputErrors(t *testing.T) {
	_, err := Run(nil)
	require.ErrorIs(t, err, ErrNilConfig)

	_, err = Run(&Config{
		Curve:    curve.Secp256k1,
		Relation: nonce.Reuse(),
		Messages: [][]byte{[]byte("only one")},
		Log:      quietLogger(),
	})
	require.ErrorIs(t, err, ErrNotEnoughMessages)

	_, err = Run(&Config{
		Curve:    curve.Secp256k1,
		Relation: nonce.Relation{},
		Messages: [][]byte{[]byte("m1"), []byte("m2")},
		Log:      quietLogger(),
	})
	require.ErrorIs(t, err, nonce.ErrInvalidRelation)
}

func searchScenario(t *testing.T) (curve.Curve, *keygen.KeyPair, []*signing.Signature) {
	t.Helper()
	c, err := curve.New(curve.Secp256k1)
	require.NoError(t, err)
	kp, err := keygen.FromPrivate(c, big.NewInt(31415926535))
	require.NoError(t, err)
	signer, err := signing.NewECDSASigner(kp)
	require.NoError(t, err)
	sched, err := nonce.NewSchedule(field.Secp256k1(), nonce.FixedStep(big.NewInt(7)), big.NewInt(1000000007))
	require.NoError(t, err)
	sigs, err := signer.Sign(sched, [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	require.NoError(t, err)
	return c, kp, sigs
}

func TestSearchPairsFindsFirstPair(t *testing.T) {
	c, kp, sigs := searchScenario(t)

	match, err := SearchPairs(c, sigs, nonce.FixedStep(big.NewInt(7)), kp.Public, quietLogger())
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 1}, match.Pair)
	require.Equal(t, 0, match.PrivateKey.Cmp(kp.Private))
}

func TestSearchPairsWrongRelation(t *testing.T) {
	c, kp, sigs := searchScenario(t)

	// Consecutive pairs solve to a wrong scalar under reuse; none verifies
	_, err := SearchPairs(c, sigs, nonce.Reuse(), kp.Public, quietLogger())
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestSearchPairsWrongPublicKey(t *testing.T) {
	c, _, sigs := searchScenario(t)
	other, err := keygen.FromPrivate(c, big.NewInt(271828182845))
	require.NoError(t, err)

	_, err = SearchPairs(c, sigs, nonce.FixedStep(big.NewInt(7)), other.Public, quietLogger())
	require.ErrorIs(t, err, ErrNoMatch)
}

func TestVerifyRecovered(t *testing.T) {
	c, err := curve.New(curve.Edwards25519)
	require.NoError(t, err)
	kp, err := keygen.FromPrivate(c, big.NewInt(123123123))
	require.NoError(t, err)

	ok, err := VerifyRecovered(c, kp.Private, kp.Public)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyRecovered(c, big.NewInt(456456456), kp.Public)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = VerifyRecovered(c, big.NewInt(0), kp.Public)
	require.Error(t, err)

	_, err = VerifyRecovered(nil, kp.Private, kp.Public)
	require.ErrorIs(t, err, ErrNilCurve)
}
