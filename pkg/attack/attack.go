// Package attack runs the full simulate-then-break cycle: generate a key,
// sign messages under a flawed nonce schedule, then recover the private
// scalar from the resulting signatures and check it against the public key.
package attack

import (
	"math/big"

	"github.com/Caqil/affine-nonce/internal/security"
	"github.com/Caqil/affine-nonce/pkg/crypto/curve"
	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/logger"
	"github.com/Caqil/affine-nonce/pkg/nonce"
	"github.com/Caqil/affine-nonce/pkg/recovery"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

// Config describes one attack scenario
type Config struct {
	// Curve selects the scheme: Secp256k1 signs ECDSA-style, Edwards25519
	// signs EdDSA-style
	Curve curve.Type

	// Relation is the affine nonce flaw to plant and then exploit
	Relation nonce.Relation

	// Messages to sign; at least two
	Messages [][]byte

	// Rand supplies the key and the first nonce (default: crypto/rand)
	Rand rand.Source

	// Log receives progress events (default: logger.DefaultConfig)
	Log *logger.Logger
}

// Report is the outcome of one Run
type Report struct {
	// KeyPair is the victim key generated for the scenario
	KeyPair *keygen.KeyPair

	// Signatures produced under the flawed schedule, in message order
	Signatures []*signing.Signature

	// Recovered is the scalar extracted from the first signature pair
	Recovered *big.Int

	// Verified reports that Recovered reproduces the victim public key
	Verified bool
}

// Match is a successful pair search result
type Match struct {
	// PrivateKey is the verified recovered scalar
	PrivateKey *big.Int

	// Pair holds the indices of the two signatures that produced it
	Pair [2]int
}

// Run executes the scenario end to end. Recovery uses the first two
// signatures; an Indeterminate pair is reported as ErrNoMatch since the
// planted relation should always be solvable for distinct messages.
func Run(cfg *Config) (*Report, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.Messages) < 2 {
		return nil, ErrNotEnoughMessages
	}
	if err := cfg.Relation.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Log
	if log == nil {
		log = logger.New(logger.DefaultConfig())
	}
	src := cfg.Rand
	if src == nil {
		src = rand.Secure()
	}

	c, err := curve.New(cfg.Curve)
	if err != nil {
		return nil, err
	}
	f, err := field.New(c.Order())
	if err != nil {
		return nil, err
	}

	kp, err := keygen.Generate(c, src)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("curve", c.Name()).
		Str("relation", cfg.Relation.String()).
		Int("messages", len(cfg.Messages)).
		Msg("scenario start")

	sched, err := nonce.NewRandomSchedule(f, cfg.Relation, src)
	if err != nil {
		return nil, err
	}

	sigs, err := signScenario(cfg.Curve, kp, sched, cfg.Messages)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("signatures", len(sigs)).Msg("forward signing done")

	res, err := recovery.Recover(sigs[0], sigs[1], cfg.Relation)
	if err != nil {
		return nil, err
	}
	if res.Indeterminate {
		log.Warn().Msg("first pair is indeterminate")
		return nil, ErrNoMatch
	}

	ok, err := VerifyRecovered(c, res.PrivateKey, kp.Public)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVerificationFailed
	}

	log.Info().
		Str("recovered", logger.RedactSecret(res.PrivateKey.Text(16))).
		Bool("verified", ok).
		Msg("private key recovered")

	return &Report{
		KeyPair:    kp,
		Signatures: sigs,
		Recovered:  res.PrivateKey,
		Verified:   ok,
	}, nil
}

func signScenario(t curve.Type, kp *keygen.KeyPair, sched *nonce.Schedule, messages [][]byte) ([]*signing.Signature, error) {
	switch t {
	case curve.Secp256k1:
		signer, err := signing.NewECDSASigner(kp)
		if err != nil {
			return nil, err
		}
		return signer.Sign(sched, messages)
	default:
		signer, err := signing.NewEdDSASigner(kp)
		if err != nil {
			return nil, err
		}
		return signer.Sign(sched, messages)
	}
}

// SearchPairs tries every signature pair under the relation until one yields
// a scalar that reproduces publicKey. Indeterminate pairs and arithmetic
// failures are skipped, not surfaced; the caller only cares whether some
// pair breaks the key.
func SearchPairs(c curve.Curve, sigs []*signing.Signature, rel nonce.Relation, publicKey []byte, log *logger.Logger) (*Match, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	if len(sigs) < 2 {
		return nil, ErrNotEnoughMessages
	}
	if log == nil {
		log = logger.New(logger.DefaultConfig())
	}

	tested := 0
	for i := 0; i < len(sigs); i++ {
		for j := i + 1; j < len(sigs); j++ {
			tested++

			res, err := recovery.Recover(sigs[i], sigs[j], rel)
			if err != nil || res.Indeterminate {
				continue
			}

			ok, err := VerifyRecovered(c, res.PrivateKey, publicKey)
			if err != nil || !ok {
				continue
			}

			log.Info().
				Int("pairs_tested", tested).
				Int("i", i).
				Int("j", j).
				Msg("verified pair found")
			return &Match{PrivateKey: res.PrivateKey, Pair: [2]int{i, j}}, nil
		}
	}

	log.Debug().Int("pairs_tested", tested).Msg("search exhausted")
	return nil, ErrNoMatch
}

// VerifyRecovered recomputes the public key from the candidate scalar and
// compares it in constant time
func VerifyRecovered(c curve.Curve, candidate *big.Int, publicKey []byte) (bool, error) {
	if c == nil {
		return false, ErrNilCurve
	}
	if err := security.ValidateScalarInRange(candidate, c.Order()); err != nil {
		return false, err
	}

	derived, err := c.PublicKeyBytes(candidate)
	if err != nil {
		return false, err
	}
	return security.ConstantTimeCompare(derived, publicKey), nil
}
