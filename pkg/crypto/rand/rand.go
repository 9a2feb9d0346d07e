// Package rand provides the module's random-source capability. Nonce starts
// and private scalars are drawn through a Source so callers can swap the
// process-wide CSPRNG for a seeded, reproducible stream in tests and fixture
// regeneration.
package rand

import (
	cryptorand "crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// Source yields random bytes. It is the only nondeterministic input of a
// generation run.
type Source interface {
	io.Reader
}

// Secure returns the process CSPRNG-backed source
func Secure() Source {
	return secureSource{}
}

type secureSource struct{}

func (secureSource) Read(p []byte) (int, error) {
	return io.ReadFull(cryptorand.Reader, p)
}

// SeededSource is a deterministic Source driven by a ChaCha20 keystream.
// Given the same seed it replays the same byte stream, making generation
// runs reproducible bit-for-bit. Not for production key material.
type SeededSource struct {
	stream *chacha20.Cipher
}

// NewSeededSource derives a ChaCha20 key from the seed and returns the
// keystream as a Source
func NewSeededSource(seed []byte) (*SeededSource, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	key := sha256.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}

	return &SeededSource{stream: stream}, nil
}

func (s *SeededSource) Read(p []byte) (int, error) {
	zeros := make([]byte, len(p))
	s.stream.XORKeyStream(p, zeros)
	return len(p), nil
}

// Bytes reads n random bytes from the source
func Bytes(src Source, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Scalar draws a uniform scalar in [0, max)
func Scalar(src Source, max *big.Int) (*big.Int, error) {
	if max == nil {
		return nil, ErrNilMax
	}
	if max.Sign() <= 0 {
		return nil, ErrInvalidMax
	}

	return cryptorand.Int(src, max)
}

// NonZeroScalar draws a uniform scalar in [1, max). Zero draws are rejected
// and redrawn, which keeps the distribution uniform over the reduced range.
func NonZeroScalar(src Source, max *big.Int) (*big.Int, error) {
	for {
		value, err := Scalar(src, max)
		if err != nil {
			return nil, err
		}
		if value.Sign() != 0 {
			return value, nil
		}
	}
}
