// Package security provides small helpers for handling signing secrets:
// range validation, constant-time comparison and best-effort zeroization.
package security

import (
	"crypto/subtle"
	"errors"
	"math/big"
	"runtime"
)

var (
	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("nil scalar")

	// ErrScalarOutOfRange is returned when a scalar is outside [1, max)
	ErrScalarOutOfRange = errors.New("scalar out of valid range")
)

// ValidateScalarInRange checks that value lies in [1, max)
func ValidateScalarInRange(value, max *big.Int) error {
	if value == nil || max == nil {
		return ErrNilScalar
	}
	if value.Sign() <= 0 || value.Cmp(max) >= 0 {
		return ErrScalarOutOfRange
	}
	return nil
}

// ConstantTimeCompare reports whether a and b are equal without leaking the
// position of the first difference
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ZeroBytes overwrites a byte slice so secrets do not linger in memory
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)
	runtime.KeepAlive(data)
}

// ZeroScalar clears a big.Int holding a secret. Go's big.Int does not expose
// its buffer, so this sets the value to zero and relies on the collector for
// the backing array.
func ZeroScalar(v *big.Int) {
	if v == nil {
		return
	}
	v.SetInt64(0)
	runtime.KeepAlive(v)
}
