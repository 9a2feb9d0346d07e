package nonce

import (
	"math/big"

	"github.com/Caqil/affine-nonce/pkg/crypto/field"
	"github.com/Caqil/affine-nonce/pkg/crypto/rand"
)

// Schedule lazily yields the nonce sequence of one signing session. It is
// advanced one step per signature and cannot be restarted; each forward
// signing call owns a fresh instance.
type Schedule struct {
	field   *field.Field
	rel     Relation
	current *big.Int
}

// NewSchedule starts a schedule at a caller-supplied nonce
func NewSchedule(f *field.Field, rel Relation, start *big.Int) (*Schedule, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if err := rel.Validate(); err != nil {
		return nil, err
	}
	if start == nil {
		return nil, ErrNilStart
	}

	return &Schedule{
		field:   f,
		rel:     rel,
		current: f.Reduce(start),
	}, nil
}

// NewRandomSchedule starts a schedule at a nonce drawn uniformly over [0, n)
func NewRandomSchedule(f *field.Field, rel Relation, src rand.Source) (*Schedule, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if src == nil {
		return nil, ErrNilSource
	}

	start, err := rand.Scalar(src, f.Order())
	if err != nil {
		return nil, err
	}
	return NewSchedule(f, rel, start)
}

// Next returns the current nonce and advances the recurrence. The returned
// value is a copy; nonces are used once and discarded.
func (s *Schedule) Next() *big.Int {
	k := new(big.Int).Set(s.current)
	s.current = s.rel.Apply(s.field, s.current)
	return k
}

// Relation returns the schedule's recurrence coefficients
func (s *Schedule) Relation() Relation {
	return s.rel
}
