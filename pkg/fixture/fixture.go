// Package fixture encodes signatures and key material as the structured
// records consumed by external recovery tooling. Field names, byte order and
// the hex-versus-decimal split are a compatibility contract and must not
// change. Each scenario is one JSON array of records; where the arrays live
// on disk is the caller's concern.
package fixture

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/Caqil/affine-nonce/pkg/keygen"
	"github.com/Caqil/affine-nonce/pkg/signing"
)

// Decimal is an arbitrary-precision integer that marshals as a bare JSON
// number. It also accepts a quoted decimal string on the way in, since some
// producers quote big values to survive float-based JSON parsers.
type Decimal struct {
	big.Int
}

// NewDecimal wraps a copy of v
func NewDecimal(v *big.Int) *Decimal {
	d := new(Decimal)
	d.Set(v)
	return d
}

// MarshalJSON emits the value as an unquoted decimal number
func (d *Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON reads a decimal number, quoted or bare
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if _, ok := d.SetString(s, 10); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	return nil
}

// HexScalar is an arbitrary-precision integer that marshals as a 0x-prefixed
// lowercase hex string and parses both prefixed and bare hex.
type HexScalar struct {
	big.Int
}

// NewHexScalar wraps a copy of v
func NewHexScalar(v *big.Int) *HexScalar {
	h := new(HexScalar)
	h.Set(v)
	return h
}

// MarshalJSON emits "0x..." lowercase hex
func (h *HexScalar) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + h.Text(16))
}

// UnmarshalJSON reads a hex string with or without the 0x prefix
func (h *HexScalar) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	if _, ok := h.SetString(trimmed, 16); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return nil
}

// HexBytes is a byte string that marshals as bare lowercase hex
type HexBytes []byte

// MarshalJSON emits unprefixed lowercase hex
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

// UnmarshalJSON reads a hex string with or without the 0x prefix
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	*b = decoded
	return nil
}

// ECDSARecord is one ECDSA-style signature. All integers are decimal.
// NonceIndex is the position of the signature in its nonce schedule and is
// omitted when unknown.
type ECDSARecord struct {
	Message    string   `json:"message"`
	Z          *Decimal `json:"z"`
	R          *Decimal `json:"r"`
	S          *Decimal `json:"s"`
	NonceIndex *int     `json:"nonce_index,omitempty"`
}

// EdDSARecord is one EdDSA-style signature. Message and public key are bare
// hex of the raw bytes; r and s are 0x-prefixed hex scalars.
type EdDSARecord struct {
	Message   HexBytes   `json:"message"`
	R         *HexScalar `json:"r"`
	S         *HexScalar `json:"s"`
	PublicKey HexBytes   `json:"public_key"`
}

// KeyInfo pairs a private scalar with the hex encoding of its public point
type KeyInfo struct {
	PrivateKey   *Decimal `json:"private_key"`
	PublicKeyHex string   `json:"public_key_hex"`
}

// FromECDSA converts a signature into its record form. The caller sets
// NonceIndex afterwards if the schedule position is known.
func FromECDSA(sig *signing.Signature) (*ECDSARecord, error) {
	if sig == nil {
		return nil, ErrNilSignature
	}
	if sig.Scheme != signing.SchemeECDSA {
		return nil, ErrWrongScheme
	}

	return &ECDSARecord{
		Message: string(sig.Message),
		Z:       NewDecimal(sig.Challenge),
		R:       NewDecimal(sig.R),
		S:       NewDecimal(sig.S),
	}, nil
}

// Signature rebuilds the in-memory signature. The public key travels in the
// companion key-info record, not in the signature records themselves.
func (r *ECDSARecord) Signature(publicKey []byte) (*signing.Signature, error) {
	if r.Z == nil || r.R == nil || r.S == nil {
		return nil, ErrMissingField
	}

	return &signing.Signature{
		Scheme:    signing.SchemeECDSA,
		R:         new(big.Int).Set(&r.R.Int),
		S:         new(big.Int).Set(&r.S.Int),
		Challenge: new(big.Int).Set(&r.Z.Int),
		Message:   []byte(r.Message),
		PublicKey: append([]byte(nil), publicKey...),
	}, nil
}

// FromEdDSA converts a signature into its record form
func FromEdDSA(sig *signing.Signature) (*EdDSARecord, error) {
	if sig == nil {
		return nil, ErrNilSignature
	}
	if sig.Scheme != signing.SchemeEdDSA {
		return nil, ErrWrongScheme
	}

	return &EdDSARecord{
		Message:   append(HexBytes(nil), sig.Message...),
		R:         NewHexScalar(sig.R),
		S:         NewHexScalar(sig.S),
		PublicKey: append(HexBytes(nil), sig.PublicKey...),
	}, nil
}

// Signature rebuilds the in-memory signature. The challenge is not stored;
// the recovery engine recomputes it from (r, public_key, message).
func (r *EdDSARecord) Signature() (*signing.Signature, error) {
	if r.R == nil || r.S == nil {
		return nil, ErrMissingField
	}
	if len(r.PublicKey) == 0 {
		return nil, ErrMissingField
	}

	return &signing.Signature{
		Scheme:    signing.SchemeEdDSA,
		R:         new(big.Int).Set(&r.R.Int),
		S:         new(big.Int).Set(&r.S.Int),
		Message:   append([]byte(nil), r.Message...),
		PublicKey: append([]byte(nil), r.PublicKey...),
	}, nil
}

// FromKeyPair converts a key pair into its record form
func FromKeyPair(kp *keygen.KeyPair) (*KeyInfo, error) {
	if kp == nil || kp.Private == nil {
		return nil, ErrNilKeyPair
	}

	return &KeyInfo{
		PrivateKey:   NewDecimal(kp.Private),
		PublicKeyHex: hex.EncodeToString(kp.Public),
	}, nil
}

// MarshalECDSA encodes one scenario as an indented JSON array
func MarshalECDSA(records []*ECDSARecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// ParseECDSA decodes one scenario array
func ParseECDSA(data []byte) ([]*ECDSARecord, error) {
	var records []*ECDSARecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarshalEdDSA encodes one scenario as an indented JSON array
func MarshalEdDSA(records []*EdDSARecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// ParseEdDSA decodes one scenario array
func ParseEdDSA(data []byte) ([]*EdDSARecord, error) {
	var records []*EdDSARecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MarshalKeyInfo encodes a key-info record
func MarshalKeyInfo(info *KeyInfo) ([]byte, error) {
	return json.MarshalIndent(info, "", "  ")
}

// ParseKeyInfo decodes a key-info record
func ParseKeyInfo(data []byte) (*KeyInfo, error) {
	info := new(KeyInfo)
	if err := json.Unmarshal(data, info); err != nil {
		return nil, err
	}
	if info.PrivateKey == nil {
		return nil, ErrMissingField
	}
	return info, nil
}
