// Copyright 2025 Ironbark Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"filippo.io/edwards25519"
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ironbark-io/ledgercore/codec"
)

// Algorithm tags the signature scheme of a key or signature. The set is
// closed; the tag byte leads every encoding and is the first input byte to
// account-identity derivation.
type Algorithm uint8

const (
	// AlgorithmSystem is the reserved tag of the system account. It carries
	// no key material and can never verify a signature.
	AlgorithmSystem Algorithm = 0

	// AlgorithmEd25519 is Ed25519 over Curve25519
	AlgorithmEd25519 Algorithm = 1

	// AlgorithmSecp256k1 is ECDSA over secp256k1 with compressed points
	AlgorithmSecp256k1 Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmSystem:
		return "System"
	case AlgorithmEd25519:
		return "Ed25519"
	case AlgorithmSecp256k1:
		return "Secp256k1"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

const (
	// Ed25519PublicKeySize is the raw size of an Ed25519 public key
	Ed25519PublicKeySize = ed25519.PublicKeySize

	// Secp256k1PublicKeySize is the size of a compressed secp256k1 point
	Secp256k1PublicKeySize = 33
)

// PublicKey is a tagged public key under one of the supported algorithms.
// Construction validates the key material, so a PublicKey in hand is always
// well-formed.
type PublicKey struct {
	alg  Algorithm
	data []byte
}

// SystemPublicKey returns the key of the system account. It has no key
// material; its only roles are identity derivation and display.
func SystemPublicKey() PublicKey {
	return PublicKey{alg: AlgorithmSystem}
}

// NewEd25519PublicKey wraps raw Ed25519 key bytes, rejecting material that
// is the wrong length or not a canonical curve point
func NewEd25519PublicKey(data []byte) (PublicKey, error) {
	if len(data) != Ed25519PublicKeySize {
		return PublicKey{}, newFormatError("ed25519 public key", ErrWrongLength)
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return PublicKey{}, newFormatError("ed25519 public key", ErrInvalidPoint)
	}
	out := make([]byte, Ed25519PublicKeySize)
	copy(out, data)
	return PublicKey{alg: AlgorithmEd25519, data: out}, nil
}

// NewSecp256k1PublicKey wraps a compressed secp256k1 point, rejecting
// material that is the wrong length or not on the curve
func NewSecp256k1PublicKey(data []byte) (PublicKey, error) {
	if len(data) != Secp256k1PublicKeySize {
		return PublicKey{}, newFormatError(
			"secp256k1 public key",
			ErrWrongLength,
		)
	}
	if _, err := secp256k1.ParsePubKey(data); err != nil {
		return PublicKey{}, newFormatError(
			"secp256k1 public key",
			ErrInvalidPoint,
		)
	}
	out := make([]byte, Secp256k1PublicKeySize)
	copy(out, data)
	return PublicKey{alg: AlgorithmSecp256k1, data: out}, nil
}

// Algorithm returns the key's algorithm tag
func (p PublicKey) Algorithm() Algorithm {
	return p.alg
}

// Bytes returns a copy of the raw key material, without the tag
func (p PublicKey) Bytes() []byte {
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// Equal reports whether two keys have the same algorithm and material
func (p PublicKey) Equal(other PublicKey) bool {
	return p.alg == other.alg && bytes.Equal(p.data, other.data)
}

// EncodeTo writes the tag byte followed by the algorithm's fixed-length raw
// key bytes
func (p PublicKey) EncodeTo(w *codec.Writer) error {
	w.PutUint8(uint8(p.alg))
	w.PutRawBytes(p.data)
	return nil
}

// EncodedLen returns the wire size: one tag byte plus the raw key material
func (p PublicKey) EncodedLen() int {
	return 1 + len(p.data)
}

// ReadPublicKey decodes a tagged public key, validating the key material
func ReadPublicKey(r *codec.Reader) (PublicKey, error) {
	start := r.Pos()
	tag, err := r.ReadUint8()
	if err != nil {
		return PublicKey{}, &codec.DecodeError{
			What: "public key",
			Err:  codec.ErrEarlyEndOfStream,
		}
	}
	var size int
	switch Algorithm(tag) {
	case AlgorithmSystem:
		return SystemPublicKey(), nil
	case AlgorithmEd25519:
		size = Ed25519PublicKeySize
	case AlgorithmSecp256k1:
		size = Secp256k1PublicKeySize
	default:
		r.Rewind(start)
		return PublicKey{}, &codec.DecodeError{
			What: "public key",
			Err:  codec.ErrFormat,
		}
	}
	data, err := r.ReadRawBytes(size)
	if err != nil {
		r.Rewind(start)
		return PublicKey{}, err
	}
	var pk PublicKey
	switch Algorithm(tag) {
	case AlgorithmEd25519:
		pk, err = NewEd25519PublicKey(data)
	case AlgorithmSecp256k1:
		pk, err = NewSecp256k1PublicKey(data)
	}
	if err != nil {
		r.Rewind(start)
		return PublicKey{}, &codec.DecodeError{
			What: "public key",
			Err:  codec.ErrFormat,
		}
	}
	return pk, nil
}

// String returns the hex text form: two hex digits of tag followed by the
// hex key material
func (p PublicKey) String() string {
	return fmt.Sprintf("%02x%s", uint8(p.alg), hex.EncodeToString(p.data))
}

// ParsePublicKey parses the hex text form produced by String
func ParsePublicKey(s string) (PublicKey, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) == 0 {
		return PublicKey{}, newFormatError("public key", ErrBadTextForm)
	}
	switch Algorithm(decoded[0]) {
	case AlgorithmSystem:
		if len(decoded) != 1 {
			return PublicKey{}, newFormatError("public key", ErrWrongLength)
		}
		return SystemPublicKey(), nil
	case AlgorithmEd25519:
		return NewEd25519PublicKey(decoded[1:])
	case AlgorithmSecp256k1:
		return NewSecp256k1PublicKey(decoded[1:])
	default:
		return PublicKey{}, newFormatError("public key", ErrUnknownAlgorithm)
	}
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
