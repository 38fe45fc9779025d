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

	"github.com/ironbark-io/ledgercore/codec"
)

const (
	// Ed25519SignatureSize is the raw size of an Ed25519 signature
	Ed25519SignatureSize = ed25519.SignatureSize

	// Secp256k1SignatureSize is the size of a compact r||s ECDSA signature
	Secp256k1SignatureSize = 64
)

// Signature is a tagged signature under one of the supported algorithms.
// Construction checks lengths only; whether the signature actually verifies
// is a question for Verify.
type Signature struct {
	alg  Algorithm
	data []byte
}

// NewEd25519Signature wraps raw Ed25519 signature bytes
func NewEd25519Signature(data []byte) (Signature, error) {
	if len(data) != Ed25519SignatureSize {
		return Signature{}, newFormatError("ed25519 signature", ErrWrongLength)
	}
	out := make([]byte, Ed25519SignatureSize)
	copy(out, data)
	return Signature{alg: AlgorithmEd25519, data: out}, nil
}

// NewSecp256k1Signature wraps a compact r||s ECDSA signature
func NewSecp256k1Signature(data []byte) (Signature, error) {
	if len(data) != Secp256k1SignatureSize {
		return Signature{}, newFormatError(
			"secp256k1 signature",
			ErrWrongLength,
		)
	}
	out := make([]byte, Secp256k1SignatureSize)
	copy(out, data)
	return Signature{alg: AlgorithmSecp256k1, data: out}, nil
}

// Algorithm returns the signature's algorithm tag
func (s Signature) Algorithm() Algorithm {
	return s.alg
}

// Bytes returns a copy of the raw signature material, without the tag
func (s Signature) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}

// Equal reports whether two signatures have the same algorithm and material
func (s Signature) Equal(other Signature) bool {
	return s.alg == other.alg && bytes.Equal(s.data, other.data)
}

// EncodeTo writes the tag byte followed by the algorithm's fixed-length raw
// signature bytes
func (s Signature) EncodeTo(w *codec.Writer) error {
	w.PutUint8(uint8(s.alg))
	w.PutRawBytes(s.data)
	return nil
}

// EncodedLen returns the wire size: one tag byte plus the raw signature
func (s Signature) EncodedLen() int {
	return 1 + len(s.data)
}

// ReadSignature decodes a tagged signature
func ReadSignature(r *codec.Reader) (Signature, error) {
	start := r.Pos()
	tag, err := r.ReadUint8()
	if err != nil {
		return Signature{}, &codec.DecodeError{
			What: "signature",
			Err:  codec.ErrEarlyEndOfStream,
		}
	}
	var size int
	switch Algorithm(tag) {
	case AlgorithmEd25519:
		size = Ed25519SignatureSize
	case AlgorithmSecp256k1:
		size = Secp256k1SignatureSize
	default:
		// The system tag has no signature form
		r.Rewind(start)
		return Signature{}, &codec.DecodeError{
			What: "signature",
			Err:  codec.ErrFormat,
		}
	}
	data, err := r.ReadRawBytes(size)
	if err != nil {
		r.Rewind(start)
		return Signature{}, err
	}
	return Signature{alg: Algorithm(tag), data: data}, nil
}

// String returns the hex text form: two hex digits of tag followed by the
// hex signature material
func (s Signature) String() string {
	return fmt.Sprintf("%02x%s", uint8(s.alg), hex.EncodeToString(s.data))
}

// ParseSignature parses the hex text form produced by String
func ParseSignature(s string) (Signature, error) {
	decoded, err := hex.DecodeString(s)
	if err != nil || len(decoded) == 0 {
		return Signature{}, newFormatError("signature", ErrBadTextForm)
	}
	switch Algorithm(decoded[0]) {
	case AlgorithmEd25519:
		return NewEd25519Signature(decoded[1:])
	case AlgorithmSecp256k1:
		return NewSecp256k1Signature(decoded[1:])
	default:
		return Signature{}, newFormatError("signature", ErrUnknownAlgorithm)
	}
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	parsed, err := ParseSignature(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
