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

package numeric

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ironbark-io/ledgercore/codec"
)

const (
	// U256Bits is the width of a U256 in bits
	U256Bits = 256
	// U256MaxBytes is the maximum number of significant bytes in a U256
	U256MaxBytes = U256Bits / 8
)

// U256 is a 256-bit unsigned integer with checked arithmetic. The zero value
// is the number zero.
type U256 struct {
	i big.Int
}

// NewU256FromUint64 creates a U256 from a native unsigned integer
func NewU256FromUint64(v uint64) U256 {
	var u U256
	u.i.SetUint64(v)
	return u
}

// NewU256FromBig creates a U256 from a big.Int, failing when the value is
// negative or wider than 256 bits
func NewU256FromBig(b *big.Int) (U256, error) {
	i, err := checkedFromBig("U256", b, maxU256)
	if err != nil {
		return U256{}, err
	}
	return U256{i: i}, nil
}

// NewU256FromDecimal parses a base-10 string into a U256
func NewU256FromDecimal(s string) (U256, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return U256{}, newArithmeticError("U256", "parse", ErrOutOfRange)
	}
	return NewU256FromBig(b)
}

// NewU256FromBytesLE creates a U256 from raw little-endian bytes (no length
// prefix). Trailing zero bytes are permitted here; only the wire form is
// required to be shortest.
func NewU256FromBytesLE(data []byte) (U256, error) {
	if len(data) > U256MaxBytes {
		return U256{}, newArithmeticError("U256", "from bytes", ErrOutOfRange)
	}
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	var u U256
	u.i.SetBytes(be)
	return u, nil
}

// MaxU256 returns the largest representable U256
func MaxU256() U256 {
	var u U256
	u.i.Set(maxU256)
	return u
}

// Big returns the value as a fresh big.Int
func (u U256) Big() *big.Int {
	return new(big.Int).Set(&u.i)
}

// Uint64 narrows to a native unsigned integer, reporting whether the value fits
func (u U256) Uint64() (uint64, bool) {
	if !u.i.IsUint64() {
		return 0, false
	}
	return u.i.Uint64(), true
}

// Bits returns the width class in bits
func (u U256) Bits() int {
	return U256Bits
}

// IsZero reports whether the value is zero
func (u U256) IsZero() bool {
	return u.i.Sign() == 0
}

// Cmp compares two values with standard unsigned integer semantics
func (u U256) Cmp(other U256) int {
	return u.i.Cmp(&other.i)
}

// Equal reports whether two values are numerically equal
func (u U256) Equal(other U256) bool {
	return u.Cmp(other) == 0
}

// String returns the decimal representation
func (u U256) String() string {
	return u.i.String()
}

// Add returns u+other, failing with an overflow error when the sum exceeds
// 256 bits
func (u U256) Add(other U256) (U256, error) {
	i, err := checkedAdd("U256", &u.i, &other.i, maxU256)
	if err != nil {
		return U256{}, err
	}
	return U256{i: i}, nil
}

// Sub returns u-other, failing with an underflow error when other exceeds u
func (u U256) Sub(other U256) (U256, error) {
	i, err := checkedSub("U256", &u.i, &other.i)
	if err != nil {
		return U256{}, err
	}
	return U256{i: i}, nil
}

// Mul returns u*other, failing with an overflow error when the product
// exceeds 256 bits
func (u U256) Mul(other U256) (U256, error) {
	i, err := checkedMul("U256", &u.i, &other.i, maxU256)
	if err != nil {
		return U256{}, err
	}
	return U256{i: i}, nil
}

// Div returns the integer quotient u/other, failing when other is zero
func (u U256) Div(other U256) (U256, error) {
	i, err := checkedDiv("U256", &u.i, &other.i)
	if err != nil {
		return U256{}, err
	}
	return U256{i: i}, nil
}

// EncodeTo writes the canonical shortest-form encoding
func (u U256) EncodeTo(w *codec.Writer) error {
	return w.PutBigLE(&u.i)
}

// EncodedLen returns the encoded size in bytes
func (u U256) EncodedLen() int {
	return codec.BigLELen(&u.i)
}

// ReadU256 decodes a canonical shortest-form U256
func ReadU256(r *codec.Reader) (U256, error) {
	b, err := r.ReadBigLE("U256", U256MaxBytes)
	if err != nil {
		return U256{}, err
	}
	var u U256
	u.i.Set(b)
	return u, nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *U256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewU256FromDecimal(s)
	if err != nil {
		return fmt.Errorf("invalid U256 %q: %w", s, err)
	}
	*u = parsed
	return nil
}
