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
	// U128Bits is the width of a U128 in bits
	U128Bits = 128
	// U128MaxBytes is the maximum number of significant bytes in a U128
	U128MaxBytes = U128Bits / 8
)

// U128 is a 128-bit unsigned integer with checked arithmetic. The zero value
// is the number zero.
type U128 struct {
	i big.Int
}

// NewU128FromUint64 creates a U128 from a native unsigned integer
func NewU128FromUint64(v uint64) U128 {
	var u U128
	u.i.SetUint64(v)
	return u
}

// NewU128FromBig creates a U128 from a big.Int, failing when the value is
// negative or wider than 128 bits
func NewU128FromBig(b *big.Int) (U128, error) {
	i, err := checkedFromBig("U128", b, maxU128)
	if err != nil {
		return U128{}, err
	}
	return U128{i: i}, nil
}

// NewU128FromDecimal parses a base-10 string into a U128
func NewU128FromDecimal(s string) (U128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return U128{}, newArithmeticError("U128", "parse", ErrOutOfRange)
	}
	return NewU128FromBig(b)
}

// NewU128FromBytesLE creates a U128 from raw little-endian bytes (no length
// prefix). Trailing zero bytes are permitted here; only the wire form is
// required to be shortest.
func NewU128FromBytesLE(data []byte) (U128, error) {
	if len(data) > U128MaxBytes {
		return U128{}, newArithmeticError("U128", "from bytes", ErrOutOfRange)
	}
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	var u U128
	u.i.SetBytes(be)
	return u, nil
}

// MaxU128 returns the largest representable U128
func MaxU128() U128 {
	var u U128
	u.i.Set(maxU128)
	return u
}

// Big returns the value as a fresh big.Int
func (u U128) Big() *big.Int {
	return new(big.Int).Set(&u.i)
}

// Uint64 narrows to a native unsigned integer, reporting whether the value fits
func (u U128) Uint64() (uint64, bool) {
	if !u.i.IsUint64() {
		return 0, false
	}
	return u.i.Uint64(), true
}

// Bits returns the width class in bits
func (u U128) Bits() int {
	return U128Bits
}

// IsZero reports whether the value is zero
func (u U128) IsZero() bool {
	return u.i.Sign() == 0
}

// Cmp compares two values with standard unsigned integer semantics
func (u U128) Cmp(other U128) int {
	return u.i.Cmp(&other.i)
}

// Equal reports whether two values are numerically equal
func (u U128) Equal(other U128) bool {
	return u.Cmp(other) == 0
}

// String returns the decimal representation
func (u U128) String() string {
	return u.i.String()
}

// Add returns u+other, failing with an overflow error when the sum exceeds
// 128 bits
func (u U128) Add(other U128) (U128, error) {
	i, err := checkedAdd("U128", &u.i, &other.i, maxU128)
	if err != nil {
		return U128{}, err
	}
	return U128{i: i}, nil
}

// Sub returns u-other, failing with an underflow error when other exceeds u
func (u U128) Sub(other U128) (U128, error) {
	i, err := checkedSub("U128", &u.i, &other.i)
	if err != nil {
		return U128{}, err
	}
	return U128{i: i}, nil
}

// Mul returns u*other, failing with an overflow error when the product
// exceeds 128 bits
func (u U128) Mul(other U128) (U128, error) {
	i, err := checkedMul("U128", &u.i, &other.i, maxU128)
	if err != nil {
		return U128{}, err
	}
	return U128{i: i}, nil
}

// Div returns the integer quotient u/other, failing when other is zero
func (u U128) Div(other U128) (U128, error) {
	i, err := checkedDiv("U128", &u.i, &other.i)
	if err != nil {
		return U128{}, err
	}
	return U128{i: i}, nil
}

// EncodeTo writes the canonical shortest-form encoding
func (u U128) EncodeTo(w *codec.Writer) error {
	return w.PutBigLE(&u.i)
}

// EncodedLen returns the encoded size in bytes
func (u U128) EncodedLen() int {
	return codec.BigLELen(&u.i)
}

// ReadU128 decodes a canonical shortest-form U128
func ReadU128(r *codec.Reader) (U128, error) {
	b, err := r.ReadBigLE("U128", U128MaxBytes)
	if err != nil {
		return U128{}, err
	}
	var u U128
	u.i.Set(b)
	return u, nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *U128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewU128FromDecimal(s)
	if err != nil {
		return fmt.Errorf("invalid U128 %q: %w", s, err)
	}
	*u = parsed
	return nil
}
