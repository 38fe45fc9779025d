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
	// U512Bits is the width of a U512 in bits
	U512Bits = 512
	// U512MaxBytes is the maximum number of significant bytes in a U512
	U512MaxBytes = U512Bits / 8
)

// U512 is a 512-bit unsigned integer with checked arithmetic. The zero value
// is the number zero.
type U512 struct {
	i big.Int
}

// NewU512FromUint64 creates a U512 from a native unsigned integer
func NewU512FromUint64(v uint64) U512 {
	var u U512
	u.i.SetUint64(v)
	return u
}

// NewU512FromBig creates a U512 from a big.Int, failing when the value is
// negative or wider than 512 bits
func NewU512FromBig(b *big.Int) (U512, error) {
	i, err := checkedFromBig("U512", b, maxU512)
	if err != nil {
		return U512{}, err
	}
	return U512{i: i}, nil
}

// NewU512FromDecimal parses a base-10 string into a U512
func NewU512FromDecimal(s string) (U512, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return U512{}, newArithmeticError("U512", "parse", ErrOutOfRange)
	}
	return NewU512FromBig(b)
}

// NewU512FromBytesLE creates a U512 from raw little-endian bytes (no length
// prefix). Trailing zero bytes are permitted here; only the wire form is
// required to be shortest.
func NewU512FromBytesLE(data []byte) (U512, error) {
	if len(data) > U512MaxBytes {
		return U512{}, newArithmeticError("U512", "from bytes", ErrOutOfRange)
	}
	be := make([]byte, len(data))
	for i, b := range data {
		be[len(data)-1-i] = b
	}
	var u U512
	u.i.SetBytes(be)
	return u, nil
}

// MaxU512 returns the largest representable U512
func MaxU512() U512 {
	var u U512
	u.i.Set(maxU512)
	return u
}

// Big returns the value as a fresh big.Int
func (u U512) Big() *big.Int {
	return new(big.Int).Set(&u.i)
}

// Uint64 narrows to a native unsigned integer, reporting whether the value fits
func (u U512) Uint64() (uint64, bool) {
	if !u.i.IsUint64() {
		return 0, false
	}
	return u.i.Uint64(), true
}

// Bits returns the width class in bits
func (u U512) Bits() int {
	return U512Bits
}

// IsZero reports whether the value is zero
func (u U512) IsZero() bool {
	return u.i.Sign() == 0
}

// Cmp compares two values with standard unsigned integer semantics
func (u U512) Cmp(other U512) int {
	return u.i.Cmp(&other.i)
}

// Equal reports whether two values are numerically equal
func (u U512) Equal(other U512) bool {
	return u.Cmp(other) == 0
}

// String returns the decimal representation
func (u U512) String() string {
	return u.i.String()
}

// Add returns u+other, failing with an overflow error when the sum exceeds
// 512 bits
func (u U512) Add(other U512) (U512, error) {
	i, err := checkedAdd("U512", &u.i, &other.i, maxU512)
	if err != nil {
		return U512{}, err
	}
	return U512{i: i}, nil
}

// Sub returns u-other, failing with an underflow error when other exceeds u
func (u U512) Sub(other U512) (U512, error) {
	i, err := checkedSub("U512", &u.i, &other.i)
	if err != nil {
		return U512{}, err
	}
	return U512{i: i}, nil
}

// Mul returns u*other, failing with an overflow error when the product
// exceeds 512 bits
func (u U512) Mul(other U512) (U512, error) {
	i, err := checkedMul("U512", &u.i, &other.i, maxU512)
	if err != nil {
		return U512{}, err
	}
	return U512{i: i}, nil
}

// Div returns the integer quotient u/other, failing when other is zero
func (u U512) Div(other U512) (U512, error) {
	i, err := checkedDiv("U512", &u.i, &other.i)
	if err != nil {
		return U512{}, err
	}
	return U512{i: i}, nil
}

// EncodeTo writes the canonical shortest-form encoding
func (u U512) EncodeTo(w *codec.Writer) error {
	return w.PutBigLE(&u.i)
}

// EncodedLen returns the encoded size in bytes
func (u U512) EncodedLen() int {
	return codec.BigLELen(&u.i)
}

// ReadU512 decodes a canonical shortest-form U512
func ReadU512(r *codec.Reader) (U512, error) {
	b, err := r.ReadBigLE("U512", U512MaxBytes)
	if err != nil {
		return U512{}, err
	}
	var u U512
	u.i.Set(b)
	return u, nil
}

func (u U512) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *U512) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewU512FromDecimal(s)
	if err != nil {
		return fmt.Errorf("invalid U512 %q: %w", s, err)
	}
	*u = parsed
	return nil
}
