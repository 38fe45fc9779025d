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

package numeric_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/internal/test"
	"github.com/ironbark-io/ledgercore/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestU512CanonicalEncode(t *testing.T) {
	testDefs := []struct {
		value   uint64
		wireHex string
	}{
		// Zero is the bare length byte
		{value: 0, wireHex: "00"},
		{value: 1, wireHex: "0101"},
		{value: 255, wireHex: "01ff"},
		// 256 is two significant little-endian bytes
		{value: 256, wireHex: "020001"},
		{value: 0xdeadbeef, wireHex: "04efbeadde"},
	}
	for _, testDef := range testDefs {
		u := numeric.NewU512FromUint64(testDef.value)
		data, err := codec.Encode(u)
		if err != nil {
			t.Fatalf("unexpected encode error: %s", err)
		}
		wireHex := hex.EncodeToString(data)
		if wireHex != testDef.wireHex {
			t.Fatalf(
				"value %d did not encode to expected bytes\n  got: %s\n  wanted: %s",
				testDef.value,
				wireHex,
				testDef.wireHex,
			)
		}
	}
}

func TestEncodingIdenticalAcrossWidths(t *testing.T) {
	// Equal integers produce identical bytes regardless of width class
	for _, v := range []uint64{0, 1, 256, 1_000_000, 18_446_744_073_709_551_615} {
		b128 := codec.MustEncode(numeric.NewU128FromUint64(v))
		b256 := codec.MustEncode(numeric.NewU256FromUint64(v))
		b512 := codec.MustEncode(numeric.NewU512FromUint64(v))
		assert.Equal(t, b128, b256, "U128 vs U256 for %d", v)
		assert.Equal(t, b128, b512, "U128 vs U512 for %d", v)
	}
}

func TestBigRoundTrip(t *testing.T) {
	// A value wider than 64 bits survives the round trip
	big1 := new(big.Int).Lsh(big.NewInt(1), 200) // 2^200
	u, err := numeric.NewU512FromBig(big1)
	require.NoError(t, err)
	data := codec.MustEncode(u)
	r := codec.NewReader(data)
	got, err := numeric.ReadU512(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())
	assert.True(t, u.Equal(got))
	assert.Equal(t, big1.String(), got.String())
}

func TestNonCanonicalRejected(t *testing.T) {
	// 256 encoded with a superfluous third byte (trailing zero)
	r := codec.NewReader(test.DecodeHexString("03000100"))
	_, err := numeric.ReadU512(r)
	assert.ErrorIs(t, err, codec.ErrFormat)

	// Length byte exceeding the width class
	r = codec.NewReader(test.DecodeHexString("11" + "01010101010101010101010101010101ff"))
	_, err = numeric.ReadU128(r)
	assert.ErrorIs(t, err, codec.ErrFormat)

	// Declared length exceeding remaining input
	r = codec.NewReader(test.DecodeHexString("0a0102"))
	_, err = numeric.ReadU512(r)
	assert.ErrorIs(t, err, codec.ErrEarlyEndOfStream)
}

func TestWidthLimits(t *testing.T) {
	overU128 := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err := numeric.NewU128FromBig(overU128)
	assert.ErrorIs(t, err, numeric.ErrOutOfRange)

	// 2^128-1 is fine for U128
	max128 := new(big.Int).Sub(overU128, big.NewInt(1))
	u, err := numeric.NewU128FromBig(max128)
	require.NoError(t, err)
	assert.True(t, u.Equal(numeric.MaxU128()))

	_, err = numeric.NewU256FromBig(big.NewInt(-1))
	assert.ErrorIs(t, err, numeric.ErrOutOfRange)
}

func TestCheckedArithmetic(t *testing.T) {
	one := numeric.NewU256FromUint64(1)
	two := numeric.NewU256FromUint64(2)
	zero := numeric.NewU256FromUint64(0)

	sum, err := one.Add(two)
	require.NoError(t, err)
	assert.Equal(t, "3", sum.String())

	_, err = numeric.MaxU256().Add(one)
	assert.ErrorIs(t, err, numeric.ErrOverflow)

	_, err = one.Sub(two)
	assert.ErrorIs(t, err, numeric.ErrUnderflow)

	diff, err := two.Sub(one)
	require.NoError(t, err)
	assert.Equal(t, "1", diff.String())

	_, err = numeric.MaxU256().Mul(two)
	assert.ErrorIs(t, err, numeric.ErrOverflow)

	product, err := two.Mul(two)
	require.NoError(t, err)
	assert.Equal(t, "4", product.String())

	_, err = one.Div(zero)
	assert.ErrorIs(t, err, numeric.ErrDivideByZero)

	quotient, err := numeric.NewU256FromUint64(7).Div(two)
	require.NoError(t, err)
	assert.Equal(t, "3", quotient.String())
}

func TestNarrowing(t *testing.T) {
	u := numeric.NewU512FromUint64(42)
	v, ok := u.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), v)

	wide, err := numeric.NewU512FromBig(new(big.Int).Lsh(big.NewInt(1), 80))
	require.NoError(t, err)
	_, ok = wide.Uint64()
	assert.False(t, ok)
}

func TestFromBytesLE(t *testing.T) {
	// 256 as little-endian bytes, trailing zeros allowed at this layer
	u, err := numeric.NewU128FromBytesLE([]byte{0x00, 0x01, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "256", u.String())
	assert.Equal(t, 128, u.Bits())

	_, err = numeric.NewU128FromBytesLE(make([]byte, 17))
	assert.ErrorIs(t, err, numeric.ErrOutOfRange)

	// The canonical wire form still strips the trailing zero
	assert.Equal(t, "020001", hex.EncodeToString(codec.MustEncode(u)))
}

func TestDecimalParse(t *testing.T) {
	u, err := numeric.NewU512FromDecimal("340282366920938463463374607431768211456")
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211456", u.String())

	_, err = numeric.NewU512FromDecimal("not a number")
	assert.Error(t, err)

	_, err = numeric.NewU128FromDecimal("340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, numeric.ErrOutOfRange)
}

func TestJSONRoundTrip(t *testing.T) {
	u := numeric.NewU256FromUint64(123456789)
	data, err := u.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"123456789"`, string(data))

	var got numeric.U256
	require.NoError(t, got.UnmarshalJSON(data))
	assert.True(t, u.Equal(got))
}

func TestZeroValueUsable(t *testing.T) {
	var u numeric.U512
	assert.True(t, u.IsZero())
	assert.Equal(t, "00", hex.EncodeToString(codec.MustEncode(u)))
}
