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

package value_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/internal/test"
	"github.com/ironbark-io/ledgercore/key"
	"github.com/ironbark-io/ledgercore/numeric"
	"github.com/ironbark-io/ledgercore/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func mustString(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := value.NewString(s)
	require.NoError(t, err)
	return v
}

func testKey(t *testing.T) key.Key {
	t.Helper()
	h, err := key.NewHash(test.DecodeHexString(
		"0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a0a",
	))
	require.NoError(t, err)
	return key.HashKey(h)
}

func TestValueWireFormat(t *testing.T) {
	testDefs := []struct {
		v       value.Value
		wireHex string
	}{
		// payload length prefix, payload, descriptor
		{value.NewBool(true), "010000000100"},
		{value.NewBool(false), "010000000000"},
		{value.NewU32(7), "040000000700000004"},
		{value.NewU64(1), "08000000010000000000000005"},
		{value.NewI32(-1), "04000000ffffffff01"},
		{value.NewUnit(), "0000000009"},
		{mustString(t, "hi"), "060000000200000068690a"},
		{value.NewU512(numeric.NewU512FromUint64(256)), "0300000002000108"},
		{value.NewNone(value.U32Type()), "01000000000d04"},
		{value.NewSome(value.NewU8(9)), "020000000109" + "0d03"},
	}
	for _, testDef := range testDefs {
		data, err := codec.Encode(testDef.v)
		require.NoError(t, err)
		assert.Equal(
			t,
			testDef.wireHex,
			hex.EncodeToString(data),
			"wire form for %s", testDef.v.Type(),
		)
		require.Equal(t, testDef.v.EncodedLen(), len(data))
	}
}

func TestValueRoundTrip(t *testing.T) {
	u128, err := numeric.NewU128FromDecimal("1267650600228229401496703205376")
	require.NoError(t, err)
	uref, err := key.NewURef(
		test.DecodeHexString(
			"1111111111111111111111111111111111111111111111111111111111111111",
		),
		key.AccessReadAddWrite,
	)
	require.NoError(t, err)
	list, err := value.NewList(
		value.StringType(),
		[]value.Value{mustString(t, "a"), mustString(t, "bc")},
	)
	require.NoError(t, err)
	byteList, err := value.NewByteList([]byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)
	mapVal, err := value.NewMap(
		value.StringType(),
		value.U64Type(),
		[]value.MapPair{
			{Key: mustString(t, "alpha"), Value: value.NewU64(1)},
			{Key: mustString(t, "beta"), Value: value.NewU64(2)},
		},
	)
	require.NoError(t, err)

	testDefs := []value.Value{
		value.NewBool(true),
		value.NewI64(-42),
		value.NewU8(255),
		value.NewU128(u128),
		value.NewUnit(),
		mustString(t, "hello world"),
		value.NewKey(testKey(t)),
		value.NewURef(uref),
		value.NewSome(value.NewKey(testKey(t))),
		value.NewNone(value.U512Type()),
		list,
		byteList,
		value.NewResultOk(value.NewU32(10), value.StringType()),
		value.NewResultErr(mustString(t, "boom"), value.U32Type()),
		mapVal,
		value.NewTuple2(value.NewBool(false), value.NewU64(9)),
		value.NewTuple3(
			value.NewU8(1),
			mustString(t, "x"),
			value.NewUnit(),
		),
	}
	for _, v := range testDefs {
		data, err := codec.Encode(v)
		require.NoError(t, err)
		r := codec.NewReader(data)
		got, err := value.ReadValue(r)
		require.NoError(t, err, "decoding %s", v.Type())
		require.NoError(t, r.Finish())
		assert.True(t, got.Equal(v), "round trip for %s", v.Type())
	}
}

func TestTypeDescriptorRoundTrip(t *testing.T) {
	typ := value.MapType(
		value.StringType(),
		value.ListType(value.OptionType(value.U512Type())),
	)
	assert.Equal(t, "Map<String, List<Option<U512>>>", typ.String())

	data := codec.MustEncode(typ)
	r := codec.NewReader(data)
	got, err := value.ReadType(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())
	assert.True(t, got.Equal(typ))

	fixed := value.FixedListType(value.U8Type(), 32)
	assert.Equal(t, "FixedList<U8, 32>", fixed.String())
	r = codec.NewReader(codec.MustEncode(fixed))
	got, err = value.ReadType(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())
	assert.Equal(t, uint32(32), got.Arity)
}

func TestTypeDescriptorDepthLimit(t *testing.T) {
	// 70 nested options around unit exceeds the nesting bound
	data := bytes.Repeat([]byte{uint8(value.TypeOption)}, 70)
	data = append(data, uint8(value.TypeUnit))
	r := codec.NewReader(data)
	_, err := value.ReadType(r)
	assert.ErrorIs(t, err, codec.ErrFormat)
	assert.Equal(t, 0, r.Pos())
}

func TestUnknownTypeTagRejected(t *testing.T) {
	_, err := value.ReadType(codec.NewReader([]byte{0x63}))
	assert.ErrorIs(t, err, codec.ErrFormat)
}

func TestTypeMismatchNeverDecodes(t *testing.T) {
	v := value.NewU32(7)
	_, err := v.ToString()
	var mismatch *value.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, mismatch.Expected.Equal(value.StringType()))
	assert.True(t, mismatch.Actual.Equal(value.U32Type()))
	assert.Equal(
		t,
		"type mismatch: expected String, found U32",
		mismatch.Error(),
	)

	// Composite extractors reject on the tag alone
	_, err = v.ToList()
	assert.ErrorAs(t, err, &mismatch)
	_, _, err = v.ToResult()
	assert.ErrorAs(t, err, &mismatch)
}

func TestOptionExtraction(t *testing.T) {
	some := value.NewSome(value.NewU32(5))
	assert.True(t, some.Type().Equal(value.OptionType(value.U32Type())))
	inner, err := some.ToOption()
	require.NoError(t, err)
	require.NotNil(t, inner)
	got, err := inner.ToU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(5), got)

	none := value.NewNone(value.U32Type())
	inner, err = none.ToOption()
	require.NoError(t, err)
	assert.Nil(t, inner)
	assert.True(t, none.Type().Equal(some.Type()))
}

func TestListExtraction(t *testing.T) {
	list, err := value.NewList(
		value.U64Type(),
		[]value.Value{value.NewU64(1), value.NewU64(2), value.NewU64(3)},
	)
	require.NoError(t, err)
	elems, err := list.ToList()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, e := range elems {
		got, err := e.ToU64()
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), got)
	}

	// Empty lists keep their element shape
	empty, err := value.NewList(value.KeyType(), nil)
	require.NoError(t, err)
	elems, err = empty.ToList()
	require.NoError(t, err)
	assert.Empty(t, elems)
	assert.True(t, empty.Type().Equal(value.ListType(value.KeyType())))

	_, err = value.NewList(
		value.U64Type(),
		[]value.Value{value.NewU64(1), value.NewU32(2)},
	)
	assert.ErrorIs(t, err, value.ErrElementType)
}

func TestByteList(t *testing.T) {
	raw := test.DecodeHexString("deadbeef")
	v, err := value.NewByteList(raw)
	require.NoError(t, err)
	assert.True(t, v.Type().Equal(value.FixedListType(value.U8Type(), 4)))
	// No count on the wire: the payload is exactly the raw bytes
	assert.Equal(t, raw, v.PayloadBytes())

	got, err := v.ToByteList()
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	elems, err := v.ToFixedList()
	require.NoError(t, err)
	require.Len(t, elems, 4)
	b, err := elems[0].ToU8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xde), b)
}

func TestResultExtraction(t *testing.T) {
	okVal := value.NewResultOk(value.NewU32(10), value.StringType())
	ok, inner, err := okVal.ToResult()
	require.NoError(t, err)
	require.True(t, ok)
	got, err := inner.ToU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(10), got)

	errVal := value.NewResultErr(mustString(t, "boom"), value.U32Type())
	assert.True(t, errVal.Type().Equal(okVal.Type()))
	ok, inner, err = errVal.ToResult()
	require.NoError(t, err)
	require.False(t, ok)
	msg, err := inner.ToString()
	require.NoError(t, err)
	assert.Equal(t, "boom", msg)
}

func TestMapExtraction(t *testing.T) {
	pairs := []value.MapPair{
		{Key: mustString(t, "zeta"), Value: value.NewU64(26)},
		{Key: mustString(t, "alpha"), Value: value.NewU64(1)},
	}
	m, err := value.NewMap(value.StringType(), value.U64Type(), pairs)
	require.NoError(t, err)

	// Entry order is the caller's, not sorted
	got, err := m.ToMap()
	require.NoError(t, err)
	require.Len(t, got, 2)
	k, err := got[0].Key.ToString()
	require.NoError(t, err)
	assert.Equal(t, "zeta", k)

	_, err = value.NewMap(value.StringType(), value.U64Type(),
		[]value.MapPair{
			{Key: mustString(t, "dup"), Value: value.NewU64(1)},
			{Key: mustString(t, "dup"), Value: value.NewU64(2)},
		},
	)
	assert.ErrorIs(t, err, codec.ErrDuplicateMapKey)

	_, err = value.NewMap(value.StringType(), value.U64Type(),
		[]value.MapPair{
			{Key: value.NewU32(1), Value: value.NewU64(1)},
		},
	)
	assert.ErrorIs(t, err, value.ErrElementType)
}

func TestTupleExtraction(t *testing.T) {
	v := value.NewTuple3(value.NewU8(1), mustString(t, "x"), value.NewBool(true))
	fields, err := v.ToTuple()
	require.NoError(t, err)
	require.Len(t, fields, 3)
	s, err := fields[1].ToString()
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

func TestAnyIsOpaque(t *testing.T) {
	raw := test.DecodeHexString("0102030405")
	v, err := value.NewFromBytes(value.AnyType(), raw)
	require.NoError(t, err)
	assert.ErrorIs(t, v.Validate(), value.ErrAnyOpaque)

	// Round-trips untouched even though it cannot be inspected
	data, err := codec.Encode(v)
	require.NoError(t, err)
	r := codec.NewReader(data)
	got, err := value.ReadValue(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())
	assert.True(t, got.Equal(v))
	assert.Equal(t, raw, got.PayloadBytes())
}

func TestNewFromBytesValidates(t *testing.T) {
	// 0x02 is not a boolean byte
	_, err := value.NewFromBytes(value.BoolType(), []byte{0x02})
	assert.ErrorIs(t, err, codec.ErrFormat)

	// Truncated fixed-width payload
	_, err = value.NewFromBytes(value.U32Type(), []byte{0x01, 0x02})
	assert.ErrorIs(t, err, codec.ErrEarlyEndOfStream)

	// Trailing garbage after a complete payload
	_, err = value.NewFromBytes(
		value.BoolType(),
		[]byte{0x01, 0xff},
	)
	assert.ErrorIs(t, err, codec.ErrLeftoverBytes)

	// List claiming two elements but carrying one
	payload := test.DecodeHexString("02000000" + "01000000")
	_, err = value.NewFromBytes(value.ListType(value.U32Type()), payload)
	assert.ErrorIs(t, err, codec.ErrEarlyEndOfStream)

	// Non-shortest-form big integer inside a composite: the final
	// little-endian byte is zero
	payload = test.DecodeHexString("01" + "03000100")
	_, err = value.NewFromBytes(
		value.Tuple2Type(value.BoolType(), value.U512Type()),
		payload,
	)
	assert.ErrorIs(t, err, codec.ErrFormat)

	// Duplicate map keys are rejected during validation too
	payload = test.DecodeHexString(
		"02000000" + "07000000" + "00" + "07000000" + "01",
	)
	_, err = value.NewFromBytes(
		value.MapType(value.U32Type(), value.BoolType()),
		payload,
	)
	assert.ErrorIs(t, err, codec.ErrDuplicateMapKey)
}

func TestReadValueRejectsInvalidPayload(t *testing.T) {
	// Wire bytes claiming a Bool with payload 0x02
	data := test.DecodeHexString("01000000" + "02" + "00")
	r := codec.NewReader(data)
	_, err := value.ReadValue(r)
	assert.ErrorIs(t, err, codec.ErrFormat)
	assert.Equal(t, 0, r.Pos())

	// Payload length prefix exceeding the input fails before allocating
	data = test.DecodeHexString("ffffffff" + "0102")
	_, err = value.ReadValue(codec.NewReader(data))
	assert.ErrorIs(t, err, codec.ErrEarlyEndOfStream)
}

func TestNestedCompositeRoundTrip(t *testing.T) {
	inner, err := value.NewList(
		value.U512Type(),
		[]value.Value{
			value.NewU512(numeric.NewU512FromUint64(0)),
			value.NewU512(numeric.NewU512FromUint64(1_000_000)),
		},
	)
	require.NoError(t, err)
	m, err := value.NewMap(
		value.StringType(),
		value.ListType(value.U512Type()),
		[]value.MapPair{{Key: mustString(t, "balances"), Value: inner}},
	)
	require.NoError(t, err)

	data, err := codec.Encode(m)
	require.NoError(t, err)
	r := codec.NewReader(data)
	got, err := value.ReadValue(r)
	require.NoError(t, err)
	require.NoError(t, r.Finish())

	entries, err := got.ToMap()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	elems, err := entries[0].Value.ToList()
	require.NoError(t, err)
	require.Len(t, elems, 2)
	amount, err := elems[1].ToU512()
	require.NoError(t, err)
	assert.Equal(t, "1000000", amount.String())
}
