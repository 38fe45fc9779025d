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

package value

import (
	"math"

	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/crypto"
	"github.com/ironbark-io/ledgercore/key"
	"github.com/ironbark-io/ledgercore/numeric"
)

// Constructors canonicalize on entry: a Value built here always carries
// the one valid encoding of its payload.

func NewBool(b bool) Value {
	w := codec.NewWriter(codec.BoolSize)
	w.PutBool(b)
	return Value{typ: BoolType(), bytes: w.Bytes()}
}

func NewI32(i int32) Value {
	w := codec.NewWriter(codec.Int32Size)
	w.PutInt32(i)
	return Value{typ: I32Type(), bytes: w.Bytes()}
}

func NewI64(i int64) Value {
	w := codec.NewWriter(codec.Int64Size)
	w.PutInt64(i)
	return Value{typ: I64Type(), bytes: w.Bytes()}
}

func NewU8(u uint8) Value {
	w := codec.NewWriter(codec.Uint8Size)
	w.PutUint8(u)
	return Value{typ: U8Type(), bytes: w.Bytes()}
}

func NewU32(u uint32) Value {
	w := codec.NewWriter(codec.Uint32Size)
	w.PutUint32(u)
	return Value{typ: U32Type(), bytes: w.Bytes()}
}

func NewU64(u uint64) Value {
	w := codec.NewWriter(codec.Uint64Size)
	w.PutUint64(u)
	return Value{typ: U64Type(), bytes: w.Bytes()}
}

func NewU128(u numeric.U128) Value {
	return Value{typ: U128Type(), bytes: codec.MustEncode(u)}
}

func NewU256(u numeric.U256) Value {
	return Value{typ: U256Type(), bytes: codec.MustEncode(u)}
}

func NewU512(u numeric.U512) Value {
	return Value{typ: U512Type(), bytes: codec.MustEncode(u)}
}

// NewUnit builds the unit value; its payload is empty
func NewUnit() Value {
	return Value{typ: UnitType()}
}

func NewString(s string) (Value, error) {
	w := codec.NewWriter(codec.StringLen(s))
	if err := w.PutString(s); err != nil {
		return Value{}, err
	}
	return Value{typ: StringType(), bytes: w.Bytes()}, nil
}

func NewKey(k key.Key) Value {
	return Value{typ: KeyType(), bytes: k.Bytes()}
}

func NewURef(u key.URef) Value {
	return Value{typ: URefType(), bytes: codec.MustEncode(u)}
}

func NewPublicKey(p crypto.PublicKey) Value {
	return Value{typ: PublicKeyType(), bytes: codec.MustEncode(p)}
}

// NewSome wraps a value in a present option; the element shape is taken
// from the wrapped value
func NewSome(inner Value) Value {
	w := codec.NewWriter(codec.OptionTagSize + len(inner.bytes))
	w.PutBool(true)
	w.PutRawBytes(inner.bytes)
	return Value{typ: OptionType(inner.typ), bytes: w.Bytes()}
}

// NewNone builds an absent option of the given element shape
func NewNone(elem Type) Value {
	w := codec.NewWriter(codec.OptionTagSize)
	w.PutBool(false)
	return Value{typ: OptionType(elem), bytes: w.Bytes()}
}

// NewList builds a homogeneous list. Every element's descriptor must equal
// elem; an empty list is valid and still carries the element shape.
func NewList(elem Type, items []Value) (Value, error) {
	if len(items) > math.MaxUint32 {
		return Value{}, &codec.EncodeError{
			What: "list",
			Err:  codec.ErrValueTooLarge,
		}
	}
	size := codec.LengthPrefixSize
	for _, item := range items {
		if !item.typ.Equal(elem) {
			return Value{}, ErrElementType
		}
		size += len(item.bytes)
	}
	w := codec.NewWriter(size)
	w.PutUint32(uint32(len(items)))
	for _, item := range items {
		w.PutRawBytes(item.bytes)
	}
	return Value{typ: ListType(elem), bytes: w.Bytes()}, nil
}

// NewFixedList builds a fixed-arity list; the count lives in the
// descriptor and is absent from the payload
func NewFixedList(elem Type, items []Value) (Value, error) {
	if len(items) > math.MaxUint32 {
		return Value{}, &codec.EncodeError{
			What: "fixed list",
			Err:  codec.ErrValueTooLarge,
		}
	}
	size := 0
	for _, item := range items {
		if !item.typ.Equal(elem) {
			return Value{}, ErrElementType
		}
		size += len(item.bytes)
	}
	w := codec.NewWriter(size)
	for _, item := range items {
		w.PutRawBytes(item.bytes)
	}
	return Value{
		typ:   FixedListType(elem, uint32(len(items))),
		bytes: w.Bytes(),
	}, nil
}

// NewByteList builds a FixedList<U8, len(data)> directly from raw bytes,
// the common shape for digests and opaque blobs
func NewByteList(data []byte) (Value, error) {
	if len(data) > math.MaxUint32 {
		return Value{}, &codec.EncodeError{
			What: "byte list",
			Err:  codec.ErrValueTooLarge,
		}
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return Value{
		typ:   FixedListType(U8Type(), uint32(len(data))),
		bytes: owned,
	}, nil
}

// NewResultOk builds the ok arm of a result; the err shape must still be
// supplied because it is part of the descriptor
func NewResultOk(ok Value, errType Type) Value {
	w := codec.NewWriter(codec.ResultTagSize + len(ok.bytes))
	w.PutBool(true)
	w.PutRawBytes(ok.bytes)
	return Value{typ: ResultType(ok.typ, errType), bytes: w.Bytes()}
}

// NewResultErr builds the err arm of a result
func NewResultErr(errVal Value, okType Type) Value {
	w := codec.NewWriter(codec.ResultTagSize + len(errVal.bytes))
	w.PutBool(false)
	w.PutRawBytes(errVal.bytes)
	return Value{typ: ResultType(okType, errVal.typ), bytes: w.Bytes()}
}

// MapPair is one key/value entry of a map value
type MapPair struct {
	Key   Value
	Value Value
}

// NewMap builds a map value preserving the caller's entry order. Entry
// descriptors must match the declared shapes and keys must be distinct.
func NewMap(keyType, valueType Type, pairs []MapPair) (Value, error) {
	if len(pairs) > math.MaxUint32 {
		return Value{}, &codec.EncodeError{
			What: "map",
			Err:  codec.ErrValueTooLarge,
		}
	}
	size := codec.LengthPrefixSize
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if !p.Key.typ.Equal(keyType) || !p.Value.typ.Equal(valueType) {
			return Value{}, ErrElementType
		}
		if _, dup := seen[string(p.Key.bytes)]; dup {
			return Value{}, codec.ErrDuplicateMapKey
		}
		seen[string(p.Key.bytes)] = struct{}{}
		size += len(p.Key.bytes) + len(p.Value.bytes)
	}
	w := codec.NewWriter(size)
	w.PutUint32(uint32(len(pairs)))
	for _, p := range pairs {
		w.PutRawBytes(p.Key.bytes)
		w.PutRawBytes(p.Value.bytes)
	}
	return Value{typ: MapType(keyType, valueType), bytes: w.Bytes()}, nil
}

func NewTuple1(a Value) Value {
	return Value{
		typ:   Tuple1Type(a.typ),
		bytes: concatPayloads(a),
	}
}

func NewTuple2(a, b Value) Value {
	return Value{
		typ:   Tuple2Type(a.typ, b.typ),
		bytes: concatPayloads(a, b),
	}
}

func NewTuple3(a, b, c Value) Value {
	return Value{
		typ:   Tuple3Type(a.typ, b.typ, c.typ),
		bytes: concatPayloads(a, b, c),
	}
}

func concatPayloads(values ...Value) []byte {
	size := 0
	for _, v := range values {
		size += len(v.bytes)
	}
	w := codec.NewWriter(size)
	for _, v := range values {
		w.PutRawBytes(v.bytes)
	}
	return w.Bytes()
}
