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
	"github.com/ironbark-io/ledgercore/codec"
	"github.com/ironbark-io/ledgercore/crypto"
	"github.com/ironbark-io/ledgercore/key"
	"github.com/ironbark-io/ledgercore/numeric"
)

// Extraction is two-phase. Phase one compares the caller's expected
// descriptor against the carried one and fails with *TypeMismatchError on
// any disagreement, before a single payload byte is read. Phase two
// decodes the payload and requires it to be consumed exactly.

func (v Value) checkType(expected Type) error {
	if !v.typ.Equal(expected) {
		return newTypeMismatch(expected, v.typ)
	}
	return nil
}

// checkTag admits any parameterization of a composite tag, used by the
// container extractors whose element shapes come from the carried
// descriptor itself
func (v Value) checkTag(expected TypeTag) error {
	if v.typ.Tag != expected {
		return newTypeMismatch(Type{Tag: expected}, v.typ)
	}
	return nil
}

func (v Value) ToBool() (bool, error) {
	if err := v.checkType(BoolType()); err != nil {
		return false, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadBool()
	if err != nil {
		return false, err
	}
	return out, r.Finish()
}

func (v Value) ToI32() (int32, error) {
	if err := v.checkType(I32Type()); err != nil {
		return 0, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	return out, r.Finish()
}

func (v Value) ToI64() (int64, error) {
	if err := v.checkType(I64Type()); err != nil {
		return 0, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	return out, r.Finish()
}

func (v Value) ToU8() (uint8, error) {
	if err := v.checkType(U8Type()); err != nil {
		return 0, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	return out, r.Finish()
}

func (v Value) ToU32() (uint32, error) {
	if err := v.checkType(U32Type()); err != nil {
		return 0, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return out, r.Finish()
}

func (v Value) ToU64() (uint64, error) {
	if err := v.checkType(U64Type()); err != nil {
		return 0, err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return out, r.Finish()
}

func (v Value) ToU128() (numeric.U128, error) {
	if err := v.checkType(U128Type()); err != nil {
		return numeric.U128{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := numeric.ReadU128(r)
	if err != nil {
		return numeric.U128{}, err
	}
	return out, r.Finish()
}

func (v Value) ToU256() (numeric.U256, error) {
	if err := v.checkType(U256Type()); err != nil {
		return numeric.U256{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := numeric.ReadU256(r)
	if err != nil {
		return numeric.U256{}, err
	}
	return out, r.Finish()
}

func (v Value) ToU512() (numeric.U512, error) {
	if err := v.checkType(U512Type()); err != nil {
		return numeric.U512{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := numeric.ReadU512(r)
	if err != nil {
		return numeric.U512{}, err
	}
	return out, r.Finish()
}

// ToUnit checks the descriptor and that the payload is empty
func (v Value) ToUnit() error {
	if err := v.checkType(UnitType()); err != nil {
		return err
	}
	return codec.NewReader(v.bytes).Finish()
}

func (v Value) ToString() (string, error) {
	if err := v.checkType(StringType()); err != nil {
		return "", err
	}
	r := codec.NewReader(v.bytes)
	out, err := r.ReadString()
	if err != nil {
		return "", err
	}
	return out, r.Finish()
}

func (v Value) ToKey() (key.Key, error) {
	if err := v.checkType(KeyType()); err != nil {
		return key.Key{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := key.ReadKey(r)
	if err != nil {
		return key.Key{}, err
	}
	return out, r.Finish()
}

func (v Value) ToURef() (key.URef, error) {
	if err := v.checkType(URefType()); err != nil {
		return key.URef{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := key.ReadURef(r)
	if err != nil {
		return key.URef{}, err
	}
	return out, r.Finish()
}

func (v Value) ToPublicKey() (crypto.PublicKey, error) {
	if err := v.checkType(PublicKeyType()); err != nil {
		return crypto.PublicKey{}, err
	}
	r := codec.NewReader(v.bytes)
	out, err := crypto.ReadPublicKey(r)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return out, r.Finish()
}

// ToOption unwraps an option of any element shape. An absent option
// returns (nil, nil); a present one returns the inner value carrying the
// element descriptor.
func (v Value) ToOption() (*Value, error) {
	if err := v.checkTag(TypeOption); err != nil {
		return nil, err
	}
	r := codec.NewReader(v.bytes)
	present, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, r.Finish()
	}
	inner, err := captureValue(r, v.typ.Params[0], 1)
	if err != nil {
		return nil, err
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return &Value{typ: v.typ.Params[0], bytes: inner}, nil
}

// ToList splits a list of any element shape into its elements, each
// carrying the element descriptor
func (v Value) ToList() ([]Value, error) {
	if err := v.checkTag(TypeList); err != nil {
		return nil, err
	}
	r := codec.NewReader(v.bytes)
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	out, err := splitElements(r, v.typ.Params[0], count)
	if err != nil {
		return nil, err
	}
	return out, r.Finish()
}

// ToFixedList splits a fixed-arity list into exactly Arity elements
func (v Value) ToFixedList() ([]Value, error) {
	if err := v.checkTag(TypeFixedList); err != nil {
		return nil, err
	}
	r := codec.NewReader(v.bytes)
	out, err := splitElements(r, v.typ.Params[0], v.typ.Arity)
	if err != nil {
		return nil, err
	}
	return out, r.Finish()
}

// ToByteList returns the raw bytes of a FixedList<U8, n> payload
func (v Value) ToByteList() ([]byte, error) {
	if err := v.checkTag(TypeFixedList); err != nil {
		return nil, err
	}
	if !v.typ.Params[0].Equal(U8Type()) {
		return nil, newTypeMismatch(
			FixedListType(U8Type(), v.typ.Arity),
			v.typ,
		)
	}
	if uint32(len(v.bytes)) != v.typ.Arity {
		return nil, &codec.DecodeError{
			What: "byte list",
			Err:  codec.ErrEarlyEndOfStream,
		}
	}
	return v.PayloadBytes(), nil
}

// ToResult unwraps a result of any shape, reporting which arm it carries
// and the arm's value
func (v Value) ToResult() (ok bool, inner Value, err error) {
	if err := v.checkTag(TypeResult); err != nil {
		return false, Value{}, err
	}
	r := codec.NewReader(v.bytes)
	ok, err = r.ReadBool()
	if err != nil {
		return false, Value{}, err
	}
	armType := v.typ.Params[1]
	if ok {
		armType = v.typ.Params[0]
	}
	armBytes, err := captureValue(r, armType, 1)
	if err != nil {
		return false, Value{}, err
	}
	if err := r.Finish(); err != nil {
		return false, Value{}, err
	}
	return ok, Value{typ: armType, bytes: armBytes}, nil
}

// ToMap splits a map into its entries in encoded order
func (v Value) ToMap() ([]MapPair, error) {
	if err := v.checkTag(TypeMap); err != nil {
		return nil, err
	}
	r := codec.NewReader(v.bytes)
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	capacity := int(count)
	if capacity > r.Remaining() {
		capacity = r.Remaining()
	}
	out := make([]MapPair, 0, capacity)
	seen := make(map[string]struct{}, capacity)
	for i := uint32(0); i < count; i++ {
		keyBytes, err := captureValue(r, v.typ.Params[0], 1)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[string(keyBytes)]; dup {
			return nil, &codec.DecodeError{
				What: "map",
				Err:  codec.ErrDuplicateMapKey,
			}
		}
		seen[string(keyBytes)] = struct{}{}
		valBytes, err := captureValue(r, v.typ.Params[1], 1)
		if err != nil {
			return nil, err
		}
		out = append(out, MapPair{
			Key:   Value{typ: v.typ.Params[0], bytes: keyBytes},
			Value: Value{typ: v.typ.Params[1], bytes: valBytes},
		})
	}
	return out, r.Finish()
}

// ToTuple splits a tuple of any arity into its fields
func (v Value) ToTuple() ([]Value, error) {
	switch v.typ.Tag {
	case TypeTuple1, TypeTuple2, TypeTuple3:
	default:
		return nil, newTypeMismatch(Type{Tag: TypeTuple1}, v.typ)
	}
	r := codec.NewReader(v.bytes)
	out := make([]Value, 0, len(v.typ.Params))
	for _, p := range v.typ.Params {
		fieldBytes, err := captureValue(r, p, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, Value{typ: p, bytes: fieldBytes})
	}
	return out, r.Finish()
}

func splitElements(
	r *codec.Reader,
	elem Type,
	count uint32,
) ([]Value, error) {
	capacity := int(count)
	if capacity > r.Remaining() {
		// Guard allocation against a forged count; zero-size elements
		// keep the claim from being rejected outright here
		capacity = r.Remaining()
	}
	out := make([]Value, 0, capacity)
	for i := uint32(0); i < count; i++ {
		elemBytes, err := captureValue(r, elem, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, Value{typ: elem, bytes: elemBytes})
	}
	return out, nil
}
