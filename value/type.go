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
	"fmt"
	"strings"

	"github.com/ironbark-io/ledgercore/codec"
)

// TypeTag identifies a descriptor shape on the wire. Tag assignments are
// protocol-stable: they never change and unknown tags are decode errors.
type TypeTag uint8

const (
	TypeBool TypeTag = iota
	TypeI32
	TypeI64
	TypeU8
	TypeU32
	TypeU64
	TypeU128
	TypeU256
	TypeU512
	TypeUnit
	TypeString
	TypeKey
	TypeURef
	TypeOption
	TypeList
	TypeFixedList
	TypeResult
	TypeMap
	TypeTuple1
	TypeTuple2
	TypeTuple3
	TypeAny
	TypePublicKey
)

// maxTypeNesting bounds descriptor recursion during decode and validation
// so adversarial input cannot drive unbounded stack growth
const maxTypeNesting = 64

func (t TypeTag) String() string {
	switch t {
	case TypeBool:
		return "Bool"
	case TypeI32:
		return "I32"
	case TypeI64:
		return "I64"
	case TypeU8:
		return "U8"
	case TypeU32:
		return "U32"
	case TypeU64:
		return "U64"
	case TypeU128:
		return "U128"
	case TypeU256:
		return "U256"
	case TypeU512:
		return "U512"
	case TypeUnit:
		return "Unit"
	case TypeString:
		return "String"
	case TypeKey:
		return "Key"
	case TypeURef:
		return "URef"
	case TypeOption:
		return "Option"
	case TypeList:
		return "List"
	case TypeFixedList:
		return "FixedList"
	case TypeResult:
		return "Result"
	case TypeMap:
		return "Map"
	case TypeTuple1:
		return "Tuple1"
	case TypeTuple2:
		return "Tuple2"
	case TypeTuple3:
		return "Tuple3"
	case TypeAny:
		return "Any"
	case TypePublicKey:
		return "PublicKey"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// paramCount returns how many nested descriptors each tag carries
func (t TypeTag) paramCount() int {
	switch t {
	case TypeOption, TypeList, TypeFixedList, TypeTuple1:
		return 1
	case TypeResult, TypeMap, TypeTuple2:
		return 2
	case TypeTuple3:
		return 3
	default:
		return 0
	}
}

func (t TypeTag) valid() bool {
	return t <= TypePublicKey
}

// Type is a structural descriptor for a dynamic value: a tag plus nested
// descriptors for composite shapes, and an element count for fixed-size
// lists. Descriptors are compared structurally and are themselves
// wire-encodable, so a downstream schema generator can traverse them.
type Type struct {
	Tag    TypeTag
	Params []Type
	Arity  uint32
}

// Primitive descriptor constructors

func BoolType() Type      { return Type{Tag: TypeBool} }
func I32Type() Type       { return Type{Tag: TypeI32} }
func I64Type() Type       { return Type{Tag: TypeI64} }
func U8Type() Type        { return Type{Tag: TypeU8} }
func U32Type() Type       { return Type{Tag: TypeU32} }
func U64Type() Type       { return Type{Tag: TypeU64} }
func U128Type() Type      { return Type{Tag: TypeU128} }
func U256Type() Type      { return Type{Tag: TypeU256} }
func U512Type() Type      { return Type{Tag: TypeU512} }
func UnitType() Type      { return Type{Tag: TypeUnit} }
func StringType() Type    { return Type{Tag: TypeString} }
func KeyType() Type       { return Type{Tag: TypeKey} }
func URefType() Type      { return Type{Tag: TypeURef} }
func AnyType() Type       { return Type{Tag: TypeAny} }
func PublicKeyType() Type { return Type{Tag: TypePublicKey} }

// OptionType describes an optional value of the inner shape
func OptionType(inner Type) Type {
	return Type{Tag: TypeOption, Params: []Type{inner}}
}

// ListType describes a variable-length sequence of the element shape
func ListType(elem Type) Type {
	return Type{Tag: TypeList, Params: []Type{elem}}
}

// FixedListType describes a fixed-arity sequence of the element shape;
// the arity is part of the descriptor, not the encoding
func FixedListType(elem Type, arity uint32) Type {
	return Type{Tag: TypeFixedList, Params: []Type{elem}, Arity: arity}
}

// ResultType describes a value that is either the ok shape or the err shape
func ResultType(ok, errType Type) Type {
	return Type{Tag: TypeResult, Params: []Type{ok, errType}}
}

// MapType describes an ordered sequence of key/value pairs
func MapType(keyType, valueType Type) Type {
	return Type{Tag: TypeMap, Params: []Type{keyType, valueType}}
}

// Tuple1Type through Tuple3Type describe fixed heterogeneous aggregates

func Tuple1Type(a Type) Type {
	return Type{Tag: TypeTuple1, Params: []Type{a}}
}

func Tuple2Type(a, b Type) Type {
	return Type{Tag: TypeTuple2, Params: []Type{a, b}}
}

func Tuple3Type(a, b, c Type) Type {
	return Type{Tag: TypeTuple3, Params: []Type{a, b, c}}
}

// Equal compares descriptors structurally
func (t Type) Equal(other Type) bool {
	if t.Tag != other.Tag || t.Arity != other.Arity {
		return false
	}
	if len(t.Params) != len(other.Params) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equal(other.Params[i]) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether the descriptor has an Any anywhere in it.
// Such shapes cannot be structurally validated or traversed.
func (t Type) ContainsAny() bool {
	if t.Tag == TypeAny {
		return true
	}
	for _, p := range t.Params {
		if p.ContainsAny() {
			return true
		}
	}
	return false
}

// String renders the descriptor for diagnostics, e.g. "Map<String, U512>"
// or "FixedList<U8, 32>"
func (t Type) String() string {
	if len(t.Params) == 0 {
		return t.Tag.String()
	}
	parts := make([]string, 0, len(t.Params)+1)
	for _, p := range t.Params {
		parts = append(parts, p.String())
	}
	if t.Tag == TypeFixedList {
		parts = append(parts, fmt.Sprintf("%d", t.Arity))
	}
	return fmt.Sprintf("%s<%s>", t.Tag, strings.Join(parts, ", "))
}

// EncodeTo writes the tag byte, nested descriptors in order, and the arity
// for fixed-size lists
func (t Type) EncodeTo(w *codec.Writer) error {
	w.PutUint8(uint8(t.Tag))
	for _, p := range t.Params {
		if err := p.EncodeTo(w); err != nil {
			return err
		}
	}
	if t.Tag == TypeFixedList {
		w.PutUint32(t.Arity)
	}
	return nil
}

// EncodedLen returns the wire size of the descriptor
func (t Type) EncodedLen() int {
	size := 1
	for _, p := range t.Params {
		size += p.EncodedLen()
	}
	if t.Tag == TypeFixedList {
		size += codec.Uint32Size
	}
	return size
}

// ReadType decodes a descriptor, rejecting unknown tags and nesting beyond
// maxTypeNesting
func ReadType(r *codec.Reader) (Type, error) {
	start := r.Pos()
	t, err := readTypeDepth(r, 0)
	if err != nil {
		r.Rewind(start)
		return Type{}, err
	}
	return t, nil
}

func readTypeDepth(r *codec.Reader, depth int) (Type, error) {
	if depth > maxTypeNesting {
		return Type{}, &codec.DecodeError{
			What: "type descriptor",
			Err:  codec.ErrFormat,
		}
	}
	tag, err := r.ReadUint8()
	if err != nil {
		return Type{}, &codec.DecodeError{
			What: "type descriptor",
			Err:  codec.ErrEarlyEndOfStream,
		}
	}
	t := Type{Tag: TypeTag(tag)}
	if !t.Tag.valid() {
		return Type{}, &codec.DecodeError{
			What: "type descriptor",
			Err:  codec.ErrFormat,
		}
	}
	if n := t.Tag.paramCount(); n > 0 {
		t.Params = make([]Type, 0, n)
		for i := 0; i < n; i++ {
			p, err := readTypeDepth(r, depth+1)
			if err != nil {
				return Type{}, err
			}
			t.Params = append(t.Params, p)
		}
	}
	if t.Tag == TypeFixedList {
		arity, err := r.ReadUint32()
		if err != nil {
			return Type{}, &codec.DecodeError{
				What: "type descriptor",
				Err:  codec.ErrEarlyEndOfStream,
			}
		}
		t.Arity = arity
	}
	return t, nil
}
