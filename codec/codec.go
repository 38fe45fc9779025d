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

package codec

import (
	"fmt"
)

const (
	// BoolSize is the encoded size of a boolean
	BoolSize = 1

	// Uint8Size through Uint64Size are the encoded sizes of fixed-width integers
	Uint8Size  = 1
	Uint16Size = 2
	Uint32Size = 4
	Uint64Size = 8
	Int32Size  = 4
	Int64Size  = 8

	// LengthPrefixSize is the size of the length prefix carried by sequences
	// (byte slices, strings, lists, maps)
	LengthPrefixSize = 4

	// OptionTagSize is the size of the presence byte carried by options
	OptionTagSize = 1

	// ResultTagSize is the size of the discriminant byte carried by results
	ResultTagSize = 1

	// Option presence bytes
	optionNone uint8 = 0
	optionSome uint8 = 1

	// Result discriminants
	resultErr uint8 = 0
	resultOk  uint8 = 1
)

// Encodable is the contract every wire type satisfies. EncodedLen must
// return exactly the number of bytes EncodeTo will produce; a disagreement
// between the two indicates a bug in the implementing type, not bad input.
type Encodable interface {
	EncodeTo(w *Writer) error
	EncodedLen() int
}

// Encode serializes an Encodable to its canonical byte form. The output
// buffer is pre-sized from EncodedLen so the value is encoded in a single
// allocation.
func Encode(e Encodable) ([]byte, error) {
	w := NewWriter(e.EncodedLen())
	if err := e.EncodeTo(w); err != nil {
		return nil, err
	}
	if w.Len() != e.EncodedLen() {
		panic(
			fmt.Sprintf(
				"codec: EncodedLen disagrees with encoded output: declared %d, wrote %d",
				e.EncodedLen(),
				w.Len(),
			),
		)
	}
	return w.Bytes(), nil
}

// MustEncode is like Encode but panics on error. It's intended for values
// constructed in-process whose encoding cannot fail.
func MustEncode(e Encodable) []byte {
	data, err := Encode(e)
	if err != nil {
		panic(fmt.Sprintf("codec: unexpected encode failure: %s", err))
	}
	return data
}
