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
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/ironbark-io/ledgercore/codec"
)

// Value is a self-describing dynamic value: a type descriptor paired with
// the canonical encoding of a payload of that shape. Values are immutable
// once built; all mutation paths construct a new Value.
//
// The payload is stored encoded rather than decoded. Extraction is
// two-phase: the caller's expected descriptor is checked against the
// carried one first, and only on a match are the payload bytes decoded.
// A mismatch never touches the payload.
type Value struct {
	typ   Type
	bytes []byte
}

// Type returns the carried descriptor
func (v Value) Type() Type {
	return v.typ
}

// PayloadBytes returns a copy of the canonical payload encoding
func (v Value) PayloadBytes() []byte {
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out
}

// Equal reports descriptor and payload equality. Because payloads are
// canonical, byte equality is value equality.
func (v Value) Equal(other Value) bool {
	return v.typ.Equal(other.typ) && bytes.Equal(v.bytes, other.bytes)
}

// Validate walks the payload against the descriptor, enforcing the same
// strictness as decoding: exact length, strict bool/option bytes,
// shortest-form big integers, unique map keys. Values whose descriptor
// contains Any cannot be validated and return ErrAnyOpaque.
func (v Value) Validate() error {
	if v.typ.ContainsAny() {
		return ErrAnyOpaque
	}
	r := codec.NewReader(v.bytes)
	if err := walkValue(r, v.typ, 0); err != nil {
		return err
	}
	return r.Finish()
}

// String renders the value for diagnostics as "<type>:<payload hex>"
func (v Value) String() string {
	return fmt.Sprintf("%s:%s", v.typ, hex.EncodeToString(v.bytes))
}

// EncodeTo writes the length-prefixed payload followed by the descriptor.
// Putting the payload first lets a reader that only needs the bytes skip
// the descriptor entirely.
func (v Value) EncodeTo(w *codec.Writer) error {
	if err := w.PutByteSlice(v.bytes); err != nil {
		return err
	}
	return v.typ.EncodeTo(w)
}

// EncodedLen returns the full wire size of the value
func (v Value) EncodedLen() int {
	return codec.ByteSliceLen(v.bytes) + v.typ.EncodedLen()
}

// ReadValue decodes a value and, unless its descriptor contains Any,
// validates the payload against the descriptor before returning it. On any
// failure the cursor is left where it started.
func ReadValue(r *codec.Reader) (Value, error) {
	start := r.Pos()
	payload, err := r.ReadByteSlice()
	if err != nil {
		return Value{}, err
	}
	typ, err := ReadType(r)
	if err != nil {
		r.Rewind(start)
		return Value{}, err
	}
	v := Value{typ: typ, bytes: payload}
	if !typ.ContainsAny() {
		if err := v.Validate(); err != nil {
			r.Rewind(start)
			return Value{}, err
		}
	}
	return v, nil
}

// NewFromBytes builds a value directly from a descriptor and an encoded
// payload, validating the payload unless the descriptor contains Any.
// This is the entry point for payloads produced elsewhere, including
// opaque Any blobs carried through unmodified.
func NewFromBytes(t Type, payload []byte) (Value, error) {
	owned := make([]byte, len(payload))
	copy(owned, payload)
	v := Value{typ: t, bytes: owned}
	if !t.ContainsAny() {
		if err := v.Validate(); err != nil {
			return Value{}, err
		}
	}
	return v, nil
}
