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
	"encoding/binary"
	"math"
)

// Writer is an append-only buffer for building canonical encodings. All
// multi-byte integers are written little-endian. Writer methods never fail;
// the only fallible writes are length-prefixed sequences, which can exceed
// the 32-bit length prefix.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the specified initial capacity. Pre-sizing
// from EncodedLen avoids reallocation during encoding.
func NewWriter(capacity int) *Writer {
	if capacity < 0 {
		capacity = 0
	}
	return &Writer{
		buf: make([]byte, 0, capacity),
	}
}

// Bytes returns the accumulated encoding. The returned slice aliases the
// internal buffer and must not be written to after further Put calls.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// PutBool writes a boolean as a single 0x00 or 0x01 byte
func (w *Writer) PutBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// PutUint8 writes a single byte
func (w *Writer) PutUint8(v uint8) {
	w.buf = append(w.buf, v)
}

// PutUint16 writes a 16-bit unsigned integer, little-endian
func (w *Writer) PutUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutUint32 writes a 32-bit unsigned integer, little-endian
func (w *Writer) PutUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutUint64 writes a 64-bit unsigned integer, little-endian
func (w *Writer) PutUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// PutInt32 writes a 32-bit signed integer as its two's complement
// little-endian form
func (w *Writer) PutInt32(v int32) {
	w.PutUint32(uint32(v))
}

// PutInt64 writes a 64-bit signed integer as its two's complement
// little-endian form
func (w *Writer) PutInt64(v int64) {
	w.PutUint64(uint64(v))
}

// PutRawBytes writes bytes verbatim with no length prefix. Used for
// fixed-width payloads whose length is known to both sides.
func (w *Writer) PutRawBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// PutByteSlice writes a 4-byte little-endian length prefix followed by the
// bytes themselves
func (w *Writer) PutByteSlice(data []byte) error {
	if len(data) > math.MaxUint32 {
		return newEncodeError("byte slice", ErrValueTooLarge)
	}
	w.PutUint32(uint32(len(data)))
	w.buf = append(w.buf, data...)
	return nil
}

// PutString writes a string as a length-prefixed byte sequence of its UTF-8
// bytes
func (w *Writer) PutString(s string) error {
	if len(s) > math.MaxUint32 {
		return newEncodeError("string", ErrValueTooLarge)
	}
	w.PutUint32(uint32(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// ByteSliceLen returns the encoded size of a length-prefixed byte sequence
func ByteSliceLen(data []byte) int {
	return LengthPrefixSize + len(data)
}

// StringLen returns the encoded size of a length-prefixed string
func StringLen(s string) int {
	return LengthPrefixSize + len(s)
}
