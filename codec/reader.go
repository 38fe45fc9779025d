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
)

// Reader is a bounds-checked cursor over an immutable byte slice. The slice
// handed to NewReader is the resource bound for the whole decode: no read
// ever inspects bytes outside it, and a declared length exceeding the
// remaining input fails before any allocation proportional to the claim.
//
// Every Read method either succeeds and advances the cursor by exactly the
// bytes consumed, or fails and leaves the cursor where it was.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over the provided bytes. The Reader does not
// copy the slice; callers must not mutate it while decoding.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unconsumed bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Pos returns the number of bytes consumed so far
func (r *Reader) Pos() int {
	return r.pos
}

// Range returns a copy of the input bytes between two positions previously
// obtained from Pos. Structure-aware decoders use this to capture the exact
// encoding of a nested element after walking past it.
func (r *Reader) Range(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(r.data) {
		return nil, newDecodeError("range", ErrEarlyEndOfStream)
	}
	out := make([]byte, end-start)
	copy(out, r.data[start:end])
	return out, nil
}

// Rewind moves the cursor back to an earlier position previously obtained
// from Pos. Composite decoders use this to restore the cursor after a failed
// multi-field read so a failure never leaves a partial advance behind.
func (r *Reader) Rewind(pos int) {
	if pos < 0 || pos > r.pos {
		panic("codec: rewind to invalid position")
	}
	r.pos = pos
}

// Finish fails with ErrLeftoverBytes unless the input has been fully consumed
func (r *Reader) Finish() error {
	if r.Remaining() != 0 {
		return newDecodeError("trailer", ErrLeftoverBytes)
	}
	return nil
}

// ReadBool reads a strict boolean byte. Any value other than 0x00 or 0x01 is
// a format error, not a coerced true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, newDecodeError("bool", ErrEarlyEndOfStream)
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		r.pos -= BoolSize
		return false, newDecodeError("bool", ErrFormat)
	}
}

// ReadUint8 reads a single byte
func (r *Reader) ReadUint8() (uint8, error) {
	if r.Remaining() < Uint8Size {
		return 0, newDecodeError("u8", ErrEarlyEndOfStream)
	}
	v := r.data[r.pos]
	r.pos += Uint8Size
	return v, nil
}

// ReadUint16 reads a 16-bit little-endian unsigned integer
func (r *Reader) ReadUint16() (uint16, error) {
	if r.Remaining() < Uint16Size {
		return 0, newDecodeError("u16", ErrEarlyEndOfStream)
	}
	v := binary.LittleEndian.Uint16(r.data[r.pos:])
	r.pos += Uint16Size
	return v, nil
}

// ReadUint32 reads a 32-bit little-endian unsigned integer
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < Uint32Size {
		return 0, newDecodeError("u32", ErrEarlyEndOfStream)
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += Uint32Size
	return v, nil
}

// ReadUint64 reads a 64-bit little-endian unsigned integer
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < Uint64Size {
		return 0, newDecodeError("u64", ErrEarlyEndOfStream)
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += Uint64Size
	return v, nil
}

// ReadInt32 reads a 32-bit signed integer from its two's complement
// little-endian form
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, newDecodeError("i32", ErrEarlyEndOfStream)
	}
	return int32(v), nil
}

// ReadInt64 reads a 64-bit signed integer from its two's complement
// little-endian form
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, newDecodeError("i64", ErrEarlyEndOfStream)
	}
	return int64(v), nil
}

// ReadRawBytes reads exactly n bytes with no length prefix and returns a
// copy of them
func (r *Reader) ReadRawBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, newDecodeError("raw bytes", ErrEarlyEndOfStream)
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// readRawBytesNoCopy is like ReadRawBytes but returns a sub-slice of the
// input. Callers must not hold the result past the input's lifetime.
func (r *Reader) readRawBytesNoCopy(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, newDecodeError("raw bytes", ErrEarlyEndOfStream)
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// ReadByteSlice reads a 4-byte little-endian length prefix followed by that
// many bytes. A declared length larger than the remaining input fails
// without allocating.
func (r *Reader) ReadByteSlice() ([]byte, error) {
	start := r.pos
	n, err := r.ReadUint32()
	if err != nil {
		return nil, newDecodeError("byte slice", ErrEarlyEndOfStream)
	}
	if uint64(n) > uint64(r.Remaining()) {
		r.pos = start
		return nil, newDecodeError("byte slice", ErrEarlyEndOfStream)
	}
	out, err := r.ReadRawBytes(int(n))
	if err != nil {
		r.pos = start
		return nil, err
	}
	return out, nil
}

// ReadString reads a length-prefixed UTF-8 string
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	n, err := r.ReadUint32()
	if err != nil {
		return "", newDecodeError("string", ErrEarlyEndOfStream)
	}
	if uint64(n) > uint64(r.Remaining()) {
		r.pos = start
		return "", newDecodeError("string", ErrEarlyEndOfStream)
	}
	data, err := r.readRawBytesNoCopy(int(n))
	if err != nil {
		r.pos = start
		return "", err
	}
	return string(data), nil
}
